// Package http exposes liveness and readiness probes for the tracker.
package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gabapcia/ethtracker/internal/pkg/logger"
)

const (
	shutdownTimeout = 5 * time.Second
	pingTimeout     = 2 * time.Second
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// WalletCounter reports how many wallets are currently polled.
type WalletCounter interface {
	ActiveWallets() int
}

// Service runs the probe server in the background.
type Service interface {
	Start(ctx context.Context) error
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	addr     string
	database Pinger
	tracker  WalletCounter
}

var _ Service = (*service)(nil)

type statusResponse struct {
	Status        string `json:"status"`
	ActiveWallets int    `json:"active_wallets"`
	Error         string `json:"error,omitempty"`
}

func (s *service) livez(c *gin.Context) {
	c.JSON(http.StatusOK, statusResponse{Status: "ok", ActiveWallets: s.tracker.ActiveWallets()})
}

func (s *service) readyz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := s.database.Ping(ctx); err != nil {
		logger.Warn(ctx, "readiness check failed", "error", err)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, statusResponse{
			Status:        "unavailable",
			ActiveWallets: s.tracker.ActiveWallets(),
			Error:         "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, statusResponse{Status: "ready", ActiveWallets: s.tracker.ActiveWallets()})
}

func (s *service) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/livez", s.livez)
	r.GET("/readyz", s.readyz)

	return r
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router(),
		ReadHeaderTimeout: pingTimeout,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		logger.Info(ctx, "health server listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "health server stopped", "error", err)
		}
	}()

	s.closeFunc = func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "error shutting down health server", "error", err)
		}
		<-done
	}
	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

// New creates the probe server listening on addr.
func New(addr string, database Pinger, tracker WalletCounter) *service {
	return &service{
		addr:     addr,
		database: database,
		tracker:  tracker,
	}
}
