// Package pipeline coordinates the long-running parts of the tracker
// (wallet engine, chat router, health server) into a single lifecycle.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/ethtracker/internal/pkg/logger"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
//
// The service must be started only once per lifecycle.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Component is a background part of the pipeline with its own lifecycle.
type Component interface {
	Start(ctx context.Context) error
	Close()
}

// Stage names a Component for logging and error reporting.
type Stage struct {
	Name      string
	Component Component
}

// Service defines the pipeline lifecycle.
type Service interface {
	// Start starts every stage in order. If a stage fails, the stages
	// already running are closed in reverse order and the error is returned.
	//
	// Returns ErrServiceAlreadyStarted if Start is called more than once.
	Start(ctx context.Context) error

	// Close stops every stage in reverse start order.
	// It is safe to call Close even if the service was never started.
	Close()
}

// closeFunc defines a cleanup routine to stop the running stages.
type closeFunc func()

type service struct {
	mu        sync.Mutex // protects lifecycle state
	isStarted bool       // ensures Start is called only once
	closeFunc closeFunc  // closes the started stages

	stages []Stage
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = new(service)

func closeStages(ctx context.Context, started []Stage) {
	for i := len(started) - 1; i >= 0; i-- {
		logger.Info(ctx, "stopping stage", "stage", started[i].Name)
		started[i].Component.Close()
	}
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	started := make([]Stage, 0, len(s.stages))
	for _, stage := range s.stages {
		if err := stage.Component.Start(ctx); err != nil {
			closeStages(ctx, started)
			return fmt.Errorf("start %s: %w", stage.Name, err)
		}

		logger.Info(ctx, "stage started", "stage", stage.Name)
		started = append(started, stage)
	}

	s.closeFunc = func() {
		closeStages(context.WithoutCancel(ctx), started)
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

// New creates a pipeline running stages in the given order.
func New(stages ...Stage) *service {
	return &service{
		stages: stages,
	}
}
