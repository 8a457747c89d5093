// Package etherscan implements walletwatch.LedgerClient on top of the
// Etherscan account API.
package etherscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gabapcia/ethtracker/internal/walletwatch"
)

var (
	// ErrProviderReturnedError indicates that Etherscan answered with a failure status.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus is returned for non-200 HTTP responses.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

const (
	actionNativeTransfers = "txlist"
	actionTokenTransfers  = "tokentx"

	statusOK              = "1"
	noTransactionsMessage = "No transactions found"
)

// response is the envelope shared by every account endpoint.
type response struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// isEmpty reports whether the account simply has no transfers.
func (r response) isEmpty() bool {
	return r.Status != statusOK && r.Message == noTransactionsMessage
}

// Err returns an error wrapping ErrProviderReturnedError unless the status is OK.
// On failure Etherscan puts the reason in the result field as a string.
func (r response) Err() error {
	if r.Status == statusOK {
		return nil
	}

	var reason string
	if err := json.Unmarshal(r.Result, &reason); err != nil {
		reason = string(r.Result)
	}

	return fmt.Errorf("%w: %s - %s", ErrProviderReturnedError, r.Message, reason)
}

// Config holds the API settings.
type Config struct {
	BaseURL string
	APIKey  string

	// ChainID selects the network on the multichain API. Zero omits the parameter.
	ChainID int64
}

type client struct {
	baseURL    string
	apiKey     string
	chainID    int64
	httpClient *http.Client
}

var _ walletwatch.LedgerClient = (*client)(nil)

// query builds the account query returning the single most recent transfer.
func (c *client) query(action, address string) url.Values {
	q := url.Values{}
	q.Set("module", "account")
	q.Set("action", action)
	q.Set("address", address)
	q.Set("startblock", "0")
	q.Set("endblock", "99999999")
	q.Set("page", "1")
	q.Set("offset", "1")
	q.Set("sort", "desc")
	q.Set("apikey", c.apiKey)

	if c.chainID > 0 {
		q.Set("chainid", strconv.FormatInt(c.chainID, 10))
	}

	return q
}

// fetch decodes the result list of action into out. It reports false when
// the account has no transfers.
func (c *client) fetch(ctx context.Context, action, address string, out any) (bool, error) {
	endpoint := c.baseURL + "?" + c.query(action, address).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}

	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return false, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return false, err
	}

	if data.isEmpty() {
		return false, nil
	}

	if err := data.Err(); err != nil {
		return false, err
	}

	if err := json.Unmarshal(data.Result, out); err != nil {
		return false, err
	}

	return true, nil
}

// NewClient returns a ledger client sending requests through httpClient.
func NewClient(httpClient *http.Client, cfg Config) *client {
	return &client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		chainID:    cfg.ChainID,
		httpClient: httpClient,
	}
}
