package indexer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stekfinance/internal/metrics"

	"go.uber.org/ratelimit"
)

const (
	PageSize = 10

	actionTxList   = "txlist"
	actionInternal = "txlistinternal"

	statusOK = "1"
)

var ErrUpstreamUnavailable error = errors.New("indexer unavailable")

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// Client queries an etherscan-compatible account API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    ratelimit.Limiter
	metrics    metrics.Indexer
}

// NewClient builds a client sending at most rps requests per second. A
// non-positive rps disables pacing.
func NewClient(baseURL, apiKey string, rps int, timeout time.Duration) *Client {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: limiter,
	}
}

// TxList returns up to PageSize transactions of address, most recent first.
func (c *Client) TxList(ctx context.Context, address string) ([]RawTransaction, error) {
	params := url.Values{
		"module":     {"account"},
		"action":     {actionTxList},
		"address":    {address},
		"startblock": {"0"},
		"endblock":   {"99999999"},
		"page":       {"1"},
		"offset":     {fmt.Sprint(PageSize)},
		"sort":       {"desc"},
	}

	var txs []RawTransaction
	if err := c.get(ctx, actionTxList, params, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// InternalTransfers returns the internal transfers caused by the transaction hash.
func (c *Client) InternalTransfers(ctx context.Context, hash string) ([]InternalTransfer, error) {
	params := url.Values{
		"module": {"account"},
		"action": {actionInternal},
		"txhash": {hash},
	}

	var transfers []InternalTransfer
	if err := c.get(ctx, actionInternal, params, &transfers); err != nil {
		return nil, err
	}
	for i := range transfers {
		transfers[i].TransactionHash = hash
	}
	return transfers, nil
}

func (c *Client) get(ctx context.Context, action string, params url.Values, result any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(action, err, started)
	}()

	if c.baseURL == "" {
		return fmt.Errorf("%w: base url is not configured", ErrUpstreamUnavailable)
	}

	params.Set("apikey", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", action, err)
	}

	c.limiter.Take()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w: %w", action, err, ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s request: status %s: %s: %w", action, resp.Status, strings.TrimSpace(string(body)), ErrUpstreamUnavailable)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode %s response: %w: %w", action, err, ErrUpstreamUnavailable)
	}

	if env.Status != statusOK {
		if isEmptyResult(env) {
			return nil
		}
		return fmt.Errorf("%s: %s: %w", action, env.Message, ErrUpstreamUnavailable)
	}

	if err := json.Unmarshal(env.Result, result); err != nil {
		return fmt.Errorf("decode %s result: %w: %w", action, err, ErrUpstreamUnavailable)
	}
	return nil
}

// isEmptyResult reports the explorer's "nothing found" answer, which it sends
// with status 0 and an empty result array.
func isEmptyResult(env envelope) bool {
	return strings.HasPrefix(env.Message, "No ") && strings.TrimSpace(string(env.Result)) == "[]"
}
