// Package source reads transactions from an Aptos fullnode REST API.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
	"github.com/goodnatureofminers/blockinsight7000-aptos/pkg/safe"
	"go.uber.org/ratelimit"
)

const (
	// MaxPageSize is the largest page the fullnode serves for /transactions.
	MaxPageSize = 100

	defaultTimeout = 15 * time.Second
)

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Options configures a Client.
type Options struct {
	// BaseURL is the node address without the /v1 suffix.
	BaseURL    string
	Timeout    time.Duration
	RPS        int
	PageSize   int
	HTTPClient *http.Client
}

// Client fetches ledger info and transactions. It is safe for concurrent use.
type Client struct {
	baseURL  string
	client   *http.Client
	limiter  ratelimit.Limiter
	pageSize int
	metrics  Metrics
}

func NewClient(o Options, metrics Metrics) (*Client, error) {
	if o.BaseURL == "" {
		return nil, errors.New("node url is required")
	}
	if _, err := url.Parse(o.BaseURL); err != nil {
		return nil, fmt.Errorf("parse node url: %w", err)
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.PageSize <= 0 || o.PageSize > MaxPageSize {
		o.PageSize = MaxPageSize
	}

	client := o.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: o.Timeout}
	}

	limiter := ratelimit.NewUnlimited()
	if o.RPS > 0 {
		limiter = ratelimit.New(o.RPS)
	}

	return &Client{
		baseURL:  strings.TrimSuffix(o.BaseURL, "/"),
		client:   client,
		limiter:  limiter,
		pageSize: o.PageSize,
		metrics:  metrics,
	}, nil
}

// LatestVersion returns the ledger version of the node.
func (c *Client) LatestVersion(ctx context.Context) (version int64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("latest_version", err, started)
	}()

	var info ledgerInfo
	if err = c.getJSON(ctx, "/v1", &info); err != nil {
		return 0, err
	}
	version, err = safe.ParseInt64(info.LedgerVersion)
	if err != nil {
		return 0, fmt.Errorf("parse ledger version %q: %w", info.LedgerVersion, err)
	}
	return version, nil
}

// FetchRange returns the transactions of vr in version order.
func (c *Client) FetchRange(ctx context.Context, vr model.VersionRange) (txs []model.Transaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("fetch_range", err, started)
	}()

	if !vr.Valid() {
		return nil, fmt.Errorf("fetch range %s: invalid range", vr)
	}

	txs = make([]model.Transaction, 0, vr.Len())
	for next := vr.Start; next <= vr.End; {
		limit := vr.End - next + 1
		if limit > int64(c.pageSize) {
			limit = int64(c.pageSize)
		}

		page, pageErr := c.fetchPage(ctx, next, limit)
		if pageErr != nil {
			err = fmt.Errorf("fetch range %s: %w", vr, pageErr)
			return nil, err
		}
		if len(page) == 0 {
			err = fmt.Errorf("fetch range %s: node returned no transactions at version %d", vr, next)
			return nil, err
		}

		for _, tx := range page {
			if tx.Version > vr.End {
				break
			}
			txs = append(txs, tx)
		}
		next = page[len(page)-1].Version + 1
	}
	return txs, nil
}

func (c *Client) fetchPage(ctx context.Context, start, limit int64) ([]model.Transaction, error) {
	path := "/v1/transactions?start=" + strconv.FormatInt(start, 10) + "&limit=" + strconv.FormatInt(limit, 10)

	var page []transactionDTO
	if err := c.getJSON(ctx, path, &page); err != nil {
		return nil, err
	}

	txs := make([]model.Transaction, 0, len(page))
	for _, dto := range page {
		tx, err := dto.toModel()
		if err != nil {
			return nil, fmt.Errorf("convert transaction %s: %w", dto.Version, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	c.limiter.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr apiError
		_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&apiErr)
		return &StatusError{Path: path, StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// StatusError is a non-2xx response from the node.
type StatusError struct {
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("get %s: status %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("get %s: status %d: %s", e.Path, e.StatusCode, e.Message)
}
