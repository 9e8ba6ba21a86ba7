// Package fetcher retrieves the partner company list from the remote
// API. The list is fetched exactly once per invocation; a failed
// fetch is terminal for the whole dataset and is never retried.
package fetcher

import (
	"context"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/hda-infdl/partner-scout/internal/model"
)

// Options configures the partner list fetch.
type Options struct {
	URL       string
	UserAgent string
	Timeout   time.Duration
	// Limiter throttles requests against the partner host. Optional;
	// mostly relevant for the serve command, which may refetch on
	// operator demand.
	Limiter *rate.Limiter
}

// Fetcher loads raw partner records over HTTP.
type Fetcher struct {
	client  *http.Client
	opts    Options
	limiter *rate.Limiter
}

// New creates a Fetcher with the given options.
func New(opts Options) *Fetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "partner-scout/1.0"
	}
	limiter := opts.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &Fetcher{
		client:  &http.Client{Timeout: opts.Timeout},
		opts:    opts,
		limiter: limiter,
	}
}

// FetchAll retrieves the complete partner list. Any network error or
// non-2xx status surfaces as an error; partial results are never
// returned.
func (f *Fetcher) FetchAll(ctx context.Context) ([]model.RawCompany, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "fetcher: rate limit wait")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.opts.URL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: build request")
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: request partner list")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, eris.Errorf("fetcher: partner list returned status %d", resp.StatusCode)
	}

	records, err := DecodeArray(ctx, resp.Body)
	if err != nil {
		return nil, err
	}

	zap.L().Info("fetched partner list",
		zap.Int("records", len(records)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return records, nil
}
