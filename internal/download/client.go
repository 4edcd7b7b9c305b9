// Package download implements the streaming HTTP client both dataset pipelines fetch through.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cheggaaa/pb/v3"
	"github.com/da-moon/datapull/internal/shared"
)

// Options configures the download client.
type Options struct {
	// HTTPClient overrides the underlying client, mostly for tests.
	// When set, Timeout is ignored.
	HTTPClient *http.Client

	// Timeout for an entire request. Zero disables the timeout, the safe
	// default for multi-gigabyte dataset files.
	Timeout time.Duration

	// RetryWait is how long to sleep after the server signals rate limiting.
	// Default: 600s.
	RetryWait time.Duration

	// RetryAttempts is how many extra attempts a rate-limited request gets.
	// Zero means a 403 fails immediately.
	RetryAttempts int

	// UserAgent sent with every request.
	UserAgent string

	// ProgressOutput receives the progress bar.
	// Default: os.Stderr.
	ProgressOutput io.Writer

	// HideProgress disables the progress bar entirely.
	HideProgress bool

	// Logger for backoff events.
	// Default: shared.NewLogger(nil).
	Logger *log.Logger
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		RetryWait:     600 * time.Second,
		RetryAttempts: 1,
		UserAgent:     "datapull",
	}
}

// Client downloads remote files to local paths.
type Client struct {
	client *http.Client
	opts   Options
	logger *log.Logger
}

// NewClient creates a download client with the given options.
func NewClient(opts Options) *Client {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	if opts.ProgressOutput == nil {
		opts.ProgressOutput = os.Stderr
	}

	return &Client{client: client, opts: opts, logger: logger}
}

// FetchResult describes one completed download.
type FetchResult struct {
	Path  string
	Bytes int64
}

// Fetch issues a single streaming GET and writes the response body to dest.
//
// The body streams through a dest.partial temp file that is renamed into
// place on success, so a half-written dest is never left behind. Progress
// renders proportional to Content-Length, falling back to a plain byte
// counter when the server omits it. A 403 maps to [shared.ErrRateLimited];
// any other non-200 status maps to [shared.ErrUnexpectedStatus] carrying the
// code.
func (c *Client) Fetch(ctx context.Context, url, dest string) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s returned %d", shared.ErrRateLimited, url, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: %s returned %d", shared.ErrUnexpectedStatus, url, resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	tmp := dest + ".partial"
	f, err := os.Create(tmp)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	var body io.Reader = resp.Body
	var bar *pb.ProgressBar
	if !c.opts.HideProgress {
		size := resp.ContentLength
		if size < 0 {
			size = 0
		}
		bar = pb.New64(size)
		bar.Set(pb.Bytes, true)
		bar.SetWriter(c.opts.ProgressOutput)
		bar.Start()
		body = bar.NewProxyReader(resp.Body)
	}

	written, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("%w: %v", shared.ErrDownloadFailed, err)
	}

	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("failed to move download into place: %w", err)
	}

	return &FetchResult{Path: dest, Bytes: written}, nil
}

// FetchWithRetry wraps [Client.Fetch] with the bounded rate-limit policy:
// after a 403 the client sleeps RetryWait and tries again, up to
// RetryAttempts extra attempts. Any other failure returns immediately, and a
// 403 on the final attempt surfaces as [shared.ErrRateLimited].
func (c *Client) FetchWithRetry(ctx context.Context, url, dest string) (*FetchResult, error) {
	var lastErr error

	for attempt := 0; attempt <= c.opts.RetryAttempts; attempt++ {
		if attempt > 0 {
			c.logger.Warn("rate limited, backing off", "url", url, "wait", c.opts.RetryWait, "attempt", attempt)
			if err := sleepContext(ctx, c.opts.RetryWait); err != nil {
				return nil, err
			}
		}

		result, err := c.Fetch(ctx, url, dest)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, shared.ErrRateLimited) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

// sleepContext sleeps for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
