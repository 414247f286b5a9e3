// Package dataset reads the restaurant dataset and keeps the current directory snapshot.
package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"chefguide/data"
	"chefguide/internal/config"
	"chefguide/internal/models"
	"chefguide/pkg/utils"
)

// Loader errors.
var (
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrInvalidURL           = errors.New("invalid dataset URL")
	ErrEmptyDocument        = errors.New("dataset document is empty")
)

// Loader fetches the dataset document from a file, a URL or the bundled copy.
type Loader struct {
	client       *http.Client
	retryPolicy  config.RetryPolicy
	bufferSizeKb int
	http         *utils.HTTPHelper
}

// NewLoader creates a loader using the retry policy and buffer limit of cfg.
func NewLoader(cfg config.DatasetConfig) *Loader {
	return &Loader{
		client: &http.Client{
			Timeout: cfg.Retry.GetTimeout(),
		},
		retryPolicy:  cfg.Retry,
		bufferSizeKb: cfg.BufferSizeKb,
		http:         utils.NewHTTPHelper(),
	}
}

// Load reads and decodes the dataset described by cfg. It returns the dataset and a
// description of where it came from.
func (l *Loader) Load(ctx context.Context, cfg config.DatasetConfig) (*models.Dataset, string, error) {
	raw, source, err := l.Read(ctx, cfg)
	if err != nil {
		return nil, "", err
	}

	ds, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, source, fmt.Errorf("failed to decode %s: %w", source, err)
	}

	return ds, source, nil
}

// Read returns the raw document bytes. URLs are tried in order (primary, then backups)
// until one succeeds.
func (l *Loader) Read(ctx context.Context, cfg config.DatasetConfig) ([]byte, string, error) {
	switch {
	case cfg.IsLocalFile():
		raw, err := l.ReadLocalFile(cfg.File)

		return raw, cfg.File, err
	case cfg.IsEmbedded():
		return data.Restaurants, data.Name, nil
	}

	var errs []error

	for _, u := range cfg.GetAllURLs() {
		raw, _, _, err := l.FetchWithMetrics(ctx, u)
		if err == nil {
			return raw, u, nil
		}

		errs = append(errs, fmt.Errorf("%s: %w", u, err))
	}

	return nil, "", fmt.Errorf("all dataset URLs failed: %w", errors.Join(errs...))
}

// FetchWithMetrics returns (content, statusCode, duration, error).
func (l *Loader) FetchWithMetrics(ctx context.Context, url string) ([]byte, int, time.Duration, error) {
	if !l.http.IsValidURL(url) {
		return nil, 0, 0, fmt.Errorf("%w: %q", ErrInvalidURL, url)
	}

	var (
		lastErr        error
		lastStatusCode int
		totalDuration  time.Duration
	)

	for attempt := 1; attempt <= l.retryPolicy.MaxAttempts; attempt++ {
		if attempt > 1 {
			if err := sleepCtx(ctx, l.retryPolicy.GetRetryDelay(attempt)); err != nil {
				return nil, lastStatusCode, totalDuration, err
			}
		}

		startTime := time.Now()
		body, status, retry, err := l.fetchOnce(ctx, url)
		totalDuration += time.Since(startTime)
		lastStatusCode = status

		if err == nil {
			return body, status, totalDuration, nil
		}

		lastErr = fmt.Errorf("attempt %d/%d: %w", attempt, l.retryPolicy.MaxAttempts, err)
		if !retry {
			break
		}
	}

	return nil, lastStatusCode, totalDuration, lastErr
}

// fetchOnce performs one request. retry reports whether another attempt may help.
func (l *Loader) fetchOnce(ctx context.Context, url string) (body []byte, status int, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, 0, false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header = l.http.BuildHeaders(nil)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, 0, ctx.Err() == nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, isRetryableStatus(resp.StatusCode),
			fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	limit := int64(l.bufferSizeKb) * 1024

	body, err = io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, resp.StatusCode, true, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, resp.StatusCode, false, nil
}

// ReadLocalFile reads the document from a local path.
func (l *Loader) ReadLocalFile(filePath string) ([]byte, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read local file %s: %w", filePath, err)
	}

	return content, nil
}

// Decode parses a dataset document.
func Decode(r io.Reader) (*models.Dataset, error) {
	dec := json.NewDecoder(r)

	var ds models.Dataset
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}

		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &ds, nil
}

// isRetryableStatus determines if we should retry based on HTTP status code.
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
		http.StatusTooManyRequests,
		http.StatusRequestTimeout:
		return true
	}

	return false
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
