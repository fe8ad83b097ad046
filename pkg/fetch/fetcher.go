// Package fetch provides the outbound transport used to retrieve key-set and
// discovery documents.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jwks-resolver/jwks-resolver/pkg/config"
	resolvererrors "github.com/jwks-resolver/jwks-resolver/pkg/errors"
	"github.com/jwks-resolver/jwks-resolver/pkg/utils"
)

// Fetcher retrieves a JSON document.
// Failures to connect, non-2xx answers and non-JSON bodies are errors.
type Fetcher interface {
	Fetch(ctx context.Context, method, url string) (json.RawMessage, error)
}

// FetcherFunc adapts a function to the Fetcher interface
type FetcherFunc func(ctx context.Context, method, url string) (json.RawMessage, error)

// Fetch calls f
func (f FetcherFunc) Fetch(ctx context.Context, method, url string) (json.RawMessage, error) {
	return f(ctx, method, url)
}

// maxErrorBodyBytes bounds how much of an error response ends up in the error message
const maxErrorBodyBytes = 512

// HTTPFetcher fetches JSON documents over HTTP
type HTTPFetcher struct {
	httpClient   *http.Client
	userAgent    string
	maxBodyBytes int64
	retry        config.RetryConfig
	logger       *zap.Logger
}

// NewHTTPFetcher creates a new HTTP fetcher. A nil client gets one with the
// configured timeout.
func NewHTTPFetcher(httpConfig config.HTTPConfig, httpClient *http.Client, logger *zap.Logger) *HTTPFetcher {
	timeout := config.DefaultHTTPTimeout
	if httpConfig.Timeout.Duration > 0 {
		timeout = httpConfig.Timeout.Duration
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: timeout,
		}
	}

	userAgent := httpConfig.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}

	maxBodyBytes := httpConfig.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = config.DefaultMaxBodyBytes
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &HTTPFetcher{
		httpClient:   httpClient,
		userAgent:    userAgent,
		maxBodyBytes: maxBodyBytes,
		retry:        httpConfig.Retry,
		logger:       logger,
	}
}

// Fetch performs the request, retrying transient failures
func (f *HTTPFetcher) Fetch(ctx context.Context, method, url string) (json.RawMessage, error) {
	if method == "" {
		method = http.MethodGet
	}

	var body json.RawMessage
	err := utils.RetryWithDelay(ctx, utils.RetryConfig{
		MaxAttempts: f.retry.MaxAttempts,
		Delay:       f.retry.Delay.Duration,
		ShouldRetry: resolvererrors.IsRetryable,
		OnRetry: func(attempt int, err error) {
			f.logger.Debug("Retrying request",
				zap.String("url", url),
				zap.Int("attempt", attempt+1),
				zap.Error(err))
		},
	}, func() error {
		var err error
		body, err = f.do(ctx, method, url)
		return err
	})
	if err != nil {
		return nil, err
	}

	return body, nil
}

func (f *HTTPFetcher) do(ctx context.Context, method, url string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", f.userAgent)

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, resolvererrors.NewFetchError(url, err)
	}
	defer resp.Body.Close()

	f.logger.Debug("Fetched document",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, resolvererrors.NewUnexpectedStatusError(url, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	// Read one byte past the limit to detect oversized bodies
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes+1))
	if err != nil {
		return nil, resolvererrors.NewFetchError(url, fmt.Errorf("failed to read response body: %w", err))
	}
	if int64(len(body)) > f.maxBodyBytes {
		return nil, resolvererrors.NewInvalidResponseError(url, fmt.Errorf("body exceeds %d bytes", f.maxBodyBytes))
	}

	if !json.Valid(body) {
		return nil, resolvererrors.NewInvalidResponseError(url, nil)
	}

	return json.RawMessage(body), nil
}
