package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Veraticus/monee/internal/common"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxAttempts = 2
)

// HTTPResponder posts {"message": ...} to an endpoint and reads "answer"
// from the JSON reply.
type HTTPResponder struct {
	httpClient  *http.Client
	limiter     *rateLimiter
	endpoint    string
	maxAttempts int
}

// NewHTTPResponder creates a responder for cfg.Endpoint.
func NewHTTPResponder(cfg Config) *HTTPResponder {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}

	return &HTTPResponder{
		endpoint:    cfg.Endpoint,
		maxAttempts: attempts,
		limiter:     newRateLimiter(cfg.RequestsPerMinute),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Answer *string `json:"answer"`
}

// Respond sends message and returns the answer with markdown bold markers
// removed. Server errors and transport failures are retried; every attempt
// counts against the request rate limit.
func (r *HTTPResponder) Respond(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	var answer string
	err = common.WithRetry(ctx, func() error {
		if err := r.limiter.wait(ctx); err != nil {
			return err
		}
		var sendErr error
		answer, sendErr = r.send(ctx, body)
		return sendErr
	}, common.RetryOptions{
		MaxAttempts:  r.maxAttempts,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     2 * time.Second,
	})
	if err != nil {
		return "", err
	}

	return strings.ReplaceAll(answer, "**", ""), nil
}

func (r *HTTPResponder) send(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &common.RetryableError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrChatUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", common.ErrRateLimit
	case resp.StatusCode >= http.StatusInternalServerError:
		return "", fmt.Errorf("%w (status %d): %s", common.ErrChatUnavailable, resp.StatusCode, string(payload))
	case resp.StatusCode != http.StatusOK:
		return "", &common.RetryableError{
			Err: fmt.Errorf("chat endpoint error (status %d): %s", resp.StatusCode, string(payload)),
		}
	}

	var decoded chatResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", &common.RetryableError{Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	if decoded.Answer == nil {
		return "", &common.RetryableError{Err: fmt.Errorf("response has no answer field")}
	}

	return *decoded.Answer, nil
}
