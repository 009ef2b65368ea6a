// Package chat answers Moneebot messages, either through a remote chat
// endpoint or with canned budgeting advice.
package chat

import (
	"context"
	"strings"
	"time"
)

// Responder produces an answer for a single user message.
type Responder interface {
	Respond(ctx context.Context, message string) (string, error)
}

// Config configures the responder built by NewResponder.
type Config struct {
	Endpoint          string
	Timeout           time.Duration
	MaxAttempts       int
	RequestsPerMinute int // 0 disables throttling
}

// NewResponder returns an HTTP responder when an endpoint is configured and
// the canned responder otherwise.
func NewResponder(cfg Config) Responder {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return CannedResponder{}
	}
	return NewHTTPResponder(cfg)
}
