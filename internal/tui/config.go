package tui

import (
	"context"
	"time"

	"github.com/Veraticus/monee/internal/chat"
	"github.com/Veraticus/monee/internal/model"
	"github.com/Veraticus/monee/internal/summary"
	"github.com/Veraticus/monee/internal/tui/themes"
)

// Saver persists the session user after every change.
type Saver interface {
	SaveUser(ctx context.Context, user model.User) error
}

// Config holds TUI configuration.
type Config struct {
	Theme        themes.Theme
	Responder    chat.Responder
	Saver        Saver
	Now          func() time.Time
	SplashDelay  time.Duration
	TickInterval time.Duration
	Width        int
	Height       int
	AltScreen    bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:        themes.Default,
		Responder:    chat.CannedResponder{},
		Now:          time.Now,
		SplashDelay:  2 * time.Second,
		TickInterval: summary.CounterTick,
		Width:        100,
		Height:       30,
		AltScreen:    true,
	}
}

// NewConfig applies opts over the defaults.
func NewConfig(opts ...Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithResponder sets the Moneebot backend.
func WithResponder(r chat.Responder) Option {
	return func(c *Config) {
		if r != nil {
			c.Responder = r
		}
	}
}

// WithSaver persists the user after each change.
func WithSaver(s Saver) Option {
	return func(c *Config) {
		c.Saver = s
	}
}

// WithClock overrides the time source used for the current month and
// redemption timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		if now != nil {
			c.Now = now
		}
	}
}

// WithTiming sets the splash delay and the point counter tick interval.
func WithTiming(splash, tick time.Duration) Option {
	return func(c *Config) {
		c.SplashDelay = splash
		if tick > 0 {
			c.TickInterval = tick
		}
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithAltScreen toggles the alternate screen buffer.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
