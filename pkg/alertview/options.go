package alertview

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/alertkit/pkg/alertmetrics"
)

const (
	DefaultAutoCloseDelay = 3 * time.Second
	DefaultFadeDelay      = 250 * time.Millisecond
)

type config struct {
	group          string
	fade           bool
	autoCloseDelay time.Duration
	fadeDelay      time.Duration
	navigator      Navigator
	scheduler      Scheduler
	onChange       func([]Item)
	logger         *slog.Logger
	collector      alertmetrics.Collector
}

// Option configures a View.
type Option func(*config)

// WithGroup selects the group the view listens to.
func WithGroup(id string) Option {
	return func(c *config) {
		if id != "" {
			c.group = id
		}
	}
}

// WithFade toggles the two-phase fade-out on dismissal. Enabled by default.
func WithFade(enabled bool) Option {
	return func(c *config) { c.fade = enabled }
}

// WithAutoCloseDelay sets how long auto-closing alerts stay visible.
// Non-positive values are ignored.
func WithAutoCloseDelay(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.autoCloseDelay = d
		}
	}
}

// WithFadeDelay sets how long a dismissed alert fades before removal.
func WithFadeDelay(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.fadeDelay = d
		}
	}
}

// WithNavigator clears the group on every navigation. Without a navigator the
// view simply never auto-clears.
func WithNavigator(n Navigator) Option {
	return func(c *config) { c.navigator = n }
}

// WithScheduler replaces the timer source. Nil is ignored.
func WithScheduler(s Scheduler) Option {
	return func(c *config) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithOnChange registers fn to receive a snapshot after every change.
// Calls never overlap, and a snapshot older than one already delivered is
// skipped, so the last call always carries the current list.
// fn runs outside the view's lock.
func WithOnChange(fn func([]Item)) Option {
	return func(c *config) { c.onChange = fn }
}

// WithLogger sets the view logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithCollector(m alertmetrics.Collector) Option {
	return func(c *config) {
		if m != nil {
			c.collector = m
		}
	}
}
