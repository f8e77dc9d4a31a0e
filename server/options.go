package server

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Defaults applied by New.
const (
	DefaultMaxCells      = 1 << 20
	DefaultMaxExpansions = 0
)

// Options configures a Server.
type Options struct {
	// Logger receives one entry per request. Defaults to a discarding logger.
	Logger *logrus.Logger
	// MaxCells caps rows·cols of a requested grid.
	MaxCells int
	// MaxExpansions is forwarded to astar.WithMaxExpansions (0 = unlimited).
	MaxExpansions int
	// Registry holds the server metrics and backs GET /metrics.
	Registry *prometheus.Registry
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns Options with a silent logger, a fresh registry,
// DefaultMaxCells and no expansion cap.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Logger:        l,
		MaxCells:      DefaultMaxCells,
		MaxExpansions: DefaultMaxExpansions,
		Registry:      prometheus.NewRegistry(),
	}
}

// WithLogger sets the request logger. A nil logger is ignored.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxCells caps the grid size; n ≤ 0 keeps the default.
func WithMaxCells(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxCells = n
		}
	}
}

// WithMaxExpansions caps each search; n < 0 keeps the default.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxExpansions = n
		}
	}
}

// WithRegistry registers metrics on reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *Options) {
		if reg != nil {
			o.Registry = reg
		}
	}
}
