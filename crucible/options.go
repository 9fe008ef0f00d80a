package crucible

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options configures a Search.
type Options struct {
	// Logger receives debug-level search statistics.
	Logger *log.Logger
	// KeepPath records predecessors so the route can be returned.
	KeepPath bool
}

// Option is a functional option for Search.
type Option func(*Options)

// WithLogger sends search statistics to l at debug level.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithPath makes Search return the route along with its cost.
func WithPath() Option {
	return func(o *Options) {
		o.KeepPath = true
	}
}

// DefaultOptions discards logs and keeps no route.
func DefaultOptions() Options {
	return Options{
		Logger: log.New(io.Discard),
	}
}
