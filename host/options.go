package host

import (
	"log/slog"

	lookup "github.com/reglet-dev/reglet-lookup"
	"github.com/reglet-dev/reglet-lookup/config"
)

// Option defines a functional option for configuring the Runtime.
type Option func(*Runtime)

// WithConfig sets the configuration. Defaults to config.Default().
func WithConfig(cfg config.Config) Option {
	return func(r *Runtime) {
		r.cfg = cfg
	}
}

// WithLogger sets the logger. Without it the runtime logs to stderr at the configured level.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = l
	}
}

// WithMiddleware wraps every plugin call with mws.
func WithMiddleware(mws ...lookup.Middleware) Option {
	return func(r *Runtime) {
		r.middlewares = append(r.middlewares, mws...)
	}
}
