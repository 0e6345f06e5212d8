package chat

import loggerpkg "github.com/minhyannv/jobsync-ai/pkg/logger"

// Option configures optional runtime dependencies for Assistant.
type Option func(*assistantDeps)

type assistantDeps struct {
	logger  loggerpkg.Logger
	verbose bool
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *assistantDeps) {
		d.logger = l
	}
}

// WithVerbose enables per-turn debug logging.
func WithVerbose(v bool) Option {
	return func(d *assistantDeps) {
		d.verbose = v
	}
}
