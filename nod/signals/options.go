package signals

import "github.com/rs/zerolog"

type config struct {
	logger *zerolog.Logger
}

// Option customizes a signal at construction time.
type Option func(*config)

// WithLogger attaches a logger to the signal. Connects, disconnects, emits
// and closes are logged at debug level. Without it the signal stays silent.
func WithLogger(logger *zerolog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

func newConfig(opts []Option) *config {
	nop := zerolog.Nop()
	cfg := &config{logger: &nop}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
