package hub

import "github.com/rs/zerolog"

type config struct {
	logger *zerolog.Logger
}

// Option customizes a hub at construction time.
type Option func(*config)

// WithLogger attaches a logger to the hub and to every signal it creates.
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
