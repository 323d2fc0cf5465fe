package execution

import "go.uber.org/zap"

type options struct {
	hooks []Hook
}

type Option func(o *options)

// WithHook registers h on the executor. Hooks run in registration order.
func WithHook(h Hook) Option {
	return func(o *options) {
		o.hooks = append(o.hooks, h)
	}
}

// WithLogger logs every executable at debug level, failures at error level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger == nil {
			return
		}

		o.hooks = append(o.hooks, LogHook(logger))
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
