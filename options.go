package stablelist

import (
	"go.uber.org/zap"
)

// Option is a list configuration option.
type Option interface {
	apply(*listOptions)
}

type listOptions struct {
	logger   *zap.Logger
	capacity int
}

func newDefaultListOptions() listOptions {
	return listOptions{
		logger:   zap.NewNop(),
		capacity: 0,
	}
}

// WithLogger option configures the logger used for integrity diagnostics.
//
// The nil value configures a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return funcOption(func(opts *listOptions) {
		if logger == nil {
			logger = zap.NewNop()
		}
		opts.logger = logger
	})
}

// WithCapacity option preallocates room for capacity nodes.
//
// The zero value configures on-demand growth.
func WithCapacity(capacity int) Option {
	return funcOption(func(opts *listOptions) {
		if capacity < 0 {
			panic("stablelist: negative capacity")
		}
		opts.capacity = capacity
	})
}

type funcOption func(*listOptions)

func (o funcOption) apply(opts *listOptions) {
	o(opts)
}
