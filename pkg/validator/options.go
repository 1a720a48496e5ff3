package validator

import (
	"context"
	"log/slog"
	"runtime"
)

// Option configures a single validation run.
type Option func(*options)

type options struct {
	ctx       context.Context
	messages  MessageFunc
	logger    *slog.Logger
	threshold int
	workers   int
}

func newOptions(opts []Option) *options {
	o := &options{
		ctx:      context.Background(),
		messages: DefaultMessage,
		logger:   slog.New(slog.DiscardHandler),
		workers:  runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithMessages replaces the default message strategy for the run.
// Messages set on individual rules still take precedence.
func WithMessages(fn MessageFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.messages = fn
		}
	}
}

// WithLogger sets the logger used to report failed runs at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithContext sets the context passed to the logger and to parallel workers.
// Validation itself is never cancelled.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithParallelism validates slices and maps with at least threshold elements
// concurrently. Zero or negative disables it.
func WithParallelism(threshold int) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}

// WithWorkers caps the number of goroutines used by parallel validation.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

func (o *options) parallel(n int) bool {
	return o.threshold > 0 && n >= o.threshold && o.workers > 1
}

// inherit returns an option that reproduces o in a nested run.
func (o *options) inherit() Option {
	parent := *o
	return func(dst *options) {
		*dst = parent
	}
}
