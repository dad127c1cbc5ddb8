package search

import (
	"context"
	"fmt"
	"log/slog"
)

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the resolved search configuration.
type Options struct {
	// Ctx is checked between fan-out branches; the recursion never blocks.
	Ctx context.Context

	// Workers > 1 fans the first activation decision out over that many
	// goroutines, each branch with its own memo table.
	Workers int

	// SymmetryReduction canonicalises two-actor memo keys. Single-actor
	// searches ignore it.
	SymmetryReduction bool

	// Logger receives debug records; discarded by default.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns sequential, unreduced options with a discard logger.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithContext sets the context checked between fan-out branches.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the fan-out width.
//
//	n > 1: parallel fan-out over n goroutines
//	n ∈ {0,1}: sequential
//	n < 0: ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		if n == 0 {
			n = 1
		}
		o.Workers = n
	}
}

// WithSymmetryReduction treats (a, b) and (b, a) actor states as one memo
// entry in two-actor searches.
func WithSymmetryReduction() Option {
	return func(o *Options) { o.SymmetryReduction = true }
}

// WithLogger sets the debug logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
