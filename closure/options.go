package closure

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for engine invocation.
var (
	// ErrNilAlgebra is returned if a nil algebra pointer is passed.
	ErrNilAlgebra = errors.New("closure: algebra is nil")

	// ErrInvalidGenerator is returned when a generator index or pair
	// element lies outside the algebra's universe.
	ErrInvalidGenerator = errors.New("closure: generator out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("closure: invalid option supplied")

	// ErrOperationRange is returned when an operation evaluates outside
	// the universe — a totality violation in a FuncOp evaluator.
	ErrOperationRange = errors.New("closure: operation result out of range")
)

// Option configures engine behavior via functional arguments. Invalid
// options are recorded internally and surfaced as ErrOptionViolation when
// the engine is invoked.
type Option func(*engineOptions)

// engineOptions holds the effective engine configuration.
type engineOptions struct {
	// limit is the size cap: 0 disables capping, k > 0 aborts once more
	// than k elements (or pairs) have been discovered.
	limit int

	// workers bounds the per-pass operation fan-out; 1 runs serially.
	workers int

	// logger traces pass boundaries and cap aborts; nop by default.
	logger *zap.Logger

	// err records the first invalid option.
	err error
}

// defaultOptions returns the engine defaults: no cap, serial evaluation,
// nop logger.
func defaultOptions() engineOptions {
	return engineOptions{limit: 0, workers: 1, logger: zap.NewNop()}
}

// gatherOptions applies user setters over the defaults, last writer wins.
func gatherOptions(opts []Option) engineOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLimit caps the number of discovered elements (Sg) or pairs (Cg).
//
//	k > 0: abort once the count exceeds k, reporting a capped result
//	k == 0: explicit no cap
//	k < 0: invalid option → ErrOptionViolation
func WithLimit(k int) Option {
	return func(o *engineOptions) {
		if k < 0 {
			o.err = fmt.Errorf("%w: limit cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.limit = k
	}
}

// WithWorkers fans each pass's operation evaluation out across w
// goroutines. Passes remain strictly sequential; only evaluation within a
// pass is partitioned.
//
//	w > 1: bounded pool of w workers
//	w == 1 or w == 0: serial evaluation
//	w < 0: invalid option → ErrOptionViolation
func WithWorkers(w int) Option {
	return func(o *engineOptions) {
		switch {
		case w < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, w)
		case w == 0:
			o.workers = 1
		default:
			o.workers = w
		}
	}
}

// WithLogger attaches a structured logger for pass-level tracing.
// A nil logger keeps the default nop.
func WithLogger(l *zap.Logger) Option {
	return func(o *engineOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
