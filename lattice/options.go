package lattice

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/ualgebra/closure"
)

// Sentinel errors shared by both lattices.
var (
	// ErrNilAlgebra is returned if a nil algebra pointer is passed.
	ErrNilAlgebra = errors.New("lattice: algebra is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lattice: invalid option supplied")

	// ErrForeignElement indicates a substructure over a different universe
	// than the lattice's algebra.
	ErrForeignElement = errors.New("lattice: substructure universe mismatch")

	// ErrUniverseCapped indicates a query that needs the COMPLETE universe
	// (irreducibles, covers) on a lattice whose universe build stopped at
	// its cap. Answering from a partial universe would be silently wrong,
	// so this is a hard error.
	ErrUniverseCapped = errors.New("lattice: universe construction was capped")

	// ErrNotJoinIrreducible indicates a lower-cover query on an element
	// without a unique lower cover.
	ErrNotJoinIrreducible = errors.New("lattice: element has no unique lower cover")

	// ErrIndexRange indicates an element index outside the universe.
	ErrIndexRange = errors.New("lattice: element index out of range")
)

// Option configures a lattice via functional arguments.
type Option func(*latticeOptions)

type latticeOptions struct {
	// universeCap bounds the number of substructures the universe build
	// will generate; 0 disables the cap. The documented trade-off: with
	// no cap on a large algebra the join closure may run unboundedly.
	universeCap int

	// closureLimit caps each individual closure call (sentinel semantics
	// per the closure package); 0 disables.
	closureLimit int

	// workers and logger pass through to the closure engine.
	workers int
	logger  *zap.Logger

	err error
}

func gatherOptions(opts []Option) latticeOptions {
	o := latticeOptions{workers: 1, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// engineOptions translates the lattice configuration into closure options.
func (o *latticeOptions) engineOptions() []closure.Option {
	out := []closure.Option{closure.WithWorkers(o.workers), closure.WithLogger(o.logger)}
	if o.closureLimit > 0 {
		out = append(out, closure.WithLimit(o.closureLimit))
	}

	return out
}

// WithUniverseCap stops universe generation once more than k substructures
// exist; the lattice then reports Capped. k == 0 disables the cap,
// k < 0 is an option violation.
func WithUniverseCap(k int) Option {
	return func(o *latticeOptions) {
		if k < 0 {
			o.err = fmt.Errorf("%w: universe cap cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.universeCap = k
	}
}

// WithClosureLimit caps every underlying closure call (see
// closure.WithLimit for the sentinel semantics).
func WithClosureLimit(k int) Option {
	return func(o *latticeOptions) {
		if k < 0 {
			o.err = fmt.Errorf("%w: closure limit cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.closureLimit = k
	}
}

// WithWorkers fans closure passes out across w workers (see
// closure.WithWorkers).
func WithWorkers(w int) Option {
	return func(o *latticeOptions) {
		if w < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, w)
			return
		}
		if w == 0 {
			w = 1
		}
		o.workers = w
	}
}

// WithLogger attaches a structured logger passed through to the engine.
func WithLogger(l *zap.Logger) Option {
	return func(o *latticeOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
