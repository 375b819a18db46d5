package tct

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/ualgebra/binrel"
	"github.com/katalvlaran/ualgebra/lattice"
	"github.com/katalvlaran/ualgebra/partition"
)

// Sentinel errors for cover classification.
var (
	// ErrNilLattice is returned if a nil congruence lattice is passed.
	ErrNilLattice = errors.New("tct: congruence lattice is nil")

	// ErrNotCover indicates the supplied (alpha, beta) is not a covering
	// pair in the congruence lattice; caller misuse, a hard error.
	ErrNotCover = errors.New("tct: alpha is not a lower cover of beta")

	// ErrNoSubtrace indicates the candidate enumerator was exhausted
	// without finding a subtrace. For a genuine cover this cannot happen;
	// it is surfaced instead of panicking.
	ErrNoSubtrace = errors.New("tct: no subtrace found")

	// ErrStepLimit indicates the search stopped at its step limit before
	// reaching a verdict.
	ErrStepLimit = errors.New("tct: step limit exhausted")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tct: invalid option supplied")

	// ErrNotClassified indicates a query for results that have not been
	// computed yet (e.g. Centrality before ClassifyCover).
	ErrNotClassified = errors.New("tct: cover not classified yet")
)

// Type is a TCT type label. The numbering follows Hobby–McKenzie.
type Type int

const (
	// TypeUnset marks a subtrace whose classification has not run.
	TypeUnset Type = 0

	// TypeUnary is type 1: the trace behaves like a G-set (every
	// polynomial acts as a constant or a permutation-like unary map).
	TypeUnary Type = 1

	// TypeAffine is type 2: vector-space-like behavior.
	TypeAffine Type = 2

	// TypeBoolean is type 3: two-element Boolean algebra behavior.
	TypeBoolean Type = 3

	// TypeLattice is type 4: two-element lattice behavior.
	TypeLattice Type = 4

	// TypeSemilattice is type 5: two-element semilattice behavior.
	TypeSemilattice Type = 5
)

// String renders the conventional type name.
func (t Type) String() string {
	switch t {
	case TypeUnary:
		return "unary"
	case TypeAffine:
		return "affine"
	case TypeBoolean:
		return "boolean"
	case TypeLattice:
		return "lattice"
	case TypeSemilattice:
		return "semilattice"
	case TypeUnset:
		return "unset"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Subtrace is a minimal pair {a, b} witnessing the local structure of a
// cover, plus the classification artifacts attached as they are computed.
type Subtrace struct {
	a, b int
	typ  Type

	// pairUniverse holds the images of (a, b) under unary polynomials;
	// nil until the subtrace search computes it.
	pairUniverse [][2]int

	// matrixUniverse holds the tuples (p(a,a), p(a,b), p(b,a), p(b,b))
	// over binary polynomials p; nil until classification runs.
	matrixUniverse [][4]int
}

// Pair returns the witnessing pair, smaller element first.
func (s *Subtrace) Pair() (int, int) { return s.a, s.b }

// Type returns the TCT type tag (TypeUnset before classification).
func (s *Subtrace) Type() Type { return s.typ }

// SubtraceUniverse returns the pair universe (a copy; nil if absent).
func (s *Subtrace) SubtraceUniverse() [][2]int {
	if s.pairUniverse == nil {
		return nil
	}
	cp := make([][2]int, len(s.pairUniverse))
	copy(cp, s.pairUniverse)

	return cp
}

// MatrixUniverse returns the matrix universe (a copy; nil if absent).
func (s *Subtrace) MatrixUniverse() [][4]int {
	if s.matrixUniverse == nil {
		return nil
	}
	cp := make([][4]int, len(s.matrixUniverse))
	copy(cp, s.matrixUniverse)

	return cp
}

// CentralityData is an immutable snapshot of the term-condition analysis
// of a classified cover: the row and column tolerances induced by the
// matrix universe, the congruence the condition was read modulo, whether
// the cover is central (types 1/2), and the witnesses where centrality
// fails (types 3/4/5).
type CentralityData struct {
	left    *binrel.Relation
	right   *binrel.Relation
	delta   *partition.Partition
	central bool
	fails   [][4]int
}

// Left returns the tolerance generated by matrix rows (p(a,a), p(b,a)).
func (c *CentralityData) Left() *binrel.Relation { return c.left }

// Right returns the tolerance generated by matrix columns (p(a,b), p(b,b)).
func (c *CentralityData) Right() *binrel.Relation { return c.right }

// Delta returns the congruence the term condition was evaluated modulo.
func (c *CentralityData) Delta() *partition.Partition { return c.delta }

// Central reports whether every matrix satisfied the term condition.
func (c *CentralityData) Central() bool { return c.central }

// Failures returns the matrices violating the term condition (a copy).
func (c *CentralityData) Failures() [][4]int {
	cp := make([][4]int, len(c.fails))
	copy(cp, c.fails)

	return cp
}

// Option configures a TypeFinder via functional arguments.
type Option func(*finderOptions)

type finderOptions struct {
	// stepLimit bounds the number of candidate pairs the subtrace search
	// will test; 0 means unbounded.
	stepLimit int

	// centrality requests the term-condition analysis alongside the type.
	centrality bool

	// workers and logger pass through to closure calls on the powers.
	workers int
	logger  *zap.Logger

	// alpha optionally pins the lower congruence of the cover.
	alpha *lattice.Congruence

	err error
}

func gatherOptions(opts []Option) finderOptions {
	o := finderOptions{workers: 1, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithStepLimit bounds the subtrace search to n candidate tests; the
// search then stops with ErrStepLimit and can be resumed by calling
// again. n == 0 removes the bound, n < 0 is an option violation.
func WithStepLimit(n int) Option {
	return func(o *finderOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: step limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.stepLimit = n
	}
}

// WithCentrality retains CentralityData when classifying.
func WithCentrality() Option {
	return func(o *finderOptions) { o.centrality = true }
}

// WithWorkers fans the underlying closure passes out across w workers.
func WithWorkers(w int) Option {
	return func(o *finderOptions) {
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

// WithLogger attaches a structured logger for search tracing.
func WithLogger(l *zap.Logger) Option {
	return func(o *finderOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
