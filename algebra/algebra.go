package algebra

import (
	"errors"
	"fmt"
)

// Sentinel errors for algebra construction.
var (
	// ErrEmptyUniverse indicates a universe size below 1.
	ErrEmptyUniverse = errors.New("algebra: universe size must be at least 1")

	// ErrDuplicateOp indicates two operations sharing one name.
	ErrDuplicateOp = errors.New("algebra: duplicate operation name")

	// ErrNilOperation indicates a nil entry in the operation list.
	ErrNilOperation = errors.New("algebra: nil operation")
)

// Algebra is a finite universal algebra: the ordered universe 0..n-1 plus
// a list of named finitary operations.
//
// An Algebra is immutable after construction; the engine packages treat it
// as the opaque capability "evaluate operation k at argument tuple t".
type Algebra struct {
	name string
	size int
	ops  []Operation
	byName map[string]int
}

// New constructs an Algebra over universe size n ≥ 1 with the given
// operations.
//
// Error conditions:
//   - ErrEmptyUniverse : n < 1.
//   - ErrNilOperation  : a nil operation in the list.
//   - ErrDuplicateOp   : two operations with the same name.
func New(name string, n int, ops ...Operation) (*Algebra, error) {
	if n < 1 {
		return nil, ErrEmptyUniverse
	}
	byName := make(map[string]int, len(ops))
	kept := make([]Operation, 0, len(ops))
	for i, op := range ops {
		if op == nil {
			return nil, fmt.Errorf("%w: position %d", ErrNilOperation, i)
		}
		if _, dup := byName[op.Name()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateOp, op.Name())
		}
		byName[op.Name()] = len(kept)
		kept = append(kept, op)
	}

	return &Algebra{name: name, size: n, ops: kept, byName: byName}, nil
}

// Name returns the algebra's (possibly empty) display name.
func (a *Algebra) Name() string { return a.name }

// Size returns the universe cardinality n; elements are 0..n-1.
func (a *Algebra) Size() int { return a.size }

// NumOperations returns the number of basic operations.
func (a *Algebra) NumOperations() int { return len(a.ops) }

// Operation returns the k-th basic operation (construction order).
func (a *Algebra) Operation(k int) Operation { return a.ops[k] }

// OperationByName looks an operation up by name.
func (a *Algebra) OperationByName(name string) (Operation, bool) {
	k, ok := a.byName[name]
	if !ok {
		return nil, false
	}

	return a.ops[k], true
}

// Operations returns the operation list in construction order.
// The returned slice is a copy; mutating it does not affect the algebra.
func (a *Algebra) Operations() []Operation {
	cp := make([]Operation, len(a.ops))
	copy(cp, a.ops)

	return cp
}

// MaxArity returns the largest arity among the basic operations (0 when
// the algebra has no operations).
func (a *Algebra) MaxArity() int {
	m := 0
	for _, op := range a.ops {
		if op.Arity() > m {
			m = op.Arity()
		}
	}

	return m
}

// Similar reports whether two algebras share a signature: the same number
// of operations with pairwise equal names and arities, in order.
// Universe sizes may differ; similarity is what makes homomorphism-style
// comparisons meaningful.
func (a *Algebra) Similar(b *Algebra) bool {
	if b == nil || len(a.ops) != len(b.ops) {
		return false
	}
	for i, op := range a.ops {
		if op.Name() != b.ops[i].Name() || op.Arity() != b.ops[i].Arity() {
			return false
		}
	}

	return true
}

// InUniverse reports whether i addresses an element of the universe.
func (a *Algebra) InUniverse(i int) bool { return i >= 0 && i < a.size }
