package algebra

import (
	"errors"
	"fmt"
)

// Sentinel errors for direct powers.
var (
	// ErrBadExponent indicates a power exponent below 1.
	ErrBadExponent = errors.New("algebra: power exponent must be at least 1")

	// ErrPowerTooLarge indicates n^k does not fit in an int.
	ErrPowerTooLarge = errors.New("algebra: power universe too large")
)

// powerOp lifts a base operation coordinatewise to A^k. Argument and
// result elements of the power are ranked tuples (see RankTuple).
type powerOp struct {
	base Operation
	size int // base universe size
	k    int // exponent
	// scratch-free: Eval allocates small fixed slices; the closure engine
	// dominates runtime, so per-call allocation here is acceptable.
}

func (p *powerOp) Name() string { return p.base.Name() }
func (p *powerOp) Arity() int   { return p.base.Arity() }

func (p *powerOp) Eval(args []int) int {
	arity := p.base.Arity()
	// Decode each ranked argument into its k coordinates.
	coords := make([][]int, arity)
	for i, a := range args {
		coords[i] = UnrankTuple(a, p.size, p.k)
	}
	// Apply the base operation in every coordinate.
	out := make([]int, p.k)
	point := make([]int, arity)
	for c := 0; c < p.k; c++ {
		for i := 0; i < arity; i++ {
			point[i] = coords[i][c]
		}
		out[c] = p.base.Eval(point)
	}

	return RankTuple(out, p.size)
}

// Power returns the k-th direct power A^k: universe size n^k, every basic
// operation applied coordinatewise. Elements of the power are tuples over
// A ranked in mixed-radix order (first coordinate most significant).
//
// Error conditions:
//   - ErrBadExponent   : k < 1.
//   - ErrPowerTooLarge : n^k overflows int.
func (a *Algebra) Power(k int) (*Algebra, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadExponent, k)
	}
	total := intPow(a.size, k)
	if total < 0 {
		return nil, fmt.Errorf("%w: %d^%d", ErrPowerTooLarge, a.size, k)
	}
	ops := make([]Operation, len(a.ops))
	for i, op := range a.ops {
		ops[i] = &powerOp{base: op, size: a.size, k: k}
	}

	return &Algebra{
		name:   fmt.Sprintf("%s^%d", a.name, k),
		size:   total,
		ops:    ops,
		byName: a.cloneNameIndex(),
	}, nil
}

// cloneNameIndex copies the name→position map for derived algebras.
func (a *Algebra) cloneNameIndex() map[string]int {
	cp := make(map[string]int, len(a.byName))
	for k, v := range a.byName {
		cp[k] = v
	}

	return cp
}

// RankTuple encodes a tuple over 0..size-1 as a single index in
// mixed-radix order: rank(t) = t[0]*size^(k-1) + ... + t[k-1].
func RankTuple(t []int, size int) int {
	r := 0
	for _, v := range t {
		r = r*size + v
	}

	return r
}

// UnrankTuple decodes a ranked index back into its k-coordinate tuple.
func UnrankTuple(r, size, k int) []int {
	t := make([]int, k)
	for i := k - 1; i >= 0; i-- {
		t[i] = r % size
		r /= size
	}

	return t
}
