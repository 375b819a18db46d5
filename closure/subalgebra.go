package closure

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ualgebra/algebra"
)

// SetResult is the outcome of a subalgebra closure.
//
// When Capped is true the cap was exceeded and Elements carries the FULL
// parent universe as a sentinel: lattice code treats an over-cap
// subalgebra as equal to the whole algebra, so the partial discovery
// sequence would be useless and is deliberately not exposed.
type SetResult struct {
	elements []int
	member   []bool
	capped   bool
}

// Elements returns the closed set as a sorted index array (a copy).
func (r *SetResult) Elements() []int {
	cp := make([]int, len(r.elements))
	copy(cp, r.elements)

	return cp
}

// Size returns the cardinality of the closed set.
func (r *SetResult) Size() int { return len(r.elements) }

// Capped reports whether the size cap aborted the closure.
func (r *SetResult) Capped() bool { return r.capped }

// Contains reports membership of element i.
func (r *SetResult) Contains(i int) bool {
	return i >= 0 && i < len(r.member) && r.member[i]
}

// Key returns the normalized comparable form: the sorted element list as
// a comma-joined string.
func (r *SetResult) Key() string { return intsKey(r.elements) }

// GeneratedSubalgebra computes Sg(gens): the smallest subset of a's
// universe containing gens and closed under every operation.
//
// Algorithm: a growing discovered sequence plus a closed mark. Each pass
// evaluates every operation on exactly the argument tuples (drawn from
// the pass-start snapshot) that touch at least one element discovered
// since the previous pass. Passes repeat until one adds nothing, or the
// cap aborts with sentinel semantics (see SetResult).
//
// Error conditions:
//   - ErrNilAlgebra      : a is nil.
//   - ErrInvalidGenerator: a generator index outside 0..n-1.
//   - ErrOptionViolation : an invalid option value.
//   - ErrOperationRange  : an evaluator returned an out-of-universe index.
func GeneratedSubalgebra(a *algebra.Algebra, gens []int, opts ...Option) (*SetResult, error) {
	if a == nil {
		return nil, ErrNilAlgebra
	}
	o := gatherOptions(opts)
	if o.err != nil {
		return nil, o.err
	}

	n := a.Size()
	member := make([]bool, n)
	elements := make([]int, 0, len(gens))
	add := func(v int) {
		if !member[v] {
			member[v] = true
			elements = append(elements, v)
		}
	}
	for _, g := range gens {
		if g < 0 || g >= n {
			return nil, fmt.Errorf("%w: element %d in universe of size %d", ErrInvalidGenerator, g, n)
		}
		add(g)
	}
	// Nullary operations seed the closure regardless of generators.
	for _, op := range a.Operations() {
		if op.Arity() == 0 {
			v := op.Eval(nil)
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: %q() = %d", ErrOperationRange, op.Name(), v)
			}
			add(v)
		}
	}
	if overCap(len(elements), o.limit) {
		return cappedSet(n), nil
	}

	mark := 0
	pass := 0
	for mark < len(elements) {
		pass++
		snapshot := len(elements)
		o.logger.Debug("closure pass",
			zap.Int("pass", pass), zap.Int("known", snapshot), zap.Int("mark", mark))

		fresh, err := evalPass(a, elements[:snapshot], mark, o)
		if err != nil {
			return nil, err
		}
		for _, v := range fresh {
			if member[v] {
				continue
			}
			add(v)
			if overCap(len(elements), o.limit) {
				o.logger.Debug("closure capped", zap.Int("limit", o.limit))

				return cappedSet(n), nil
			}
		}
		mark = snapshot
	}

	sort.Ints(elements)

	return &SetResult{elements: elements, member: member, capped: false}, nil
}

// evalPass applies every positive-arity operation to the new-touching
// tuples over the snapshot, returning discovered values in deterministic
// per-operation order. With workers > 1 the operations are fanned out
// across a bounded pool; the merge back into the discovered set happens
// in the caller, after the barrier.
func evalPass(a *algebra.Algebra, snapshot []int, mark int, o engineOptions) ([]int, error) {
	ops := a.Operations()
	results := make([][]int, len(ops))

	evalOp := func(k int) error {
		op := ops[k]
		arity := op.Arity()
		if arity == 0 {
			return nil
		}
		args := make([]int, arity)
		seen := make(map[int]struct{})
		gen := newTupleGen(len(snapshot), arity, mark)
		for t, ok := gen.Next(); ok; t, ok = gen.Next() {
			for i, pos := range t {
				args[i] = snapshot[pos]
			}
			v := op.Eval(args)
			if v < 0 || v >= a.Size() {
				return fmt.Errorf("%w: %q%v = %d", ErrOperationRange, op.Name(), args, v)
			}
			if _, dup := seen[v]; !dup {
				seen[v] = struct{}{}
				results[k] = append(results[k], v)
			}
		}

		return nil
	}

	if o.workers > 1 {
		var g errgroup.Group
		g.SetLimit(o.workers)
		for k := range ops {
			k := k
			g.Go(func() error { return evalOp(k) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for k := range ops {
			if err := evalOp(k); err != nil {
				return nil, err
			}
		}
	}

	// Associative merge: per-operation buckets concatenated in operation
	// order, so serial and parallel runs discover identical sets.
	var merged []int
	for _, r := range results {
		merged = append(merged, r...)
	}

	return merged, nil
}

// overCap reports whether count exceeds a positive limit.
func overCap(count, limit int) bool { return limit > 0 && count > limit }

// cappedSet builds the whole-universe sentinel result.
func cappedSet(n int) *SetResult {
	elements := make([]int, n)
	member := make([]bool, n)
	for i := range elements {
		elements[i] = i
		member[i] = true
	}

	return &SetResult{elements: elements, member: member, capped: true}
}

// intsKey renders a sorted index array as a comma-joined string.
func intsKey(xs []int) string {
	out := make([]byte, 0, len(xs)*3)
	for i, x := range xs {
		if i > 0 {
			out = append(out, ',')
		}
		out = appendInt(out, x)
	}

	return string(out)
}

// appendInt is a minimal non-negative itoa used by key builders.
func appendInt(b []byte, x int) []byte {
	if x >= 10 {
		b = appendInt(b, x/10)
	}

	return append(b, byte('0'+x%10))
}
