package closure

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ualgebra/algebra"
	"github.com/katalvlaran/ualgebra/partition"
)

// CongruenceResult is the outcome of a congruence closure.
//
// When Capped is true the cap was exceeded and Partition carries the one
// congruence (single block) as the whole-algebra sentinel, mirroring
// SetResult's convention.
type CongruenceResult struct {
	part   *partition.Partition
	capped bool
}

// Partition returns the computed congruence. Callers treat it as
// immutable; Clone before mutating.
func (r *CongruenceResult) Partition() *partition.Partition { return r.part }

// Capped reports whether the size cap aborted the closure.
func (r *CongruenceResult) Capped() bool { return r.capped }

// Key returns the congruence's normalized representative-array form.
func (r *CongruenceResult) Key() string { return r.part.Key() }

// GeneratedCongruence computes Cg(pairs): the smallest congruence of a
// relating every generator pair.
//
// The discovered sequence holds PAIRS: the diagonal (e, e) for every
// element — so argument tuples can hold coordinates constant — plus the
// generators, plus each image pair (f(x1..xk), f(y1..yk)) found by
// applying an operation coordinatewise to a tuple of known pairs. Every
// new pair is folded into the partition via JoinBlocks on the two
// representatives; transitive and symmetric consequences come from the
// partition itself. A pair already related in the partition is not
// re-added, which keeps the sequence from growing past n².
//
// The cap counts discovered off-diagonal pairs; exceeding it returns the
// one congruence with Capped=true.
//
// Error conditions mirror GeneratedSubalgebra.
func GeneratedCongruence(a *algebra.Algebra, pairs [][2]int, opts ...Option) (*CongruenceResult, error) {
	if a == nil {
		return nil, ErrNilAlgebra
	}
	o := gatherOptions(opts)
	if o.err != nil {
		return nil, o.err
	}

	n := a.Size()
	part, err := partition.Zero(n)
	if err != nil {
		return nil, err
	}

	// Discovered pair sequence, diagonal first.
	discovered := make([][2]int, 0, n+len(pairs))
	for e := 0; e < n; e++ {
		discovered = append(discovered, [2]int{e, e})
	}
	folded := 0 // off-diagonal pairs folded in, for the cap
	fold := func(x, y int) error {
		if part.IsRelated(x, y) {
			return nil
		}
		if err := part.JoinBlocks(part.Representative(x), part.Representative(y)); err != nil {
			return err
		}
		discovered = append(discovered, [2]int{x, y})
		folded++

		return nil
	}
	for _, p := range pairs {
		if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
			return nil, fmt.Errorf("%w: pair (%d, %d) in universe of size %d", ErrInvalidGenerator, p[0], p[1], n)
		}
		if err = fold(p[0], p[1]); err != nil {
			return nil, err
		}
		if overCap(folded, o.limit) {
			return cappedCongruence(n)
		}
	}

	mark := 0
	pass := 0
	for mark < len(discovered) {
		pass++
		snapshot := len(discovered)
		o.logger.Debug("congruence pass",
			zap.Int("pass", pass), zap.Int("known", snapshot), zap.Int("mark", mark))

		fresh, err := evalPairPass(a, discovered[:snapshot], mark, o)
		if err != nil {
			return nil, err
		}
		for _, pr := range fresh {
			if err = fold(pr[0], pr[1]); err != nil {
				return nil, err
			}
			if overCap(folded, o.limit) {
				o.logger.Debug("congruence capped", zap.Int("limit", o.limit))

				return cappedCongruence(n)
			}
		}
		mark = snapshot
	}

	return &CongruenceResult{part: part, capped: false}, nil
}

// evalPairPass applies every positive-arity operation coordinatewise to
// the new-touching tuples of known pairs, returning candidate image pairs.
// Parallel structure matches evalPass: per-operation fan-out, barrier
// before the fold.
func evalPairPass(a *algebra.Algebra, snapshot [][2]int, mark int, o engineOptions) ([][2]int, error) {
	ops := a.Operations()
	results := make([][][2]int, len(ops))

	evalOp := func(k int) error {
		op := ops[k]
		arity := op.Arity()
		if arity == 0 {
			return nil
		}
		xargs := make([]int, arity)
		yargs := make([]int, arity)
		gen := newTupleGen(len(snapshot), arity, mark)
		for t, ok := gen.Next(); ok; t, ok = gen.Next() {
			for i, pos := range t {
				xargs[i] = snapshot[pos][0]
				yargs[i] = snapshot[pos][1]
			}
			fx := op.Eval(xargs)
			fy := op.Eval(yargs)
			if fx < 0 || fx >= a.Size() || fy < 0 || fy >= a.Size() {
				return fmt.Errorf("%w: %q on pair tuple", ErrOperationRange, op.Name())
			}
			if fx != fy {
				results[k] = append(results[k], [2]int{fx, fy})
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

	var merged [][2]int
	for _, r := range results {
		merged = append(merged, r...)
	}

	return merged, nil
}

// cappedCongruence builds the one-congruence sentinel result.
func cappedCongruence(n int) (*CongruenceResult, error) {
	one, err := partition.One(n)
	if err != nil {
		return nil, err
	}

	return &CongruenceResult{part: one, capped: true}, nil
}
