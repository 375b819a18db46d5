package tct

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/ualgebra/algebra"
	"github.com/katalvlaran/ualgebra/binrel"
	"github.com/katalvlaran/ualgebra/closure"
)

// ClassifyCover finds a subtrace for the cover (searching first if
// needed), computes its matrix universe and assigns the TCT type. The
// returned Subtrace carries both universes; repeated calls return the
// cached result.
func (tf *TypeFinder) ClassifyCover() (*Subtrace, error) {
	st, err := tf.FindSubtrace()
	if err != nil {
		return nil, err
	}
	if st.typ != TypeUnset {
		return st, nil
	}

	if st.matrixUniverse == nil {
		mu, merr := tf.matrixUniverse(st.a, st.b)
		if merr != nil {
			return nil, merr
		}
		st.matrixUniverse = mu
	}

	st.typ = tf.typeOf(st)
	tf.opts.logger.Info("cover classified",
		zap.Int("a", st.a), zap.Int("b", st.b), zap.Stringer("type", st.typ))

	if tf.opts.centrality {
		tf.centrality = tf.termCondition(st)
	}

	return st, nil
}

// Centrality returns the term-condition snapshot. Requires that
// ClassifyCover ran with WithCentrality set.
func (tf *TypeFinder) Centrality() (*CentralityData, error) {
	if tf.centrality == nil {
		return nil, ErrNotClassified
	}

	return tf.centrality, nil
}

// typeOf applies the fixed classification order: unary, then the
// two-element operation tests (boolean, lattice, semilattice), with
// affine as the remaining case.
func (tf *TypeFinder) typeOf(st *Subtrace) Type {
	if tf.allDegenerate(st.matrixUniverse) {
		return TypeUnary
	}

	hasMeet, hasJoin := tf.scanTables(st)
	switch {
	case hasMeet && hasJoin:
		if tf.hasComplement(st) {
			return TypeBoolean
		}

		return TypeLattice
	case hasMeet || hasJoin:
		return TypeSemilattice
	}

	return TypeAffine
}

// allDegenerate reports whether every matrix collapses modulo alpha to
// equal rows or equal columns, i.e. no polynomial genuinely depends on
// both variables on the trace.
func (tf *TypeFinder) allDegenerate(matrices [][4]int) bool {
	for _, m := range matrices {
		rows := tf.alpha.IsRelated(m[0], m[2]) && tf.alpha.IsRelated(m[1], m[3])
		cols := tf.alpha.IsRelated(m[0], m[1]) && tf.alpha.IsRelated(m[2], m[3])
		if !rows && !cols {
			return false
		}
	}

	return true
}

// scanTables looks through the matrix universe for polynomials acting as
// meet or join on {a, b} modulo alpha. A matrix (p(a,a), p(a,b), p(b,a),
// p(b,b)) whose entries all fall into the alpha classes of a or b reads
// as a two-variable truth table over {0, 1}; tables 0001 and 0111 are
// the semilattice operations.
func (tf *TypeFinder) scanTables(st *Subtrace) (hasMeet, hasJoin bool) {
	for _, m := range st.matrixUniverse {
		bits, ok := tf.tableBits(m, st.a, st.b)
		if !ok {
			continue
		}
		switch bits {
		case 0b0001:
			hasMeet = true
		case 0b0111:
			hasJoin = true
		}
		if hasMeet && hasJoin {
			return
		}
	}

	return
}

// tableBits packs a matrix into a 4-bit truth table, entry m[i] mapped
// to 0 or 1 by its alpha class. Matrices leaving the two classes do not
// restrict to {a, b} and are skipped.
func (tf *TypeFinder) tableBits(m [4]int, a, b int) (uint8, bool) {
	var bits uint8
	for i, e := range m {
		switch {
		case tf.alpha.IsRelated(e, a):
			// bit stays 0
		case tf.alpha.IsRelated(e, b):
			bits |= 1 << (3 - i)
		default:
			return 0, false
		}
	}

	return bits, true
}

// hasComplement reports whether some unary polynomial swaps a and b
// modulo alpha, i.e. the pair universe contains (b, a).
func (tf *TypeFinder) hasComplement(st *Subtrace) bool {
	for _, p := range st.pairUniverse {
		if tf.alpha.IsRelated(p[0], st.b) && tf.alpha.IsRelated(p[1], st.a) {
			return true
		}
	}

	return false
}

// termCondition evaluates the alpha-beta term condition over the matrix
// universe and snapshots the induced row and column tolerances. A cover
// whose matrices all satisfy the condition is central (types 1 and 2).
func (tf *TypeFinder) termCondition(st *Subtrace) *CentralityData {
	n := tf.alg.Size()
	left, _ := binrel.New(n)
	right, _ := binrel.New(n)

	var fails [][4]int
	for _, m := range st.matrixUniverse {
		addPair(left, m[0], m[2])
		addPair(right, m[1], m[3])

		rowsTop := tf.alpha.IsRelated(m[0], m[1])
		rowsBot := tf.alpha.IsRelated(m[2], m[3])
		colsL := tf.alpha.IsRelated(m[0], m[2])
		colsR := tf.alpha.IsRelated(m[1], m[3])
		if rowsTop != rowsBot || colsL != colsR {
			fails = append(fails, m)
		}
	}

	return &CentralityData{
		left:    left.ReflexiveClosure().SymmetricClosure(),
		right:   right.ReflexiveClosure().SymmetricClosure(),
		delta:   tf.alpha.Clone(),
		central: len(fails) == 0,
		fails:   fails,
	}
}

func addPair(r *binrel.Relation, i, j int) {
	// indices come from closure output, always in range
	_ = r.Add(i, j)
}

// matrixUniverse computes the tuples (p(a,a), p(a,b), p(b,a), p(b,b))
// over all binary polynomials p: the subalgebra of A⁴ generated by
// (a,a,b,b), (a,b,a,b) and the diagonal.
func (tf *TypeFinder) matrixUniverse(a, b int) ([][4]int, error) {
	if tf.fourth == nil {
		p4, err := tf.alg.Power(4)
		if err != nil {
			return nil, err
		}
		tf.fourth = p4
	}
	n := tf.alg.Size()
	gens := make([]int, 0, n+2)
	gens = append(gens,
		algebra.RankTuple([]int{a, a, b, b}, n),
		algebra.RankTuple([]int{a, b, a, b}, n))
	for c := 0; c < n; c++ {
		gens = append(gens, algebra.RankTuple([]int{c, c, c, c}, n))
	}
	res, err := closure.GeneratedSubalgebra(tf.fourth, gens,
		closure.WithWorkers(tf.opts.workers), closure.WithLogger(tf.opts.logger))
	if err != nil {
		return nil, err
	}
	out := make([][4]int, 0, res.Size())
	for _, e := range res.Elements() {
		t := algebra.UnrankTuple(e, n, 4)
		out = append(out, [4]int{t[0], t[1], t[2], t[3]})
	}

	return out, nil
}
