package tct_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ualgebra/algebra"
	"github.com/katalvlaran/ualgebra/lattice"
	"github.com/katalvlaran/ualgebra/tct"
)

func conLattice(t *testing.T, a *algebra.Algebra) *lattice.CongruenceLattice {
	t.Helper()
	l, err := lattice.NewCongruenceLattice(a)
	require.NoError(t, err)

	return l
}

func classifyTop(t *testing.T, a *algebra.Algebra, opts ...tct.Option) (*tct.TypeFinder, *tct.Subtrace) {
	t.Helper()
	l := conLattice(t, a)
	tf, err := tct.NewTypeFinder(l, l.One(), opts...)
	require.NoError(t, err)
	st, err := tf.ClassifyCover()
	require.NoError(t, err)

	return tf, st
}

// TestClassify_Boolean: the unique cover of the two-element Boolean
// algebra carries boolean (type 3) local structure.
func TestClassify_Boolean(t *testing.T) {
	a, err := algebra.TwoElementBoolean()
	require.NoError(t, err)

	_, st := classifyTop(t, a)
	require.Equal(t, tct.TypeBoolean, st.Type())

	x, y := st.Pair()
	require.Equal(t, 0, x)
	require.Equal(t, 1, y)
	require.NotEmpty(t, st.SubtraceUniverse())
	require.NotEmpty(t, st.MatrixUniverse())
}

// TestClassify_Affine: Z3 is simple and abelian, so its single cover is
// affine (type 2).
func TestClassify_Affine(t *testing.T) {
	a, err := algebra.CyclicGroup(3)
	require.NoError(t, err)

	_, st := classifyTop(t, a)
	require.Equal(t, tct.TypeAffine, st.Type())
}

// TestClassify_Unary: with only a unary operation every polynomial is
// essentially unary, so the cover has type 1.
func TestClassify_Unary(t *testing.T) {
	a, err := algebra.FromTables("flip", 2, []algebra.OpSpec{
		{Name: "not", Arity: 1, Table: []int{1, 0}},
	})
	require.NoError(t, err)

	_, st := classifyTop(t, a)
	require.Equal(t, tct.TypeUnary, st.Type())
}

// TestClassify_Semilattice: meet alone, without join, gives type 5.
func TestClassify_Semilattice(t *testing.T) {
	a, err := algebra.FromTables("meet2", 2, []algebra.OpSpec{
		{Name: "meet", Arity: 2, Table: []int{0, 0, 0, 1}},
	})
	require.NoError(t, err)

	_, st := classifyTop(t, a)
	require.Equal(t, tct.TypeSemilattice, st.Type())
}

// TestClassify_Lattice: meet and join present but no polynomial swapping
// the trace endpoints gives type 4.
func TestClassify_Lattice(t *testing.T) {
	a, err := algebra.FromTables("lat2", 2, []algebra.OpSpec{
		{Name: "meet", Arity: 2, Table: []int{0, 0, 0, 1}},
		{Name: "join", Arity: 2, Table: []int{0, 1, 1, 1}},
	})
	require.NoError(t, err)

	_, st := classifyTop(t, a)
	require.Equal(t, tct.TypeLattice, st.Type())
}

// TestClassify_WithAlpha: Z6's top element has two lower covers, so the
// default constructor refuses it and an explicit alpha selects one.
func TestClassify_WithAlpha(t *testing.T) {
	a, err := algebra.CyclicGroup(6)
	require.NoError(t, err)
	l := conLattice(t, a)

	_, err = tct.NewTypeFinder(l, l.One())
	require.ErrorIs(t, err, tct.ErrNotCover)

	mod2, err := l.Cg(0, 2)
	require.NoError(t, err)
	tf, err := tct.NewTypeFinder(l, l.One(), tct.WithAlpha(mod2))
	require.NoError(t, err)

	st, err := tf.ClassifyCover()
	require.NoError(t, err)
	require.Equal(t, tct.TypeAffine, st.Type())
}

// TestNewTypeFinder_Validation covers the constructor error paths.
func TestNewTypeFinder_Validation(t *testing.T) {
	a, err := algebra.CyclicGroup(4)
	require.NoError(t, err)
	l := conLattice(t, a)

	_, err = tct.NewTypeFinder(nil, l.One())
	require.ErrorIs(t, err, tct.ErrNilLattice)

	// zero is below one but not an immediate cover in Z4.
	_, err = tct.NewTypeFinder(l, l.One(), tct.WithAlpha(l.Zero()))
	require.ErrorIs(t, err, tct.ErrNotCover)

	// zero has no lower covers at all.
	_, err = tct.NewTypeFinder(l, l.Zero())
	require.ErrorIs(t, err, tct.ErrNotCover)

	_, err = tct.NewTypeFinder(l, l.One(), tct.WithStepLimit(-1))
	require.ErrorIs(t, err, tct.ErrOptionViolation)
}

// TestNextPair_Enumerator: the candidate cursor walks the beta-minus-
// alpha pairs in lexicographic order, survives exhaustion and rewinds.
func TestNextPair_Enumerator(t *testing.T) {
	a, err := algebra.CyclicGroup(4)
	require.NoError(t, err)
	l := conLattice(t, a)

	tf, err := tct.NewTypeFinder(l, l.One())
	require.NoError(t, err)

	want := [][2]int{{0, 1}, {0, 3}, {1, 2}, {2, 3}}
	for _, w := range want {
		x, y, ok := tf.NextPairForSubtrace()
		require.True(t, ok)
		require.Equal(t, w[0], x)
		require.Equal(t, w[1], y)
	}
	_, _, ok := tf.NextPairForSubtrace()
	require.False(t, ok)
	_, _, ok = tf.NextPairForSubtrace()
	require.False(t, ok, "exhausted cursor must stay exhausted")

	tf.ResetSearch()
	x, y, ok := tf.NextPairForSubtrace()
	require.True(t, ok)
	require.Equal(t, 0, x)
	require.Equal(t, 1, y)
}

// skewChain is a simple three-element algebra whose first candidate pair
// (0, 1) is not a subtrace: its pair universe reaches pairs that cannot
// map back onto (0, 1). The genuine subtrace is (0, 2).
func skewChain(t *testing.T) *algebra.Algebra {
	t.Helper()
	a, err := algebra.FromTables("skew", 3, []algebra.OpSpec{
		{Name: "m", Arity: 2, Table: []int{0, 0, 2, 0, 1, 2, 2, 2, 2}},
		{Name: "v", Arity: 1, Table: []int{1, 1, 2}},
		{Name: "t", Arity: 1, Table: []int{2, 0, 2}},
	})
	require.NoError(t, err)

	return a
}

// TestSubtrace_Minimality: (0, 1) fails the minimality test while (0, 2)
// passes it, on the same cover.
func TestSubtrace_Minimality(t *testing.T) {
	l := conLattice(t, skewChain(t))
	tf, err := tct.NewTypeFinder(l, l.One())
	require.NoError(t, err)

	is, err := tf.IsSubtrace(0, 1)
	require.NoError(t, err)
	require.False(t, is)

	is, err = tf.IsSubtrace(0, 2)
	require.NoError(t, err)
	require.True(t, is)
}

// TestFindSubtrace_StepLimit: with a limit of one candidate per call the
// first call stops at the non-minimal pair and the second call resumes
// and lands on the subtrace.
func TestFindSubtrace_StepLimit(t *testing.T) {
	l := conLattice(t, skewChain(t))
	tf, err := tct.NewTypeFinder(l, l.One(), tct.WithStepLimit(1))
	require.NoError(t, err)

	_, err = tf.FindSubtrace()
	require.ErrorIs(t, err, tct.ErrStepLimit)

	st, err := tf.FindSubtrace()
	require.NoError(t, err)
	x, y := st.Pair()
	require.Equal(t, 0, x)
	require.Equal(t, 2, y)
}

// TestCentrality_Affine: abelian covers satisfy the term condition.
func TestCentrality_Affine(t *testing.T) {
	a, err := algebra.CyclicGroup(3)
	require.NoError(t, err)

	tf, _ := classifyTop(t, a, tct.WithCentrality())
	cd, err := tf.Centrality()
	require.NoError(t, err)
	require.True(t, cd.Central())
	require.Empty(t, cd.Failures())
	require.True(t, cd.Left().IsTolerance())
	require.True(t, cd.Right().IsTolerance())
}

// TestCentrality_BooleanFails: the meet matrix 0001 violates the term
// condition, so the boolean cover is not central.
func TestCentrality_BooleanFails(t *testing.T) {
	a, err := algebra.TwoElementBoolean()
	require.NoError(t, err)

	tf, _ := classifyTop(t, a, tct.WithCentrality())
	cd, err := tf.Centrality()
	require.NoError(t, err)
	require.False(t, cd.Central())
	require.NotEmpty(t, cd.Failures())
}

// TestCentrality_BeforeClassify: the snapshot only exists after a
// classification run that asked for it.
func TestCentrality_BeforeClassify(t *testing.T) {
	a, err := algebra.CyclicGroup(3)
	require.NoError(t, err)
	l := conLattice(t, a)

	tf, err := tct.NewTypeFinder(l, l.One())
	require.NoError(t, err)
	_, err = tf.Centrality()
	require.ErrorIs(t, err, tct.ErrNotClassified)

	_, err = tf.ClassifyCover()
	require.NoError(t, err)
	_, err = tf.Centrality()
	require.ErrorIs(t, err, tct.ErrNotClassified, "centrality must be requested up front")
}

// TestClassify_Idempotent: repeated calls hand back the cached subtrace.
func TestClassify_Idempotent(t *testing.T) {
	a, err := algebra.TwoElementBoolean()
	require.NoError(t, err)
	l := conLattice(t, a)

	tf, err := tct.NewTypeFinder(l, l.One())
	require.NoError(t, err)
	first, err := tf.ClassifyCover()
	require.NoError(t, err)
	second, err := tf.ClassifyCover()
	require.NoError(t, err)
	require.Same(t, first, second)
}

func TestType_String(t *testing.T) {
	require.Equal(t, "unary", tct.TypeUnary.String())
	require.Equal(t, "affine", tct.TypeAffine.String())
	require.Equal(t, "boolean", tct.TypeBoolean.String())
	require.Equal(t, "lattice", tct.TypeLattice.String())
	require.Equal(t, "semilattice", tct.TypeSemilattice.String())
	require.Equal(t, "unset", tct.TypeUnset.String())
}
