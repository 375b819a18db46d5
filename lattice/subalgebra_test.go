package lattice_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ualgebra/algebra"
	"github.com/katalvlaran/ualgebra/lattice"
)

// pentagon builds the five-element lattice N5 as an algebra with meet and
// join tables. Order: 0 (bottom) < 1 < 2 < 4 (top), 0 < 3 < 4, with 3
// incomparable to 1 and 2.
func pentagon(t *testing.T) *algebra.Algebra {
	t.Helper()
	// meet(i,j) and join(i,j) computed from the N5 order above.
	meet := []int{
		0, 0, 0, 0, 0,
		0, 1, 1, 0, 1,
		0, 1, 2, 0, 2,
		0, 0, 0, 3, 3,
		0, 1, 2, 3, 4,
	}
	join := []int{
		0, 1, 2, 3, 4,
		1, 1, 2, 4, 4,
		2, 2, 2, 4, 4,
		3, 4, 4, 3, 4,
		4, 4, 4, 4, 4,
	}
	a, err := algebra.FromTables("N5", 5, []algebra.OpSpec{
		{Name: "meet", Arity: 2, Table: meet},
		{Name: "join", Arity: 2, Table: join},
	})
	require.NoError(t, err)

	return a
}

// TestGeneratedBy_Pentagon: {bottom, top} is already closed under meet
// and join.
func TestGeneratedBy_Pentagon(t *testing.T) {
	l, err := lattice.NewSubalgebraLattice(pentagon(t))
	require.NoError(t, err)

	s, err := l.GeneratedBy([]int{0, 4})
	require.NoError(t, err)
	require.Equal(t, []int{0, 4}, s.Elements())
	require.False(t, s.Capped())
}

// TestGeneratedBy_Memoized: permuted and duplicated seeds hit one cache
// entry (pointer-identical results).
func TestGeneratedBy_Memoized(t *testing.T) {
	l, err := lattice.NewSubalgebraLattice(pentagon(t))
	require.NoError(t, err)

	first, err := l.GeneratedBy([]int{4, 0})
	require.NoError(t, err)
	second, err := l.GeneratedBy([]int{0, 4, 0})
	require.NoError(t, err)
	require.Same(t, first, second)
}

// TestZeroOneJoinMeet covers the bounds and binary operations.
func TestZeroOneJoinMeet(t *testing.T) {
	l, err := lattice.NewSubalgebraLattice(pentagon(t))
	require.NoError(t, err)

	zero, err := l.Zero()
	require.NoError(t, err)
	require.Equal(t, 0, zero.Size(), "no constants: empty least subuniverse")
	require.Equal(t, 5, l.One().Size())

	a, err := l.GeneratedBy([]int{1})
	require.NoError(t, err)
	b, err := l.GeneratedBy([]int{3})
	require.NoError(t, err)

	j, err := l.Join(a, b)
	require.NoError(t, err)
	// 1 ∨ 3 = 4 and 1 ∧ 3 = 0 in N5, so the join closure picks up both bounds.
	require.Equal(t, []int{0, 1, 3, 4}, j.Elements())

	m, err := l.Meet(j, l.One())
	require.NoError(t, err)
	require.True(t, m.Equal(j))

	le, err := l.Leq(a, j)
	require.NoError(t, err)
	require.True(t, le)
	ge, err := l.Leq(j, a)
	require.NoError(t, err)
	require.False(t, ge)
}

// TestUniverse_Pentagon: the subuniverse family of N5 closes under joins
// and contains every singleton (lattice operations are idempotent).
func TestUniverse_Pentagon(t *testing.T) {
	l, err := lattice.NewSubalgebraLattice(pentagon(t))
	require.NoError(t, err)

	univ, err := l.Universe()
	require.NoError(t, err)
	capped, err := l.UniverseCapped()
	require.NoError(t, err)
	require.False(t, capped)

	keys := make(map[string]bool, len(univ))
	for _, s := range univ {
		keys[s.Key()] = true
	}
	// Every singleton is closed; zero and one are present.
	for _, want := range []string{"", "0", "1", "2", "3", "4", "0,1,2,3,4"} {
		require.True(t, keys[want], "universe missing %q", want)
	}
	// Universe members are pairwise distinct and closed under Join.
	for _, a := range univ {
		for _, b := range univ {
			j, jerr := l.Join(a, b)
			require.NoError(t, jerr)
			require.True(t, keys[j.Key()], "join %q escaped the universe", j.Key())
		}
	}
}

// TestUniverseCap: a tiny cap stops generation and irreducible queries
// refuse to answer.
func TestUniverseCap(t *testing.T) {
	l, err := lattice.NewSubalgebraLattice(pentagon(t), lattice.WithUniverseCap(2))
	require.NoError(t, err)

	univ, err := l.Universe()
	require.NoError(t, err)
	require.NotEmpty(t, univ)
	capped, err := l.UniverseCapped()
	require.NoError(t, err)
	require.True(t, capped)

	if _, err = l.JoinIrreducibles(); !errors.Is(err, lattice.ErrUniverseCapped) {
		t.Errorf("capped universe: want ErrUniverseCapped, got %v", err)
	}
}

// TestJoinIrreducibles_Pentagon: in N5's subuniverse lattice the
// singletons {1}, {2}, {3} sit directly above the empty subuniverse, so
// they are join-irreducible; checks they are all reported.
func TestJoinIrreducibles_Pentagon(t *testing.T) {
	l, err := lattice.NewSubalgebraLattice(pentagon(t))
	require.NoError(t, err)

	irr, err := l.JoinIrreducibles()
	require.NoError(t, err)
	got := make(map[string]bool)
	for _, s := range irr {
		got[s.Key()] = true
	}
	for _, want := range []string{"1", "2", "3"} {
		require.True(t, got[want], "singleton %q should be join-irreducible", want)
	}
}

// TestFilter returns exactly the universe members above the argument.
func TestFilter(t *testing.T) {
	l, err := lattice.NewSubalgebraLattice(pentagon(t))
	require.NoError(t, err)

	s, err := l.GeneratedBy([]int{1})
	require.NoError(t, err)
	up, err := l.Filter(s)
	require.NoError(t, err)
	for _, u := range up {
		require.True(t, u.Contains(1), "filter member %q misses the base element", u.Key())
	}
}

// TestTrivialAlgebra: a one-element universe degenerates to a one-element
// lattice with zero == one and no irreducibles.
func TestTrivialAlgebra(t *testing.T) {
	a, err := algebra.New("trivial", 1)
	require.NoError(t, err)
	l, err := lattice.NewSubalgebraLattice(a)
	require.NoError(t, err)

	univ, err := l.Universe()
	require.NoError(t, err)
	require.Len(t, univ, 2) // empty set and the whole singleton universe

	irr, err := l.JoinIrreducibles()
	require.NoError(t, err)
	require.Empty(t, irr)
}

// TestForeignElement: substructures from another universe are rejected.
func TestForeignElement(t *testing.T) {
	l5, err := lattice.NewSubalgebraLattice(pentagon(t))
	require.NoError(t, err)
	z3, err := algebra.CyclicGroup(3)
	require.NoError(t, err)
	l3, err := lattice.NewSubalgebraLattice(z3)
	require.NoError(t, err)

	foreign, err := l3.GeneratedBy([]int{1})
	require.NoError(t, err)
	if _, err = l5.Filter(foreign); !errors.Is(err, lattice.ErrForeignElement) {
		t.Errorf("want ErrForeignElement, got %v", err)
	}
}

// TestOptionViolation surfaces bad options at construction.
func TestOptionViolation(t *testing.T) {
	if _, err := lattice.NewSubalgebraLattice(pentagon(t), lattice.WithUniverseCap(-1)); !errors.Is(err, lattice.ErrOptionViolation) {
		t.Errorf("want ErrOptionViolation, got %v", err)
	}
	if _, err := lattice.NewSubalgebraLattice(nil); !errors.Is(err, lattice.ErrNilAlgebra) {
		t.Errorf("want ErrNilAlgebra, got %v", err)
	}
}
