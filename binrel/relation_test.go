package binrel_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ualgebra/binrel"
	"github.com/katalvlaran/ualgebra/partition"
)

// TestMembership covers Add/Remove/Contains and range policy.
func TestMembership(t *testing.T) {
	r, err := binrel.New(70) // spans two words per row
	require.NoError(t, err)

	require.NoError(t, r.Add(3, 65))
	require.True(t, r.Contains(3, 65))
	require.False(t, r.Contains(65, 3))
	require.Equal(t, 1, r.Cardinality())

	require.NoError(t, r.Remove(3, 65))
	require.False(t, r.Contains(3, 65))

	if err = r.Add(0, 70); !errors.Is(err, binrel.ErrIndexRange) {
		t.Errorf("Add out of range: want ErrIndexRange, got %v", err)
	}
	require.False(t, r.Contains(-1, 0), "out-of-range membership is simply false")
}

// TestCompose checks R∘S on a small chain: (0,1)∘(1,2) yields (0,2).
func TestCompose(t *testing.T) {
	r, err := binrel.FromPairs(4, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, err)
	s, err := binrel.FromPairs(4, [][2]int{{1, 2}, {3, 0}})
	require.NoError(t, err)

	rs, err := r.Compose(s)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{0, 2}, {2, 0}}, rs.Pairs())
}

// TestPredicates walks the reflexive/symmetric/transitive checks.
func TestPredicates(t *testing.T) {
	// A tolerance that is not transitive: 0~1, 1~2 plus diagonal.
	tol, err := binrel.FromPairs(3, [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}})
	require.NoError(t, err)
	tol = tol.ReflexiveClosure()

	require.True(t, tol.IsReflexive())
	require.True(t, tol.IsSymmetric())
	require.False(t, tol.IsTransitive())
	require.True(t, tol.IsTolerance())
	require.False(t, tol.IsEquivalence())

	// Its transitive closure collapses everything into one class.
	eq := tol.TransitiveClosure()
	require.True(t, eq.IsEquivalence())
	p, err := eq.ToPartition()
	require.NoError(t, err)
	require.Equal(t, 1, p.NumberOfBlocks())
}

// TestToPartition_RejectsNonEquivalence verifies the structural check.
func TestToPartition_RejectsNonEquivalence(t *testing.T) {
	r, err := binrel.FromPairs(3, [][2]int{{0, 1}})
	require.NoError(t, err)
	if _, err = r.ToPartition(); !errors.Is(err, binrel.ErrNotEquivalence) {
		t.Errorf("want ErrNotEquivalence, got %v", err)
	}
}

// TestPartitionRoundTrip embeds a partition and recovers it.
func TestPartitionRoundTrip(t *testing.T) {
	p, err := partition.FromPairs(5, [][2]int{{0, 2}, {1, 4}})
	require.NoError(t, err)

	r, err := binrel.FromPartition(p)
	require.NoError(t, err)
	require.True(t, r.IsEquivalence())

	back, err := r.ToPartition()
	require.NoError(t, err)
	require.True(t, back.Equal(p))
}

// TestSetAlgebra covers Union/Intersect/Inverse and size checks.
func TestSetAlgebra(t *testing.T) {
	a, err := binrel.FromPairs(3, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	b, err := binrel.FromPairs(3, [][2]int{{1, 2}, {2, 0}})
	require.NoError(t, err)

	u, err := a.Union(b)
	require.NoError(t, err)
	require.Equal(t, 3, u.Cardinality())

	i, err := a.Intersect(b)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 2}}, i.Pairs())

	require.Equal(t, [][2]int{{1, 0}, {2, 1}}, a.Inverse().Pairs())

	other, err := binrel.New(4)
	require.NoError(t, err)
	if _, err = a.Union(other); !errors.Is(err, binrel.ErrSizeMismatch) {
		t.Errorf("Union size mismatch: want ErrSizeMismatch, got %v", err)
	}
	if _, err = a.Compose(other); !errors.Is(err, binrel.ErrSizeMismatch) {
		t.Errorf("Compose size mismatch: want ErrSizeMismatch, got %v", err)
	}
}
