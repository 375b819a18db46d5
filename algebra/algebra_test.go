package algebra_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ualgebra/algebra"
)

// TestNewTableOp_Errors verifies construction-time validation.
func TestNewTableOp_Errors(t *testing.T) {
	if _, err := algebra.NewTableOp("", 1, 2, []int{0, 1}); !errors.Is(err, algebra.ErrBadName) {
		t.Errorf("empty name: want ErrBadName, got %v", err)
	}
	if _, err := algebra.NewTableOp("f", -1, 2, nil); !errors.Is(err, algebra.ErrBadArity) {
		t.Errorf("negative arity: want ErrBadArity, got %v", err)
	}
	if _, err := algebra.NewTableOp("f", 2, 2, []int{0, 1}); !errors.Is(err, algebra.ErrTableSize) {
		t.Errorf("short table: want ErrTableSize, got %v", err)
	}
	if _, err := algebra.NewTableOp("f", 1, 2, []int{0, 7}); !errors.Is(err, algebra.ErrValueRange) {
		t.Errorf("out-of-range value: want ErrValueRange, got %v", err)
	}
}

// TestTableOp_Eval checks row-major lookup on a non-commutative table.
func TestTableOp_Eval(t *testing.T) {
	// f(i,j) = i over Z3: table rows are constant.
	op, err := algebra.NewTableOp("first", 2, 3, []int{0, 0, 0, 1, 1, 1, 2, 2, 2})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, i, op.Eval([]int{i, j}), "first(%d,%d)", i, j)
		}
	}
}

// TestFuncOp covers callback-backed operations and nullary constants.
func TestFuncOp(t *testing.T) {
	succ, err := algebra.NewFuncOp("succ", 1, func(args []int) int { return (args[0] + 1) % 5 })
	require.NoError(t, err)
	require.Equal(t, 0, succ.Eval([]int{4}))

	zero, err := algebra.NewFuncOp("zero", 0, func([]int) int { return 0 })
	require.NoError(t, err)
	require.Equal(t, 0, zero.Arity())
	require.Equal(t, 0, zero.Eval(nil))

	if _, err = algebra.NewFuncOp("nil", 1, nil); err == nil {
		t.Error("nil evaluator: want error, got nil")
	}
}

// TestNew_Errors verifies algebra-level validation.
func TestNew_Errors(t *testing.T) {
	if _, err := algebra.New("empty", 0); !errors.Is(err, algebra.ErrEmptyUniverse) {
		t.Errorf("empty universe: want ErrEmptyUniverse, got %v", err)
	}
	op, err := algebra.NewTableOp("f", 1, 2, []int{1, 0})
	require.NoError(t, err)
	if _, err = algebra.New("dup", 2, op, op); !errors.Is(err, algebra.ErrDuplicateOp) {
		t.Errorf("duplicate name: want ErrDuplicateOp, got %v", err)
	}
	if _, err = algebra.New("nil", 2, nil); !errors.Is(err, algebra.ErrNilOperation) {
		t.Errorf("nil operation: want ErrNilOperation, got %v", err)
	}
}

// TestCyclicGroup checks the Z3 addition table and metadata.
func TestCyclicGroup(t *testing.T) {
	z3, err := algebra.CyclicGroup(3)
	require.NoError(t, err)
	require.Equal(t, 3, z3.Size())
	require.Equal(t, 1, z3.NumOperations())

	add, ok := z3.OperationByName("+")
	require.True(t, ok)
	require.Equal(t, 2, add.Arity())
	require.Equal(t, 0, add.Eval([]int{1, 2}))
	require.Equal(t, 1, add.Eval([]int{2, 2}))
}

// TestSimilar checks signature compatibility.
func TestSimilar(t *testing.T) {
	z3, err := algebra.CyclicGroup(3)
	require.NoError(t, err)
	z5, err := algebra.CyclicGroup(5)
	require.NoError(t, err)
	two, err := algebra.TwoElementBoolean()
	require.NoError(t, err)

	require.True(t, z3.Similar(z5), "cyclic groups share a signature")
	require.False(t, z3.Similar(two))
	require.False(t, z3.Similar(nil))
}
