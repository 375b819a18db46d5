package algebra

import (
	"errors"
	"fmt"
)

// Sentinel errors for operation construction and evaluation.
var (
	// ErrBadName indicates an empty operation name.
	ErrBadName = errors.New("algebra: operation name is empty")

	// ErrBadArity indicates a negative arity.
	ErrBadArity = errors.New("algebra: operation arity is negative")

	// ErrTableSize indicates a value table whose length is not size^arity.
	ErrTableSize = errors.New("algebra: operation table has wrong length")

	// ErrValueRange indicates a table entry or evaluator result outside 0..n-1.
	ErrValueRange = errors.New("algebra: operation value out of range")

	// ErrArgRange indicates an argument index outside 0..n-1.
	ErrArgRange = errors.New("algebra: operation argument out of range")

	// ErrArityMismatch indicates an argument tuple whose length differs from
	// the operation's declared arity. This is a programming-invariant
	// violation in callers, surfaced loudly rather than coerced.
	ErrArityMismatch = errors.New("algebra: argument tuple length differs from arity")
)

// Operation is a named, total, fixed-arity operation on indices 0..n-1.
//
// Eval must be pure and total for arguments in range; callers pass tuples
// of exactly Arity() indices. Nullary operations (constants) have arity 0
// and ignore their (empty) argument tuple.
type Operation interface {
	// Name identifies the operation within its algebra.
	Name() string

	// Arity is the number of arguments (≥ 0).
	Arity() int

	// Eval applies the operation to an argument tuple of length Arity().
	Eval(args []int) int
}

// TableOp is an Operation backed by an explicit row-major value table.
//
// For arity k over universe size n, the table has n^k entries and the
// tuple (a1, ..., ak) is looked up at offset a1*n^(k-1) + ... + ak.
type TableOp struct {
	name  string
	arity int
	size  int
	table []int
}

// NewTableOp validates and constructs a table-backed operation over a
// universe of the given size.
//
// Error conditions:
//   - ErrBadName      : empty name.
//   - ErrBadArity     : arity < 0.
//   - ErrTableSize    : len(table) != size^arity.
//   - ErrValueRange   : some table entry outside 0..size-1.
func NewTableOp(name string, arity, size int, table []int) (*TableOp, error) {
	if name == "" {
		return nil, ErrBadName
	}
	if arity < 0 {
		return nil, fmt.Errorf("%w: %q has arity %d", ErrBadArity, name, arity)
	}
	if size < 1 {
		return nil, ErrEmptyUniverse
	}
	want := intPow(size, arity)
	if want < 0 || len(table) != want {
		return nil, fmt.Errorf("%w: %q wants %d entries, got %d", ErrTableSize, name, want, len(table))
	}
	for i, v := range table {
		if v < 0 || v >= size {
			return nil, fmt.Errorf("%w: %q entry %d is %d", ErrValueRange, name, i, v)
		}
	}
	// Copy the table so the operation is immutable after construction.
	own := make([]int, len(table))
	copy(own, table)

	return &TableOp{name: name, arity: arity, size: size, table: own}, nil
}

// Name returns the operation name.
func (o *TableOp) Name() string { return o.name }

// Arity returns the declared arity.
func (o *TableOp) Arity() int { return o.arity }

// Eval looks the argument tuple up in the value table.
// Panics (via bounds check) only on caller invariant violations.
func (o *TableOp) Eval(args []int) int {
	// Row-major offset: args[0] is the most significant digit.
	idx := 0
	for _, a := range args {
		idx = idx*o.size + a
	}

	return o.table[idx]
}

// Table returns a copy of the underlying value table.
func (o *TableOp) Table() []int {
	cp := make([]int, len(o.table))
	copy(cp, o.table)

	return cp
}

// FuncOp is an Operation backed by an evaluator callback.
//
// The callback must be pure and total for in-range arguments; range
// violations in its results surface when an Algebra embedding validates
// the operation (see Algebra.checkOp) or at the call site consuming them.
type FuncOp struct {
	name  string
	arity int
	fn    func(args []int) int
}

// NewFuncOp constructs a callback-backed operation.
// Returns ErrBadName / ErrBadArity on nonsensical metadata and an error
// for a nil callback.
func NewFuncOp(name string, arity int, fn func(args []int) int) (*FuncOp, error) {
	if name == "" {
		return nil, ErrBadName
	}
	if arity < 0 {
		return nil, fmt.Errorf("%w: %q has arity %d", ErrBadArity, name, arity)
	}
	if fn == nil {
		return nil, fmt.Errorf("algebra: nil evaluator for operation %q", name)
	}

	return &FuncOp{name: name, arity: arity, fn: fn}, nil
}

// Name returns the operation name.
func (o *FuncOp) Name() string { return o.name }

// Arity returns the declared arity.
func (o *FuncOp) Arity() int { return o.arity }

// Eval invokes the evaluator callback.
func (o *FuncOp) Eval(args []int) int { return o.fn(args) }

// intPow computes base^exp for non-negative exp, returning -1 on overflow.
func intPow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		if base != 0 && result > int(^uint(0)>>1)/base {
			return -1
		}
		result *= base
	}

	return result
}
