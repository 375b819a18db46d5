// Package algebra defines the finite-algebra boundary type consumed by the
// closure, lattice and tct packages: an ordered universe 0..n-1 together
// with a list of named finitary operations.
//
// What
//
//   - Operation: a named, fixed-arity, total map indices^arity → index,
//     backed either by an explicit value table (TableOp) or by an
//     evaluator callback (FuncOp).
//   - Algebra: universe size plus operation list, with name lookup and a
//     signature-compatibility check (Similar).
//   - Power: the k-th direct power A^k with coordinatewise operations and
//     mixed-radix tuple ranking, so polynomial-image computations reduce
//     to subalgebra closures in a product algebra.
//   - Ready-made algebras used throughout tests and the harness:
//     CyclicGroup, TwoElementBoolean.
//
// Why
//
//	Every engine package addresses elements by index and treats the
//	algebra as an opaque "evaluate operation k at tuple t" capability.
//	Keeping a single concrete boundary type here lets the engine, the
//	test suite, and the comparison harness share one representation.
//
// Determinism
//
//	Operations are evaluated purely; the universe is the ordered range
//	0..n-1, and Power ranks tuples in mixed-radix order, so every derived
//	structure enumerates elements in a reproducible order.
package algebra
