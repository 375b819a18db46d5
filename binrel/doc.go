// Package binrel implements binary relations over the universe 0..n-1 as
// word-packed bit matrices, with the composition and closure predicates
// the tame-congruence layer needs for tolerance analysis.
//
// What
//
//   - Relation: a set of ordered pairs over a fixed universe, with O(1)
//     membership and word-parallel row operations.
//   - Set algebra: Union, Intersect, Inverse, Compose (R∘S).
//   - Structural predicates: IsReflexive, IsSymmetric, IsTransitive,
//     IsEquivalence, IsTolerance (reflexive ∧ symmetric).
//   - Closures: ReflexiveClosure, SymmetricClosure, TransitiveClosure.
//   - Partition bridges: FromPartition, ToPartition.
//
// Why
//
//	Tolerances — reflexive, symmetric, not necessarily transitive
//	relations — are the central objects of tame congruence theory; they
//	fall outside the partition package's equivalence-only model.
//
// Complexity (n = universe size, w = ⌈n/64⌉)
//
//   - Contains/Add/Remove: O(1).
//   - Union/Intersect/predicates: O(n·w).
//   - Compose/TransitiveClosure: O(n²·w).
package binrel
