// Package partition implements equivalence relations over the universe
// 0..n-1 as representative arrays with union-find semantics, plus the
// lattice operations (meet, join, refinement order) the congruence layer
// is built on.
//
// What
//
//   - Partition: rep[i] is the minimum element of i's block; rep[i] == i
//     exactly for representatives, and rep is idempotent.
//   - JoinBlocks(r, s): the single mutating primitive — merge two blocks
//     given their current representatives. Everything else (FromPairs,
//     Join) is built on top of it.
//   - Meet: finest common refinement; Join: finest partition refined by
//     both operands; Le: the blockwise-containment order.
//
// Why
//
//	Congruence computations create thousands of transient partitions and
//	compare them constantly; the minimum-representative normal form makes
//	equality, hashing (Key) and refinement checks linear scans.
//
// Failure policy
//
//	Structural precondition violations — a non-representative argument to
//	JoinBlocks, mismatched universe sizes between operands — are reported
//	as errors, never silently coerced, because closure algorithms rely on
//	these preconditions for termination arguments.
//
// Complexity (n = universe size)
//
//   - IsRelated / Representative: O(1) after normalization.
//   - JoinBlocks: O(n) (eager renormalization keeps reads O(1)).
//   - Meet / Join / Le: O(n) to O(n α(n)).
package partition
