// Package lattice materializes, caches, and queries the lattice of
// subalgebras and the lattice of congruences of a finite algebra, built
// on the closure engine.
//
// What
//
//   - SubalgebraLattice: generated_by (memoized), zero/one, join (closure
//     of the union), meet (plain intersection — closed sets intersect to
//     closed sets), the full universe of subuniverses, join- and
//     meet-irreducibles, covers and filters.
//   - CongruenceLattice: the same contract over partitions, with
//     principal congruences Cg(a, b) as the generating family and
//     Partition.Meet/Join as the order structure.
//
// Why
//
//	Universe construction is a SECOND-level closure: close every
//	one-generated substructure, then repeatedly take pairwise joins of
//	known substructures until a fixed point. It is the most expensive
//	operation exposed, so it is guarded by an optional element-count cap
//	(WithUniverseCap) beyond which join generation stops and the lattice
//	reports itself capped; irreducibles and covers refuse to answer from
//	a capped universe rather than answer wrongly.
//
// Caching
//
//	Every lazy field (universe, irreducibles, one-generated map, bounds)
//	is a write-once slot populated by compute-if-absent. Racing callers
//	may recompute redundantly; the first published value wins and both
//	computations agree, so readers after publication need no locking.
//	Reset drops all caches explicitly; nothing else invalidates them.
package lattice
