// Package closure implements the fixed-point generation engine at the
// heart of the module: given an algebra and a seed — elements for
// subalgebra closure (Sg), pairs for congruence closure (Cg) — it
// computes the smallest operation-closed superset.
//
// What
//
//   - GeneratedSubalgebra: smallest subset of the universe containing the
//     generator elements and closed under every operation.
//   - GeneratedCongruence: smallest congruence relating the generator
//     pairs, folded incrementally into a partition via JoinBlocks.
//   - Both share the incremental pass structure: a growing discovered
//     sequence plus a closed mark; each pass evaluates every operation on
//     exactly the argument tuples that touch at least one element
//     discovered since the previous pass, enumerated by an incrementing
//     tuple generator that never materializes the cross product.
//
// Why
//
//	Lattice assembly calls the engine thousands of times; skipping tuples
//	entirely below the mark makes each call amortized near-linear in the
//	output size rather than quadratic in the number of passes.
//
// Termination and caps
//
//	A call terminates when a full pass adds nothing, or aborts promptly
//	once a caller-supplied size cap (WithLimit) is exceeded. A capped
//	result is a recoverable outcome, not an error: it carries the FULL
//	parent universe plus Capped=true, matching the lattice layer's
//	convention that an over-cap substructure counts as the whole algebra.
//
// Concurrency
//
//	Passes are strictly sequential — pass N+1 never starts before pass N's
//	discoveries are folded in. Within a pass, per-operation evaluation is
//	order-independent and may be fanned out across a bounded errgroup
//	pool (WithWorkers); results merge at a barrier between passes. There
//	is no timeout-based cancellation, only the size cap.
package closure
