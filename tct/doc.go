// Package tct classifies covers in a congruence lattice by their tame
// congruence theory (TCT) type: given alpha ≺ beta, it finds a subtrace —
// a minimal pair witnessing the local structure of the cover — and
// assigns one of the five Hobby–McKenzie types (unary, affine, boolean,
// lattice, semilattice).
//
// What
//
//   - TypeFinder: a resumable search over candidate pairs (a, b) with
//     a beta b and not a alpha b, testing each for subtrace minimality
//     and classifying the first subtrace found.
//   - Subtrace: the witnessing pair plus its type tag, pair universe
//     (images under unary polynomials) and matrix universe (4-tuples
//     from binary polynomials).
//   - CentralityData: a snapshot of the term-condition analysis that
//     separates the central types 1/2 from the non-central 3/4/5, with
//     failure witnesses.
//
// How
//
//	Polynomial images are computed through the closure engine on direct
//	powers: the pair universe of (a, b) is the subalgebra of A² generated
//	by (a, b) and the diagonal; the matrix universe is the subalgebra of
//	A⁴ generated by (a,a,b,b), (a,b,a,b) and the diagonal. A pair is a
//	subtrace when it is minimal in the pair-universe quasiorder: every
//	beta-but-not-alpha pair reachable from it reaches back (modulo
//	alpha). Classification reads the matrices modulo alpha in a fixed
//	priority: essentially-unary first, then boolean, lattice,
//	semilattice, and affine as the default.
//
// This is a search, not a closed formula: the subtrace is found by an
// ordered enumerator with explicit cursor state, so repeated queries
// resume where they stopped and tests can bound the work via
// WithStepLimit.
package tct
