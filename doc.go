// Package ualgebra is your in-memory workbench for finite universal
// algebras: build operation tables, close generating sets, assemble
// congruence and subalgebra lattices, and read off local structure.
//
// 🚀 What is ualgebra?
//
//	A deterministic, index-based library that brings together:
//		• Core primitives: finite algebras as flat operation tables
//		• Partitions: equivalence classes in minimal-representative form
//		• Binary relations: bitset rows, closures, tolerances
//		• Closure engine: generated subalgebras & congruences, size caps
//		• Lattices: universes, joins, meets, covers, irreducibles
//		• Tame congruence theory: subtraces and the five cover types
//
// ✨ Why choose ualgebra?
//
//   - Deterministic – same input, same element order, every run
//   - Bounded – caps turn runaway closures into explicit sentinels
//   - Concurrent where it pays – fanned closure passes, write-once caches
//   - Scriptable – the ualgebra CLI speaks YAML for cross-checking
//
// Everything is organized under flat per-concern packages:
//
//	algebra/   — Algebra, Operation, powers, ranking of tuples
//	partition/ — Partition with join/meet/refinement order
//	binrel/    — bitset binary relations & closure operators
//	closure/   — the generated-subalgebra / generated-congruence engine
//	lattice/   — SubalgebraLattice & CongruenceLattice assembly
//	tct/       — TypeFinder: subtraces, matrices, type labels 1–5
//	cmd/       — the ualgebra comparison harness
//
// Quick example:
//
//	z4, _ := algebra.CyclicGroup(4)
//	res, _ := closure.GeneratedCongruence(z4, [][2]int{{0, 2}})
//	fmt.Println(res.Partition()) // |0 2|1 3|
//
// Dive into any package's doc.go for the full contract.
package ualgebra
