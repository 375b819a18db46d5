package lattice

// Cover detection shared by both lattices, parametrized over the
// substructure type through small closures rather than inheritance.

// properBelow collects universe members strictly below (below=true) or
// strictly above (below=false) the target under the given order.
func properBelow[T any](univ []T, target T, eq func(a, b T) bool, le func(a, b T) bool, below bool) []T {
	var cand []T
	for _, u := range univ {
		if eq(u, target) {
			continue
		}
		if below && le(u, target) {
			cand = append(cand, u)
		}
		if !below && le(target, u) {
			cand = append(cand, u)
		}
	}

	return cand
}

// extremals keeps the candidates not dominated by another candidate:
// maximal elements when below=true (immediate lower covers), minimal
// elements when below=false (immediate upper covers).
func extremals[T any](cand []T, eq func(a, b T) bool, le func(a, b T) bool, below bool) []T {
	var out []T
	for _, c := range cand {
		keep := true
		for _, d := range cand {
			if eq(c, d) {
				continue
			}
			if below && le(c, d) {
				keep = false

				break
			}
			if !below && le(d, c) {
				keep = false

				break
			}
		}
		if keep {
			out = append(out, c)
		}
	}

	return out
}

// maximalProper composes the two passes for the Subalgebra order.
func maximalProper(univ []*Subalgebra, target *Subalgebra, le func(a, b *Subalgebra) bool, below bool) []*Subalgebra {
	eq := func(a, b *Subalgebra) bool { return a.Equal(b) }

	return extremals(properBelow(univ, target, eq, le, below), eq, le, below)
}

// maximalProperCon composes the two passes for the Congruence order.
func maximalProperCon(univ []*Congruence, target *Congruence, le func(a, b *Congruence) bool, below bool) []*Congruence {
	eq := func(a, b *Congruence) bool { return a.Equal(b) }

	return extremals(properBelow(univ, target, eq, le, below), eq, le, below)
}
