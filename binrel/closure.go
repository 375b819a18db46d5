package binrel

import "github.com/katalvlaran/ualgebra/partition"

// IsReflexive reports whether (i, i) ∈ R for every i.
func (r *Relation) IsReflexive() bool {
	for i := 0; i < r.n; i++ {
		if !r.Contains(i, i) {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether (i, j) ∈ R implies (j, i) ∈ R.
func (r *Relation) IsSymmetric() bool {
	for i := 0; i < r.n; i++ {
		for j := i + 1; j < r.n; j++ {
			if r.Contains(i, j) != r.Contains(j, i) {
				return false
			}
		}
	}

	return true
}

// IsTransitive reports whether R∘R ⊆ R: for every (i, j) ∈ R, row j must
// be covered by row i.
func (r *Relation) IsTransitive() bool {
	for i := 0; i < r.n; i++ {
		ri := r.row(i)
		for j := 0; j < r.n; j++ {
			if !r.Contains(i, j) {
				continue
			}
			rj := r.row(j)
			for w := range ri {
				if rj[w]&^ri[w] != 0 {
					return false
				}
			}
		}
	}

	return true
}

// IsEquivalence reports reflexivity ∧ symmetry ∧ transitivity.
func (r *Relation) IsEquivalence() bool {
	return r.IsReflexive() && r.IsSymmetric() && r.IsTransitive()
}

// IsTolerance reports reflexivity ∧ symmetry. Tolerances are the central
// relations of tame congruence theory; transitivity is not required.
func (r *Relation) IsTolerance() bool {
	return r.IsReflexive() && r.IsSymmetric()
}

// ReflexiveClosure returns R ∪ {(i, i)}.
func (r *Relation) ReflexiveClosure() *Relation {
	out := r.Clone()
	for i := 0; i < r.n; i++ {
		out.set(i, i)
	}

	return out
}

// SymmetricClosure returns R ∪ R⁻¹.
func (r *Relation) SymmetricClosure() *Relation {
	out := r.Clone()
	for i := 0; i < r.n; i++ {
		for j := 0; j < r.n; j++ {
			if r.Contains(i, j) {
				out.set(j, i)
			}
		}
	}

	return out
}

// TransitiveClosure returns the smallest transitive superset, by row-OR
// propagation (bitset Floyd–Warshall: pivot rows OR-folded into reaching
// rows).
func (r *Relation) TransitiveClosure() *Relation {
	out := r.Clone()
	for k := 0; k < r.n; k++ {
		rowK := out.row(k)
		for i := 0; i < r.n; i++ {
			if !out.Contains(i, k) {
				continue
			}
			rowI := out.row(i)
			for w := range rowI {
				rowI[w] |= rowK[w]
			}
		}
	}

	return out
}

// ToPartition converts an equivalence relation into a partition.
// Returns ErrNotEquivalence when R lacks any of the three properties.
func (r *Relation) ToPartition() (*partition.Partition, error) {
	if !r.IsEquivalence() {
		return nil, ErrNotEquivalence
	}
	p, err := partition.Zero(r.n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r.n; i++ {
		for j := i + 1; j < r.n; j++ {
			if r.Contains(i, j) {
				if err = p.Unite(i, j); err != nil {
					return nil, err
				}
			}
		}
	}

	return p, nil
}
