package binrel

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/ualgebra/partition"
)

// Sentinel errors for relation operations.
var (
	// ErrBadSize indicates a universe size below 1.
	ErrBadSize = errors.New("binrel: universe size must be at least 1")

	// ErrIndexRange indicates an element index outside 0..n-1.
	ErrIndexRange = errors.New("binrel: element index out of range")

	// ErrSizeMismatch indicates two relations over different universes.
	ErrSizeMismatch = errors.New("binrel: universe size mismatch")

	// ErrNotEquivalence indicates ToPartition on a non-equivalence relation.
	ErrNotEquivalence = errors.New("binrel: relation is not an equivalence")
)

const wordBits = 64

// Relation is a set of ordered pairs over 0..n-1, stored as n bit rows.
// Row i holds the successors of i: bit j set ⇔ (i, j) ∈ R.
type Relation struct {
	n     int
	words int // words per row
	bits  []uint64
}

// New returns the empty relation over a universe of size n.
func New(n int) (*Relation, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	w := (n + wordBits - 1) / wordBits

	return &Relation{n: n, words: w, bits: make([]uint64, n*w)}, nil
}

// FromPairs returns the relation containing exactly the given pairs.
func FromPairs(n int, pairs [][2]int) (*Relation, error) {
	r, err := New(n)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		if err = r.Add(p[0], p[1]); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// FromPartition embeds a partition as its underlying equivalence relation.
func FromPartition(p *partition.Partition) (*Relation, error) {
	r, err := New(p.Size())
	if err != nil {
		return nil, err
	}
	for i := 0; i < p.Size(); i++ {
		for j := 0; j < p.Size(); j++ {
			if p.IsRelated(i, j) {
				r.set(i, j)
			}
		}
	}

	return r, nil
}

// Size returns the universe cardinality n.
func (r *Relation) Size() int { return r.n }

// Contains reports whether (i, j) ∈ R. Out-of-range indices are simply
// not contained; mutation is where range errors surface.
func (r *Relation) Contains(i, j int) bool {
	if i < 0 || i >= r.n || j < 0 || j >= r.n {
		return false
	}

	return r.bits[i*r.words+j/wordBits]&(1<<(j%wordBits)) != 0
}

// Add inserts the pair (i, j).
func (r *Relation) Add(i, j int) error {
	if i < 0 || i >= r.n || j < 0 || j >= r.n {
		return fmt.Errorf("%w: Add(%d, %d) on size %d", ErrIndexRange, i, j, r.n)
	}
	r.set(i, j)

	return nil
}

// Remove deletes the pair (i, j).
func (r *Relation) Remove(i, j int) error {
	if i < 0 || i >= r.n || j < 0 || j >= r.n {
		return fmt.Errorf("%w: Remove(%d, %d) on size %d", ErrIndexRange, i, j, r.n)
	}
	r.bits[i*r.words+j/wordBits] &^= 1 << (j % wordBits)

	return nil
}

// set writes without range checks; callers validate.
func (r *Relation) set(i, j int) {
	r.bits[i*r.words+j/wordBits] |= 1 << (j % wordBits)
}

// row returns the word slice backing row i.
func (r *Relation) row(i int) []uint64 {
	return r.bits[i*r.words : (i+1)*r.words]
}

// Cardinality counts the pairs in R.
func (r *Relation) Cardinality() int {
	total := 0
	for _, w := range r.bits {
		total += bits.OnesCount64(w)
	}

	return total
}

// Clone returns an independent copy.
func (r *Relation) Clone() *Relation {
	cp := &Relation{n: r.n, words: r.words, bits: make([]uint64, len(r.bits))}
	copy(cp.bits, r.bits)

	return cp
}

// Equal reports set equality over the same universe.
func (r *Relation) Equal(s *Relation) bool {
	if s == nil || r.n != s.n {
		return false
	}
	for i, w := range r.bits {
		if s.bits[i] != w {
			return false
		}
	}

	return true
}

// Union returns R ∪ S.
func (r *Relation) Union(s *Relation) (*Relation, error) {
	if s == nil || r.n != s.n {
		return nil, ErrSizeMismatch
	}
	out := r.Clone()
	for i := range out.bits {
		out.bits[i] |= s.bits[i]
	}

	return out, nil
}

// Intersect returns R ∩ S.
func (r *Relation) Intersect(s *Relation) (*Relation, error) {
	if s == nil || r.n != s.n {
		return nil, ErrSizeMismatch
	}
	out := r.Clone()
	for i := range out.bits {
		out.bits[i] &= s.bits[i]
	}

	return out, nil
}

// Inverse returns R⁻¹ = {(j, i) : (i, j) ∈ R}.
func (r *Relation) Inverse() *Relation {
	out := &Relation{n: r.n, words: r.words, bits: make([]uint64, len(r.bits))}
	for i := 0; i < r.n; i++ {
		for j := 0; j < r.n; j++ {
			if r.Contains(i, j) {
				out.set(j, i)
			}
		}
	}

	return out
}

// Compose returns R∘S = {(i, k) : ∃j. (i, j) ∈ R ∧ (j, k) ∈ S}.
// Row i of the result is the OR of S's rows over i's R-successors.
func (r *Relation) Compose(s *Relation) (*Relation, error) {
	if s == nil || r.n != s.n {
		return nil, ErrSizeMismatch
	}
	out := &Relation{n: r.n, words: r.words, bits: make([]uint64, len(r.bits))}
	for i := 0; i < r.n; i++ {
		dst := out.row(i)
		for j := 0; j < r.n; j++ {
			if r.Contains(i, j) {
				src := s.row(j)
				for w := range dst {
					dst[w] |= src[w]
				}
			}
		}
	}

	return out, nil
}

// Pairs returns the pairs in lexicographic order.
func (r *Relation) Pairs() [][2]int {
	var out [][2]int
	for i := 0; i < r.n; i++ {
		for j := 0; j < r.n; j++ {
			if r.Contains(i, j) {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}
