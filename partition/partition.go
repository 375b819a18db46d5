package partition

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for partition operations.
var (
	// ErrBadSize indicates a universe size below 1.
	ErrBadSize = errors.New("partition: universe size must be at least 1")

	// ErrIndexRange indicates an element index outside 0..n-1.
	ErrIndexRange = errors.New("partition: element index out of range")

	// ErrNotRepresentative indicates a JoinBlocks argument that is not
	// currently a block representative.
	ErrNotRepresentative = errors.New("partition: argument is not a representative")

	// ErrSameBlock indicates JoinBlocks was asked to merge a block with itself.
	ErrSameBlock = errors.New("partition: cannot join a block with itself")

	// ErrSizeMismatch indicates two partitions over different universes.
	ErrSizeMismatch = errors.New("partition: universe size mismatch")

	// ErrBadRepresentatives indicates a representative array violating the
	// minimum-element normal form.
	ErrBadRepresentatives = errors.New("partition: invalid representative array")
)

// Partition is an equivalence relation over 0..n-1 in minimum-representative
// normal form: rep[i] is the least element of i's block.
//
// The zero value is unusable; construct via Zero, One, FromPairs or FromRep.
// A Partition published into a lattice cache must be treated as immutable.
type Partition struct {
	rep []int
}

// Zero returns the discrete partition on n elements (n singleton blocks).
func Zero(n int) (*Partition, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	rep := make([]int, n)
	for i := range rep {
		rep[i] = i
	}

	return &Partition{rep: rep}, nil
}

// One returns the total partition on n elements (a single block).
func One(n int) (*Partition, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	// All elements share representative 0.
	return &Partition{rep: make([]int, n)}, nil
}

// FromPairs returns the finest partition relating every given pair.
func FromPairs(n int, pairs [][2]int) (*Partition, error) {
	p, err := Zero(n)
	if err != nil {
		return nil, err
	}
	for _, pr := range pairs {
		if err = p.Unite(pr[0], pr[1]); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// FromRep adopts a representative array after validating the normal form:
// rep[i] must name the minimum element of i's block, so rep[rep[i]] == rep[i]
// and rep[i] ≤ i for all i.
func FromRep(rep []int) (*Partition, error) {
	n := len(rep)
	if n < 1 {
		return nil, ErrBadSize
	}
	for i, r := range rep {
		if r < 0 || r > i {
			return nil, fmt.Errorf("%w: rep[%d] = %d", ErrBadRepresentatives, i, r)
		}
		if rep[r] != r {
			return nil, fmt.Errorf("%w: rep[%d] = %d is not idempotent", ErrBadRepresentatives, i, r)
		}
	}
	own := make([]int, n)
	copy(own, rep)

	return &Partition{rep: own}, nil
}

// Size returns the universe cardinality n.
func (p *Partition) Size() int { return len(p.rep) }

// Representative returns the minimum element of i's block.
func (p *Partition) Representative(i int) int { return p.rep[i] }

// IsRelated reports whether i and j share a block.
func (p *Partition) IsRelated(i, j int) bool { return p.rep[i] == p.rep[j] }

// InRange reports whether i addresses a universe element.
func (p *Partition) InRange(i int) bool { return i >= 0 && i < len(p.rep) }

// JoinBlocks merges the two blocks whose representatives are r and s.
// This is the only mutating primitive.
//
// Error conditions:
//   - ErrIndexRange        : r or s outside 0..n-1.
//   - ErrNotRepresentative : r or s is not currently a representative.
//   - ErrSameBlock         : r == s.
func (p *Partition) JoinBlocks(r, s int) error {
	if !p.InRange(r) || !p.InRange(s) {
		return fmt.Errorf("%w: JoinBlocks(%d, %d) on size %d", ErrIndexRange, r, s, len(p.rep))
	}
	if p.rep[r] != r {
		return fmt.Errorf("%w: %d", ErrNotRepresentative, r)
	}
	if p.rep[s] != s {
		return fmt.Errorf("%w: %d", ErrNotRepresentative, s)
	}
	if r == s {
		return fmt.Errorf("%w: %d", ErrSameBlock, r)
	}
	// Merge into the smaller representative to keep the normal form.
	keep, drop := r, s
	if s < r {
		keep, drop = s, r
	}
	for i, rv := range p.rep {
		if rv == drop {
			p.rep[i] = keep
		}
	}

	return nil
}

// Unite relates arbitrary elements i and j by joining their blocks'
// representatives; a no-op when already related.
func (p *Partition) Unite(i, j int) error {
	if !p.InRange(i) || !p.InRange(j) {
		return fmt.Errorf("%w: Unite(%d, %d) on size %d", ErrIndexRange, i, j, len(p.rep))
	}
	ri, rj := p.rep[i], p.rep[j]
	if ri == rj {
		return nil
	}

	return p.JoinBlocks(ri, rj)
}

// NumberOfBlocks counts the blocks.
func (p *Partition) NumberOfBlocks() int {
	count := 0
	for i, r := range p.rep {
		if r == i {
			count++
		}
	}

	return count
}

// Blocks returns the blocks as sorted element lists, ordered by
// representative. Each call allocates fresh slices.
func (p *Partition) Blocks() [][]int {
	byRep := make(map[int][]int)
	order := make([]int, 0)
	for i, r := range p.rep {
		if _, seen := byRep[r]; !seen {
			order = append(order, r)
		}
		byRep[r] = append(byRep[r], i)
	}
	// Representatives appear in ascending order because rep[i] ≤ i and
	// each block is first touched at its representative.
	blocks := make([][]int, 0, len(order))
	for _, r := range order {
		blocks = append(blocks, byRep[r])
	}

	return blocks
}

// Clone returns an independent copy.
func (p *Partition) Clone() *Partition {
	rep := make([]int, len(p.rep))
	copy(rep, p.rep)

	return &Partition{rep: rep}
}

// Equal reports whether two partitions have identical blocks.
func (p *Partition) Equal(q *Partition) bool {
	if q == nil || len(p.rep) != len(q.rep) {
		return false
	}
	for i, r := range p.rep {
		if q.rep[i] != r {
			return false
		}
	}

	return true
}

// Key returns the normalized comparable form — the representative array as
// a string — suitable for map keys and cross-implementation comparison.
func (p *Partition) Key() string {
	var b strings.Builder
	for i, r := range p.rep {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(r))
	}

	return b.String()
}

// Representatives returns a copy of the representative array.
func (p *Partition) Representatives() []int {
	cp := make([]int, len(p.rep))
	copy(cp, p.rep)

	return cp
}

// Pairs returns every related ordered pair (i, j) with i < j, sorted.
func (p *Partition) Pairs() [][2]int {
	var out [][2]int
	for i := 0; i < len(p.rep); i++ {
		for j := i + 1; j < len(p.rep); j++ {
			if p.rep[i] == p.rep[j] {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

// String renders the partition in block notation, e.g. |0 2|1|3|.
func (p *Partition) String() string {
	var b strings.Builder
	for _, blk := range p.Blocks() {
		b.WriteByte('|')
		for i, e := range blk {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(e))
		}
	}
	b.WriteByte('|')

	return b.String()
}
