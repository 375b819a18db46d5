package lattice

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/ualgebra/algebra"
	"github.com/katalvlaran/ualgebra/closure"
	"github.com/katalvlaran/ualgebra/partition"
)

// Congruence is a lattice element wrapping an operation-compatible
// partition. The partition is immutable once published; Clone before
// mutating.
type Congruence struct {
	part   *partition.Partition
	capped bool
	key    string
}

func newCongruence(p *partition.Partition, capped bool) *Congruence {
	return &Congruence{part: p, capped: capped, key: p.Key()}
}

// Partition exposes the underlying partition (treat as read-only).
func (c *Congruence) Partition() *partition.Partition { return c.part }

// NumberOfBlocks counts the congruence classes.
func (c *Congruence) NumberOfBlocks() int { return c.part.NumberOfBlocks() }

// Capped reports whether this value is a capped-closure sentinel.
func (c *Congruence) Capped() bool { return c.capped }

// Key returns the normalized representative-array form.
func (c *Congruence) Key() string { return c.key }

// Equal reports partition equality.
func (c *Congruence) Equal(d *Congruence) bool { return d != nil && c.key == d.key }

// CongruenceLattice lazily materializes the lattice of congruences of a
// finite algebra. Construct via NewCongruenceLattice; zero value unusable.
type CongruenceLattice struct {
	alg  *algebra.Algebra
	opts latticeOptions

	zero *Congruence
	oneC *Congruence

	mu        sync.RWMutex
	principal map[[2]int]*Congruence

	principals atomic.Pointer[[]*Congruence]
	universe   atomic.Pointer[conUniverseSnapshot]
	joinIrr    atomic.Pointer[[]*Congruence]
	meetIrr    atomic.Pointer[[]*Congruence]
}

type conUniverseSnapshot struct {
	cons   []*Congruence
	capped bool
}

// NewCongruenceLattice wires a lattice to an algebra.
func NewCongruenceLattice(a *algebra.Algebra, opts ...Option) (*CongruenceLattice, error) {
	if a == nil {
		return nil, ErrNilAlgebra
	}
	o := gatherOptions(opts)
	if o.err != nil {
		return nil, o.err
	}
	z, err := partition.Zero(a.Size())
	if err != nil {
		return nil, err
	}
	one, err := partition.One(a.Size())
	if err != nil {
		return nil, err
	}

	return &CongruenceLattice{
		alg:       a,
		opts:      o,
		zero:      newCongruence(z, false),
		oneC:      newCongruence(one, false),
		principal: make(map[[2]int]*Congruence),
	}, nil
}

// Algebra returns the underlying algebra (read-only by convention).
func (l *CongruenceLattice) Algebra() *algebra.Algebra { return l.alg }

// Zero returns the diagonal congruence.
func (l *CongruenceLattice) Zero() *Congruence { return l.zero }

// One returns the total congruence.
func (l *CongruenceLattice) One() *Congruence { return l.oneC }

// Cg returns the principal congruence generated by the pair (a, b),
// memoized per unordered pair.
func (l *CongruenceLattice) Cg(a, b int) (*Congruence, error) {
	if !l.alg.InUniverse(a) || !l.alg.InUniverse(b) {
		return nil, fmt.Errorf("%w: Cg(%d, %d)", ErrIndexRange, a, b)
	}
	if a == b {
		return l.zero, nil
	}
	if b < a {
		a, b = b, a
	}
	key := [2]int{a, b}

	l.mu.RLock()
	cached, ok := l.principal[key]
	l.mu.RUnlock()
	if ok {
		return cached, nil
	}

	res, err := closure.GeneratedCongruence(l.alg, [][2]int{{a, b}}, l.opts.engineOptions()...)
	if err != nil {
		return nil, err
	}
	con := newCongruence(res.Partition(), res.Capped())

	l.mu.Lock()
	if prior, raced := l.principal[key]; raced {
		con = prior
	} else {
		l.principal[key] = con
	}
	l.mu.Unlock()

	return con, nil
}

// GeneratedBy returns the congruence closure of a pair list.
func (l *CongruenceLattice) GeneratedBy(pairs [][2]int) (*Congruence, error) {
	res, err := closure.GeneratedCongruence(l.alg, pairs, l.opts.engineOptions()...)
	if err != nil {
		return nil, err
	}

	return newCongruence(res.Partition(), res.Capped()), nil
}

// Join returns the congruence closure of the union of both relations.
// Partition join alone is not enough: the joined partition need not be
// operation-compatible, so the result is re-closed through the engine.
func (l *CongruenceLattice) Join(a, b *Congruence) (*Congruence, error) {
	if err := l.checkElement(a); err != nil {
		return nil, err
	}
	if err := l.checkElement(b); err != nil {
		return nil, err
	}

	return l.GeneratedBy(append(a.part.Pairs(), b.part.Pairs()...))
}

// Meet returns the partition meet — a congruence whenever both operands
// are, with no re-closure needed.
func (l *CongruenceLattice) Meet(a, b *Congruence) (*Congruence, error) {
	if err := l.checkElement(a); err != nil {
		return nil, err
	}
	if err := l.checkElement(b); err != nil {
		return nil, err
	}
	m, err := a.part.Meet(b.part)
	if err != nil {
		return nil, err
	}

	return newCongruence(m, false), nil
}

// Leq reports the refinement order a ≤ b.
func (l *CongruenceLattice) Leq(a, b *Congruence) (bool, error) {
	if err := l.checkElement(a); err != nil {
		return false, err
	}
	if err := l.checkElement(b); err != nil {
		return false, err
	}

	return a.part.Le(b.part)
}

// Principals returns the distinct principal congruences Cg(a, b) over all
// pairs a < b, in deterministic order (lazy, write-once).
func (l *CongruenceLattice) Principals() ([]*Congruence, error) {
	if cached := l.principals.Load(); cached != nil {
		return *cached, nil
	}
	n := l.alg.Size()
	seen := make(map[string]bool)
	var out []*Congruence
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			c, err := l.Cg(a, b)
			if err != nil {
				return nil, err
			}
			if !seen[c.key] {
				seen[c.key] = true
				out = append(out, c)
			}
		}
	}
	l.principals.CompareAndSwap(nil, &out)

	return *l.principals.Load(), nil
}

// Universe returns every congruence: zero plus the principal congruences,
// closed under pairwise joins to a fixed point with the same pass/mark
// structure as the engine. WithUniverseCap stops join generation.
func (l *CongruenceLattice) Universe() ([]*Congruence, error) {
	snap, err := l.buildUniverse()
	if err != nil {
		return nil, err
	}

	return snap.cons, nil
}

// UniverseCapped reports whether the universe build stopped at its cap.
func (l *CongruenceLattice) UniverseCapped() (bool, error) {
	snap, err := l.buildUniverse()
	if err != nil {
		return false, err
	}

	return snap.capped, nil
}

func (l *CongruenceLattice) buildUniverse() (*conUniverseSnapshot, error) {
	if cached := l.universe.Load(); cached != nil {
		return cached, nil
	}
	principals, err := l.Principals()
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]bool)
	var cons []*Congruence
	add := func(c *Congruence) bool {
		if byKey[c.key] {
			return false
		}
		byKey[c.key] = true
		cons = append(cons, c)

		return true
	}
	add(l.zero)
	for _, c := range principals {
		add(c)
	}

	capped := false
	mark := 0
	for mark < len(cons) && !capped {
		snapLen := len(cons)
		for i := 0; i < snapLen && !capped; i++ {
			lo := i + 1
			if lo < mark {
				lo = mark
			}
			for j := lo; j < snapLen; j++ {
				joined, jerr := l.Join(cons[i], cons[j])
				if jerr != nil {
					return nil, jerr
				}
				if add(joined) && l.opts.universeCap > 0 && len(cons) > l.opts.universeCap {
					capped = true

					break
				}
			}
		}
		mark = snapLen
	}

	sortCons(cons)
	l.universe.CompareAndSwap(nil, &conUniverseSnapshot{cons: cons, capped: capped})

	return l.universe.Load(), nil
}

// JoinIrreducibles returns the congruences (other than zero) with exactly
// one immediate lower cover. Every join-irreducible congruence is
// principal, so candidates come from the principal family. Requires an
// uncapped universe.
//
// For a simple algebra (zero ≺ one and nothing between) the result is
// empty by the strict reading used here: the unique atom equals one,
// which is excluded along with zero as a lattice bound.
func (l *CongruenceLattice) JoinIrreducibles() ([]*Congruence, error) {
	if cached := l.joinIrr.Load(); cached != nil {
		return *cached, nil
	}
	snap, err := l.buildUniverse()
	if err != nil {
		return nil, err
	}
	if snap.capped {
		return nil, fmt.Errorf("%w: join-irreducibles need the full universe", ErrUniverseCapped)
	}
	principals, err := l.Principals()
	if err != nil {
		return nil, err
	}
	var irr []*Congruence
	for _, c := range principals {
		if c.Equal(l.zero) || c.Equal(l.oneC) {
			continue
		}
		covers, cerr := l.LowerCovers(c)
		if cerr != nil {
			return nil, cerr
		}
		if len(covers) == 1 {
			irr = append(irr, c)
		}
	}
	sortCons(irr)
	l.joinIrr.CompareAndSwap(nil, &irr)

	return *l.joinIrr.Load(), nil
}

// MeetIrreducibles returns the congruences (other than one) with exactly
// one immediate upper cover. Requires an uncapped universe.
func (l *CongruenceLattice) MeetIrreducibles() ([]*Congruence, error) {
	if cached := l.meetIrr.Load(); cached != nil {
		return *cached, nil
	}
	snap, err := l.buildUniverse()
	if err != nil {
		return nil, err
	}
	if snap.capped {
		return nil, fmt.Errorf("%w: meet-irreducibles need the full universe", ErrUniverseCapped)
	}
	var irr []*Congruence
	for _, c := range snap.cons {
		if c.Equal(l.oneC) || c.Equal(l.zero) {
			continue
		}
		uppers, uerr := l.UpperCovers(c)
		if uerr != nil {
			return nil, uerr
		}
		if len(uppers) == 1 {
			irr = append(irr, c)
		}
	}
	sortCons(irr)
	l.meetIrr.CompareAndSwap(nil, &irr)

	return *l.meetIrr.Load(), nil
}

// LowerCovers returns the maximal universe congruences strictly below c.
func (l *CongruenceLattice) LowerCovers(c *Congruence) ([]*Congruence, error) {
	if err := l.checkElement(c); err != nil {
		return nil, err
	}
	snap, err := l.buildUniverse()
	if err != nil {
		return nil, err
	}

	return maximalProperCon(snap.cons, c, l.leqQuiet, true), nil
}

// UpperCovers returns the minimal universe congruences strictly above c.
func (l *CongruenceLattice) UpperCovers(c *Congruence) ([]*Congruence, error) {
	if err := l.checkElement(c); err != nil {
		return nil, err
	}
	snap, err := l.buildUniverse()
	if err != nil {
		return nil, err
	}

	return maximalProperCon(snap.cons, c, l.leqQuiet, false), nil
}

// LowerCover returns the UNIQUE immediate lower cover of beta, the alpha
// of the TCT cover alpha ≺ beta. Errors with ErrNotJoinIrreducible when
// the lower cover is not unique, and ErrUniverseCapped on a capped
// universe.
func (l *CongruenceLattice) LowerCover(beta *Congruence) (*Congruence, error) {
	snap, err := l.buildUniverse()
	if err != nil {
		return nil, err
	}
	if snap.capped {
		return nil, fmt.Errorf("%w: lower covers need the full universe", ErrUniverseCapped)
	}
	covers, err := l.LowerCovers(beta)
	if err != nil {
		return nil, err
	}
	if len(covers) != 1 {
		return nil, fmt.Errorf("%w: %q has %d lower covers", ErrNotJoinIrreducible, beta.Key(), len(covers))
	}

	return covers[0], nil
}

// Filter returns every universe congruence containing c.
func (l *CongruenceLattice) Filter(c *Congruence) ([]*Congruence, error) {
	if err := l.checkElement(c); err != nil {
		return nil, err
	}
	snap, err := l.buildUniverse()
	if err != nil {
		return nil, err
	}
	var out []*Congruence
	for _, u := range snap.cons {
		if le, _ := l.Leq(c, u); le {
			out = append(out, u)
		}
	}

	return out, nil
}

// Reset drops every cache; the next query recomputes from scratch.
func (l *CongruenceLattice) Reset() {
	l.mu.Lock()
	l.principal = make(map[[2]int]*Congruence)
	l.mu.Unlock()
	l.principals.Store(nil)
	l.universe.Store(nil)
	l.joinIrr.Store(nil)
	l.meetIrr.Store(nil)
}

// leqQuiet is Leq with element checks elided, for cover scans over values
// the lattice itself produced.
func (l *CongruenceLattice) leqQuiet(a, b *Congruence) bool {
	le, err := a.part.Le(b.part)

	return err == nil && le
}

// checkElement rejects congruences over foreign universes.
func (l *CongruenceLattice) checkElement(c *Congruence) error {
	if c == nil || c.part.Size() != l.alg.Size() {
		return ErrForeignElement
	}

	return nil
}

// sortCons orders congruences by block count (descending refinement) then
// key, for reproducible output.
func sortCons(cons []*Congruence) {
	sort.Slice(cons, func(i, j int) bool {
		if cons[i].NumberOfBlocks() != cons[j].NumberOfBlocks() {
			return cons[i].NumberOfBlocks() > cons[j].NumberOfBlocks()
		}
		return cons[i].key < cons[j].key
	})
}
