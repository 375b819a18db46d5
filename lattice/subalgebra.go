package lattice

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/ualgebra/algebra"
	"github.com/katalvlaran/ualgebra/closure"
)

// Subalgebra is a closed subset of the universe in normalized form: a
// sorted element index array plus membership bits. Values are immutable
// once published by a lattice.
type Subalgebra struct {
	n        int
	elements []int
	member   []bool
	capped   bool
	key      string
}

// newSubalgebra wraps a sorted element list over universe size n.
func newSubalgebra(n int, sorted []int, capped bool) *Subalgebra {
	member := make([]bool, n)
	for _, e := range sorted {
		member[e] = true
	}

	return &Subalgebra{n: n, elements: sorted, member: member, capped: capped, key: intsKey(sorted)}
}

// Elements returns the sorted index array (a copy).
func (s *Subalgebra) Elements() []int {
	cp := make([]int, len(s.elements))
	copy(cp, s.elements)

	return cp
}

// Size returns the subalgebra's cardinality.
func (s *Subalgebra) Size() int { return len(s.elements) }

// Contains reports membership of element i.
func (s *Subalgebra) Contains(i int) bool { return i >= 0 && i < s.n && s.member[i] }

// Capped reports whether this value is a capped-closure sentinel.
func (s *Subalgebra) Capped() bool { return s.capped }

// Key returns the normalized comparable form for map keys and
// cross-implementation comparison.
func (s *Subalgebra) Key() string { return s.key }

// Equal reports element-set equality.
func (s *Subalgebra) Equal(t *Subalgebra) bool {
	return t != nil && s.n == t.n && s.key == t.key
}

// SubalgebraLattice lazily materializes the lattice of subuniverses of a
// finite algebra. Construct via NewSubalgebraLattice; zero value unusable.
type SubalgebraLattice struct {
	alg  *algebra.Algebra
	opts latticeOptions

	one *Subalgebra // whole universe; cheap, built eagerly

	mu       sync.RWMutex
	genCache map[string]*Subalgebra

	oneGen   atomic.Pointer[[]*Subalgebra]
	universe atomic.Pointer[universeSnapshot]
	joinIrr  atomic.Pointer[[]*Subalgebra]
	meetIrr  atomic.Pointer[[]*Subalgebra]
}

// universeSnapshot is the write-once result of the universe build.
type universeSnapshot struct {
	subs   []*Subalgebra
	capped bool
}

// NewSubalgebraLattice wires a lattice to an algebra.
func NewSubalgebraLattice(a *algebra.Algebra, opts ...Option) (*SubalgebraLattice, error) {
	if a == nil {
		return nil, ErrNilAlgebra
	}
	o := gatherOptions(opts)
	if o.err != nil {
		return nil, o.err
	}
	n := a.Size()
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}

	return &SubalgebraLattice{
		alg:      a,
		opts:     o,
		one:      newSubalgebra(n, all, false),
		genCache: make(map[string]*Subalgebra),
	}, nil
}

// Algebra returns the underlying algebra (read-only by convention).
func (l *SubalgebraLattice) Algebra() *algebra.Algebra { return l.alg }

// GeneratedBy runs the closure engine on the seed, memoized by the
// normalized seed. A capped closure memoizes the whole-universe sentinel.
func (l *SubalgebraLattice) GeneratedBy(gens []int) (*Subalgebra, error) {
	for _, g := range gens {
		if !l.alg.InUniverse(g) {
			return nil, fmt.Errorf("%w: generator %d", ErrIndexRange, g)
		}
	}
	seed := normalizeSeed(gens)
	key := intsKey(seed)

	l.mu.RLock()
	cached, ok := l.genCache[key]
	l.mu.RUnlock()
	if ok {
		return cached, nil
	}

	res, err := closure.GeneratedSubalgebra(l.alg, seed, l.opts.engineOptions()...)
	if err != nil {
		return nil, err
	}
	sub := newSubalgebra(l.alg.Size(), res.Elements(), res.Capped())

	// First publish wins; a racing computation's value is identical.
	l.mu.Lock()
	if prior, raced := l.genCache[key]; raced {
		sub = prior
	} else {
		l.genCache[key] = sub
	}
	l.mu.Unlock()

	return sub, nil
}

// Zero returns the smallest subuniverse: the closure of the empty seed
// (the constants' closure; empty when the algebra has no constants).
func (l *SubalgebraLattice) Zero() (*Subalgebra, error) { return l.GeneratedBy(nil) }

// One returns the whole universe.
func (l *SubalgebraLattice) One() *Subalgebra { return l.one }

// Join returns the closure of the set union of a and b.
func (l *SubalgebraLattice) Join(a, b *Subalgebra) (*Subalgebra, error) {
	if err := l.checkElement(a); err != nil {
		return nil, err
	}
	if err := l.checkElement(b); err != nil {
		return nil, err
	}

	return l.GeneratedBy(append(a.Elements(), b.elements...))
}

// Meet returns the structural intersection of a and b — always already
// closed, since an intersection of closed sets is closed.
func (l *SubalgebraLattice) Meet(a, b *Subalgebra) (*Subalgebra, error) {
	if err := l.checkElement(a); err != nil {
		return nil, err
	}
	if err := l.checkElement(b); err != nil {
		return nil, err
	}
	var common []int
	for _, e := range a.elements {
		if b.member[e] {
			common = append(common, e)
		}
	}

	return newSubalgebra(l.alg.Size(), common, false), nil
}

// Leq reports the subset order a ≤ b.
func (l *SubalgebraLattice) Leq(a, b *Subalgebra) (bool, error) {
	if err := l.checkElement(a); err != nil {
		return false, err
	}
	if err := l.checkElement(b); err != nil {
		return false, err
	}
	for _, e := range a.elements {
		if !b.member[e] {
			return false, nil
		}
	}

	return true, nil
}

// OneGenerated returns the closures of every single element, in element
// order (lazy, write-once).
func (l *SubalgebraLattice) OneGenerated() ([]*Subalgebra, error) {
	if cached := l.oneGen.Load(); cached != nil {
		return *cached, nil
	}
	n := l.alg.Size()
	subs := make([]*Subalgebra, n)
	for i := 0; i < n; i++ {
		s, err := l.GeneratedBy([]int{i})
		if err != nil {
			return nil, err
		}
		subs[i] = s
	}
	l.oneGen.CompareAndSwap(nil, &subs)

	return *l.oneGen.Load(), nil
}

// Universe returns every subuniverse: the one-generated closures plus
// zero, closed under pairwise joins to a fixed point. The second-level
// closure uses the same pass/mark structure as the engine itself; an
// optional cap (WithUniverseCap) stops join generation, after which the
// snapshot reports itself capped.
func (l *SubalgebraLattice) Universe() ([]*Subalgebra, error) {
	snap, err := l.buildUniverse()
	if err != nil {
		return nil, err
	}

	return snap.subs, nil
}

// UniverseCapped reports whether the universe build stopped at its cap.
func (l *SubalgebraLattice) UniverseCapped() (bool, error) {
	snap, err := l.buildUniverse()
	if err != nil {
		return false, err
	}

	return snap.capped, nil
}

func (l *SubalgebraLattice) buildUniverse() (*universeSnapshot, error) {
	if cached := l.universe.Load(); cached != nil {
		return cached, nil
	}

	zero, err := l.Zero()
	if err != nil {
		return nil, err
	}
	oneGen, err := l.OneGenerated()
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]*Subalgebra)
	var subs []*Subalgebra
	add := func(s *Subalgebra) bool {
		if _, dup := byKey[s.key]; dup {
			return false
		}
		byKey[s.key] = s
		subs = append(subs, s)

		return true
	}
	add(zero)
	for _, s := range oneGen {
		add(s)
	}

	capped := false
	mark := 0
	// Pairwise-join fixed point: each pass only joins pairs touching a
	// substructure discovered since the previous pass.
	for mark < len(subs) && !capped {
		snapLen := len(subs)
		for i := 0; i < snapLen && !capped; i++ {
			lo := i + 1
			if lo < mark {
				lo = mark
			}
			for j := lo; j < snapLen; j++ {
				joined, jerr := l.Join(subs[i], subs[j])
				if jerr != nil {
					return nil, jerr
				}
				if add(joined) && l.opts.universeCap > 0 && len(subs) > l.opts.universeCap {
					capped = true

					break
				}
			}
		}
		mark = snapLen
	}

	sortSubs(subs)
	l.universe.CompareAndSwap(nil, &universeSnapshot{subs: subs, capped: capped})

	return l.universe.Load(), nil
}

// JoinIrreducibles returns the subuniverses (other than zero) with
// exactly one immediate lower cover. Requires an uncapped universe;
// every join-irreducible subalgebra is one-generated, so the result is
// derived by filtering the one-generated family.
func (l *SubalgebraLattice) JoinIrreducibles() ([]*Subalgebra, error) {
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
	zero, err := l.Zero()
	if err != nil {
		return nil, err
	}
	oneGen, err := l.OneGenerated()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var irr []*Subalgebra
	for _, s := range oneGen {
		if s.Equal(zero) || s.Equal(l.one) || seen[s.key] {
			continue
		}
		seen[s.key] = true
		covers, cerr := l.LowerCovers(s)
		if cerr != nil {
			return nil, cerr
		}
		if len(covers) == 1 {
			irr = append(irr, s)
		}
	}
	sortSubs(irr)
	l.joinIrr.CompareAndSwap(nil, &irr)

	return *l.joinIrr.Load(), nil
}

// MeetIrreducibles returns the subuniverses (other than one) with exactly
// one immediate upper cover. Requires an uncapped universe.
func (l *SubalgebraLattice) MeetIrreducibles() ([]*Subalgebra, error) {
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
	zero, err := l.Zero()
	if err != nil {
		return nil, err
	}
	var irr []*Subalgebra
	for _, s := range snap.subs {
		if s.Equal(l.one) || s.Equal(zero) {
			continue
		}
		uppers, uerr := l.UpperCovers(s)
		if uerr != nil {
			return nil, uerr
		}
		if len(uppers) == 1 {
			irr = append(irr, s)
		}
	}
	sortSubs(irr)
	l.meetIrr.CompareAndSwap(nil, &irr)

	return *l.meetIrr.Load(), nil
}

// LowerCovers returns the maximal universe members strictly below s.
func (l *SubalgebraLattice) LowerCovers(s *Subalgebra) ([]*Subalgebra, error) {
	if err := l.checkElement(s); err != nil {
		return nil, err
	}
	snap, err := l.buildUniverse()
	if err != nil {
		return nil, err
	}

	return maximalProper(snap.subs, s, func(a, b *Subalgebra) bool {
		le, _ := l.Leq(a, b)
		return le
	}, true), nil
}

// UpperCovers returns the minimal universe members strictly above s.
func (l *SubalgebraLattice) UpperCovers(s *Subalgebra) ([]*Subalgebra, error) {
	if err := l.checkElement(s); err != nil {
		return nil, err
	}
	snap, err := l.buildUniverse()
	if err != nil {
		return nil, err
	}

	return maximalProper(snap.subs, s, func(a, b *Subalgebra) bool {
		le, _ := l.Leq(a, b)
		return le
	}, false), nil
}

// Filter returns every universe member containing s.
func (l *SubalgebraLattice) Filter(s *Subalgebra) ([]*Subalgebra, error) {
	if err := l.checkElement(s); err != nil {
		return nil, err
	}
	snap, err := l.buildUniverse()
	if err != nil {
		return nil, err
	}
	var out []*Subalgebra
	for _, u := range snap.subs {
		if le, _ := l.Leq(s, u); le {
			out = append(out, u)
		}
	}

	return out, nil
}

// Reset drops every cache; the next query recomputes from scratch.
func (l *SubalgebraLattice) Reset() {
	l.mu.Lock()
	l.genCache = make(map[string]*Subalgebra)
	l.mu.Unlock()
	l.oneGen.Store(nil)
	l.universe.Store(nil)
	l.joinIrr.Store(nil)
	l.meetIrr.Store(nil)
}

// checkElement rejects substructures over foreign universes.
func (l *SubalgebraLattice) checkElement(s *Subalgebra) error {
	if s == nil || s.n != l.alg.Size() {
		return ErrForeignElement
	}

	return nil
}

// normalizeSeed sorts and deduplicates a generator list.
func normalizeSeed(gens []int) []int {
	cp := make([]int, len(gens))
	copy(cp, gens)
	sort.Ints(cp)
	out := cp[:0]
	for i, g := range cp {
		if i == 0 || g != cp[i-1] {
			out = append(out, g)
		}
	}

	return out
}

// sortSubs orders substructures by size then key, for reproducible output.
func sortSubs(subs []*Subalgebra) {
	sort.Slice(subs, func(i, j int) bool {
		if len(subs[i].elements) != len(subs[j].elements) {
			return len(subs[i].elements) < len(subs[j].elements)
		}
		return subs[i].key < subs[j].key
	})
}

// intsKey renders a sorted index array as a comma-joined string.
func intsKey(xs []int) string {
	out := make([]byte, 0, len(xs)*3)
	for i, x := range xs {
		if i > 0 {
			out = append(out, ',')
		}
		out = appendUint(out, x)
	}

	return string(out)
}

func appendUint(b []byte, x int) []byte {
	if x >= 10 {
		b = appendUint(b, x/10)
	}

	return append(b, byte('0'+x%10))
}
