package tct

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/ualgebra/algebra"
	"github.com/katalvlaran/ualgebra/closure"
	"github.com/katalvlaran/ualgebra/lattice"
	"github.com/katalvlaran/ualgebra/partition"
)

// TypeFinder classifies one cover alpha ≺ beta of a congruence lattice.
// It owns the resumable candidate-pair cursor; construct one finder per
// cover being analyzed.
type TypeFinder struct {
	alg   *algebra.Algebra
	lat   *lattice.CongruenceLattice
	alpha *partition.Partition
	beta  *partition.Partition
	opts  finderOptions

	square *algebra.Algebra // A², built lazily
	fourth *algebra.Algebra // A⁴, built lazily

	// pairUniv memoizes pair universes per ordered pair.
	pairUniv map[[2]int][][2]int

	// cursor state of the candidate enumerator: the last pair handed out.
	curA, curB int
	started    bool

	subtrace   *Subtrace
	centrality *CentralityData
}

// NewTypeFinder prepares classification of the cover below beta.
// Alpha defaults to beta's unique lower cover (LowerCover); supply
// WithAlpha to fix it explicitly, in which case it must be an immediate
// lower cover of beta or ErrNotCover is returned.
func NewTypeFinder(l *lattice.CongruenceLattice, beta *lattice.Congruence, opts ...Option) (*TypeFinder, error) {
	if l == nil {
		return nil, ErrNilLattice
	}
	o := gatherOptions(opts)
	if o.err != nil {
		return nil, o.err
	}

	var alpha *lattice.Congruence
	if o.alpha != nil {
		covers, err := l.LowerCovers(beta)
		if err != nil {
			return nil, err
		}
		for _, c := range covers {
			if c.Equal(o.alpha) {
				alpha = c

				break
			}
		}
		if alpha == nil {
			return nil, fmt.Errorf("%w: supplied alpha %q", ErrNotCover, o.alpha.Key())
		}
	} else {
		lc, err := l.LowerCover(beta)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotCover, err)
		}
		alpha = lc
	}

	return &TypeFinder{
		alg:      l.Algebra(),
		lat:      l,
		alpha:    alpha.Partition(),
		beta:     beta.Partition(),
		opts:     o,
		pairUniv: make(map[[2]int][][2]int),
	}, nil
}

// WithAlpha fixes the lower congruence of the cover explicitly.
func WithAlpha(alpha *lattice.Congruence) Option {
	return func(o *finderOptions) { o.alpha = alpha }
}

// Alpha returns the cover's lower congruence.
func (tf *TypeFinder) Alpha() *partition.Partition { return tf.alpha }

// Beta returns the cover's upper congruence.
func (tf *TypeFinder) Beta() *partition.Partition { return tf.beta }

// NextPairForSubtrace advances the ordered candidate enumerator and
// returns the next pair (a, b), a < b, with a beta b but not a alpha b.
// Returns ok=false when the enumeration is exhausted; ResetSearch starts
// it over.
func (tf *TypeFinder) NextPairForSubtrace() (int, int, bool) {
	n := tf.alg.Size()
	a, b := tf.curA, tf.curB
	for {
		// Advance lexicographically over pairs a < b.
		if !tf.started {
			tf.started = true
			a, b = 0, 1
		} else {
			b++
			if b >= n {
				a++
				b = a + 1
			}
		}
		if a >= n-1 {
			tf.curA, tf.curB = a, b

			return 0, 0, false
		}
		tf.curA, tf.curB = a, b
		if tf.beta.IsRelated(a, b) && !tf.alpha.IsRelated(a, b) {
			return a, b, true
		}
	}
}

// ResetSearch rewinds the candidate enumerator.
func (tf *TypeFinder) ResetSearch() {
	tf.started = false
	tf.curA, tf.curB = 0, 0
}

// IsSubtrace reports whether (a, b) is minimal in the pair-universe
// quasiorder: every beta-but-not-alpha pair in the universe of (a, b)
// must contain (a, b) in its own universe modulo alpha.
func (tf *TypeFinder) IsSubtrace(a, b int) (bool, error) {
	above, err := tf.pairUniverse(a, b)
	if err != nil {
		return false, err
	}
	for _, cd := range above {
		c, d := cd[0], cd[1]
		if tf.alpha.IsRelated(c, d) || !tf.beta.IsRelated(c, d) {
			continue
		}
		back, berr := tf.pairUniverse(c, d)
		if berr != nil {
			return false, berr
		}
		if !tf.containsModAlpha(back, a, b) {
			return false, nil
		}
	}

	return true, nil
}

// FindSubtrace scans candidates from the current cursor until a subtrace
// is found, honoring the step limit. The found subtrace (with its pair
// universe attached, type unset) is cached on the finder.
func (tf *TypeFinder) FindSubtrace() (*Subtrace, error) {
	if tf.subtrace != nil {
		return tf.subtrace, nil
	}
	steps := 0
	for {
		a, b, ok := tf.NextPairForSubtrace()
		if !ok {
			return nil, ErrNoSubtrace
		}
		tf.opts.logger.Debug("subtrace candidate", zap.Int("a", a), zap.Int("b", b))
		is, err := tf.IsSubtrace(a, b)
		if err != nil {
			return nil, err
		}
		if !is {
			// The limit is checked after the test so the cursor never
			// consumes a candidate it did not examine; a later call
			// resumes exactly where this one stopped.
			steps++
			if tf.opts.stepLimit > 0 && steps >= tf.opts.stepLimit {
				return nil, fmt.Errorf("%w: after %d candidate tests", ErrStepLimit, steps)
			}

			continue
		}

		pu, perr := tf.pairUniverse(a, b)
		if perr != nil {
			return nil, perr
		}
		tf.subtrace = &Subtrace{a: a, b: b, typ: TypeUnset, pairUniverse: pu}

		return tf.subtrace, nil
	}
}

// pairUniverse computes (memoized) the images of (a, b) under all unary
// polynomials: the subalgebra of A² generated by (a, b) and the diagonal.
func (tf *TypeFinder) pairUniverse(a, b int) ([][2]int, error) {
	key := [2]int{a, b}
	if cached, ok := tf.pairUniv[key]; ok {
		return cached, nil
	}
	if tf.square == nil {
		sq, err := tf.alg.Power(2)
		if err != nil {
			return nil, err
		}
		tf.square = sq
	}
	n := tf.alg.Size()
	gens := make([]int, 0, n+1)
	gens = append(gens, algebra.RankTuple([]int{a, b}, n))
	for c := 0; c < n; c++ {
		gens = append(gens, algebra.RankTuple([]int{c, c}, n))
	}
	res, err := closure.GeneratedSubalgebra(tf.square, gens,
		closure.WithWorkers(tf.opts.workers), closure.WithLogger(tf.opts.logger))
	if err != nil {
		return nil, err
	}
	pairs := make([][2]int, 0, res.Size())
	for _, e := range res.Elements() {
		t := algebra.UnrankTuple(e, n, 2)
		pairs = append(pairs, [2]int{t[0], t[1]})
	}
	tf.pairUniv[key] = pairs

	return pairs, nil
}

// containsModAlpha reports whether the pair list contains (a, b) up to
// alpha, in either orientation.
func (tf *TypeFinder) containsModAlpha(pairs [][2]int, a, b int) bool {
	for _, p := range pairs {
		if tf.alpha.IsRelated(p[0], a) && tf.alpha.IsRelated(p[1], b) {
			return true
		}
		if tf.alpha.IsRelated(p[0], b) && tf.alpha.IsRelated(p[1], a) {
			return true
		}
	}

	return false
}
