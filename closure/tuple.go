package closure

// tupleGen enumerates all arity-length index tuples over 0..limit-1 that
// contain at least one coordinate ≥ mark, without materializing the cross
// product. With mark == 0 it degenerates to the full product, enumerated
// exactly once.
//
// The decomposition is by the position of the FIRST coordinate ≥ mark:
// positions before it range over 0..mark-1, the position itself over
// mark..limit-1, positions after it over 0..limit-1. The three ranges
// partition the tuple space, so no tuple is produced twice.
type tupleGen struct {
	limit int // coordinate values are 0..limit-1
	arity int
	mark  int

	big  int   // position of the first coordinate ≥ mark
	cur  []int // current tuple; reused between Next calls
	done bool
	init bool
}

// newTupleGen prepares the enumerator. No tuples exist when arity == 0 or
// mark ≥ limit (nothing new to touch).
func newTupleGen(limit, arity, mark int) *tupleGen {
	g := &tupleGen{limit: limit, arity: arity, mark: mark, cur: make([]int, arity)}
	if arity == 0 || mark >= limit {
		g.done = true
	}

	return g
}

// reset positions cur at the first tuple for the current big position.
func (g *tupleGen) reset() {
	for i := range g.cur {
		g.cur[i] = 0
	}
	g.cur[g.big] = g.mark
}

// Next returns the next tuple, or false when exhausted. The returned
// slice is reused; callers must copy values they retain.
func (g *tupleGen) Next() ([]int, bool) {
	if g.done {
		return nil, false
	}
	if !g.init {
		g.init = true
		g.reset()

		return g.cur, true
	}
	// Odometer increment, least significant position last.
	for pos := g.arity - 1; pos >= 0; pos-- {
		g.cur[pos]++
		switch {
		case pos > g.big && g.cur[pos] < g.limit:
			return g.cur, true
		case pos == g.big && g.cur[pos] < g.limit:
			return g.cur, true
		case pos < g.big && g.cur[pos] < g.mark:
			return g.cur, true
		}
		// Overflowed: rewind this position to the start of its range.
		if pos == g.big {
			g.cur[pos] = g.mark
		} else {
			g.cur[pos] = 0
		}
	}
	// Overflow: advance the big position. Positions before it need values
	// in 0..mark-1, so big > 0 requires mark > 0.
	g.big++
	if g.big >= g.arity || g.mark == 0 {
		g.done = true

		return nil, false
	}
	g.reset()

	return g.cur, true
}
