package partition

import "fmt"

// Le reports whether p refines q: every block of p lies inside one block
// of q. Returns ErrSizeMismatch for partitions over different universes.
//
// Complexity: O(n).
func (p *Partition) Le(q *Partition) (bool, error) {
	if q == nil || len(p.rep) != len(q.rep) {
		return false, fmt.Errorf("%w: Le(%d, %d)", ErrSizeMismatch, len(p.rep), sizeOf(q))
	}
	for i, r := range p.rep {
		// i and its p-representative must share a q-block.
		if q.rep[i] != q.rep[r] {
			return false, nil
		}
	}

	return true, nil
}

// Meet returns the finest common refinement of p and q: elements are
// related exactly when related in both operands. Neither operand mutates.
//
// Complexity: O(n) using (p-rep, q-rep) pair keys.
func (p *Partition) Meet(q *Partition) (*Partition, error) {
	if q == nil || len(p.rep) != len(q.rep) {
		return nil, fmt.Errorf("%w: Meet(%d, %d)", ErrSizeMismatch, len(p.rep), sizeOf(q))
	}
	n := len(p.rep)
	// The meet-block of i is keyed by the pair of operand representatives;
	// the first element seen with a given key is the minimum of its block.
	type pairKey struct{ a, b int }
	first := make(map[pairKey]int, n)
	rep := make([]int, n)
	for i := 0; i < n; i++ {
		k := pairKey{p.rep[i], q.rep[i]}
		if m, seen := first[k]; seen {
			rep[i] = m
		} else {
			first[k] = i
			rep[i] = i
		}
	}

	return &Partition{rep: rep}, nil
}

// Join returns the finest partition containing both operands as
// refinements: the transitive closure of the union of both relations.
// Neither operand mutates.
//
// Complexity: O(n α(n)) via union-find over both representative maps.
func (p *Partition) Join(q *Partition) (*Partition, error) {
	if q == nil || len(p.rep) != len(q.rep) {
		return nil, fmt.Errorf("%w: Join(%d, %d)", ErrSizeMismatch, len(p.rep), sizeOf(q))
	}
	n := len(p.rep)
	// Union-find with path compression; every element is united with both
	// of its operand representatives.
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		// Smaller root wins so the final pass yields minimum representatives.
		if ra < rb {
			parent[rb] = ra
		} else {
			parent[ra] = rb
		}
	}
	for i := 0; i < n; i++ {
		union(i, p.rep[i])
		union(i, q.rep[i])
	}
	rep := make([]int, n)
	for i := range rep {
		rep[i] = find(i)
	}

	return &Partition{rep: rep}, nil
}

// sizeOf tolerates nil in error messages.
func sizeOf(q *Partition) int {
	if q == nil {
		return 0
	}

	return len(q.rep)
}
