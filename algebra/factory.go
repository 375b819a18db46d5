package algebra

import "fmt"

// CyclicGroup returns the cyclic group Z_n under addition mod n, with a
// single binary operation "+". Panics only via constructor errors, which
// cannot occur for n ≥ 1; n < 1 returns ErrEmptyUniverse.
func CyclicGroup(n int) (*Algebra, error) {
	if n < 1 {
		return nil, ErrEmptyUniverse
	}
	table := make([]int, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			table[i*n+j] = (i + j) % n
		}
	}
	add, err := NewTableOp("+", 2, n, table)
	if err != nil {
		return nil, err
	}

	return New(fmt.Sprintf("Z%d", n), n, add)
}

// TwoElementBoolean returns the two-element Boolean algebra on {0,1} with
// meet, join and complement.
func TwoElementBoolean() (*Algebra, error) {
	meet, err := NewTableOp("meet", 2, 2, []int{0, 0, 0, 1})
	if err != nil {
		return nil, err
	}
	join, err := NewTableOp("join", 2, 2, []int{0, 1, 1, 1})
	if err != nil {
		return nil, err
	}
	not, err := NewTableOp("not", 1, 2, []int{1, 0})
	if err != nil {
		return nil, err
	}

	return New("2", 2, meet, join, not)
}

// OpSpec pairs one operation's metadata with its flat row-major table,
// for bulk construction via FromTables (and for the YAML harness format).
type OpSpec struct {
	Name  string
	Arity int
	Table []int
}

// FromTables builds an algebra over universe size n from a list of
// table-backed operation specs, validating each table.
func FromTables(name string, n int, specs []OpSpec) (*Algebra, error) {
	ops := make([]Operation, 0, len(specs))
	for _, s := range specs {
		op, err := NewTableOp(s.Name, s.Arity, n, s.Table)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	return New(name, n, ops...)
}
