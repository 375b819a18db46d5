package closure_test

import (
	"testing"

	"github.com/katalvlaran/ualgebra/algebra"
	"github.com/katalvlaran/ualgebra/closure"
)

// BenchmarkGeneratedSubalgebra_Power measures closing a single pair in
// the square of a cyclic group, the shape of the pair-universe workload.
func BenchmarkGeneratedSubalgebra_Power(b *testing.B) {
	const n = 12
	base, err := algebra.CyclicGroup(n)
	if err != nil {
		b.Fatal(err)
	}
	sq, err := base.Power(2)
	if err != nil {
		b.Fatal(err)
	}
	gens := []int{algebra.RankTuple([]int{0, 1}, n)}
	for c := 0; c < n; c++ {
		gens = append(gens, algebra.RankTuple([]int{c, c}, n))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := closure.GeneratedSubalgebra(sq, gens); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGeneratedSubalgebra_Workers compares the serial and fanned
// pass over an algebra with several operations.
func BenchmarkGeneratedSubalgebra_Workers(b *testing.B) {
	a, err := algebra.TwoElementBoolean()
	if err != nil {
		b.Fatal(err)
	}
	p, err := a.Power(4)
	if err != nil {
		b.Fatal(err)
	}
	gens := []int{algebra.RankTuple([]int{0, 0, 1, 1}, 2), algebra.RankTuple([]int{0, 1, 0, 1}, 2)}

	for _, workers := range []int{1, 4} {
		name := "serial"
		if workers > 1 {
			name = "fanned"
		}
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := closure.GeneratedSubalgebra(p, gens, closure.WithWorkers(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkGeneratedCongruence_Z measures pair closure in a cyclic group.
func BenchmarkGeneratedCongruence_Z(b *testing.B) {
	const n = 64
	a, err := algebra.CyclicGroup(n)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := closure.GeneratedCongruence(a, [][2]int{{0, 2}}); err != nil {
			b.Fatal(err)
		}
	}
}
