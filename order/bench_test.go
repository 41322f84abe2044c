package order_test

import (
	"testing"

	"github.com/katalvlaran/ordermaint/order"
)

// BenchmarkArena_InsertAfterBase measures amortized insert cost at the
// head of an otherwise empty arena.
func BenchmarkArena_InsertAfterBase(b *testing.B) {
	a := order.NewArena()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := a.InsertAfterBase()
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkArena_InsertAfterSamePoint is the worst-case densification
// pattern: every insert targets the same fixed priority, forcing
// relabeling once the local gap is exhausted.
func BenchmarkArena_InsertAfterSamePoint(b *testing.B) {
	a := order.NewArena()
	p, err := a.InsertAfterBase()
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := a.InsertAfter(p); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkArena_Compare measures the O(1) comparison cost once two
// priorities already exist.
func BenchmarkArena_Compare(b *testing.B) {
	a := order.NewArena()
	p, err := a.InsertAfterBase()
	if err != nil {
		b.Fatal(err)
	}
	q, err := a.InsertAfter(p)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := a.Compare(p, q); err != nil {
			b.Fatal(err)
		}
	}
}
