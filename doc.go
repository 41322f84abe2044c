// Package ordermaint solves the order-maintenance problem: keep a totally
// ordered sequence of opaque priorities supporting insert-after, delete,
// and compare in amortized O(1) time.
//
// What is ordermaint?
//
//	A modern, thread-safe, minimal-dependency library built around one
//	idea — relabel tags lazily, only when a gap gets too tight:
//
//	  • Tag universe: fixed-width modular arithmetic over a power-of-two ring
//	  • Node arena: O(1) stable-handle storage for list records
//	  • Ordered list: a cyclic doubly-linked list anchored at a base sentinel
//	  • Relabeler: Dietz–Sleator tag-range or Bender et al. list-range
//	    rebalancing, selectable at construction time
//	  • Priority API: InsertAfter / Delete / Compare, a thin facade over
//	    the above
//
// Why choose ordermaint?
//
//   - O(1) compare      — delete and compare never walk the list; an insert
//     walks and respaces the whole list when its gap is exhausted
//   - Rock-solid        — a single RWMutex per arena guards every mutation
//   - Pluggable core    — swap the relabeling strategy without touching
//     call sites
//   - Pure Go           — no cgo
//
// Under the hood, everything is organized under six subpackages:
//
//	tag/       — modular tag ring: Sub, Add, Midpoint, Rank
//	arena/     — generational-handle node storage
//	orderlist/ — cyclic doubly-linked list over arena handles
//	relabel/   — tag-range and list-range relabeling strategies
//	order/     — the public Arena / Priority / Compare facade
//	harness/   — seeded operation-sequence generator and invariant checker
//
// Quick example:
//
//	a := order.NewArena()
//	p, _ := a.InsertAfterBase()
//	q, _ := a.InsertAfter(p)
//	ord, _ := a.Compare(p, q) // order.Less
//
// Two priorities created in different arenas are never silently
// comparable: Compare returns ErrDifferentArenas instead of an
// ordering.
//
//	go get github.com/katalvlaran/ordermaint
package ordermaint
