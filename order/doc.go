// Package order is the public façade of the order-maintenance library:
// the thin Priority API layered over packages tag, arena, orderlist,
// and relabel.
//
// An Arena owns one totally ordered sequence of Priority handles.
// Priorities are opaque outside this package; the only thing a client
// may do with one is pass it back to its Arena's InsertAfter, Delete,
// or Compare.
//
// Two priorities created by different Arena values are never silently
// comparable — Compare detects the mismatch via the arena's uuid
// identity and returns ErrDifferentArenas rather than an ordering.
//
// Construction is driven by functional options:
//
//	a := order.NewArena(order.WithListRangeStrategy())
//
// Concurrency: Arena guards its node store and list links with a
// single sync.RWMutex. Compare takes a read lock; InsertAfter, Delete,
// and Priority.Drop take a write lock. This buys safe interleaving
// with readers, not a concurrent-correctness story — the complexity
// stated on each method only holds for operations that are in fact
// serialized.
//
// Errors:
//
//	ErrNilPriority       — a nil *Priority was passed to an operation.
//	ErrDifferentArenas   — the priorities involved do not share an arena.
//	ErrAlreadyDeleted    — Delete was called on a priority whose node is
//	                       no longer linked. This is a hard error, not
//	                       an idempotent no-op; Drop, by contrast, is
//	                       idempotent.
//	ErrCapacityExhausted — the arena's live-priority count would exceed
//	                       the relabeler's capacity for its universe.
package order
