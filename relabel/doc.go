// Package relabel implements the density-driven rebalancing that
// insert-after falls back on when a gap runs out — the hard part of the
// system.
//
// After an insertion finds its gap too small for a midpoint tag, a
// Strategy walks a doubling window of nodes around the insertion point
// until the window passes the balance test (its metric exceeds
// overflowThreshold(j)) or covers the whole list, then spreads that
// window's tags evenly across its span so the pending insert has room.
// A window's metric never exceeds U, while the threshold is T at j = 0
// (where the one-node window's metric is 1), about U at j = 1, and
// saturates from j = 2 on, so no window smaller than the whole list
// passes: every Relabel call respaces all nodes of the list, base
// included, in O(n).
//
// Two strategies implement the same interface:
//
//	TagRange  — Dietz–Sleator: the balance metric is the window's
//	            cyclic tag span plus one; this is the reference
//	            implementation and the default.
//	ListRange — the same window walk and redistribution, with the
//	            window's cyclic tag span rounded up to the smallest
//	            power of two greater than it (via bits.Len64) as the
//	            metric. It does not count nodes and does not choose
//	            window boundaries by a common bit prefix.
//
// Both share the same growth-limit policy: once the live node count
// would exceed a quarter of the universe, no window is tried — the
// caller must reject the insertion outright via CapacityOK before
// calling Relabel.
package relabel
