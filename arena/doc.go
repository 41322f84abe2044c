// Package arena provides O(1) stable-handle storage for order-maintenance
// list records.
//
// An Arena owns a flat slice of nodes addressed by Handle, a
// generational index: {index, generation}. Allocate returns a fresh
// handle; Free releases it back to an internal free-list for reuse.
// Get dereferences a handle in O(1) and rejects any handle whose
// generation no longer matches the slot's current occupant —
// generational handles chosen over a plain non-generational slab
// because they turn use-after-free into a recoverable error instead of
// silently reading a different node's data.
//
// Arena has no locking of its own; it is always driven by a single
// caller holding the owning order.Arena's lock.
//
// Errors:
//
//	ErrStaleHandle — Get was called with a handle whose generation does
//	                 not match the slot's current occupant (freed, or
//	                 never allocated).
package arena
