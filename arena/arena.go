// Package arena: see doc.go for the package-level overview.
package arena

import (
	"errors"

	"github.com/katalvlaran/ordermaint/tag"
)

// ErrStaleHandle indicates Get was called with a handle that no longer
// refers to a live node: either the slot was freed and (possibly)
// reused, or the handle was never allocated by this Arena.
var ErrStaleHandle = errors.New("arena: stale or invalid handle")

// Handle is a stable reference to a Node. Handles are never reused
// while the node they refer to is live; once Free is called, the slot
// may be recycled by a later Allocate, but the recycled slot carries a
// new generation, so any Handle copy of the old value is rejected by
// Get rather than silently aliasing the new occupant.
type Handle struct {
	index      uint32
	generation uint32
}

// zero Handle never validates, since generation 0 only matches an
// index that has never been allocated.
var zeroHandle Handle

// IsZero reports whether h is the zero Handle (never allocated).
func (h Handle) IsZero() bool { return h == zeroHandle }

// Node is an arena-owned record: a tag plus predecessor/successor
// handles threading it into a list. Prev and Next are mutated by
// package orderlist, never by clients of package order directly.
type Node struct {
	Tag  tag.Tag
	Prev Handle
	Next Handle
}

type slot struct {
	node       Node
	generation uint32
	occupied   bool
}

// Arena is a stable-handle store for Node values. It carries no
// internal locking: callers (package orderlist, and ultimately
// order.Arena) are responsible for serializing access.
type Arena struct {
	slots []slot
	free  []uint32 // indices of freed, reusable slots
	live  int       // number of currently-occupied slots
}

// New returns an empty Arena with no allocated nodes.
func New() *Arena {
	return &Arena{}
}

// Allocate reserves a new Node initialized with the given tag and zero
// Prev/Next handles, and returns a Handle referring to it.
//
// Complexity: O(1) amortized.
func (a *Arena) Allocate(t tag.Tag) Handle {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]

		s := &a.slots[idx]
		s.node = Node{Tag: t}
		s.occupied = true
		a.live++

		return Handle{index: idx, generation: s.generation}
	}

	idx := uint32(len(a.slots))
	a.slots = append(a.slots, slot{node: Node{Tag: t}, occupied: true, generation: 1})
	a.live++

	return Handle{index: idx, generation: 1}
}

// Get returns a pointer to the Node referred to by h. The pointer
// remains valid only until the next Allocate (which may grow and move
// the slot slice) or the next Free of h; callers must not retain it
// across those calls.
//
// Complexity: O(1).
func (a *Arena) Get(h Handle) (*Node, error) {
	if int(h.index) >= len(a.slots) {
		return nil, ErrStaleHandle
	}

	s := &a.slots[h.index]
	if !s.occupied || s.generation != h.generation {
		return nil, ErrStaleHandle
	}

	return &s.node, nil
}

// Free releases the node referred to by h, making its slot eligible
// for reuse by a future Allocate. The slot's generation is bumped, so
// any remaining copy of h is rejected by a later Get.
//
// Complexity: O(1).
func (a *Arena) Free(h Handle) error {
	if int(h.index) >= len(a.slots) {
		return ErrStaleHandle
	}

	s := &a.slots[h.index]
	if !s.occupied || s.generation != h.generation {
		return ErrStaleHandle
	}

	s.occupied = false
	s.node = Node{}
	s.generation++
	a.live--
	a.free = append(a.free, h.index)

	return nil
}

// Live returns the number of currently-allocated nodes.
func (a *Arena) Live() int { return a.live }
