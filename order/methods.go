// Package order: see doc.go for the package-level overview.
//
// This file implements the Priority API's mutating and comparing
// operations: InsertAfterBase, InsertAfter, Delete, Compare, and
// Priority.Drop. All locking happens here; insertAfterLocked is the
// single place that talks to packages arena, orderlist, and relabel.
package order

import (
	"github.com/katalvlaran/ordermaint/arena"
	"github.com/katalvlaran/ordermaint/relabel"
	"github.com/katalvlaran/ordermaint/tag"
)

// InsertAfterBase inserts the first real priority into an empty (or
// non-empty) arena, immediately after the hidden base. This is the
// distinguished seeding operation that starts an arena's order.
//
// Complexity: O(1) while the gap after the base has room; otherwise
// the relabel step respaces the whole list, O(n).
func (a *Arena) InsertAfterBase() (*Priority, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.insertAfterLocked(a.list.Base)
}

// InsertAfter inserts a fresh priority immediately after p in the
// arena's order.
//
// Complexity: O(1) while the gap after p has room; otherwise the
// relabel step respaces the whole list, O(n).
func (a *Arena) InsertAfter(p *Priority) (*Priority, error) {
	if p == nil {
		return nil, ErrNilPriority
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if p.arenaID != a.id {
		return nil, ErrDifferentArenas
	}

	return a.insertAfterLocked(p.handle)
}

// insertAfterLocked performs the insert-after algorithm: try a direct
// midpoint first, and fall back to relabeling exactly once if the gap
// is too small. Callers must hold a.mu.
func (a *Arena) insertAfterLocked(h arena.Handle) (*Priority, error) {
	pNode, err := a.list.A.Get(h)
	if err != nil {
		return nil, ErrAlreadyDeleted
	}

	if !relabel.CapacityOK(a.universe.Bits(), a.live+1) {
		return nil, ErrCapacityExhausted
	}

	nextNode, err := a.list.A.Get(pNode.Next)
	if err != nil {
		return nil, err
	}

	var midTag tag.Tag
	if pNode.Next == h {
		// h is its own successor: it is the only node in the cyclic
		// list (the arena has no live priorities yet), so there is no
		// window around it for a strategy to redistribute. Seed the
		// new tag halfway around the ring instead of trying Midpoint
		// against h itself.
		midTag = a.universe.Add(pNode.Tag, a.universe.Half())
	} else {
		midTag, err = a.universe.Midpoint(pNode.Tag, nextNode.Tag)
		if err != nil {
			if relErr := a.strategy.Relabel(a.list, h, a.live); relErr != nil {
				return nil, relErr
			}

			// Tags moved under relabeling; re-read both endpoints.
			pNode, err = a.list.A.Get(h)
			if err != nil {
				return nil, err
			}
			nextNode, err = a.list.A.Get(pNode.Next)
			if err != nil {
				return nil, err
			}
			midTag, err = a.universe.Midpoint(pNode.Tag, nextNode.Tag)
			if err != nil {
				return nil, err
			}
		}
	}

	newHandle := a.list.A.Allocate(midTag)
	if err := a.list.LinkAfter(h, newHandle); err != nil {
		return nil, err
	}
	a.live++

	return &Priority{arenaID: a.id, owner: a, handle: newHandle}, nil
}

// Delete removes p from the arena's order and frees its slot.
// Deleting a priority that is no longer linked (already deleted) is a
// hard error, ErrAlreadyDeleted, rather than an idempotent no-op —
// Priority.Drop is the idempotent counterpart.
//
// Complexity: O(1).
func (a *Arena) Delete(p *Priority) error {
	if p == nil {
		return ErrNilPriority
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if p.arenaID != a.id {
		return ErrDifferentArenas
	}

	if _, err := a.list.A.Get(p.handle); err != nil {
		return ErrAlreadyDeleted
	}

	if err := a.list.Unlink(p.handle); err != nil {
		return err
	}
	if err := a.list.A.Free(p.handle); err != nil {
		return err
	}
	a.live--

	return nil
}

// Compare reports the relative order of a and b, which must belong to
// the same arena as the receiver.
//
// Complexity: O(1).
func (ar *Arena) Compare(a, b *Priority) (Ordering, error) {
	if a == nil || b == nil {
		return Equal, ErrNilPriority
	}

	ar.mu.RLock()
	defer ar.mu.RUnlock()

	if a.arenaID != ar.id || b.arenaID != ar.id {
		return Equal, ErrDifferentArenas
	}
	if a.handle == b.handle {
		return Equal, nil
	}

	baseNode, err := ar.list.A.Get(ar.list.Base)
	if err != nil {
		panic("order: base node missing: " + err.Error())
	}

	aNode, err := ar.list.A.Get(a.handle)
	if err != nil {
		return Equal, ErrAlreadyDeleted
	}
	bNode, err := ar.list.A.Get(b.handle)
	if err != nil {
		return Equal, ErrAlreadyDeleted
	}

	aRank := ar.universe.Rank(aNode.Tag, baseNode.Tag)
	bRank := ar.universe.Rank(bNode.Tag, baseNode.Tag)

	switch {
	case aRank < bRank:
		return Less, nil
	case aRank > bRank:
		return Greater, nil
	default:
		// Distinct live nodes never share a tag, so equal rank here
		// would mean a == b, already handled above.
		return Equal, nil
	}
}

// Drop releases p's share of its arena. If p's node is still linked,
// Drop unlinks and frees it first; if it is already unlinked (deleted
// or already dropped), Drop is a no-op — unlike Delete, Drop never
// reports an error.
func (p *Priority) Drop() {
	if p == nil || p.owner == nil {
		return
	}

	a := p.owner
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.list.A.Get(p.handle); err != nil {
		return
	}

	_ = a.list.Unlink(p.handle)
	_ = a.list.A.Free(p.handle)
	a.live--
}
