// Package orderlist: see doc.go for the package-level overview.
package orderlist

import (
	"errors"

	"github.com/katalvlaran/ordermaint/arena"
	"github.com/katalvlaran/ordermaint/tag"
)

// ErrUnlinkBase indicates an attempt to unlink the list's base
// sentinel, which must remain present for the arena's lifetime.
var ErrUnlinkBase = errors.New("orderlist: cannot unlink the base node")

// List is a cyclic doubly-linked list of arena.Handle values, rooted
// at Base. It owns no state beyond the Arena and the Base handle; the
// Arena may be shared with the relabel package, which reads and
// rewrites Node.Tag in place but never mutates Prev/Next directly.
type List struct {
	A    *arena.Arena
	Base arena.Handle
}

// New allocates a fresh Arena and a base sentinel node carrying tag 0,
// linked to itself, and returns the List rooted at it.
func New() *List {
	a := arena.New()
	base := a.Allocate(tag.Tag(0))

	n, err := a.Get(base)
	if err != nil {
		// Get immediately after Allocate on a freshly constructed Arena
		// cannot fail; a failure here means arena's own invariants broke.
		panic("orderlist: base allocation invariant violated: " + err.Error())
	}
	n.Prev = base
	n.Next = base

	return &List{A: a, Base: base}
}

// LinkAfter splices the already-allocated node n between p and p's
// current successor. The caller (package order)
// is responsible for having assigned n a tag that keeps the list's
// strictly-increasing rank order intact before calling LinkAfter.
//
// Complexity: O(1).
func (l *List) LinkAfter(p, n arena.Handle) error {
	pNode, err := l.A.Get(p)
	if err != nil {
		return err
	}
	next := pNode.Next

	nextNode, err := l.A.Get(next)
	if err != nil {
		return err
	}

	nNode, err := l.A.Get(n)
	if err != nil {
		return err
	}

	nNode.Prev = p
	nNode.Next = next
	pNode.Next = n
	nextNode.Prev = n

	return nil
}

// Unlink removes n from the list, leaving its Prev/Next handles intact
// (the caller frees n separately). Unlinking the base node is refused.
//
// Complexity: O(1).
func (l *List) Unlink(n arena.Handle) error {
	if n == l.Base {
		return ErrUnlinkBase
	}

	nNode, err := l.A.Get(n)
	if err != nil {
		return err
	}
	prev, next := nNode.Prev, nNode.Next

	prevNode, err := l.A.Get(prev)
	if err != nil {
		return err
	}
	nextNode, err := l.A.Get(next)
	if err != nil {
		return err
	}

	prevNode.Next = next
	nextNode.Prev = prev

	return nil
}

// Successor returns the node immediately after n in list order. The
// base's successor is the first real node, or the base itself if the
// list is empty.
//
// Complexity: O(1).
func (l *List) Successor(n arena.Handle) (arena.Handle, error) {
	node, err := l.A.Get(n)
	if err != nil {
		return arena.Handle{}, err
	}

	return node.Next, nil
}

// Predecessor returns the node immediately before n in list order.
//
// Complexity: O(1).
func (l *List) Predecessor(n arena.Handle) (arena.Handle, error) {
	node, err := l.A.Get(n)
	if err != nil {
		return arena.Handle{}, err
	}

	return node.Prev, nil
}
