package naive

import (
	"errors"
	"math/big"
	"sync"
)

// ErrUnknownID reports an ID that was never inserted or has since been
// deleted.
var ErrUnknownID = errors.New("naive: unknown id")

// ID identifies one entry in a List. The zero ID is the hidden base
// entry, mirroring order.Arena's hidden base node.
type ID uint64

// base is the sentinel entry every List is seeded with, fixed at
// rational zero.
const base ID = 0

// List is an ordered set of rational tags. Unlike package order, it
// never relabels: a new tag is always the exact rational midpoint
// between its neighbors, which is always distinct from both as long
// as big.Rat arithmetic is exact — which it is.
type List struct {
	mu   sync.Mutex
	tags map[ID]*big.Rat
	next ID
}

// New returns a List containing only the hidden base entry.
func New() *List {
	return &List{
		tags: map[ID]*big.Rat{base: big.NewRat(0, 1)},
		next: base + 1,
	}
}

// InsertAfterBase inserts a fresh entry immediately after the hidden
// base entry.
func (l *List) InsertAfterBase() ID {
	return l.InsertAfter(base)
}

// InsertAfter inserts a fresh entry immediately after id and returns
// its new ID.
func (l *List) InsertAfter(id ID) ID {
	l.mu.Lock()
	defer l.mu.Unlock()

	cur, ok := l.tags[id]
	if !ok {
		panic("naive: InsertAfter on unknown id")
	}

	succ := l.successorRatLocked(cur)
	mid := new(big.Rat)
	if succ == nil {
		mid.Add(cur, big.NewRat(1, 1))
	} else {
		mid.Add(cur, succ)
		mid.Quo(mid, big.NewRat(2, 1))
	}

	newID := l.next
	l.next++
	l.tags[newID] = mid

	return newID
}

// successorRatLocked returns the smallest tag strictly greater than
// cur, or nil if cur is currently the largest live tag. Callers must
// hold l.mu.
func (l *List) successorRatLocked(cur *big.Rat) *big.Rat {
	var best *big.Rat
	for _, r := range l.tags {
		if r.Cmp(cur) <= 0 {
			continue
		}
		if best == nil || r.Cmp(best) < 0 {
			best = r
		}
	}

	return best
}

// Delete removes id from the list. Deleting an unknown or already
// deleted ID is a no-op.
func (l *List) Delete(id ID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.tags, id)
}

// Compare reports the sign of a's tag minus b's tag: negative if a
// precedes b, zero if equal, positive if a follows b.
func (l *List) Compare(a, b ID) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ra, ok := l.tags[a]
	if !ok {
		return 0, ErrUnknownID
	}
	rb, ok := l.tags[b]
	if !ok {
		return 0, ErrUnknownID
	}

	return ra.Cmp(rb), nil
}
