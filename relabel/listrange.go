package relabel

import (
	"math/bits"

	"github.com/katalvlaran/ordermaint/arena"
	"github.com/katalvlaran/ordermaint/orderlist"
	"github.com/katalvlaran/ordermaint/tag"
)

// ListRange is the list-range relabeling variant: it shares TagRange's
// window walk and redistribution and differs only in its balance
// metric, the window's cyclic tag span rounded up to the smallest power
// of two greater than it. It does not count nodes and does not choose
// window boundaries by a common bit prefix.
type ListRange struct {
	Universe tag.Universe
}

var _ Strategy = ListRange{}

// Relabel implements Strategy.
func (s ListRange) Relabel(l *orderlist.List, n arena.Handle, live int) error {
	return walkAndRedistribute(l, s.Universe, n, live, func(u tag.Universe, leftmost, rightmost tag.Tag) uint64 {
		diff := u.Sub(rightmost, leftmost)
		if diff == 0 {
			return 1
		}
		// bits.Len64(diff) is one past diff's highest set bit, so this
		// is the smallest power of two greater than diff.
		shift := bits.Len64(diff)

		return uint64(1) << uint(shift)
	})
}
