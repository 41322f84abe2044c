package relabel

import (
	"github.com/katalvlaran/ordermaint/arena"
	"github.com/katalvlaran/ordermaint/orderlist"
	"github.com/katalvlaran/ordermaint/tag"
)

// TagRange implements Dietz–Sleator tag-range relabeling: the
// reference strategy, and the default for order.NewArena. The balance
// test compares the window's actual cyclic tag span against
// overflowThreshold(j) directly.
type TagRange struct {
	Universe tag.Universe
}

var _ Strategy = TagRange{}

// Relabel implements Strategy.
func (s TagRange) Relabel(l *orderlist.List, n arena.Handle, live int) error {
	return walkAndRedistribute(l, s.Universe, n, live, func(u tag.Universe, leftmost, rightmost tag.Tag) uint64 {
		return u.Sub(rightmost, leftmost) + 1
	})
}
