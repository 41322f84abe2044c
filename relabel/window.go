package relabel

import (
	"github.com/katalvlaran/ordermaint/arena"
	"github.com/katalvlaran/ordermaint/orderlist"
	"github.com/katalvlaran/ordermaint/tag"
)

// rangeFunc computes a strategy's balance-test metric for the window
// bounded by leftmost and rightmost. TagRange and ListRange each
// supply a different one; the window walk and final redistribution
// are otherwise identical between the two.
type rangeFunc func(u tag.Universe, leftmost, rightmost tag.Tag) uint64

// walkAndRedistribute implements the doubling-window search shared by
// both relabeling strategies and, once a balanced window is found,
// evenly respaces its tags.
func walkAndRedistribute(l *orderlist.List, u tag.Universe, center arena.Handle, live int, rf rangeFunc) error {
	total := live + 1 // nodes in the whole cyclic list, including base

	leftList := make([]arena.Handle, 0, 8)  // nearest-to-farthest, left of center
	rightList := make([]arena.Handle, 0, 8) // nearest-to-farthest, right of center
	leftPtr, rightPtr := center, center

	centerNode, err := l.A.Get(center)
	if err != nil {
		return err
	}
	leftmostTag, rightmostTag := centerNode.Tag, centerNode.Tag

	size := 1
	for j := 0; ; j++ {
		metric := rf(u, leftmostTag, rightmostTag)
		threshold := overflowThreshold(u.Bits(), live, j)
		if metric > threshold || size >= total {
			break
		}

		target := size * 2
		if target > total {
			target = total
		}

		growRight := true
		for size < target {
			if growRight {
				rn, err := l.A.Get(rightPtr)
				if err != nil {
					return err
				}
				nextH := rn.Next
				nextNode, err := l.A.Get(nextH)
				if err != nil {
					return err
				}
				rightList = append(rightList, nextH)
				rightPtr = nextH
				rightmostTag = nextNode.Tag
			} else {
				ln, err := l.A.Get(leftPtr)
				if err != nil {
					return err
				}
				prevH := ln.Prev
				prevNode, err := l.A.Get(prevH)
				if err != nil {
					return err
				}
				leftList = append(leftList, prevH)
				leftPtr = prevH
				leftmostTag = prevNode.Tag
			}
			growRight = !growRight
			size++
		}
	}

	window := make([]arena.Handle, 0, size)
	for i := len(leftList) - 1; i >= 0; i-- {
		window = append(window, leftList[i])
	}
	window = append(window, center)
	window = append(window, rightList...)

	return redistribute(l, u, window, leftmostTag)
}

// redistribute evenly spaces the tags of window across the cyclic
// span from window[0]'s current tag to window[len-1]'s current tag,
// inclusive, keeping window[0]'s tag fixed as the anchor.
func redistribute(l *orderlist.List, u tag.Universe, window []arena.Handle, anchor tag.Tag) error {
	n := len(window)
	if n <= 1 {
		return nil
	}

	span := u.Sub(mustTag(l, window[n-1]), anchor) + 1
	step := span / uint64(n)
	if step < 2 {
		return ErrWindowUnbalanced
	}

	for i, h := range window {
		node, err := l.A.Get(h)
		if err != nil {
			return err
		}
		node.Tag = u.Add(anchor, uint64(i)*step)
	}

	return nil
}

func mustTag(l *orderlist.List, h arena.Handle) tag.Tag {
	n, err := l.A.Get(h)
	if err != nil {
		// Handles passed here were all just read from the live list by
		// walkAndRedistribute in the same single-mutator critical
		// section; a failure indicates an arena invariant violation.
		panic("relabel: handle vanished mid-redistribution: " + err.Error())
	}

	return n.Tag
}
