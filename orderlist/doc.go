// Package orderlist implements the cyclic doubly-linked list substrate
// the relabeler and the Priority API are built on.
//
// A List is rooted at a base sentinel node that is never exposed to
// clients and never deleted. The list is circular, so "insert before
// the first real node" and "insert after the last real node" are not
// special cases: both simply link_after the base, or link_after the
// node whose successor is the base.
//
// orderlist exposes exactly four operations — LinkAfter, Unlink,
// Successor, Predecessor — and nothing else; it has no notion of tags,
// relabeling, or capacity limits. Those live in packages tag, relabel,
// and order respectively.
//
// Errors:
//
//	ErrUnlinkBase — Unlink was asked to remove the base node, which is
//	                never allowed.
package orderlist
