// Package order: see doc.go for the package-level overview.
//
// This file is a thin, deterministic public facade exposing the Arena
// constructor, keeping constructor and option application free of
// algorithmic logic.
package order

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/ordermaint/orderlist"
	"github.com/katalvlaran/ordermaint/relabel"
	"github.com/katalvlaran/ordermaint/tag"
)

// NewArena constructs a fresh Arena with a single base node and no
// live priorities. By default it uses the 2^63 reference universe and
// Dietz–Sleator tag-range relabeling; opts are applied left-to-right.
//
// Complexity: O(1).
func NewArena(opts ...ArenaOption) *Arena {
	cfg := arenaConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	universe := tag.Universe63()
	if cfg.naturalOverflow {
		universe = tag.Universe64()
	}

	var strategy relabel.Strategy
	if cfg.listRange {
		strategy = relabel.ListRange{Universe: universe}
	} else {
		strategy = relabel.TagRange{Universe: universe}
	}

	return &Arena{
		id:       uuid.New(),
		universe: universe,
		list:     orderlist.New(),
		strategy: strategy,
	}
}
