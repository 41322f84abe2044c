package order

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/katalvlaran/ordermaint/arena"
	"github.com/katalvlaran/ordermaint/orderlist"
	"github.com/katalvlaran/ordermaint/relabel"
	"github.com/katalvlaran/ordermaint/tag"
)

// Sentinel errors for the order package. See doc.go for a one-line
// summary of each.
var (
	ErrNilPriority       = errors.New("order: priority is nil")
	ErrDifferentArenas   = errors.New("order: priorities belong to different arenas")
	ErrAlreadyDeleted    = errors.New("order: priority is already deleted")
	ErrCapacityExhausted = errors.New("order: arena capacity exhausted")
)

// Ordering is the result of comparing two priorities.
type Ordering int

const (
	Less Ordering = iota
	Equal
	Greater
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Ordering(?)"
	}
}

// arenaConfig accumulates ArenaOption values before NewArena builds the
// Arena. The zero value selects the reference configuration: a 2^63
// universe with Dietz–Sleator tag-range relabeling.
type arenaConfig struct {
	naturalOverflow bool
	listRange       bool
}

// ArenaOption configures an Arena at construction time.
type ArenaOption func(*arenaConfig)

// WithNaturalOverflow selects the 2^64 universe, relying on uint64
// wraparound instead of an explicit modular reduction. The default is
// the 2^63 reference universe.
func WithNaturalOverflow() ArenaOption {
	return func(c *arenaConfig) { c.naturalOverflow = true }
}

// WithListRangeStrategy selects Bender et al. list-range relabeling
// instead of the default Dietz–Sleator tag-range strategy.
func WithListRangeStrategy() ArenaOption {
	return func(c *arenaConfig) { c.listRange = true }
}

// Arena owns one totally ordered sequence of priorities. The zero
// Arena is not usable; construct one with NewArena.
type Arena struct {
	mu sync.RWMutex

	id       uuid.UUID
	universe tag.Universe
	list     *orderlist.List
	strategy relabel.Strategy
	live     int // live priorities, excluding the base sentinel
}

// ID returns the arena's opaque, process-local identity.
func (a *Arena) ID() uuid.UUID { return a.id }

// Live returns the number of live priorities in the arena, excluding
// the hidden base sentinel.
func (a *Arena) Live() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.live
}

// Priority is an opaque handle into an Arena's ordered sequence. The
// zero Priority is not valid; obtain one from Arena.InsertAfterBase or
// Arena.InsertAfter.
type Priority struct {
	arenaID uuid.UUID
	owner   *Arena
	handle  arena.Handle
}
