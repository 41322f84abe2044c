package relabel

import (
	"errors"
	"math"

	"github.com/katalvlaran/ordermaint/arena"
	"github.com/katalvlaran/ordermaint/orderlist"
)

// ErrWindowUnbalanced indicates Relabel walked its window out to the
// entire list and still could not find enough room. Callers are
// expected to have already rejected the insertion via CapacityOK
// before ever calling Relabel; this error only surfaces if that guard
// was skipped, so it signals a caller bug rather than a routine
// capacity limit.
var ErrWindowUnbalanced = errors.New("relabel: no balanced window found")

// Strategy rebalances tags in a window around n so that inserting
// immediately after n has room for a fresh tag.
type Strategy interface {
	// Relabel redistributes tags over a contiguous window centered on
	// n. live is the number of live nodes in the arena, excluding the
	// base, before the pending insertion. Relabel mutates node tags in
	// place; the only memory it allocates is the scratch slices that
	// hold the window's handles.
	Relabel(l *orderlist.List, n arena.Handle, live int) error
}

// CapacityOK reports whether the arena can accept one more live node
// without exceeding the growth-limit policy: once live nodes exceed a
// quarter of the universe, insertion must fail with
// CapacityExhausted before any state is touched.
func CapacityOK(bits uint8, liveAfterInsert int) bool {
	limit := universeQuarter(bits)
	return uint64(liveAfterInsert) <= limit
}

func universeQuarter(bits uint8) uint64 {
	if bits == 64 {
		return math.MaxUint64 / 4
	}

	return (uint64(1) << bits) / 4
}

// overflowThreshold computes T * ceil((U/T)^j), saturating at
// math.MaxUint64 instead of overflowing. The ceiling applies to the
// whole power (U/T)^j, not to U/T before it is raised to the jth power
// — those diverge whenever U/T is not an integer, and only the former
// matches the doubling-window density test. float64 loses precision
// for U near 2^63/2^64, but that only matters in the regime where the
// result already saturates to MaxUint64, so it does not change which
// windows are classified as balanced.
func overflowThreshold(bits uint8, liveCount int, j int) uint64 {
	var universeSize uint64
	if bits == 64 {
		universeSize = math.MaxUint64
	} else {
		universeSize = uint64(1) << bits
	}

	t := uint64(liveCount)
	if t == 0 {
		t = 1
	}

	power := math.Pow(float64(universeSize)/float64(t), float64(j))
	if math.IsInf(power, 1) || power >= math.MaxUint64 {
		return math.MaxUint64
	}

	threshold := float64(t) * math.Ceil(power)
	if threshold >= math.MaxUint64 {
		return math.MaxUint64
	}

	return uint64(threshold)
}
