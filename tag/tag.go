package tag

import "errors"

// ErrNoRoom indicates the cyclic gap between two tags is smaller than 2,
// so no integer tag exists strictly between them.
var ErrNoRoom = errors.New("tag: no room for a midpoint tag")

// Tag is an integer label in a modular ring. Tags are never compared
// directly by callers outside this package; comparisons always go
// through Rank relative to some reference (the owning arena's base
// tag).
type Tag uint64

// Universe describes the modular ring a set of Tag values lives in.
// The zero Universe is invalid; use Universe63 or Universe64.
type Universe struct {
	bits uint8 // 63 or 64
}

// Universe63 is the reference universe: U = 2^63. Every arithmetic op
// performs an explicit modular reduction, guaranteeing a doubled tag
// never overflows a machine word.
func Universe63() Universe { return Universe{bits: 63} }

// Universe64 relies on native uint64 wraparound instead of an explicit
// mod. It removes a mask from every hot-path op at the cost of being
// less battle-tested; this variant has not been independently
// validated beyond the shared test suite Universe63 also runs.
func Universe64() Universe { return Universe{bits: 64} }

// Size returns U, the number of distinct tags in the universe. Size
// reports 0 for Universe64, since 2^64 does not fit in a uint64; that
// case is handled by letting arithmetic wrap natively instead of
// masking against Size()-1.
func (u Universe) Size() uint64 {
	if u.bits == 64 {
		return 0
	}
	return uint64(1) << u.bits
}

// Bits reports the universe's width in bits (63 or 64).
func (u Universe) Bits() uint8 { return u.bits }

// Half returns U/2, computed directly rather than via Size()/2 so it
// stays correct for Universe64, whose true size does not fit a uint64.
func (u Universe) Half() uint64 {
	if u.bits == 64 {
		return uint64(1) << 63
	}
	return uint64(1) << (u.bits - 1)
}

func (u Universe) mask() uint64 {
	if u.bits == 64 {
		return ^uint64(0)
	}
	return u.Size() - 1
}

// Sub returns the cyclic forward distance from b to a: (a - b) mod U.
// This is the "rotated rank" primitive every comparison in the package
// is built on.
func (u Universe) Sub(a, b Tag) uint64 {
	return (uint64(a) - uint64(b)) & u.mask()
}

// Add returns a + d, reduced into the universe.
func (u Universe) Add(a Tag, d uint64) Tag {
	return Tag((uint64(a) + d) & u.mask())
}

// Rank returns the rotated rank of t relative to base: (t - base) mod
// U. Rank values are strictly-ordered integers in [0, U), so two ranks
// can be compared with plain <, ==, > once both are taken relative to
// the same base.
func (u Universe) Rank(t, base Tag) uint64 {
	return u.Sub(t, base)
}

// Midpoint returns a tag strictly between a and b in cyclic order,
// anchored at a. It requires Sub(b, a) >= 2; otherwise there is no
// integer tag strictly between them and Midpoint reports ErrNoRoom
// instead of returning a colliding or out-of-order tag.
func (u Universe) Midpoint(a, b Tag) (Tag, error) {
	gap := u.Sub(b, a)
	if gap < 2 {
		return 0, ErrNoRoom
	}

	return u.Add(a, gap/2), nil
}
