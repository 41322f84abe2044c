// Package tag implements the modular tag universe the order-maintenance
// algorithm relabels within.
//
// A universe has a fixed size U, a power of two. Tags are compared not
// by their raw integer value but by their rotated rank relative to an
// arena's base tag: rank(t) = (t - base) mod U. Rank values are
// strictly-ordered integers in [0, U), which is what makes Less/Equal/
// Greater comparisons well defined even though the tag space itself
// wraps around.
//
// Two universe variants are supported:
//
//	Universe63 — U = 2^63, explicit modular reduction on every op. This
//	             is the default and the one validated by this package's
//	             test suite.
//	Universe64 — U = 2^64, relies on uint64 wraparound instead of an
//	             explicit mod. Selected with WithNaturalOverflow; not
//	             independently validated beyond the shared test suite.
//
// Errors:
//
//	ErrNoRoom — Midpoint was asked for a tag strictly between two tags
//	            whose cyclic gap is smaller than 2; there is no integer
//	            between them. Callers (package order, via relabel) must close
//	            this gap before retrying, not treat it as a bug.
package tag
