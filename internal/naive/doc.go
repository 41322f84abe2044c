// Package naive implements a rational-tag baseline priority scheme,
// kept only as a correctness oracle for testing the real order
// package: a structurally unrelated, trivially-correct ordered
// structure to cross-check relative order against.
//
// Every live entry carries a distinct *big.Rat. Insertion always finds
// a free value by taking the rational midpoint between neighbors, so
// this implementation never needs to relabel anything — the price is
// O(n) successor lookup and unbounded denominator growth, both fine
// for a package that exists only to check another implementation's
// answers in tests.
package naive
