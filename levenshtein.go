package stringwars

import (
	"github.com/agext/levenshtein"
	"github.com/xrash/smetrics"
)

// Byte-level, unbounded: both smetrics implementations index the strings
// directly.

func newWagnerFischer() PairFunc {
	return func(p Pair, _ int) uint64 {
		return uint64(smetrics.WagnerFischer(p.A, p.B, 1, 1, 1))
	}
}

func newUkkonen() PairFunc {
	return func(p Pair, _ int) uint64 {
		return uint64(smetrics.Ukkonen(p.A, p.B, 1, 1, 1))
	}
}

// Rune-level: agext converts both strings to runes.

func newAgextDistance() PairFunc {
	return func(p Pair, _ int) uint64 {
		return uint64(levenshtein.Distance(p.A, p.B, nil))
	}
}

// newAgextBounded stops once the distance exceeds bound. agext reads a
// maxCost of 0 as unlimited, so a zero bound is answered directly: 0 for
// equal strings, 1 for anything else.
func newAgextBounded() PairFunc {
	return func(p Pair, bound int) uint64 {
		if bound == 0 {
			if p.A == p.B {
				return 0
			}
			return 1
		}
		dist, _, _ := levenshtein.Calculate([]rune(p.A), []rune(p.B), bound, 1, 1, 1)
		return uint64(dist)
	}
}
