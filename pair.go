package stringwars

import "fmt"

// Pair is two consecutive units fed to a two-argument candidate.
type Pair struct {
	A, B string
}

// PairUp groups units into adjacent, non-overlapping pairs. A trailing
// unpaired unit is dropped. When maxPairs is non-negative and smaller than
// the natural pair count, only the first maxPairs pairs are kept; pass a
// negative maxPairs for no cap.
//
// Fewer than two units, or zero pairs after the cap, wraps ErrEmptyWorkload.
func PairUp(units []string, maxPairs int) ([]Pair, error) {
	if len(units) < 2 {
		return nil, fmt.Errorf("%w: need at least two units to pair, got %d", ErrEmptyWorkload, len(units))
	}

	n := len(units) / 2
	if maxPairs >= 0 && maxPairs < n {
		n = maxPairs
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: pair cap %d leaves no pairs", ErrEmptyWorkload, maxPairs)
	}

	pairs := make([]Pair, n)
	for i := range pairs {
		pairs[i] = Pair{A: units[2*i], B: units[2*i+1]}
	}
	return pairs, nil
}

// Bound returns floor(max(len(a), len(b)) * percent / 100), using byte
// lengths. percent is expected in 0..100.
func Bound(p Pair, percent int) int {
	return max(len(p.A), len(p.B)) * percent / 100
}

// Bounds computes the bound of every pair once, index-aligned with pairs.
func Bounds(pairs []Pair, percent int) []int {
	bounds := make([]int, len(pairs))
	for i, p := range pairs {
		bounds[i] = Bound(p, percent)
	}
	return bounds
}
