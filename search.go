package stringwars

import (
	"bytes"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

// FindFunc returns the index of needle in haystack, or -1.
type FindFunc func(haystack, needle []byte) int

// foundAt maps an index (or -1) to a non-negative result.
func foundAt(i int) uint64 {
	return uint64(i + 1)
}

func newBytesIndex(haystack string) UnitFunc {
	h := stringBytes(haystack)
	return func(needle string) uint64 {
		return foundAt(bytes.Index(h, stringBytes(needle)))
	}
}

func newStringsIndex(haystack string) UnitFunc {
	return func(needle string) uint64 {
		return foundAt(strings.Index(haystack, needle))
	}
}

// newTextSearch uses a root-locale collation matcher, so matches are
// canonical-equivalence aware rather than byte exact.
func newTextSearch(haystack string) UnitFunc {
	m := search.New(language.Und)
	return func(needle string) uint64 {
		start, _ := m.IndexString(haystack, needle)
		return foundAt(start)
	}
}

func newBytesLastIndex(haystack string) UnitFunc {
	h := stringBytes(haystack)
	return func(needle string) uint64 {
		return foundAt(bytes.LastIndex(h, stringBytes(needle)))
	}
}

func newStringsLastIndex(haystack string) UnitFunc {
	return func(needle string) uint64 {
		return foundAt(strings.LastIndex(haystack, needle))
	}
}

func findBytesIndex() FindFunc {
	return bytes.Index
}

func findStringsIndex() FindFunc {
	return func(haystack, needle []byte) int {
		return strings.Index(string(haystack), string(needle))
	}
}

func findTextSearch() FindFunc {
	m := search.New(language.Und)
	return func(haystack, needle []byte) int {
		start, _ := m.Index(haystack, needle)
		return start
	}
}

func findBytesLastIndex() FindFunc {
	return bytes.LastIndex
}

func findStringsLastIndex() FindFunc {
	return func(haystack, needle []byte) int {
		return strings.LastIndex(string(haystack), string(needle))
	}
}
