package stringwars

import (
	"errors"
	"slices"
	"testing"
)

func TestCandidateNamesUnique(t *testing.T) {
	seen := make(map[string]CandidateID)
	for _, id := range Candidates() {
		name := id.String()
		if name == "" {
			t.Errorf("candidate %d has no name", id)
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("name %q used by %d and %d", name, prev, id)
		}
		seen[name] = id

		got, err := LookupCandidate(name)
		if err != nil {
			t.Errorf("LookupCandidate(%q) failed: %v", name, err)
		}
		if got != id {
			t.Errorf("LookupCandidate(%q) = %d, want %d", name, got, id)
		}
	}

	if _, err := LookupCandidate("memchr::memmem"); !errors.Is(err, ErrUnknownCandidate) {
		t.Errorf("expected ErrUnknownCandidate, got %v", err)
	}
	if s := numCandidates.String(); s != "CandidateID(15)" {
		t.Errorf("out-of-range String() = %q", s)
	}
}

func TestCandidateConstructorsMatchShape(t *testing.T) {
	for _, id := range Candidates() {
		_, unitErr := id.UnitFunc()
		_, pairErr := id.PairFunc()
		_, needleErr := id.NeedleFunc("haystack")
		_, findErr := id.FindFunc()

		switch id.Shape() {
		case ShapeUnit:
			if unitErr != nil || pairErr == nil || needleErr == nil || findErr == nil {
				t.Errorf("%v: unit candidate exposes the wrong constructors", id)
			}
		case ShapePair:
			if pairErr != nil || unitErr == nil || needleErr == nil || findErr == nil {
				t.Errorf("%v: pair candidate exposes the wrong constructors", id)
			}
		case ShapeNeedle:
			if needleErr != nil || findErr != nil || unitErr == nil || pairErr == nil {
				t.Errorf("%v: search candidate exposes the wrong constructors", id)
			}
		}
	}
}

func TestHashCandidates(t *testing.T) {
	for _, id := range HashGroup.Candidates {
		t.Run(id.String(), func(t *testing.T) {
			f, err := id.UnitFunc()
			if err != nil {
				t.Fatalf("UnitFunc failed: %v", err)
			}

			if f("hello") != f("hello") {
				t.Error("hash is not deterministic within a run")
			}
			if f("hello") == f("world") {
				t.Error("expected different hashes for hello and world")
			}
			_ = f("") // must not panic
		})
	}
}

func TestCRC32CheckValue(t *testing.T) {
	f, err := CRC32Checksum.UnitFunc()
	if err != nil {
		t.Fatal(err)
	}
	// Standard CRC-32C check value.
	if got := f("123456789"); got != 0xE3069283 {
		t.Errorf("crc32c(123456789) = %#x, want 0xe3069283", got)
	}
}

func TestXXHashImplementationsAgree(t *testing.T) {
	cespare, _ := XXHash64.UnitFunc()
	oneofone, _ := OneOfOneXXHash64.UnitFunc()

	for _, s := range []string{"", "a", "kitten", "the quick brown fox jumps over the lazy dog"} {
		if cespare(s) != oneofone(s) {
			t.Errorf("xxh64(%q): cespare=%#x oneofone=%#x", s, cespare(s), oneofone(s))
		}
	}
}

func TestLevenshteinCandidates(t *testing.T) {
	tests := []struct {
		a, b string
		want uint64
	}{
		{"kitten", "sitting", 3},
		{"", "", 0},
		{"", "abc", 3},
		{"flaw", "lawn", 2},
		{"same", "same", 0},
	}

	for _, id := range []CandidateID{WagnerFischer, AgextDistance} {
		f, err := id.PairFunc()
		if err != nil {
			t.Fatalf("%v: PairFunc failed: %v", id, err)
		}
		for _, tt := range tests {
			if got := f(Pair{tt.a, tt.b}, 0); got != tt.want {
				t.Errorf("%v(%q, %q) = %d, want %d", id, tt.a, tt.b, got, tt.want)
			}
		}
	}

	ukkonen, err := Ukkonen.PairFunc()
	if err != nil {
		t.Fatal(err)
	}
	if got := ukkonen(Pair{"kitten", "sitting"}, 0); got != 3 {
		t.Errorf("ukkonen(kitten, sitting) = %d, want 3", got)
	}
}

func TestLevenshteinRunesVersusBytes(t *testing.T) {
	p := Pair{"grün", "grun"}

	bytesFn, _ := WagnerFischer.PairFunc()
	runesFn, _ := AgextDistance.PairFunc()

	// ü is two bytes: one substitution plus one deletion at byte level.
	if got := bytesFn(p, 0); got != 2 {
		t.Errorf("byte distance = %d, want 2", got)
	}
	if got := runesFn(p, 0); got != 1 {
		t.Errorf("rune distance = %d, want 1", got)
	}
}

func TestAgextBounded(t *testing.T) {
	f, err := AgextBounded.PairFunc()
	if err != nil {
		t.Fatal(err)
	}

	p := Pair{"kitten", "sitting"}
	if got := f(p, 5); got != 3 {
		t.Errorf("bound 5: got %d, want the exact distance 3", got)
	}
	if got := f(p, 1); got <= 1 {
		t.Errorf("bound 1: got %d, want a value above the bound", got)
	}
	if got := f(p, 0); got != 1 {
		t.Errorf("bound 0, different strings: got %d, want 1", got)
	}
	if got := f(Pair{"same", "same"}, 0); got != 0 {
		t.Errorf("bound 0, equal strings: got %d, want 0", got)
	}
}

func TestSearchCandidates(t *testing.T) {
	const haystack = "abcabc"
	tests := []struct {
		needle           string
		forward, reverse uint64
	}{
		{"bc", 2, 5},
		{"abc", 1, 4},
		{"zz", 0, 0},
		{"abcabcabc", 0, 0},
	}

	for _, id := range slices.Concat(SearchForwardGroup.Candidates, SearchReverseGroup.Candidates) {
		f, err := id.NeedleFunc(haystack)
		if err != nil {
			t.Fatalf("%v: NeedleFunc failed: %v", id, err)
		}
		find, err := id.FindFunc()
		if err != nil {
			t.Fatalf("%v: FindFunc failed: %v", id, err)
		}

		for _, tt := range tests {
			want := tt.forward
			if id.Direction() == Reverse {
				want = tt.reverse
			}
			if got := f(tt.needle); got != want {
				t.Errorf("%v(%q) = %d, want %d", id, tt.needle, got, want)
			}
			if got := find([]byte(haystack), []byte(tt.needle)); got != int(want)-1 {
				t.Errorf("%v find(%q) = %d, want %d", id, tt.needle, got, int(want)-1)
			}
		}
	}
}
