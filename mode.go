package stringwars

import (
	"fmt"
	"strings"
)

// Mode selects how dataset content is split into units.
type Mode uint8

const (
	// Lines splits on line boundaries. Empty lines are kept as empty units.
	Lines Mode = iota
	// Words splits on runs of whitespace. Empty units are dropped.
	Words
	// File treats the whole dataset as a single unit.
	File
)

var modeNames = [...]string{
	Lines: "lines",
	Words: "words",
	File:  "file",
}

// AllModes lists every tokenization mode in declaration order.
var AllModes = []Mode{Lines, Words, File}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode parses a mode name. Unrecognized names wrap ErrConfig and list
// the valid choices.
func ParseMode(s string) (Mode, error) {
	for _, m := range AllModes {
		if s == m.String() {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unrecognized mode %q (valid: %s)", ErrConfig, s, joinModes(AllModes))
}

func joinModes(modes []Mode) string {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}
