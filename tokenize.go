package stringwars

import (
	"fmt"
	"strings"
)

// Tokenize splits content into units according to mode. Units are
// substrings of content; nothing is copied.
//
// Lines mode splits on '\n' and strips one trailing '\r' per line. A final
// terminator does not produce an extra empty unit, so "a\nb" and "a\nb\n"
// both yield two units, while "a\n\nb" yields three. Words mode splits on
// Unicode whitespace and never yields an empty unit. File mode yields the
// content itself.
//
// An empty result wraps ErrEmptyWorkload.
func Tokenize(content string, mode Mode) ([]string, error) {
	var units []string
	switch mode {
	case Lines:
		units = splitLines(content)
	case Words:
		units = strings.Fields(content)
	case File:
		if content != "" {
			units = []string{content}
		}
	default:
		return nil, fmt.Errorf("%w: unsupported mode %v", ErrConfig, mode)
	}

	if len(units) == 0 {
		return nil, fmt.Errorf("%w: no units found in %s mode", ErrEmptyWorkload, mode)
	}
	return units, nil
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := make([]string, 0, strings.Count(s, "\n")+1)
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, trimCR(s))
			break
		}
		lines = append(lines, trimCR(s[:i]))
		s = s[i+1:]
	}
	return lines
}

func trimCR(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\r' {
		return s[:n-1]
	}
	return s
}
