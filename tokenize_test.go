package stringwars

import (
	"errors"
	"math/rand"
	"slices"
	"strings"
	"testing"
	"unsafe"
)

func TestTokenizeLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"single", "a", []string{"a"}},
		{"trailing terminator", "a\n", []string{"a"}},
		{"two lines", "a\nb", []string{"a", "b"}},
		{"two lines terminated", "a\nb\n", []string{"a", "b"}},
		{"empty line kept", "a\n\nb", []string{"a", "", "b"}},
		{"only terminator", "\n", []string{""}},
		{"two terminators", "\n\n", []string{"", ""}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr kept inside", "a\rb", []string{"a\rb"}},
		{"scenario", "ab\ncde\nf", []string{"ab", "cde", "f"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.content, Lines)
			if err != nil {
				t.Fatalf("Tokenize failed: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestTokenizeWords(t *testing.T) {
	tests := []struct {
		content string
		want    []string
	}{
		{"a", []string{"a"}},
		{"  a  b\t\nc ", []string{"a", "b", "c"}},
		{"one two", []string{"one", "two"}},
		{"x\n\n\ny", []string{"x", "y"}},
	}

	for _, tt := range tests {
		got, err := Tokenize(tt.content, Words)
		if err != nil {
			t.Fatalf("Tokenize(%q) failed: %v", tt.content, err)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("Tokenize(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}

func TestTokenizeFile(t *testing.T) {
	content := "hello world\nsecond line\n"
	got, err := Tokenize(content, File)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(got) != 1 || got[0] != content {
		t.Errorf("Tokenize = %q, want the whole content as one unit", got)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	tests := []struct {
		content string
		mode    Mode
	}{
		{"", Lines},
		{"", Words},
		{"", File},
		{" \t\n ", Words},
	}

	for _, tt := range tests {
		_, err := Tokenize(tt.content, tt.mode)
		if !errors.Is(err, ErrEmptyWorkload) {
			t.Errorf("Tokenize(%q, %v) error = %v, want ErrEmptyWorkload", tt.content, tt.mode, err)
		}
	}
}

func TestTokenizeUnsupportedMode(t *testing.T) {
	_, err := Tokenize("abc", Mode(42))
	if !errors.Is(err, ErrConfig) {
		t.Errorf("expected ErrConfig, got %v", err)
	}
}

func TestTokenizeLineCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	alphabet := []byte("ab \n")

	for range 1000 {
		buf := make([]byte, 1+rng.Intn(40))
		for i := range buf {
			buf[i] = alphabet[rng.Intn(len(alphabet))]
		}
		content := string(buf)

		got, err := Tokenize(content, Lines)
		if err != nil {
			t.Fatalf("Tokenize(%q) failed: %v", content, err)
		}

		want := strings.Count(content, "\n") + 1
		if strings.HasSuffix(content, "\n") {
			want--
		}
		if len(got) != want {
			t.Errorf("Tokenize(%q) produced %d lines, want %d", content, len(got), want)
		}
	}
}

func TestTokenizeWordsNeverEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []byte("xy \t\n\r")

	for range 1000 {
		buf := make([]byte, 1+rng.Intn(40))
		for i := range buf {
			buf[i] = alphabet[rng.Intn(len(alphabet))]
		}

		units, err := Tokenize(string(buf), Words)
		if err != nil {
			continue // whitespace-only input
		}
		for _, u := range units {
			if u == "" {
				t.Fatalf("Tokenize(%q) produced an empty word", buf)
			}
		}
	}
}

func TestTokenizeSharesContent(t *testing.T) {
	content := "alpha beta\ngamma delta\n"
	start := uintptr(unsafe.Pointer(unsafe.StringData(content)))
	end := start + uintptr(len(content))

	for _, mode := range AllModes {
		units, err := Tokenize(content, mode)
		if err != nil {
			t.Fatalf("Tokenize(%v) failed: %v", mode, err)
		}
		for _, u := range units {
			if u == "" {
				continue
			}
			p := uintptr(unsafe.Pointer(unsafe.StringData(u)))
			if p < start || p >= end {
				t.Errorf("%v: unit %q does not point into the dataset", mode, u)
			}
		}
	}
}
