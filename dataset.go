package stringwars

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// LoadDataset reads the whole file at path. The content must be valid
// UTF-8. Units produced from the returned string share its memory.
func LoadDataset(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrDataset, path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrDataset, path)
	}
	return string(data), nil
}
