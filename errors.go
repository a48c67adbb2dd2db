package stringwars

import "errors"

var (
	// ErrConfig is returned when the harness configuration is missing or invalid.
	ErrConfig = errors.New("stringwars: invalid configuration")

	// ErrDataset is returned when the dataset cannot be read or is not valid UTF-8.
	ErrDataset = errors.New("stringwars: unreadable dataset")

	// ErrEmptyWorkload is returned when tokenization or pairing leaves nothing to measure.
	ErrEmptyWorkload = errors.New("stringwars: empty workload")

	// ErrUnknownCandidate is returned when a candidate does not belong to a group.
	ErrUnknownCandidate = errors.New("stringwars: unknown candidate")
)
