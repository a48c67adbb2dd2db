package stringwars

import (
	"fmt"
	"slices"
	"testing"
)

// Group is a named comparison: a set of candidates measured against one
// shared workload and throughput unit.
type Group struct {
	Name       string
	Modes      []Mode
	Shape      Shape
	Candidates []CandidateID
}

var (
	// HashGroup compares checksums and hash functions over single units.
	HashGroup = Group{
		Name:       "hash",
		Modes:      []Mode{Lines, Words, File},
		Shape:      ShapeUnit,
		Candidates: []CandidateID{CRC32Checksum, MaphashHash, XXH3, XXHash64, OneOfOneXXHash64, Blake3},
	}

	// LevenshteinGroup compares edit-distance implementations over pairs.
	LevenshteinGroup = Group{
		Name:       "levenshtein",
		Modes:      []Mode{Lines, Words},
		Shape:      ShapePair,
		Candidates: []CandidateID{WagnerFischer, Ukkonen, AgextDistance, AgextBounded},
	}

	// SearchForwardGroup looks up every unit in the whole dataset, front to back.
	SearchForwardGroup = Group{
		Name:       "search-forward",
		Modes:      []Mode{Lines, Words},
		Shape:      ShapeNeedle,
		Candidates: []CandidateID{BytesIndex, StringsIndex, TextSearch},
	}

	// SearchReverseGroup looks up every unit in the whole dataset, back to front.
	SearchReverseGroup = Group{
		Name:       "search-reverse",
		Modes:      []Mode{Lines, Words},
		Shape:      ShapeNeedle,
		Candidates: []CandidateID{BytesLastIndex, StringsLastIndex},
	}
)

// Groups returns every predefined group.
func Groups() []Group {
	return []Group{HashGroup, LevenshteinGroup, SearchForwardGroup, SearchReverseGroup}
}

// LookupGroup finds a predefined group by name.
func LookupGroup(name string) (Group, error) {
	for _, g := range Groups() {
		if g.Name == name {
			return g, nil
		}
	}
	return Group{}, fmt.Errorf("%w: unknown group %q", ErrConfig, name)
}

// Workload is the immutable pool a group's candidates are measured against.
type Workload struct {
	Group Group
	Mode  Mode

	// Units holds the tokenized units for unit groups and the needles for
	// search groups.
	Units []string
	// Pairs and Bounds are set for pair groups and index-aligned.
	Pairs  []Pair
	Bounds []int
	// Haystack is the whole dataset for search groups.
	Haystack string

	Throughput Throughput
}

// Prepare builds the workload for g from the dataset content. It fails with
// an ErrConfig or ErrEmptyWorkload error before anything is measured.
func Prepare(cfg Config, content string, g Group) (*Workload, error) {
	if !slices.Contains(g.Modes, cfg.Mode) {
		return nil, fmt.Errorf("%w: group %s does not support mode %q (valid: %s)",
			ErrConfig, g.Name, cfg.Mode, joinModes(g.Modes))
	}

	units, err := Tokenize(content, cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("group %s: %w", g.Name, err)
	}

	w := &Workload{Group: g, Mode: cfg.Mode}
	switch g.Shape {
	case ShapeUnit:
		w.Units = units
		w.Throughput = unitThroughput(units)
	case ShapePair:
		pairs, err := PairUp(units, cfg.MaxPairs)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", g.Name, err)
		}
		w.Pairs = pairs
		w.Bounds = Bounds(pairs, cfg.ErrorBound)
		w.Throughput = pairThroughput(pairs)
	case ShapeNeedle:
		w.Units = units
		w.Haystack = content
		w.Throughput = haystackThroughput(content)
	default:
		return nil, fmt.Errorf("%w: group %s has unknown shape %v", ErrConfig, g.Name, g.Shape)
	}

	cfg.logger().Info("prepared workload",
		"group", g.Name,
		"mode", cfg.Mode.String(),
		"units", len(units),
		"pairs", len(w.Pairs),
		"throughput", w.Throughput.Kind.String(),
		"total", w.Throughput.Total,
	)
	return w, nil
}

// PrepareAll loads the dataset once and prepares every group in groups.
// Any failure aborts the whole set, so nothing runs on a partial setup.
func PrepareAll(cfg Config, groups []Group) ([]*Workload, error) {
	content, err := LoadDataset(cfg.Dataset)
	if err != nil {
		return nil, err
	}
	cfg.logger().Info("loaded dataset", "path", cfg.Dataset, "bytes", len(content))

	workloads := make([]*Workload, 0, len(groups))
	for _, g := range groups {
		w, err := Prepare(cfg, content, g)
		if err != nil {
			return nil, err
		}
		workloads = append(workloads, w)
	}
	return workloads, nil
}

// Step returns a zero-argument closure that draws the next item from a
// fresh cycle over the pool and invokes the candidate on it. Every call to
// Step starts a new cycle at the first item.
func (w *Workload) Step(id CandidateID) (func(), error) {
	if !slices.Contains(w.Group.Candidates, id) {
		return nil, fmt.Errorf("%w: %v is not part of group %s", ErrUnknownCandidate, id, w.Group.Name)
	}

	switch w.Group.Shape {
	case ShapeUnit:
		f, err := id.UnitFunc()
		if err != nil {
			return nil, err
		}
		c := NewCycle(w.Units)
		return func() {
			u, _ := c.Next()
			sink += f(u)
		}, nil
	case ShapePair:
		f, err := id.PairFunc()
		if err != nil {
			return nil, err
		}
		c := NewCycle(w.Pairs)
		bounds := w.Bounds
		return func() {
			p, i := c.Next()
			sink += f(p, bounds[i])
		}, nil
	case ShapeNeedle:
		f, err := id.NeedleFunc(w.Haystack)
		if err != nil {
			return nil, err
		}
		c := NewCycle(w.Units)
		return func() {
			n, _ := c.Next()
			sink += f(n)
		}, nil
	default:
		return nil, fmt.Errorf("%w: group %s has unknown shape %v", ErrConfig, w.Group.Name, w.Group.Shape)
	}
}

// Benchmark adapts a candidate to the testing benchmark engine. Byte groups
// declare their per-op size with SetBytes; pair groups report pairs/s.
func (w *Workload) Benchmark(id CandidateID) (func(b *testing.B), error) {
	// Validate once up front so the engine never sees a broken candidate.
	if _, err := w.Step(id); err != nil {
		return nil, err
	}

	tp := w.Throughput
	return func(b *testing.B) {
		step, err := w.Step(id)
		if err != nil {
			b.Fatal(err)
		}
		if tp.Kind == Bytes {
			b.SetBytes(tp.PerOp)
		}
		b.ResetTimer()
		for range b.N {
			step()
		}
		if tp.Kind == Elements {
			if secs := b.Elapsed().Seconds(); secs > 0 {
				b.ReportMetric(float64(b.N)*float64(tp.PerOp)/secs, "pairs/s")
			}
		}
	}, nil
}

// Run registers one sub-benchmark per candidate of the group.
func (w *Workload) Run(b *testing.B) {
	for _, id := range w.Group.Candidates {
		fn, err := w.Benchmark(id)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(id.String(), fn)
	}
}
