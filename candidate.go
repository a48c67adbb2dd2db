package stringwars

import "fmt"

// Shape is the kind of workload item a candidate consumes.
type Shape uint8

const (
	// ShapeUnit candidates take one unit (hashing).
	ShapeUnit Shape = iota
	// ShapePair candidates take a pair and its bound (edit distance).
	ShapePair
	// ShapeNeedle candidates search for one unit in the whole dataset.
	ShapeNeedle
)

func (s Shape) String() string {
	switch s {
	case ShapeUnit:
		return "unit"
	case ShapePair:
		return "pair"
	case ShapeNeedle:
		return "needle"
	default:
		return fmt.Sprintf("Shape(%d)", s)
	}
}

// Direction is the scan direction of a search candidate.
type Direction uint8

const (
	Forward Direction = iota
	Reverse
)

// UnitFunc computes a result from a single unit.
type UnitFunc func(unit string) uint64

// PairFunc computes a result from a pair. Bounded candidates may stop early
// once the result is known to exceed bound; others ignore it.
type PairFunc func(p Pair, bound int) uint64

// CandidateID identifies one implementation/variant under comparison. The
// set is closed: every candidate the harness knows is listed below.
type CandidateID uint8

const (
	CRC32Checksum CandidateID = iota
	MaphashHash
	XXH3
	XXHash64
	OneOfOneXXHash64
	Blake3

	WagnerFischer
	Ukkonen
	AgextDistance
	AgextBounded

	BytesIndex
	StringsIndex
	TextSearch
	BytesLastIndex
	StringsLastIndex

	numCandidates
)

type candidate struct {
	name  string
	shape Shape
	dir   Direction

	// The constructor matching shape is set; search candidates also carry
	// find. Constructors run once per measured run, outside the timed loop.
	unit   func() UnitFunc
	pair   func() PairFunc
	needle func(haystack string) UnitFunc
	find   func() FindFunc
}

var candidates = [numCandidates]candidate{
	CRC32Checksum:    {name: "crc32::checksum", shape: ShapeUnit, unit: newCRC32},
	MaphashHash:      {name: "maphash::hash", shape: ShapeUnit, unit: newMaphash},
	XXH3:             {name: "xxh3", shape: ShapeUnit, unit: newXXH3},
	XXHash64:         {name: "xxhash::xxh64", shape: ShapeUnit, unit: newXXHash64},
	OneOfOneXXHash64: {name: "oneofone::xxh64", shape: ShapeUnit, unit: newOneOfOneXXHash64},
	Blake3:           {name: "blake3", shape: ShapeUnit, unit: newBlake3},

	WagnerFischer: {name: "smetrics::wagner-fischer", shape: ShapePair, pair: newWagnerFischer},
	Ukkonen:       {name: "smetrics::ukkonen", shape: ShapePair, pair: newUkkonen},
	AgextDistance: {name: "agext::distance", shape: ShapePair, pair: newAgextDistance},
	AgextBounded:  {name: "agext::bounded", shape: ShapePair, pair: newAgextBounded},

	BytesIndex:       {name: "bytes::index", shape: ShapeNeedle, dir: Forward, needle: newBytesIndex, find: findBytesIndex},
	StringsIndex:     {name: "strings::index", shape: ShapeNeedle, dir: Forward, needle: newStringsIndex, find: findStringsIndex},
	TextSearch:       {name: "xtext::search", shape: ShapeNeedle, dir: Forward, needle: newTextSearch, find: findTextSearch},
	BytesLastIndex:   {name: "bytes::last-index", shape: ShapeNeedle, dir: Reverse, needle: newBytesLastIndex, find: findBytesLastIndex},
	StringsLastIndex: {name: "strings::last-index", shape: ShapeNeedle, dir: Reverse, needle: newStringsLastIndex, find: findStringsLastIndex},
}

func (id CandidateID) valid() bool {
	return id < numCandidates
}

// String returns the candidate's report name, e.g. "xxh3".
func (id CandidateID) String() string {
	if !id.valid() {
		return fmt.Sprintf("CandidateID(%d)", id)
	}
	return candidates[id].name
}

// Shape returns the workload shape the candidate consumes.
func (id CandidateID) Shape() Shape {
	return candidates[id].shape
}

// Direction returns the scan direction of a search candidate. It is
// Forward for every other shape.
func (id CandidateID) Direction() Direction {
	return candidates[id].dir
}

// Candidates returns every known candidate in declaration order.
func Candidates() []CandidateID {
	ids := make([]CandidateID, numCandidates)
	for i := range ids {
		ids[i] = CandidateID(i)
	}
	return ids
}

// LookupCandidate finds a candidate by its report name.
func LookupCandidate(name string) (CandidateID, error) {
	for i, c := range candidates {
		if c.name == name {
			return CandidateID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCandidate, name)
}

// UnitFunc returns the callable for a unit-shaped candidate.
func (id CandidateID) UnitFunc() (UnitFunc, error) {
	if !id.valid() || candidates[id].unit == nil {
		return nil, fmt.Errorf("%w: %v does not take a unit", ErrUnknownCandidate, id)
	}
	return candidates[id].unit(), nil
}

// PairFunc returns the callable for a pair-shaped candidate.
func (id CandidateID) PairFunc() (PairFunc, error) {
	if !id.valid() || candidates[id].pair == nil {
		return nil, fmt.Errorf("%w: %v does not take a pair", ErrUnknownCandidate, id)
	}
	return candidates[id].pair(), nil
}

// NeedleFunc returns the callable for a search candidate bound to haystack.
// The result is the match position plus one, or zero when there is no match.
func (id CandidateID) NeedleFunc(haystack string) (UnitFunc, error) {
	if !id.valid() || candidates[id].needle == nil {
		return nil, fmt.Errorf("%w: %v does not search", ErrUnknownCandidate, id)
	}
	return candidates[id].needle(haystack), nil
}

// FindFunc returns the byte-slice form of a search candidate.
func (id CandidateID) FindFunc() (FindFunc, error) {
	if !id.valid() || candidates[id].find == nil {
		return nil, fmt.Errorf("%w: %v does not search", ErrUnknownCandidate, id)
	}
	return candidates[id].find(), nil
}

// sink absorbs candidate results so measured calls cannot be eliminated.
var sink uint64

// Sink returns the folded results of every measured invocation so far.
func Sink() uint64 {
	return sink
}
