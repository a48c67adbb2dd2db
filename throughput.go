package stringwars

import "fmt"

// ThroughputKind is the unit a group's rate is reported in.
type ThroughputKind uint8

const (
	Bytes ThroughputKind = iota
	Elements
)

func (k ThroughputKind) String() string {
	switch k {
	case Bytes:
		return "bytes"
	case Elements:
		return "elements"
	default:
		return fmt.Sprintf("ThroughputKind(%d)", k)
	}
}

// Throughput is a group's rate denominator.
type Throughput struct {
	Kind ThroughputKind
	// Total is the group-wide amount: bytes of all units for hashing, bytes
	// of the haystack for search, number of pairs for edit distance. It does
	// not depend on how many iterations are measured.
	Total int64
	// PerOp is the amount one candidate invocation accounts for: the mean
	// unit length for hashing, the haystack length for search, one pair for
	// edit distance.
	PerOp int64
}

func unitThroughput(units []string) Throughput {
	var total int64
	for _, u := range units {
		total += int64(len(u))
	}
	return Throughput{
		Kind:  Bytes,
		Total: total,
		PerOp: total / int64(len(units)),
	}
}

func pairThroughput(pairs []Pair) Throughput {
	return Throughput{
		Kind:  Elements,
		Total: int64(len(pairs)),
		PerOp: 1,
	}
}

func haystackThroughput(haystack string) Throughput {
	n := int64(len(haystack))
	return Throughput{Kind: Bytes, Total: n, PerOp: n}
}
