// Package stringwars is a harness for comparing string-processing
// implementations (hashing, edit distance and substring search) under
// identical, reproducible workloads.
//
// The harness does not implement the algorithms. It decides how a dataset
// becomes units of work, how those units are paired and bounded, how a
// finite pool is replayed for an unbounded number of iterations, and what
// throughput each comparison reports. The measurement itself is left to the
// testing package's benchmark engine.
//
// # Pipeline
//
// A run goes through the same steps for every group:
//
//	LoadDataset -> Tokenize -> [PairUp -> Bounds] -> Cycle -> candidate
//
// [Tokenize] splits the dataset in one of three modes: [Lines], [Words] or
// [File]. Units are substrings of the loaded content, never copies.
//
// [PairUp] groups consecutive units into pairs for two-argument candidates,
// dropping a trailing odd unit and truncating to a configured maximum.
// [Bound] derives an early-exit threshold from the longer unit of a pair:
//
//	bound = max(len(a), len(b)) * percent / 100
//
// [Cycle] replays the pool by modular indexing. Every candidate gets its
// own cycle starting at the first item, so all candidates of a group see
// the same sequence.
//
// # Groups and Candidates
//
// A [Group] names a comparison and its closed set of [CandidateID] values.
// Four groups are predefined:
//
//   - [HashGroup]: crc32, maphash, xxh3, two xxh64 implementations, blake3
//   - [LevenshteinGroup]: byte-level and rune-level, bounded and unbounded
//   - [SearchForwardGroup]: every unit looked up in the whole dataset
//   - [SearchReverseGroup]: the same, scanning from the end
//
// [Prepare] builds a group's [Workload]; [Workload.Benchmark] adapts one
// candidate to a func(*testing.B) and [Workload.Run] registers them all.
//
// # Configuration
//
// Configuration comes from STRINGWARS_* environment variables through
// [ConfigFromEnv]. Every setup problem is reported before any measurement
// starts. A candidate that panics aborts the run.
//
// # Fuzzing
//
// [FuzzFind] splits a fuzzer buffer into a needle and a haystack using the
// buffer's first byte and calls one search candidate on them.
package stringwars
