package stringwars

// SplitFuzzInput derives a needle and a haystack from a fuzzer-supplied
// buffer. The split point is max(data[0], 1) mod len(data); the needle is
// the prefix before it and the haystack the rest. Buffers shorter than two
// bytes carry no signal and report ok == false.
func SplitFuzzInput(data []byte) (needle, haystack []byte, ok bool) {
	if len(data) < 2 {
		return nil, nil, false
	}
	split := max(int(data[0]), 1) % len(data)
	return data[:split], data[split:], true
}

// FuzzFind splits data with SplitFuzzInput and runs find once. The result
// is not checked; the only failure mode is a crash inside find.
func FuzzFind(data []byte, find FindFunc) {
	needle, haystack, ok := SplitFuzzInput(data)
	if !ok {
		return
	}
	_ = find(haystack, needle)
}
