package stringwars

import (
	"encoding/binary"
	"hash/crc32"
	"hash/maphash"
	"unsafe"

	onexxhash "github.com/OneOfOne/xxhash"
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// stringBytes returns the bytes of s without copying. The result must not
// be modified.
func stringBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func newCRC32() UnitFunc {
	return func(unit string) uint64 {
		return uint64(crc32.Checksum(stringBytes(unit), castagnoli))
	}
}

// newMaphash picks a fresh random seed per run, so results differ across
// runs but not across units within a run.
func newMaphash() UnitFunc {
	seed := maphash.MakeSeed()
	return func(unit string) uint64 {
		return maphash.String(seed, unit)
	}
}

func newXXH3() UnitFunc {
	return xxh3.HashString
}

func newXXHash64() UnitFunc {
	return xxhash.Sum64String
}

func newOneOfOneXXHash64() UnitFunc {
	return onexxhash.ChecksumString64
}

// newBlake3 folds the first 8 bytes of the 256-bit digest into the result.
func newBlake3() UnitFunc {
	return func(unit string) uint64 {
		sum := blake3.Sum256(stringBytes(unit))
		return binary.LittleEndian.Uint64(sum[:8])
	}
}
