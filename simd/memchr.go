// Package simd provides accelerated byte search primitives for high-performance
// scanning. The kernels use SWAR (SIMD Within A Register) arithmetic on uint64
// lanes, processing 8 or 32 bytes per iteration, and select the widest variant
// based on available CPU features.
//
// The primary use case is accelerating automaton search: skipping runs of bytes
// that cannot advance the machine, and finding rare-byte candidates ahead of
// verification.
package simd

import "golang.org/x/sys/cpu"

// hasWideLoads reports whether the CPU has wide vector registers, which is a
// good proxy for unaligned multi-word loads being cheap. On such machines the
// 32-bytes-per-iteration SWAR kernel outruns the 8-byte loop; on older or
// smaller cores the extra unrolling can hurt.
//
// Both feature structs are populated on every platform (they simply stay false
// off-architecture), so no build tags are needed.
var hasWideLoads = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// This function is equivalent to bytes.IndexByte but keeps the dispatch under
// this package's control so the wider kernels below share one selection point.
//
// Performance characteristics:
//   - Small inputs (< 8 bytes): byte-by-byte comparison
//   - Medium inputs: 8 bytes per iteration (SWAR)
//   - Large inputs on wide-register CPUs: 32 bytes per iteration
//
// Example:
//
//	haystack := []byte("hello world")
//	pos := simd.Memchr(haystack, 'o')
//	if pos != -1 {
//	    fmt.Printf("Found 'o' at position %d\n", pos) // Output: Found 'o' at position 4
//	}
func Memchr(haystack []byte, needle byte) int {
	// Empty check
	if len(haystack) == 0 {
		return -1
	}

	// Use the unrolled kernel if the CPU is wide enough and the input is large
	// enough to amortize the setup.
	if hasWideLoads && len(haystack) >= 32 {
		return memchrWide(haystack, needle)
	}

	return memchrGeneric(haystack, needle)
}

// MemchrPair finds the first position where byte1 appears at offset 0 and byte2
// appears at the specified offset from byte1. This enables highly selective
// candidate search by verifying two bytes at their correct relative positions.
//
// Parameters:
//   - haystack: the byte slice to search
//   - byte1: the first byte to find (anchor byte)
//   - byte2: the second byte to find
//   - offset: the distance from byte1 to byte2 (byte2 position = byte1 position + offset)
//
// Returns the position of byte1 where both conditions are met, or -1 if not found.
//
// This function is significantly more selective than single-byte search because
// false positives require both bytes to appear at exactly the right distance apart.
//
// Example:
//
//	// Searching for pattern "ex" where 'e' is at offset 0 and 'x' is at offset 1
//	haystack := []byte("hello example world")
//	pos := simd.MemchrPair(haystack, 'e', 'x', 1)
//	// pos == 6 (position of 'e' in "example")
func MemchrPair(haystack []byte, byte1, byte2 byte, offset int) int {
	// Validate offset
	if offset < 0 {
		return -1
	}

	// Need at least offset+1 bytes to find byte2 after byte1
	if len(haystack) <= offset {
		return -1
	}

	// If offset is 0, both bytes must be the same at same position
	if offset == 0 {
		if byte1 != byte2 {
			return -1 // Impossible: same position, different bytes
		}
		return Memchr(haystack, byte1)
	}

	return memchrPairGeneric(haystack, byte1, byte2, offset)
}
