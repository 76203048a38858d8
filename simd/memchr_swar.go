package simd

import (
	"encoding/binary"
	"math/bits"
)

// SWAR zero-byte detection constants (Hacker's Delight technique).
// For a word v, (v - lo8) & ^v & hi8 is nonzero iff some byte of v is 0x00,
// and the lowest set bit marks the first such byte.
const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)

// memchrGeneric implements pure Go byte search using SWAR (SIMD Within A Register)
// technique. It processes 8 bytes at a time using uint64 bitwise operations.
//
// Algorithm:
//  1. Create a mask with needle replicated in every byte of uint64
//  2. Read 8 bytes from haystack as uint64
//  3. XOR with mask (matching bytes become 0x00)
//  4. Use zero-byte detection formula to find first zero
//  5. Extract position using trailing zero count
//
// Performance: 2-5x faster than byte-by-byte comparison on medium/large inputs.
func memchrGeneric(haystack []byte, needle byte) int {
	haystackLen := len(haystack)
	if haystackLen == 0 {
		return -1
	}

	// For small inputs, byte-by-byte is faster (no setup overhead)
	if haystackLen < 8 {
		for idx := 0; idx < haystackLen; idx++ {
			if haystack[idx] == needle {
				return idx
			}
		}
		return -1
	}

	// SWAR technique: broadcast needle to all 8 bytes of uint64
	// Example: needle=0x42 -> needleMask=0x4242424242424242
	needleMask := uint64(needle) * lo8

	idx := 0

	// Process aligned 8-byte chunks
	for idx+8 <= haystackLen {
		// Read 8 bytes as little-endian uint64
		chunk := binary.LittleEndian.Uint64(haystack[idx:])

		// XOR makes matching bytes become 0x00
		xor := chunk ^ needleMask

		hasZero := (xor - lo8) & ^xor & hi8

		if hasZero != 0 {
			// TrailingZeros64 counts bits until first set bit.
			// Divide by 8 to convert bit position to byte position.
			return idx + bits.TrailingZeros64(hasZero)/8
		}

		idx += 8
	}

	// Process remaining bytes (0-7 bytes) byte-by-byte
	for idx < haystackLen {
		if haystack[idx] == needle {
			return idx
		}
		idx++
	}

	return -1
}

// memchrWide is the unrolled SWAR kernel for wide-register CPUs.
// It processes 32 bytes per iteration using four independent uint64 lanes,
// which keeps the load and detect operations pipelined. Callers must ensure
// len(haystack) >= 32.
func memchrWide(haystack []byte, needle byte) int {
	haystackLen := len(haystack)
	needleMask := uint64(needle) * lo8

	idx := 0

	for idx+32 <= haystackLen {
		c0 := binary.LittleEndian.Uint64(haystack[idx:])
		c1 := binary.LittleEndian.Uint64(haystack[idx+8:])
		c2 := binary.LittleEndian.Uint64(haystack[idx+16:])
		c3 := binary.LittleEndian.Uint64(haystack[idx+24:])

		x0 := c0 ^ needleMask
		x1 := c1 ^ needleMask
		x2 := c2 ^ needleMask
		x3 := c3 ^ needleMask

		z0 := (x0 - lo8) & ^x0 & hi8
		z1 := (x1 - lo8) & ^x1 & hi8
		z2 := (x2 - lo8) & ^x2 & hi8
		z3 := (x3 - lo8) & ^x3 & hi8

		if z0|z1|z2|z3 != 0 {
			// Resolve lanes in order so the first occurrence wins.
			if z0 != 0 {
				return idx + bits.TrailingZeros64(z0)/8
			}
			if z1 != 0 {
				return idx + 8 + bits.TrailingZeros64(z1)/8
			}
			if z2 != 0 {
				return idx + 16 + bits.TrailingZeros64(z2)/8
			}
			return idx + 24 + bits.TrailingZeros64(z3)/8
		}

		idx += 32
	}

	// Remaining 0-31 bytes go through the 8-byte kernel.
	if idx < haystackLen {
		if rest := memchrGeneric(haystack[idx:], needle); rest != -1 {
			return idx + rest
		}
	}

	return -1
}

// memchrPairGeneric implements pure Go paired-byte search using SWAR technique.
// It finds positions where byte1 appears at position i and byte2 appears at
// position i+offset.
//
// Algorithm:
//  1. Create masks for both bytes
//  2. For each 8-byte chunk at position i:
//     - Check byte1 at position i
//     - Check byte2 at position i+offset
//     - AND the results to get positions where both match
//  3. Return first position where both conditions are satisfied
func memchrPairGeneric(haystack []byte, byte1, byte2 byte, offset int) int {
	haystackLen := len(haystack)
	if haystackLen == 0 || offset < 0 || haystackLen <= offset {
		return -1
	}

	// For small inputs or small remaining space, byte-by-byte is simpler
	if haystackLen < 8+offset {
		for i := 0; i+offset < haystackLen; i++ {
			if haystack[i] == byte1 && haystack[i+offset] == byte2 {
				return i
			}
		}
		return -1
	}

	// Broadcast both bytes to uint64 masks
	needleMask1 := uint64(byte1) * lo8
	needleMask2 := uint64(byte2) * lo8

	idx := 0

	// Process 8-byte chunks. We need 8 bytes at position idx AND 8 bytes at
	// position idx+offset.
	for idx+8+offset <= haystackLen {
		// Read 8 bytes at position idx (for byte1)
		chunk1 := binary.LittleEndian.Uint64(haystack[idx:])
		// Read 8 bytes at position idx+offset (for byte2)
		chunk2 := binary.LittleEndian.Uint64(haystack[idx+offset:])

		// Check byte1 at position idx
		xor1 := chunk1 ^ needleMask1
		hasZero1 := (xor1 - lo8) & ^xor1 & hi8

		// Check byte2 at position idx+offset
		xor2 := chunk2 ^ needleMask2
		hasZero2 := (xor2 - lo8) & ^xor2 & hi8

		// Bit k is set in hasZero1 if haystack[idx+k] == byte1, and in
		// hasZero2 if haystack[idx+offset+k] == byte2. The AND therefore
		// marks positions where both bytes sit at the right distance.
		hasZero := hasZero1 & hasZero2

		if hasZero != 0 {
			return idx + bits.TrailingZeros64(hasZero)/8
		}

		idx += 8
	}

	// Process remaining positions byte-by-byte
	for idx+offset < haystackLen {
		if haystack[idx] == byte1 && haystack[idx+offset] == byte2 {
			return idx
		}
		idx++
	}

	return -1
}
