// Package prefilter provides fast candidate filtering for substring search.
//
// A prefilter is used to quickly reject positions in the haystack that cannot
// possibly start an occurrence of the pattern. Scanning for one or two
// selected pattern bytes with accelerated primitives is much cheaper than
// stepping the automaton over every input byte, so on candidate-sparse inputs
// the prefilter carries almost the whole search.
//
// The package selects a strategy from the pattern itself:
//   - Single-byte pattern → memchr prefilter (a candidate IS a match)
//   - Longer pattern → rare-byte-pair prefilter (candidates need verification)
//
// Rare bytes are chosen with a background frequency table: scanning for the
// pattern's least common bytes keeps the candidate rate low even when the
// pattern starts with a common byte like a space or an 'e'.
//
// Example usage:
//
//	pf := prefilter.NewBuilder([]byte("needle")).Build()
//
//	haystack := []byte("a needle in a haystack")
//	pos := pf.Find(haystack, 0)
//	for pos != -1 {
//	    // Verify an occurrence at pos with the automaton.
//	    pos = pf.Find(haystack, pos+1)
//	}
package prefilter

import (
	"github.com/coregx/kmp/simd"
)

// Prefilter is used to quickly find candidate match positions before running
// the automaton.
//
// The prefilter scans the haystack for bytes selected from the pattern. When
// they are found in the right arrangement, the position where the pattern
// would have to start is returned as a candidate. The caller then verifies
// the candidate with the automaton, unless IsComplete() reports that no
// verification is needed.
type Prefilter interface {
	// Find returns the first candidate position at or after start, or -1
	// if no candidate is found.
	//
	// A candidate is a position where an occurrence of the pattern could
	// start. It is NOT guaranteed to be a real occurrence unless
	// IsComplete() is true. Candidates are produced in strictly increasing
	// order across calls with increasing start, and every real occurrence
	// is a candidate, so verifying candidates in order yields the leftmost
	// match.
	//
	// start may be any value; positions outside the haystack report -1.
	Find(haystack []byte, start int) int

	// IsComplete returns true if a candidate is guaranteed to be a real
	// occurrence, letting the caller skip verification. This holds when
	// the prefilter scans for the entire pattern, e.g. the single-byte
	// prefilter.
	IsComplete() bool

	// LiteralLen returns the occurrence length when IsComplete() is true,
	// so the caller can compute bounds as [pos, pos+LiteralLen()) without
	// running the automaton. Returns 0 when IsComplete() is false.
	LiteralLen() int

	// HeapBytes returns the heap memory used by this prefilter, for
	// profiling and budgeting. The prefilters here keep only a few words
	// of state and report 0.
	HeapBytes() int
}

// Builder constructs the prefilter best suited to a pattern.
//
// Selection:
//  1. Empty pattern → nil (nothing to scan for)
//  2. Single byte → memchr prefilter (complete, no verification)
//  3. Two or more bytes → rare-byte-pair prefilter (verification required)
type Builder struct {
	pattern []byte
}

// NewBuilder creates a prefilter builder for the given pattern.
// The pattern is copied; the caller's slice may be reused afterwards.
func NewBuilder(pattern []byte) *Builder {
	p := make([]byte, len(pattern))
	copy(p, pattern)
	return &Builder{pattern: p}
}

// Build constructs the prefilter. Returns nil for an empty pattern.
func (b *Builder) Build() Prefilter {
	switch len(b.pattern) {
	case 0:
		return nil
	case 1:
		return newMemchrPrefilter(b.pattern[0], true)
	default:
		return newRareBytePrefilter(b.pattern)
	}
}

// memchrPrefilter scans for a single byte.
//
// For a one-byte pattern every hit is a full occurrence, so the prefilter is
// complete and the search never touches the automaton.
type memchrPrefilter struct {
	needle   byte
	complete bool
}

func newMemchrPrefilter(needle byte, complete bool) Prefilter {
	return &memchrPrefilter{
		needle:   needle,
		complete: complete,
	}
}

// Find implements Prefilter.Find using simd.Memchr.
func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	idx := simd.Memchr(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *memchrPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen.
func (p *memchrPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *memchrPrefilter) HeapBytes() int {
	return 0
}

// rareBytePrefilter scans for the pattern's two rarest bytes at their exact
// relative distance.
//
// A position q can only start an occurrence if the rare bytes appear at
// q+loIndex and q+hiIndex. Scanning for that pair with simd.MemchrPair is
// far more selective than scanning for the first pattern byte: in typical
// text the pair fires orders of magnitude less often than, say, a space.
//
// Candidates still need verification. The surrounding pattern bytes are not
// checked, so the pair can occur without a full occurrence around it.
type rareBytePrefilter struct {
	// loByte is the rare byte with the smaller pattern index, hiByte the
	// one with the larger. offset = hiIndex - loIndex > 0, as required by
	// simd.MemchrPair.
	loByte  byte
	hiByte  byte
	loIndex int
	offset  int

	patternLen int
}

func newRareBytePrefilter(pattern []byte) Prefilter {
	rare := simd.SelectRareBytes(pattern)

	lo, hi := rare.Index1, rare.Index2
	loByte, hiByte := rare.Byte1, rare.Byte2
	if lo > hi {
		lo, hi = hi, lo
		loByte, hiByte = hiByte, loByte
	}

	return &rareBytePrefilter{
		loByte:     loByte,
		hiByte:     hiByte,
		loIndex:    lo,
		offset:     hi - lo,
		patternLen: len(pattern),
	}
}

// Find implements Prefilter.Find using simd.MemchrPair.
func (p *rareBytePrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	// For a candidate at or after start, the low rare byte sits at or
	// after start+loIndex.
	from := start + p.loIndex
	if from >= len(haystack) {
		return -1
	}

	idx := simd.MemchrPair(haystack[from:], p.loByte, p.hiByte, p.offset)
	if idx == -1 {
		return -1
	}

	candidate := from + idx - p.loIndex
	if candidate+p.patternLen > len(haystack) {
		// Too close to the end for a full occurrence, and any later
		// pair is closer still.
		return -1
	}
	return candidate
}

// IsComplete implements Prefilter.IsComplete.
// Rare-byte candidates always require verification.
func (p *rareBytePrefilter) IsComplete() bool {
	return false
}

// LiteralLen implements Prefilter.LiteralLen.
func (p *rareBytePrefilter) LiteralLen() int {
	return 0
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *rareBytePrefilter) HeapBytes() int {
	return 0
}
