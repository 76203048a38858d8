// Package dfa implements a dense deterministic automaton for single-pattern
// substring search.
//
// The automaton is the DFA form of Knuth-Morris-Pratt matching: for a pattern
// of length m it has states 0..m, where state j means "the last j bytes read
// are the first j bytes of the pattern" and state m is the unique match state.
// Failure links are pre-resolved into the transition table during construction,
// so the search loop performs exactly one table lookup per input byte with no
// backtracking over the text.
//
// Performance:
//   - Build: O(alphabet * m) time and space, with the alphabet reduced to
//     byte equivalence classes (at most 2*distinct+1 entries per state)
//   - Search: O(n) worst case, one lookup per byte
//   - Restart-state acceleration: while no prefix progress has been made,
//     whole runs of dead bytes are skipped with a single memchr scan
//
// Properties:
//   - The transition table is total: every (state, class) pair is defined
//   - Overlapping occurrences are handled by construction; the leftmost
//     occurrence is always reported
//   - A built DFA is immutable and safe for concurrent searches
package dfa

import (
	"errors"
	"fmt"

	"github.com/coregx/kmp/alphabet"
)

// ErrEmptyPattern is returned when building an automaton from an empty
// pattern. An empty pattern has no well-defined leftmost occurrence, so
// construction rejects it up front.
var ErrEmptyPattern = errors.New("empty pattern")

// StateID is a DFA state identifier.
// State 0 is the restart state, state PatternLen() is the match state.
type StateID uint32

// DFA is a dense transition-table automaton for one literal pattern.
//
// The transition table is organized as:
//
//	table[(stateID << stride2) + byteClass] -> next StateID
//
// where stride is the next power of 2 >= alphabetLen. The match state has no
// row: the search loop returns as soon as it is entered.
type DFA struct {
	// pattern is a private copy; later mutation of the caller's slice must
	// not affect the automaton.
	pattern []byte

	// Transition table: dense array indexed by [stateID][byteClass]
	// Layout: [state0_class0, state0_class1, ..., state1_class0, ...]
	table []StateID

	// Byte equivalence classes for the pattern's alphabet.
	// Maps each byte to a class ID [0, alphabetLen)
	classes alphabet.ByteClasses

	// Alphabet size (number of byte equivalence classes)
	alphabetLen int

	// Stride for indexing: next power of 2 >= alphabetLen
	// Enables fast indexing: table[sid << stride2 + class]
	stride  int
	stride2 uint // log2(stride) for shift operations

	// matchState is the accepting state, always PatternLen().
	matchState StateID

	// accelByte is the only byte that leaves the restart state, pattern[0].
	// While in state 0 the search loop may skip to its next occurrence with
	// a single memchr scan instead of stepping byte by byte.
	accelByte  byte
	accelerate bool
}

// Pattern returns a copy of the pattern the automaton was built from.
func (d *DFA) Pattern() []byte {
	p := make([]byte, len(d.pattern))
	copy(p, d.pattern)
	return p
}

// PatternLen returns the length of the pattern in bytes.
func (d *DFA) PatternLen() int {
	return len(d.pattern)
}

// StateCount returns the number of states including the match state.
func (d *DFA) StateCount() int {
	return len(d.pattern) + 1
}

// AlphabetLen returns the number of byte equivalence classes.
func (d *DFA) AlphabetLen() int {
	return d.alphabetLen
}

// MemoryUsage returns the approximate heap memory used by the automaton
// in bytes. Useful for budgeting when compiling many patterns.
func (d *DFA) MemoryUsage() int {
	return len(d.table)*4 + len(d.pattern) + 256
}

// SetAcceleration enables or disables restart-state memchr skipping.
// Acceleration never changes results, only how fast dead bytes are crossed.
// Call before the DFA is shared between goroutines.
func (d *DFA) SetAcceleration(enabled bool) {
	d.accelerate = enabled
}

// String returns a debug summary of the automaton.
func (d *DFA) String() string {
	return fmt.Sprintf("dfa.DFA(pattern=%d bytes, states=%d, classes=%d, stride=%d, memory=%dB)",
		len(d.pattern), d.StateCount(), d.alphabetLen, d.stride, d.MemoryUsage())
}

// getTransition retrieves the transition for the given state and byte class.
// Used by the verification and anchored paths; the hot search loop indexes
// the table directly.
func (d *DFA) getTransition(state StateID, class byte) StateID {
	idx := (int(state) << d.stride2) + int(class)
	if idx >= len(d.table) {
		return 0
	}
	return d.table[idx]
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 0 {
		return 1
	}
	// Check if already power of 2
	if n&(n-1) == 0 {
		return n
	}
	// Find next power of 2
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// log2 returns the base-2 logarithm of n (must be power of 2).
func log2(n int) uint {
	if n <= 0 {
		return 0
	}
	var log uint
	for n > 1 {
		n >>= 1
		log++
	}
	return log
}
