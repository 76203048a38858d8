package dfa

import (
	"github.com/coregx/kmp/simd"
)

// Find returns the byte offset of the leftmost occurrence of the pattern in
// haystack, or -1 if the pattern does not occur. Searching empty text always
// reports -1.
func (d *DFA) Find(haystack []byte) int {
	return d.FindAt(haystack, 0)
}

// FindAt returns the byte offset of the leftmost occurrence of the pattern
// at or after position at, or -1 if there is none. Negative at is clamped
// to 0; at beyond the haystack reports -1.
//
// The loop advances one state per input byte. On entering the match state it
// returns immediately, which makes the reported occurrence the leftmost one:
// the machine cannot reach the match state without having read a complete
// occurrence, and it reaches it first for the occurrence that ends first.
func (d *DFA) FindAt(haystack []byte, at int) int {
	if at < 0 {
		at = 0
	}
	n := len(haystack)
	m := len(d.pattern)
	if n-at < m {
		// Covers empty haystack and at past the end.
		return -1
	}

	state := StateID(0)
	i := at
	for i < n {
		if state == 0 && d.accelerate {
			// Restart state: the only byte that advances the machine
			// is pattern[0], so everything before its next occurrence
			// is dead and can be crossed in one scan.
			off := simd.Memchr(haystack[i:], d.accelByte)
			if off < 0 {
				return -1
			}
			i += off
			state = 1
			i++
			if state == d.matchState {
				return i - m
			}
			continue
		}

		class := d.classes.Get(haystack[i])
		state = d.table[(int(state)<<d.stride2)+int(class)]
		i++
		if state == d.matchState {
			return i - m
		}
	}
	return -1
}

// MatchesAt reports whether the pattern occurs at exactly position at.
// It runs the automaton anchored over haystack[at : at+m]: after consuming m
// bytes the machine is in the match state if and only if those bytes are the
// pattern. Used to confirm prefilter candidates in O(m).
func (d *DFA) MatchesAt(haystack []byte, at int) bool {
	m := len(d.pattern)
	if at < 0 || at+m > len(haystack) {
		return false
	}
	state := StateID(0)
	for i := at; i < at+m; i++ {
		class := d.classes.Get(haystack[i])
		state = d.table[(int(state)<<d.stride2)+int(class)]
	}
	return state == d.matchState
}
