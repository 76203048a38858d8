// Package meta implements the engine orchestrator.
//
// find.go contains the search methods and per-strategy finders.

package meta

import (
	"sync/atomic"

	"github.com/coregx/kmp/prefilter"
)

// Find returns the leftmost occurrence of the pattern in haystack, or nil if
// there is none. Searching empty text always returns nil.
//
// Example:
//
//	engine, _ := meta.Compile([]byte("needle"))
//	match := engine.Find([]byte("a needle in a haystack"))
//	if match != nil {
//	    println(match.Start(), match.End()) // 2, 8
//	}
func (e *Engine) Find(haystack []byte) *Match {
	return e.FindAt(haystack, 0)
}

// FindAt returns the leftmost occurrence at or after position at, or nil.
// Negative at is clamped to 0; at beyond the haystack returns nil.
func (e *Engine) FindAt(haystack []byte, at int) *Match {
	start, end, found := e.FindIndicesAt(haystack, at)
	if !found {
		return nil
	}
	return NewMatch(start, end, haystack)
}

// FindIndices returns the start and end indices of the leftmost occurrence.
// Returns (-1, -1, false) if there is none.
//
// This is a zero-allocation alternative to Find: it returns indices directly
// instead of creating a Match object.
func (e *Engine) FindIndices(haystack []byte) (start, end int, found bool) {
	return e.FindIndicesAt(haystack, 0)
}

// FindIndicesAt returns the start and end indices of the leftmost occurrence
// at or after position at. Returns (-1, -1, false) if there is none.
func (e *Engine) FindIndicesAt(haystack []byte, at int) (start, end int, found bool) {
	if at < 0 {
		at = 0
	}
	if len(haystack)-at < len(e.pattern) {
		// Covers empty haystack and at past the end.
		return -1, -1, false
	}

	switch e.strategy {
	case UseMemchr:
		return e.findIndicesMemchrAt(haystack, at)
	case UsePrefilteredDFA:
		return e.findIndicesPrefilteredAt(haystack, at)
	default:
		return e.findIndicesDFAAt(haystack, at)
	}
}

// IsMatch returns true if the pattern occurs anywhere in the haystack.
//
// All strategies already stop at the first occurrence, so this is exactly a
// Find without Match allocation.
func (e *Engine) IsMatch(haystack []byte) bool {
	_, _, found := e.FindIndices(haystack)
	return found
}

// IsMatchAt returns true if the pattern occurs at or after position at.
func (e *Engine) IsMatchAt(haystack []byte, at int) bool {
	_, _, found := e.FindIndicesAt(haystack, at)
	return found
}

// findIndicesMemchrAt scans for a single-byte pattern directly.
// The prefilter is complete: a hit is a match, no automaton run needed.
func (e *Engine) findIndicesMemchrAt(haystack []byte, at int) (int, int, bool) {
	atomic.AddUint64(&e.stats.MemchrSearches, 1)

	pos := e.prefilter.Find(haystack, at)
	if pos == -1 {
		return -1, -1, false
	}
	atomic.AddUint64(&e.stats.Matches, 1)
	return pos, pos + e.prefilter.LiteralLen(), true
}

// findIndicesDFAAt runs the dense automaton over the haystack.
func (e *Engine) findIndicesDFAAt(haystack []byte, at int) (int, int, bool) {
	atomic.AddUint64(&e.stats.DFASearches, 1)

	pos := e.dfa.FindAt(haystack, at)
	if pos == -1 {
		return -1, -1, false
	}
	atomic.AddUint64(&e.stats.Matches, 1)
	return pos, pos + len(e.pattern), true
}

// findIndicesPrefilteredAt runs the candidate-and-verify loop: the prefilter
// proposes positions, the automaton confirms them with an anchored O(m) run.
//
// Candidates arrive in increasing order and every real occurrence is a
// candidate, so the first confirmed candidate is the leftmost occurrence.
//
// A per-search tracker watches the confirm/candidate ratio. On inputs dense
// in the pattern's "rare" bytes the prefilter degenerates into overhead; the
// tracker retires it mid-search and the engine falls back to the plain
// automaton scan from the current position.
func (e *Engine) findIndicesPrefilteredAt(haystack []byte, at int) (int, int, bool) {
	tracker := prefilter.NewTracker(e.prefilter)
	m := len(e.pattern)

	pos := at
	for {
		if !tracker.IsActive() {
			atomic.AddUint64(&e.stats.PrefilterRetires, 1)
			return e.findIndicesDFAAt(haystack, pos)
		}

		cand := tracker.Find(haystack, pos)
		if cand == -1 {
			return -1, -1, false
		}
		atomic.AddUint64(&e.stats.PrefilterHits, 1)

		if e.dfa.MatchesAt(haystack, cand) {
			tracker.ConfirmMatch()
			atomic.AddUint64(&e.stats.Matches, 1)
			return cand, cand + m, true
		}
		atomic.AddUint64(&e.stats.PrefilterMisses, 1)
		pos = cand + 1
	}
}
