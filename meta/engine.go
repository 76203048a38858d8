// Package meta implements the engine orchestrator.
//
// engine.go contains the Engine struct definition and core API methods.

package meta

import (
	"fmt"

	"github.com/coregx/kmp/dfa"
	"github.com/coregx/kmp/prefilter"
)

// Engine orchestrates the search strategies for one compiled pattern.
//
// The Engine:
//  1. Builds the dense automaton for the pattern
//  2. Selects the execution strategy from pattern analysis
//  3. Builds a prefilter when the strategy uses one
//  4. Dispatches searches to the selected path
//
// Thread safety: a compiled Engine is immutable and safe for concurrent
// searches. Per-search mutable state (the prefilter effectiveness tracker)
// is created on the stack of each search; statistics use atomic counters.
//
// Example:
//
//	// Compile pattern (once)
//	engine, err := meta.Compile([]byte("needle"))
//	if err != nil {
//	    return err
//	}
//
//	// Search (safe to call from multiple goroutines)
//	match := engine.Find([]byte("a needle in a haystack"))
//	if match != nil {
//	    println(match.Start()) // 2
//	}
type Engine struct {
	// Statistics (useful for debugging and tuning)
	// IMPORTANT: stats MUST be first field for proper 8-byte alignment on 32-bit platforms.
	// This ensures atomic operations on uint64 fields work correctly.
	stats Stats

	pattern   []byte
	dfa       *dfa.DFA
	prefilter prefilter.Prefilter // nil unless the strategy scans with one
	strategy  Strategy
	config    Config
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// MemchrSearches counts direct byte-scan searches
	MemchrSearches uint64

	// DFASearches counts plain automaton searches
	DFASearches uint64

	// PrefilterHits counts candidates produced by the prefilter
	PrefilterHits uint64

	// PrefilterMisses counts candidates that failed verification
	PrefilterMisses uint64

	// PrefilterRetires counts searches where the prefilter was retired
	// mid-search for producing too many false candidates
	PrefilterRetires uint64

	// Matches counts searches that found an occurrence
	Matches uint64
}

// Strategy returns the execution strategy selected for this engine.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Stats returns execution statistics.
//
// Example:
//
//	stats := engine.Stats()
//	println("DFA searches:", stats.DFASearches)
//	println("prefilter misses:", stats.PrefilterMisses)
func (e *Engine) Stats() Stats {
	return e.stats
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	e.stats = Stats{}
}

// Pattern returns a copy of the compiled pattern.
func (e *Engine) Pattern() []byte {
	p := make([]byte, len(e.pattern))
	copy(p, e.pattern)
	return p
}

// PatternLen returns the length of the compiled pattern in bytes.
func (e *Engine) PatternLen() int {
	return len(e.pattern)
}

// Config returns the configuration the engine was compiled with.
func (e *Engine) Config() Config {
	return e.config
}

// MemoryUsage returns the approximate heap memory used by the engine in
// bytes, dominated by the automaton's transition table.
func (e *Engine) MemoryUsage() int {
	total := e.dfa.MemoryUsage()
	if e.prefilter != nil {
		total += e.prefilter.HeapBytes()
	}
	return total
}

// Verify checks the structural invariants of the underlying automaton.
// Intended for diagnostics; a compiled engine always passes.
func (e *Engine) Verify() error {
	return e.dfa.Verify()
}

// String returns a debug summary of the engine.
func (e *Engine) String() string {
	return fmt.Sprintf("meta.Engine(pattern=%q, strategy=%s, %s)",
		e.pattern, e.strategy, e.dfa)
}
