// Package kmp provides fast single-pattern substring search for Go.
//
// kmp compiles a byte pattern into a dense Knuth-Morris-Pratt automaton and
// scans text in a single left-to-right pass with no backtracking:
//   - Dense transition table with byte-class compression (failure links are
//     pre-resolved at build time, the scan loop is one load per byte)
//   - SWAR-accelerated restart-state skipping (memchr for the first byte)
//   - Rare-byte pair prefiltering with mid-search retirement when the input
//     turns out to be hostile
//   - Automatic strategy selection per pattern
//
// Results are bytes.Index compatible: index-returning calls yield the
// leftmost occurrence offset or -1, and absence is never an error.
//
// Basic usage:
//
//	// Compile a pattern
//	a, err := kmp.Compile([]byte("needle"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Find the leftmost occurrence
//	idx := a.FindIndex([]byte("a needle in a haystack"))
//	fmt.Println(idx) // 2
//
//	// Check for containment
//	if a.IsMatch([]byte("needles everywhere")) {
//	    fmt.Println("found")
//	}
//
// Advanced usage:
//
//	// Custom configuration
//	config := kmp.DefaultConfig().WithPrefilter(false)
//	a, err := kmp.CompileWithConfig([]byte("needle"), config)
//
// Performance characteristics:
//   - Clean inputs with a rare pattern byte: the pair prefilter skips most
//     of the text without touching the automaton
//   - Hostile inputs: guaranteed O(n) scan, one transition per byte
//   - Build: O(alphabet x m) time and space for a length-m pattern
//
// Scope: single pattern, raw bytes, first occurrence only. No multi-pattern
// sets (see coregx/ahocorasick), no streaming, no Unicode awareness.
package kmp

import (
	"github.com/coregx/kmp/meta"
)

// Automaton is a compiled search pattern.
//
// An Automaton is immutable after compilation and safe for concurrent use by
// multiple goroutines, except ResetStats.
//
// Example:
//
//	a := kmp.MustCompile("hello")
//	if a.MatchString("hello world") {
//	    println("matched!")
//	}
type Automaton struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a byte pattern into an Automaton.
//
// The pattern is copied; the caller may reuse the slice. The only invalid
// pattern is the empty one.
//
// Example:
//
//	a, err := kmp.Compile([]byte("needle"))
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern []byte) (*Automaton, error) {
	engine, err := meta.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Automaton{
		engine:  engine,
		pattern: string(pattern),
	}, nil
}

// CompileString compiles a string pattern into an Automaton.
func CompileString(pattern string) (*Automaton, error) {
	return Compile([]byte(pattern))
}

// MustCompile compiles a string pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var needle = kmp.MustCompile("needle")
func MustCompile(pattern string) *Automaton {
	a, err := CompileString(pattern)
	if err != nil {
		panic("kmp: Compile(`" + pattern + "`): " + err.Error())
	}
	return a
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := kmp.DefaultConfig().WithMaxPatternLen(1 << 10)
//	a, err := kmp.CompileWithConfig(pattern, config)
func CompileWithConfig(pattern []byte, config meta.Config) (*Automaton, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	return &Automaton{
		engine:  engine,
		pattern: string(pattern),
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
//
// Users can customize it and pass it to CompileWithConfig.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// Find returns the leftmost occurrence of the pattern in text, or nil if
// there is none.
//
// Example:
//
//	a := kmp.MustCompile("needle")
//	m := a.Find([]byte("a needle"))
//	println(m.Start(), m.End()) // 2, 8
func (a *Automaton) Find(text []byte) *meta.Match {
	return a.engine.Find(text)
}

// FindIndex returns the offset of the leftmost occurrence of the pattern in
// text, or -1 if there is none. It is a drop-in replacement for
// bytes.Index(text, pattern).
//
// Example:
//
//	a := kmp.MustCompile("needle")
//	println(a.FindIndex([]byte("a needle"))) // 2
//	println(a.FindIndex([]byte("nothing"))) // -1
func (a *Automaton) FindIndex(text []byte) int {
	start, _, found := a.engine.FindIndices(text)
	if !found {
		return -1
	}
	return start
}

// FindStringIndex returns the offset of the leftmost occurrence of the
// pattern in s, or -1 if there is none. It is a drop-in replacement for
// strings.Index(s, pattern).
func (a *Automaton) FindStringIndex(s string) int {
	return a.FindIndex([]byte(s))
}

// IsMatch reports whether text contains the pattern.
//
// Example:
//
//	a := kmp.MustCompile("needle")
//	if a.IsMatch(data) {
//	    println("contains the pattern")
//	}
func (a *Automaton) IsMatch(text []byte) bool {
	return a.engine.IsMatch(text)
}

// MatchString reports whether s contains the pattern.
func (a *Automaton) MatchString(s string) bool {
	return a.engine.IsMatch([]byte(s))
}

// Pattern returns a copy of the compiled pattern bytes.
func (a *Automaton) Pattern() []byte {
	return a.engine.Pattern()
}

// String returns the source text used to compile the Automaton.
func (a *Automaton) String() string {
	return a.pattern
}

// Strategy returns the execution strategy selected for the pattern.
func (a *Automaton) Strategy() meta.Strategy {
	return a.engine.Strategy()
}

// Stats returns a snapshot of the search statistics.
func (a *Automaton) Stats() meta.Stats {
	return a.engine.Stats()
}

// ResetStats resets the search statistics to zero.
//
// Not safe to call concurrently with searches.
func (a *Automaton) ResetStats() {
	a.engine.ResetStats()
}

// MemoryUsage returns the approximate heap footprint of the Automaton in
// bytes.
func (a *Automaton) MemoryUsage() int {
	return a.engine.MemoryUsage()
}

// Verify checks the internal transition table for structural defects.
// It is intended for diagnostics; a healthy Automaton always returns nil.
func (a *Automaton) Verify() error {
	return a.engine.Verify()
}
