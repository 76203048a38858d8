// Package meta implements the engine orchestrator.
//
// strategy.go contains the Strategy enum and selection logic.

package meta

import (
	"github.com/coregx/kmp/simd"
)

// Strategy represents the execution strategy for pattern search.
//
// The engine chooses between:
//   - UseMemchr: direct byte scan, no automaton involved
//   - UsePrefilteredDFA: rare-byte candidate scan + anchored DFA verification
//   - UseDFA: dense automaton scan with restart-state acceleration
//
// Strategy selection is automatic based on pattern analysis.
type Strategy int

const (
	// UseMemchr scans for the pattern byte directly.
	// Selected for:
	//   - Single-byte patterns, where a hit IS a match
	//   - No automaton run, no verification, just the scan primitive
	UseMemchr Strategy = iota

	// UsePrefilteredDFA scans for the pattern's two rarest bytes at their
	// exact distance, then verifies each candidate with an anchored DFA run.
	// Selected for:
	//   - Multi-byte patterns whose rarest byte is rarer than their first
	//     byte (otherwise the DFA's own restart-state skip does as well)
	//   - Candidate-sparse inputs, where the scan primitive carries almost
	//     the whole search
	UsePrefilteredDFA

	// UseDFA runs the dense automaton over the haystack, one transition per
	// byte, skipping dead bytes with memchr while in the restart state.
	// Selected for:
	//   - Patterns starting with their rarest byte (restart-state skip is
	//     already maximally selective)
	//   - When prefiltering is disabled in config
	UseDFA
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseMemchr:
		return "UseMemchr"
	case UsePrefilteredDFA:
		return "UsePrefilteredDFA"
	case UseDFA:
		return "UseDFA"
	default:
		return "Unknown"
	}
}

// SelectStrategy analyzes the pattern to choose the best execution strategy.
//
// Algorithm:
//  1. Single byte → UseMemchr (nothing for an automaton to add)
//  2. Prefilter enabled and the rarest pattern byte ranks strictly below the
//     first byte → UsePrefilteredDFA (pair scan beats restart-state skip)
//  3. Otherwise → UseDFA
//
// The rank comparison uses the background byte-frequency table: scanning for
// a rare interior byte only pays when the first byte is common, e.g.
// " the rare" starts with a space but contains far better scan anchors.
func SelectStrategy(pattern []byte, config Config) Strategy {
	if len(pattern) <= 1 {
		return UseMemchr
	}

	if config.EnablePrefilter {
		rare := simd.SelectRareBytes(pattern)
		if simd.ByteRank(rare.Byte1) < simd.ByteRank(pattern[0]) {
			return UsePrefilteredDFA
		}
	}

	return UseDFA
}

// StrategyReason provides a human-readable explanation for strategy
// selection. Useful for debugging and performance tuning.
//
// Example:
//
//	strategy := meta.SelectStrategy(pattern, config)
//	reason := meta.StrategyReason(strategy, pattern, config)
//	log.Printf("Using %s: %s", strategy, reason)
func StrategyReason(strategy Strategy, pattern []byte, config Config) string {
	switch strategy {
	case UseMemchr:
		return "single-byte pattern, direct scan needs no automaton"

	case UsePrefilteredDFA:
		return "rare interior bytes rank below the first byte, pair scan + anchored verification"

	case UseDFA:
		if !config.EnablePrefilter {
			return "prefilter disabled in configuration"
		}
		if len(pattern) > 0 {
			rare := simd.SelectRareBytes(pattern)
			if simd.ByteRank(rare.Byte1) >= simd.ByteRank(pattern[0]) {
				return "first byte is already the best scan anchor, restart-state skip suffices"
			}
		}
		return "dense automaton scan"

	default:
		return "unknown strategy"
	}
}
