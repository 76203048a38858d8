// Package kmp compatibility tests against the standard library.
//
// FindIndex is specified as a drop-in replacement for bytes.Index, so every
// operation is compared against its stdlib counterpart over a shared corpus:
// bytes.Index, strings.Index, bytes.Contains, and regexp with a quoted
// literal. Any divergence is a bug here, never in stdlib.
package kmp

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

// compareWithStdlib checks one pattern/text pair against all stdlib oracles.
func compareWithStdlib(t *testing.T, pattern, text string) {
	t.Helper()

	a := MustCompile(pattern)

	wantIdx := bytes.Index([]byte(text), []byte(pattern))
	if got := a.FindIndex([]byte(text)); got != wantIdx {
		t.Errorf("FindIndex(%q, %q) = %d, bytes.Index = %d", pattern, text, got, wantIdx)
	}

	if got := a.FindStringIndex(text); got != strings.Index(text, pattern) {
		t.Errorf("FindStringIndex(%q, %q) = %d, strings.Index = %d",
			pattern, text, got, strings.Index(text, pattern))
	}

	wantContains := bytes.Contains([]byte(text), []byte(pattern))
	if got := a.IsMatch([]byte(text)); got != wantContains {
		t.Errorf("IsMatch(%q, %q) = %v, bytes.Contains = %v", pattern, text, got, wantContains)
	}

	re := regexp.MustCompile(regexp.QuoteMeta(pattern))
	reLoc := re.FindStringIndex(text)
	reIdx := -1
	if reLoc != nil {
		reIdx = reLoc[0]
	}
	if got := a.FindStringIndex(text); got != reIdx {
		t.Errorf("FindStringIndex(%q, %q) = %d, regexp = %d", pattern, text, got, reIdx)
	}

	if m := a.Find([]byte(text)); m != nil {
		if m.Start() != wantIdx || m.End() != wantIdx+len(pattern) {
			t.Errorf("Find(%q, %q) = [%d:%d], want [%d:%d]",
				pattern, text, m.Start(), m.End(), wantIdx, wantIdx+len(pattern))
		}
	} else if wantIdx != -1 {
		t.Errorf("Find(%q, %q) = nil, bytes.Index = %d", pattern, text, wantIdx)
	}
}

// TestStdlibCompat_Corpus runs the full oracle comparison over a corpus that
// mixes plain prose, periodic strings, overlap traps, and binary data.
func TestStdlibCompat_Corpus(t *testing.T) {
	patterns := []string{
		"a",
		"z",
		"ab",
		"aa",
		"aab",
		"aaba",
		"abab",
		"aabaa",
		"needle",
		"the quick",
		"hello world",
		".*+?",
		"\x00",
		"\x00\xff",
		"\xff\xff\xff",
		strings.Repeat("a", 32),
		strings.Repeat("ab", 16),
	}

	texts := []string{
		"",
		"a",
		"b",
		"ab",
		"ba",
		"aa",
		"aaaa",
		"aabaabaaba",
		"abababababab",
		"baaabaaabaaab",
		"the quick brown fox jumps over the lazy dog",
		"a needle in a haystack",
		"hello world hello world",
		"literal .*+? chars",
		"\x00\x01\x02\x00\xff",
		"\xff\xfe\xff\xff\xff\x00",
		strings.Repeat("a", 100),
		strings.Repeat("ab", 50),
		strings.Repeat("aab", 33) + "x",
		strings.Repeat("x", 200) + "needle" + strings.Repeat("y", 10),
	}

	for _, p := range patterns {
		for _, text := range texts {
			compareWithStdlib(t, p, text)
		}
	}
}

// TestStdlibCompat_ConfigVariants re-runs a slice of the corpus with the
// prefilter and acceleration toggled off, which must never change results.
func TestStdlibCompat_ConfigVariants(t *testing.T) {
	configs := map[string]struct {
		prefilter    bool
		acceleration bool
	}{
		"default":        {true, true},
		"no_prefilter":   {false, true},
		"no_accel":       {true, false},
		"table_run_only": {false, false},
	}

	patterns := []string{"a", "aaba", "needle", "abab"}
	texts := []string{
		"",
		"aabaabaaba",
		"a needle in a haystack",
		"abababab",
		strings.Repeat("filler text ", 40) + "needle",
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			config := DefaultConfig().
				WithPrefilter(cfg.prefilter).
				WithAcceleration(cfg.acceleration)

			for _, p := range patterns {
				a, err := CompileWithConfig([]byte(p), config)
				if err != nil {
					t.Fatalf("CompileWithConfig(%q) error: %v", p, err)
				}
				for _, text := range texts {
					want := bytes.Index([]byte(text), []byte(p))
					if got := a.FindIndex([]byte(text)); got != want {
						t.Errorf("FindIndex(%q, %q) = %d, bytes.Index = %d", p, text, got, want)
					}
				}
			}
		})
	}
}

// TestStdlibCompat_IndexByte pins the single-byte strategy to bytes.IndexByte.
func TestStdlibCompat_IndexByte(t *testing.T) {
	texts := []string{
		"",
		"a",
		"xyza",
		"no hit",
		strings.Repeat("b", 300) + "a",
		"\x00plain\x00",
	}

	for _, b := range []byte{'a', 'x', 0x00, 0xff} {
		a, err := Compile([]byte{b})
		if err != nil {
			t.Fatalf("Compile(%q) error: %v", b, err)
		}
		for _, text := range texts {
			want := bytes.IndexByte([]byte(text), b)
			if got := a.FindIndex([]byte(text)); got != want {
				t.Errorf("FindIndex(0x%02x, %q) = %d, bytes.IndexByte = %d", b, text, got, want)
			}
		}
	}
}
