package kmp

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
)

// BenchmarkFindIndexVsStdlib compares the facade against bytes.Index on a
// late match after kilobytes of prose, across pattern lengths.
func BenchmarkFindIndexVsStdlib(b *testing.B) {
	filler := strings.Repeat("commonplace prose with no surprises in it whatsoever. ", 200)

	cases := []struct {
		name    string
		pattern string
	}{
		{"len1", "q"},
		{"len4", "quux"},
		{"len8", "quixotic"},
		{"len16", "quixotic_zealous"},
	}

	for _, tc := range cases {
		haystack := []byte(filler + tc.pattern)
		pattern := []byte(tc.pattern)

		b.Run("kmp_"+tc.name, func(b *testing.B) {
			a, err := Compile(pattern)
			if err != nil {
				b.Fatal(err)
			}
			b.SetBytes(int64(len(haystack)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = a.FindIndex(haystack)
			}
		})

		b.Run("stdlib_"+tc.name, func(b *testing.B) {
			b.SetBytes(int64(len(haystack)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = bytes.Index(haystack, pattern)
			}
		})
	}
}

// BenchmarkFindIndexPeriodic measures the overlap-heavy worst case where
// naive search degenerates but the automaton stays one step per byte.
func BenchmarkFindIndexPeriodic(b *testing.B) {
	// Text of "aab" repeats, pattern almost matching at every period.
	haystack := []byte(strings.Repeat("aab", 20000) + "aaa")
	pattern := []byte("aabaabaaa")

	b.Run("kmp", func(b *testing.B) {
		a, err := Compile(pattern)
		if err != nil {
			b.Fatal(err)
		}
		b.SetBytes(int64(len(haystack)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = a.FindIndex(haystack)
		}
	})

	b.Run("stdlib", func(b *testing.B) {
		b.SetBytes(int64(len(haystack)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = bytes.Index(haystack, pattern)
		}
	})
}

// BenchmarkCompile measures build cost across pattern lengths.
func BenchmarkCompile(b *testing.B) {
	for _, m := range []int{1, 8, 64, 512, 4096} {
		pattern := bytes.Repeat([]byte("abcdefgh"), (m+7)/8)[:m]

		b.Run("m="+strconv.Itoa(m), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				a, err := Compile(pattern)
				if err != nil {
					b.Fatal(err)
				}
				_ = a
			}
		})
	}
}
