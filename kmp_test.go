package kmp

import (
	"errors"
	"strings"
	"testing"

	"github.com/coregx/kmp/dfa"
	"github.com/coregx/kmp/meta"
)

// TestCompile tests basic compilation.
func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"simple literal", "hello", false},
		{"single byte", "a", false},
		{"binary bytes", "\x00\xff\x80", false},
		{"repeated byte", "aaaa", false},
		{"long pattern", strings.Repeat("ab", 500), false},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Compile([]byte(tt.pattern))
			if (err != nil) != tt.wantErr {
				t.Errorf("Compile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && a == nil {
				t.Error("Compile() returned nil Automaton without error")
			}
		})
	}
}

// TestCompile_EmptyPattern verifies the error chain for the one invalid input.
func TestCompile_EmptyPattern(t *testing.T) {
	_, err := Compile(nil)
	if err == nil {
		t.Fatal("Compile(nil) succeeded, want error")
	}
	if !errors.Is(err, dfa.ErrEmptyPattern) {
		t.Errorf("error chain does not contain ErrEmptyPattern: %v", err)
	}
	var compileErr *meta.CompileError
	if !errors.As(err, &compileErr) {
		t.Errorf("error is not a *meta.CompileError: %v", err)
	}
}

func TestCompileString(t *testing.T) {
	a, err := CompileString("needle")
	if err != nil {
		t.Fatalf("CompileString() error: %v", err)
	}
	if got := a.FindStringIndex("a needle"); got != 2 {
		t.Errorf("FindStringIndex() = %d, want 2", got)
	}

	if _, err := CompileString(""); err == nil {
		t.Error("CompileString(\"\") succeeded, want error")
	}
}

// TestMustCompilePanicFormat verifies the MustCompile panic message shape.
func TestMustCompilePanicFormat(t *testing.T) {
	var gotPanic string
	func() {
		defer func() {
			if r := recover(); r != nil {
				gotPanic = r.(string)
			}
		}()
		MustCompile("")
	}()

	if gotPanic == "" {
		t.Fatal("MustCompile(\"\") did not panic")
	}
	if !strings.HasPrefix(gotPanic, "kmp: Compile(``)") {
		t.Errorf("panic message = %q, want prefix \"kmp: Compile(``)\"", gotPanic)
	}
}

func TestMustCompile_Valid(t *testing.T) {
	a := MustCompile("abc")
	if a == nil {
		t.Fatal("MustCompile returned nil")
	}
	if got := a.FindIndex([]byte("zabc")); got != 1 {
		t.Errorf("FindIndex() = %d, want 1", got)
	}
}

func TestCompileWithConfig(t *testing.T) {
	a, err := CompileWithConfig([]byte("needle"), DefaultConfig().WithPrefilter(false))
	if err != nil {
		t.Fatalf("CompileWithConfig() error: %v", err)
	}
	if a.Strategy() != meta.UseDFA {
		t.Errorf("Strategy() = %s, want UseDFA with prefilter disabled", a.Strategy())
	}

	_, err = CompileWithConfig([]byte("needle"), DefaultConfig().WithMaxPatternLen(0))
	var configErr *meta.ConfigError
	if !errors.As(err, &configErr) {
		t.Errorf("invalid config error = %v, want *meta.ConfigError", err)
	}

	_, err = CompileWithConfig([]byte("too long"), DefaultConfig().WithMaxPatternLen(4))
	if err == nil {
		t.Error("pattern over MaxPatternLen compiled, want error")
	}
}

// TestFindIndex covers the core search contract at the facade level.
func TestFindIndex(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    int
	}{
		{"self match", "abc", "abc", 0},
		{"leftmost", "aa", "aaaa", 0},
		{"overlap reuse", "aaba", "aabaabaaba", 0},
		{"nested overlap", "abab", "ababab", 0},
		{"middle", "needle", "a needle in a haystack", 2},
		{"at end", "end", "the end", 4},
		{"no match", "xyz", "aaaa", -1},
		{"empty text", "abc", "", -1},
		{"text shorter than pattern", "abcdef", "abc", -1},
		{"single byte hit", "a", "xyza", 3},
		{"single byte miss", "a", "xyz", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustCompile(tt.pattern)
			if got := a.FindIndex([]byte(tt.text)); got != tt.want {
				t.Errorf("FindIndex(%q) = %d, want %d", tt.text, got, tt.want)
			}
			if got := a.FindStringIndex(tt.text); got != tt.want {
				t.Errorf("FindStringIndex(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestFind(t *testing.T) {
	a := MustCompile("needle")

	m := a.Find([]byte("a needle in a haystack"))
	if m == nil {
		t.Fatal("Find() = nil, want match")
	}
	if m.Start() != 2 || m.End() != 8 {
		t.Errorf("match at [%d:%d], want [2:8]", m.Start(), m.End())
	}
	if m.String() != "needle" {
		t.Errorf("match text = %q, want %q", m.String(), "needle")
	}

	if m := a.Find([]byte("nothing here")); m != nil {
		t.Errorf("Find() = %v, want nil", m)
	}
	if m := a.Find(nil); m != nil {
		t.Errorf("Find(nil) = %v, want nil", m)
	}
}

func TestIsMatch(t *testing.T) {
	a := MustCompile("needle")

	if !a.IsMatch([]byte("needles")) {
		t.Error("IsMatch() = false, want true")
	}
	if a.IsMatch([]byte("needl")) {
		t.Error("IsMatch() = true, want false")
	}
	if !a.MatchString("one needle") {
		t.Error("MatchString() = false, want true")
	}
	if a.MatchString("") {
		t.Error("MatchString(\"\") = true, want false")
	}
}

// TestPatternAliasing verifies the compile-time pattern copy: mutating the
// caller's slice after Compile must not affect the automaton.
func TestPatternAliasing(t *testing.T) {
	raw := []byte("needle")
	a, err := Compile(raw)
	if err != nil {
		t.Fatal(err)
	}

	raw[0] = 'X'

	if got := a.FindIndex([]byte("a needle")); got != 2 {
		t.Errorf("FindIndex() after caller mutation = %d, want 2", got)
	}
	if string(a.Pattern()) != "needle" {
		t.Errorf("Pattern() = %q, want %q", a.Pattern(), "needle")
	}

	// The returned pattern is itself a copy.
	p := a.Pattern()
	p[0] = 'Y'
	if string(a.Pattern()) != "needle" {
		t.Error("mutating Pattern() result affected the automaton")
	}
}

func TestAccessors(t *testing.T) {
	a := MustCompile("needle")

	if a.String() != "needle" {
		t.Errorf("String() = %q, want %q", a.String(), "needle")
	}
	if a.MemoryUsage() <= 0 {
		t.Errorf("MemoryUsage() = %d, want > 0", a.MemoryUsage())
	}
	if err := a.Verify(); err != nil {
		t.Errorf("Verify() = %v, want nil", err)
	}
}

func TestStatsLifecycle(t *testing.T) {
	a := MustCompile("needle")

	a.FindIndex([]byte("a needle"))
	a.FindIndex([]byte("nothing"))

	stats := a.Stats()
	if stats.Matches != 1 {
		t.Errorf("Matches = %d, want 1", stats.Matches)
	}

	a.ResetStats()
	if stats := a.Stats(); stats.Matches != 0 {
		t.Errorf("Matches after reset = %d, want 0", stats.Matches)
	}
}
