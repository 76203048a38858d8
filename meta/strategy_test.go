package meta

import (
	"testing"
)

func TestStrategy_String(t *testing.T) {
	tests := []struct {
		strategy Strategy
		want     string
	}{
		{UseMemchr, "UseMemchr"},
		{UsePrefilteredDFA, "UsePrefilteredDFA"},
		{UseDFA, "UseDFA"},
		{Strategy(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.strategy.String(); got != tt.want {
			t.Errorf("Strategy(%d).String() = %q, want %q", int(tt.strategy), got, tt.want)
		}
	}
}

func TestSelectStrategy(t *testing.T) {
	defaults := DefaultConfig()
	noPrefilter := DefaultConfig().WithPrefilter(false)

	tests := []struct {
		name    string
		pattern string
		config  Config
		want    Strategy
	}{
		{"empty", "", defaults, UseMemchr}, // compile rejects it before selection matters
		{"single_byte", "a", defaults, UseMemchr},
		{"rare_interior", "needle", defaults, UsePrefilteredDFA},
		{"rare_first", "qaaa", defaults, UseDFA},
		{"space_lead", " and ", defaults, UsePrefilteredDFA},
		{"prefilter_off", "needle", noPrefilter, UseDFA},
		{"all_same_byte", "aaaa", defaults, UseDFA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectStrategy([]byte(tt.pattern), tt.config); got != tt.want {
				t.Errorf("SelectStrategy(%q) = %s, want %s", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestStrategyReason(t *testing.T) {
	config := DefaultConfig()
	patterns := map[Strategy][]byte{
		UseMemchr:         []byte("a"),
		UsePrefilteredDFA: []byte("needle"),
		UseDFA:            []byte("qaaa"),
	}

	for strategy, pattern := range patterns {
		if got := SelectStrategy(pattern, config); got != strategy {
			t.Fatalf("SelectStrategy(%q) = %s, want %s", pattern, got, strategy)
		}
		reason := StrategyReason(strategy, pattern, config)
		if reason == "" || reason == "unknown strategy" {
			t.Errorf("StrategyReason(%s, %q) = %q, want explanation", strategy, pattern, reason)
		}
	}

	if got := StrategyReason(Strategy(99), []byte("x"), config); got != "unknown strategy" {
		t.Errorf("StrategyReason(unknown) = %q", got)
	}

	// Disabled prefilter has its own explanation.
	off := DefaultConfig().WithPrefilter(false)
	reason := StrategyReason(UseDFA, []byte("needle"), off)
	if reason != "prefilter disabled in configuration" {
		t.Errorf("StrategyReason with prefilter off = %q", reason)
	}
}
