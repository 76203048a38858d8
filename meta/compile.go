// Package meta implements the engine orchestrator.
//
// compile.go contains pattern compilation and the engine builder.

package meta

import (
	"fmt"

	"github.com/coregx/kmp/dfa"
	"github.com/coregx/kmp/prefilter"
)

// Compile compiles a literal pattern into an executable Engine.
//
// Steps:
//  1. Build the dense automaton (rejects empty patterns)
//  2. Select the execution strategy from pattern analysis
//  3. Build the prefilter when the strategy scans with one
//
// Returns an error if:
//   - The pattern is empty (dfa.ErrEmptyPattern via CompileError)
//   - The pattern exceeds the configured length cap
//
// Example:
//
//	engine, err := meta.Compile([]byte("needle"))
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern []byte) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := meta.DefaultConfig().WithPrefilter(false)
//	engine, err := meta.CompileWithConfig(pattern, config)
func CompileWithConfig(pattern []byte, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if len(pattern) > config.MaxPatternLen {
		display := pattern
		if len(display) > 64 {
			display = display[:64]
		}
		return nil, &CompileError{
			Pattern: string(display),
			Err: fmt.Errorf("pattern length %d exceeds MaxPatternLen %d",
				len(pattern), config.MaxPatternLen),
		}
	}

	d, err := dfa.Build(pattern)
	if err != nil {
		return nil, &CompileError{
			Pattern: string(pattern),
			Err:     err,
		}
	}
	d.SetAcceleration(config.EnableAcceleration)

	strategy := SelectStrategy(pattern, config)

	var pf prefilter.Prefilter
	if strategy == UseMemchr || strategy == UsePrefilteredDFA {
		pf = prefilter.NewBuilder(pattern).Build()
	}

	return &Engine{
		pattern:   d.Pattern(),
		dfa:       d,
		prefilter: pf,
		strategy:  strategy,
		config:    config,
	}, nil
}

// CompileError represents a pattern compilation failure.
type CompileError struct {
	// Pattern is the pattern that failed to compile, possibly truncated.
	Pattern string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Err != nil {
		return "kmp: compile error: " + e.Err.Error()
	}
	return "kmp: unknown compile error"
}

// Unwrap returns the underlying error for errors.Is / errors.As.
func (e *CompileError) Unwrap() error {
	return e.Err
}
