// Package meta implements the engine orchestrator that selects the execution
// strategy for a compiled pattern.
//
// The engine coordinates three search paths:
//   - Memchr: direct byte scan for single-byte patterns (no automaton run)
//   - Prefiltered DFA: rare-byte candidate scan with anchored DFA verification
//   - DFA: straight dense-automaton scan with restart-state acceleration
//
// Strategy selection is based on:
//   - Pattern length (one byte needs no automaton at all)
//   - Rare-byte quality (prefiltering pays off only when the pattern's rare
//     bytes are rarer than its first byte)
//   - Configuration (prefiltering and acceleration can be disabled)
//
// The engine provides the compilation and search API, hiding the strategy
// coordination from callers; the root package wraps it for end users.
package meta

// Config controls engine behavior and performance characteristics.
//
// Configuration options affect:
//   - Strategy selection (whether prefiltering is considered)
//   - Scan behavior (restart-state acceleration)
//   - Limits (maximum pattern length)
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // Force plain DFA scanning
//	engine, err := meta.CompileWithConfig(pattern, config)
type Config struct {
	// EnablePrefilter enables rare-byte candidate filtering.
	// When false, multi-byte patterns always use the plain DFA scan.
	// Default: true
	EnablePrefilter bool

	// EnableAcceleration enables restart-state memchr skipping in the DFA
	// scan. Acceleration never changes results; disabling it is mainly
	// useful for benchmarking the raw automaton.
	// Default: true
	EnableAcceleration bool

	// MaxPatternLen caps the pattern length in bytes. The transition table
	// costs O(alphabet * length) memory, so the cap bounds compile-time
	// allocation for untrusted patterns.
	// Default: 1048576 (1 MiB)
	MaxPatternLen int
}

// DefaultConfig returns a configuration with sensible defaults.
//
// Defaults are tuned for typical text search:
//   - Prefilter enabled (large speedup when rare bytes are selective)
//   - Acceleration enabled (cheap, never slower on realistic inputs)
//   - 1 MiB pattern cap (far above any practical literal)
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:    true,
		EnableAcceleration: true,
		MaxPatternLen:      1 << 20,
	}
}

// WithPrefilter returns a copy of the config with prefiltering set.
func (c Config) WithPrefilter(enabled bool) Config {
	c.EnablePrefilter = enabled
	return c
}

// WithAcceleration returns a copy of the config with acceleration set.
func (c Config) WithAcceleration(enabled bool) Config {
	c.EnableAcceleration = enabled
	return c
}

// WithMaxPatternLen returns a copy of the config with the pattern cap set.
func (c Config) WithMaxPatternLen(n int) Config {
	c.MaxPatternLen = n
	return c
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - MaxPatternLen: 1 to 1,073,741,824 (1 GiB)
func (c Config) Validate() error {
	if c.MaxPatternLen < 1 || c.MaxPatternLen > 1<<30 {
		return &ConfigError{
			Field:   "MaxPatternLen",
			Message: "must be between 1 and 1,073,741,824",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "kmp: invalid config: " + e.Field + ": " + e.Message
}
