package meta

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if !config.EnablePrefilter {
		t.Error("EnablePrefilter should default to true")
	}
	if !config.EnableAcceleration {
		t.Error("EnableAcceleration should default to true")
	}
	if config.MaxPatternLen != 1<<20 {
		t.Errorf("MaxPatternLen = %d, want %d", config.MaxPatternLen, 1<<20)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() failed: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"min_pattern_len", DefaultConfig().WithMaxPatternLen(1), false},
		{"max_pattern_len", DefaultConfig().WithMaxPatternLen(1 << 30), false},
		{"zero_pattern_len", DefaultConfig().WithMaxPatternLen(0), true},
		{"negative_pattern_len", DefaultConfig().WithMaxPatternLen(-1), true},
		{"excessive_pattern_len", DefaultConfig().WithMaxPatternLen(1<<30 + 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Chaining(t *testing.T) {
	base := DefaultConfig()
	custom := base.WithPrefilter(false).WithAcceleration(false).WithMaxPatternLen(128)

	if custom.EnablePrefilter || custom.EnableAcceleration {
		t.Errorf("chained config = %+v, want prefilter and acceleration off", custom)
	}
	if custom.MaxPatternLen != 128 {
		t.Errorf("MaxPatternLen = %d, want 128", custom.MaxPatternLen)
	}

	// Value receivers: the base must be untouched.
	if base != DefaultConfig() {
		t.Errorf("base config mutated by chaining: %+v", base)
	}
}

func TestConfigError_Message(t *testing.T) {
	err := &ConfigError{Field: "MaxPatternLen", Message: "must be positive"}
	msg := err.Error()
	if !strings.HasPrefix(msg, "kmp: invalid config: ") {
		t.Errorf("Error() = %q, want kmp: invalid config: prefix", msg)
	}
	if !strings.Contains(msg, "MaxPatternLen") || !strings.Contains(msg, "must be positive") {
		t.Errorf("Error() = %q, want field and message", msg)
	}
}
