package prefilter

// Tracker wraps a Prefilter with effectiveness tracking.
//
// The tracker monitors the ratio of confirmed occurrences to candidates
// found. When effectiveness drops below a threshold (too many false
// candidates), the prefilter is disabled to prevent the candidate-and-verify
// loop from degenerating into a slow scan. This follows the prefilter
// retirement heuristic used by production regex engines: an input dense in
// the pattern's "rare" bytes turns the prefilter from a shortcut into pure
// overhead.
//
// Algorithm:
//  1. Count candidates (prefilter finds) and confirms (verified occurrences)
//  2. Every N candidates, check the confirm/candidate ratio
//  3. If the ratio is below the threshold, disable the prefilter
//  4. Once disabled, it stays disabled for this search
//
// A Tracker is single-search state and is not safe for concurrent use; the
// underlying Prefilter remains shareable.
//
// Example usage:
//
//	tracker := prefilter.NewTracker(pf)
//	for {
//	    if !tracker.IsActive() {
//	        // Retired: fall back to the plain automaton scan.
//	        break
//	    }
//	    pos := tracker.Find(haystack, start)
//	    if pos == -1 {
//	        break
//	    }
//	    if occurrenceAt(haystack, pos) {
//	        tracker.ConfirmMatch()
//	        return pos
//	    }
//	    start = pos + 1
//	}
type Tracker struct {
	inner Prefilter

	// Statistics
	candidates uint64 // Candidate positions found
	confirms   uint64 // Verified occurrences

	// Configuration
	checkInterval  uint64  // Check effectiveness every N candidates
	minEfficiency  float64 // Minimum required efficiency (0.0 to 1.0)
	warmupPeriod   uint64  // Don't disable until this many candidates
	lastCheckpoint uint64  // Candidates at last checkpoint

	// State
	active bool
}

// TrackerConfig holds configuration for the effectiveness tracker.
type TrackerConfig struct {
	// CheckInterval is how often to check effectiveness (in candidates).
	// Default: 64
	CheckInterval uint64

	// MinEfficiency is the minimum acceptable ratio of confirms/candidates.
	// If efficiency drops below this, the prefilter is disabled.
	// Default: 0.1 (10%)
	MinEfficiency float64

	// WarmupPeriod is the minimum number of candidates before checking
	// effectiveness. Prevents premature disabling on small samples.
	// Default: 128
	WarmupPeriod uint64
}

// DefaultTrackerConfig returns the default tracker configuration.
//
//   - CheckInterval: 64 (check frequently but not every candidate)
//   - MinEfficiency: 0.1 (disable if >90% of candidates are false)
//   - WarmupPeriod: 128 (enough samples before judging)
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinEfficiency: 0.1,
		WarmupPeriod:  128,
	}
}

// NewTracker creates a new tracker for the given prefilter with default
// config. Returns nil if the inner prefilter is nil.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig creates a new tracker with custom configuration.
// Returns nil if the inner prefilter is nil.
func NewTrackerWithConfig(inner Prefilter, config TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}

	return &Tracker{
		inner:         inner,
		checkInterval: config.CheckInterval,
		minEfficiency: config.MinEfficiency,
		warmupPeriod:  config.WarmupPeriod,
		active:        true,
	}
}

// Find returns the next candidate position, or -1 if none is found or the
// tracker has been disabled. Effectiveness is re-evaluated at configured
// intervals, so this may return -1 even when candidates exist.
func (t *Tracker) Find(haystack []byte, start int) int {
	if !t.active {
		return -1
	}

	pos := t.inner.Find(haystack, start)
	if pos >= 0 {
		t.candidates++
		t.checkEffectiveness()
	}
	return pos
}

// ConfirmMatch records that the most recent candidate was a real occurrence.
// Call it after every successful verification to keep the efficiency ratio
// honest.
func (t *Tracker) ConfirmMatch() {
	t.confirms++
}

// IsActive returns true if the prefilter is still being used. When false,
// the caller should fall back to the plain automaton scan.
func (t *Tracker) IsActive() bool {
	return t.active
}

// Stats returns the current tracking statistics.
func (t *Tracker) Stats() (candidates, confirms uint64, efficiency float64, active bool) {
	candidates = t.candidates
	confirms = t.confirms
	if candidates > 0 {
		efficiency = float64(confirms) / float64(candidates)
	}
	active = t.active
	return
}

// Reset clears statistics and re-enables the prefilter, so a tracker can be
// reused across searches.
func (t *Tracker) Reset() {
	t.candidates = 0
	t.confirms = 0
	t.lastCheckpoint = 0
	t.active = true
}

// checkEffectiveness evaluates whether to disable the prefilter. Called
// after each candidate; the actual check runs only at configured intervals.
func (t *Tracker) checkEffectiveness() {
	if t.candidates < t.warmupPeriod {
		return
	}

	if t.candidates-t.lastCheckpoint < t.checkInterval {
		return
	}
	t.lastCheckpoint = t.candidates

	efficiency := float64(t.confirms) / float64(t.candidates)
	if efficiency < t.minEfficiency {
		t.active = false
	}
}
