// Package meta implements the engine orchestrator.
//
// match.go contains the Match type returned by Find operations.

package meta

// Match represents an occurrence of the pattern with position information.
//
// A Match contains:
//   - Start position (inclusive)
//   - End position (exclusive)
//   - Reference to the original haystack
//
// For a pattern of length m, End() - Start() is always m.
//
// Example:
//
//	match := meta.NewMatch(5, 11, []byte("test foo123 end"))
//	println(match.String()) // "foo123"
//	println(match.Start(), match.End()) // 5, 11
type Match struct {
	start    int
	end      int
	haystack []byte
}

// NewMatch creates a new Match from start and end positions.
//
// The haystack is stored by reference (not copied) for efficiency.
// Callers must ensure the haystack remains valid for the lifetime of the
// Match.
func NewMatch(start, end int, haystack []byte) *Match {
	return &Match{
		start:    start,
		end:      end,
		haystack: haystack,
	}
}

// Start returns the inclusive start position of the match.
func (m *Match) Start() int {
	return m.start
}

// End returns the exclusive end position of the match.
func (m *Match) End() int {
	return m.end
}

// Len returns the length of the match in bytes.
func (m *Match) Len() int {
	return m.end - m.start
}

// Bytes returns the matched bytes as a slice.
//
// The returned slice is a view into the original haystack (not a copy).
// Callers should copy the bytes if they need to retain them after the
// haystack is modified.
func (m *Match) Bytes() []byte {
	if m.start < 0 || m.end > len(m.haystack) || m.start > m.end {
		return nil
	}
	return m.haystack[m.start:m.end]
}

// String returns the matched text as a string.
//
// This allocates a new string by copying the matched bytes.
// For zero-allocation access, use Bytes() instead.
func (m *Match) String() string {
	return string(m.Bytes())
}

// Contains returns true if the given position is within the match range,
// i.e. Start() <= pos < End().
func (m *Match) Contains(pos int) bool {
	return pos >= m.start && pos < m.end
}
