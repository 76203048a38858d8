package dfa

import (
	"github.com/coregx/kmp/alphabet"
	"github.com/coregx/kmp/internal/conv"
)

// Build constructs the dense automaton for the given pattern.
//
// Construction runs in O(alphabet * m): it maintains a restart cursor x, the
// state the machine would be in had it re-read the current prefix without its
// first byte. Row j starts as a copy of row x (the mismatch transitions are
// exactly what the restart state would do), then the one matching transition
// is overridden to advance. Rows are written in order and never revisited, so
// the copy always reads a finished row.
//
// Returns ErrEmptyPattern if the pattern is empty. The pattern is copied;
// the caller's slice may be reused afterwards.
func Build(pattern []byte) (*DFA, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	p := make([]byte, len(pattern))
	copy(p, pattern)
	m := len(p)

	classes := alphabet.ForPattern(p)
	alphabetLen := classes.AlphabetLen()
	stride := nextPowerOf2(alphabetLen)
	stride2 := log2(stride)

	// One row per non-match state. The match state has no outgoing
	// transitions; the search loop returns the moment it is entered.
	table := make([]StateID, m<<stride2)

	// Row 0: every class falls back to the restart state (zero value)
	// except the pattern's first byte, which advances.
	table[int(classes.Get(p[0]))] = 1

	// Restart cursor. Invariant: before iteration j, x < j and row x is
	// final, so both the copy and the cursor update below read settled data.
	x := StateID(0)
	for j := 1; j < m; j++ {
		row := j << stride2
		xrow := int(x) << stride2
		copy(table[row:row+stride], table[xrow:xrow+stride])

		class := int(classes.Get(p[j]))
		// Row x is final (x < j), so the cursor update reads settled
		// data regardless of the override below.
		x = table[xrow+class]
		table[row+class] = StateID(conv.IntToUint32(j + 1))
	}

	return &DFA{
		pattern:     p,
		table:       table,
		classes:     classes,
		alphabetLen: alphabetLen,
		stride:      stride,
		stride2:     stride2,
		matchState:  StateID(conv.IntToUint32(m)),
		accelByte:   p[0],
		accelerate:  true,
	}, nil
}
