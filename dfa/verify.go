package dfa

import (
	"fmt"

	"github.com/coregx/kmp/internal/conv"
	"github.com/coregx/kmp/internal/sparse"
)

// Verify checks structural invariants of the built automaton:
//
//   - Totality: every (state, class) pair has a transition in range
//   - Reachability: the match state is reachable from the restart state
//   - Progress: state j advances to state j+1 on the pattern's j-th byte
//
// It walks the table breadth-first using a sparse set as the work queue,
// which deduplicates states without clearing a visited array. Verify is
// cheap (O(alphabet * m)) and intended for diagnostics; Build always
// produces a table that passes.
func (d *DFA) Verify() error {
	m := len(d.pattern)

	seen := sparse.NewSparseSet(conv.IntToUint32(m + 1))
	seen.Insert(0)
	// Values() grows as we insert, so indexing by position drains the
	// queue in BFS order.
	for i := 0; i < seen.Len(); i++ {
		state := seen.Values()[i]
		if StateID(state) == d.matchState {
			// The match state has no row.
			continue
		}
		for class := 0; class < d.alphabetLen; class++ {
			next := d.table[(int(state)<<d.stride2)+class]
			if next > d.matchState {
				return fmt.Errorf("state %d: class %d leads to invalid state %d (max %d)",
					state, class, next, d.matchState)
			}
			seen.Insert(uint32(next))
		}
	}

	if !seen.Contains(uint32(d.matchState)) {
		return fmt.Errorf("match state %d unreachable from restart state", d.matchState)
	}

	for j := 0; j < m; j++ {
		class := d.classes.Get(d.pattern[j])
		next := d.getTransition(StateID(conv.IntToUint32(j)), class)
		if next != StateID(conv.IntToUint32(j+1)) {
			return fmt.Errorf("state %d: pattern byte %#x advances to state %d, want %d",
				j, d.pattern[j], next, j+1)
		}
	}
	return nil
}
