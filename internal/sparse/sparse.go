// Package sparse provides a sparse set data structure for efficient membership testing.
//
// A sparse set supports O(1) insertion, membership testing, and clearing while
// maintaining a dense list of elements in insertion order. The dense list doubles
// as a work queue, which makes the set a natural fit for breadth-first walks over
// DFA transition tables where visited states must be tracked.
package sparse

// SparseSet is a set of uint32 values that supports O(1) operations.
// It maintains both a sparse array (for membership testing) and a dense array
// (for iteration). The sparse array maps values to indices in the dense array.
//
// This implementation is optimized for cases where the universe of possible
// values is known and relatively small (e.g., automaton state IDs).
type SparseSet struct {
	sparse []uint32 // Maps value -> index in dense
	dense  []uint32 // Contains the actual values
	size   uint32   // Current number of elements
}

// defaultCapacity is used when NewSparseSet is given a zero capacity.
const defaultCapacity = 64

// NewSparseSet creates a new sparse set with the given capacity.
// The capacity represents the maximum value that can be stored (exclusive).
// A zero capacity falls back to a small default.
func NewSparseSet(capacity uint32) *SparseSet {
	if capacity == 0 {
		capacity = defaultCapacity
	}
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
		size:   0,
	}
}

// Insert adds a value to the set and reports whether it was newly added.
// Inserting a value already in the set is a no-op returning false.
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}

	// Add to dense array
	s.dense = append(s.dense, value)
	// Map value to its index in dense
	s.sparse[value] = s.size
	s.size++
	return true
}

// Contains returns true if the value is in the set
func (s *SparseSet) Contains(value uint32) bool {
	// Bounds check: value must be within sparse array bounds
	// Check for potential overflow when converting len to uint32
	if len(s.sparse) > 0x7FFFFFFF {
		return false // len too large for safe conversion
	}
	//nolint:gosec // G115: len is checked above for safe conversion to uint32
	sparseLen := uint32(len(s.sparse))
	if value >= sparseLen {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear removes all elements from the set in O(1) time
func (s *SparseSet) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Len returns the number of elements in the set
func (s *SparseSet) Len() int {
	return int(s.size)
}

// IsEmpty returns true if the set contains no elements
func (s *SparseSet) IsEmpty() bool {
	return s.size == 0
}

// Capacity returns the maximum value the set can store, exclusive.
func (s *SparseSet) Capacity() int {
	return len(s.sparse)
}

// Values returns a slice of all values in the set in insertion order.
// The returned slice is valid until the next mutation. Because Insert
// appends to it, Values can be walked by index while inserting to run
// a breadth-first traversal without a separate queue.
func (s *SparseSet) Values() []uint32 {
	return s.dense[:s.size]
}
