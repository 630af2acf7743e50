package storage

// List is the backing-collection contract for list-based arenas. It is a
// position-indexed sequence with pointer-stable in-place access for the
// duration of a fix-up pass. Indices are dense: 0 <= index < Len().
//
// Implementations panic on out-of-range indices; the arena layers above
// guarantee their indices.
type List[E any] interface {
	// Insert places element at index, shifting elements at and after
	// index one position to the right. index may equal Len().
	Insert(index int, element E)
	// Remove deletes the element at index, shifting later elements one
	// position to the left, and returns it.
	Remove(index int) E
	// Push appends element at the end.
	Push(element E)
	// Pop removes and returns the last element. Panics on an empty list.
	Pop() E
	// Len returns the number of elements.
	Len() int
	// At returns a pointer to the element at index. The pointer is valid
	// until the next mutation of the list.
	At(index int) *E
	// Get is the checked variant of At.
	Get(index int) (*E, bool)
	// Capacity returns the number of elements the list can hold without
	// growing.
	Capacity() int
	// Reserve grows capacity by at least additional elements.
	Reserve(additional int)
	// ShrinkToFit gives back unused capacity where possible.
	ShrinkToFit()
	// Truncate drops all elements at index n and after.
	Truncate(n int)
}

// Elements is the view of a storage handed to MoveFix callbacks. It is
// deliberately narrow: a fix-up pass may read and rewrite elements in
// place, but never add or remove any. Both List implementations and
// Sparse satisfy it.
type Elements[E any] interface {
	At(index int) *E
	Get(index int) (*E, bool)
	Len() int
}

// MoveFix repairs cross-references between elements of a storage after
// elements changed their index. Tree nodes reference parents and
// children by key, so every tree shape exports a MoveFix for its node
// type; element types without cross-references use NoFix.
type MoveFix[E any] interface {
	// FixShift is called after a contiguous run of elements moved by
	// shiftedBy positions. shiftedBy is nonzero; negative means the run
	// starting at shiftedFrom moved left (a removal), positive means the
	// run moved right (an insertion, with the inserted element itself
	// excluded from the run).
	FixShift(s Elements[E], shiftedFrom int, shiftedBy int)
	// FixMove is called after the single element now at currentIndex
	// moved there from previousIndex.
	FixMove(s Elements[E], previousIndex int, currentIndex int)
}

// FixShiftByMove implements the FixShift obligation in terms of FixMove,
// calling fix.FixMove exactly once for every moved element. Most MoveFix
// implementations delegate to it.
func FixShiftByMove[E any](fix MoveFix[E], s Elements[E], shiftedFrom int, shiftedBy int) {
	assert(shiftedBy != 0, "storage: shift by zero is not a shift")
	if shiftedBy < 0 {
		for i := shiftedFrom; i < s.Len(); i++ {
			fix.FixMove(s, i-shiftedBy, i)
		}
		return
	}
	for i := shiftedFrom + shiftedBy; i < s.Len(); i++ {
		fix.FixMove(s, i-shiftedBy, i)
	}
}

// NoFix is a MoveFix for element types without cross-references.
type NoFix[E any] struct{}

// FixShift does nothing.
func (NoFix[E]) FixShift(s Elements[E], shiftedFrom int, shiftedBy int) {}

// FixMove does nothing.
func (NoFix[E]) FixMove(s Elements[E], previousIndex int, currentIndex int) {}
