package storage

// Slot is an element-or-hole cell of a Sparse storage. Holes form a
// singly linked free list threaded through their next fields.
type Slot[E any] struct {
	element E
	next    int
	hole    bool
}

// IsHole reports whether the slot is a hole.
func (s Slot[E]) IsHole() bool {
	return s.hole
}

// Sparse is a key-stable arena on top of any List of slots. Removal
// punches a hole instead of shifting, so no key ever moves and no
// fix-up pass runs. Holes are reused by Add in first-punched-first-
// reused order, in constant time.
//
// The memory of holes is reclaimed only by Defragment or
// DefragmentAndFix, which compact live elements to the front and
// truncate. Compaction moves keys, so DefragmentAndFix must be used for
// element types with cross-references.
//
// Sparse additionally offers the raw positional operations of a list
// (Push, Insert, RemoveAt, Pop, Truncate). The index-shifting ones
// refuse to run while holes are present: they would shift keys without
// the free list noticing.
type Sparse[E any] struct {
	inner List[Slot[E]]
	holes int
	head  int
	tail  int
}

// NewSparse wraps an empty slot list into a sparse storage.
func NewSparse[E any](list List[Slot[E]]) *Sparse[E] {
	assert(list != nil, "storage: nil backing list")
	assert(list.Len() == 0, "storage: backing list must be empty")
	return &Sparse[E]{inner: list, head: -1, tail: -1}
}

// NewSparseSlice returns a sparse storage over a growable slice with
// capacity for n elements.
func NewSparseSlice[E any](n int) *Sparse[E] {
	return NewSparse[E](NewSlice[Slot[E]](n))
}

// Add stores element at the oldest hole if one exists, at a fresh slot
// at the end otherwise. Either way no other key changes.
func (s *Sparse[E]) Add(element E) int {
	if s.holes == 0 {
		s.inner.Push(Slot[E]{element: element, next: -1})
		return s.inner.Len() - 1
	}
	key := s.head
	slot := s.inner.At(key)
	assert(slot.hole, "storage: free list points at a live slot")
	s.head = slot.next
	if s.head == -1 {
		s.tail = -1
	}
	*slot = Slot[E]{element: element, next: -1}
	s.holes--
	tracer().Debugf("sparse storage reuses slot %d, %d holes left", key, s.holes)
	return key
}

// Remove punches a hole at key and returns the evicted element. No
// other key changes and no fix-up runs.
func (s *Sparse[E]) Remove(key int) E {
	slot, ok := s.inner.Get(key)
	assert(ok && !slot.hole, "storage: no element at key")
	element := slot.element
	var zero E
	*slot = Slot[E]{element: zero, next: -1, hole: true}
	if s.holes == 0 {
		s.head = key
	} else {
		s.inner.At(s.tail).next = key
	}
	s.tail = key
	s.holes++
	return element
}

// Contains reports whether key addresses a live element. Holes count
// as absent.
func (s *Sparse[E]) Contains(key int) bool {
	slot, ok := s.inner.Get(key)
	return ok && !slot.hole
}

// Get returns a pointer to the element at key, or nil and false for
// absent keys and holes.
func (s *Sparse[E]) Get(key int) (*E, bool) {
	slot, ok := s.inner.Get(key)
	if !ok || slot.hole {
		return nil, false
	}
	return &slot.element, true
}

// At returns a pointer to the element at key and panics on absent keys
// and holes.
func (s *Sparse[E]) At(key int) *E {
	slot, ok := s.inner.Get(key)
	assert(ok, "storage: no element at key")
	assert(!slot.hole, "storage: access to a hole slot")
	return &slot.element
}

// Len returns the number of live elements.
func (s *Sparse[E]) Len() int {
	return s.inner.Len() - s.holes
}

// Capacity returns the capacity of the backing list.
func (s *Sparse[E]) Capacity() int {
	return s.inner.Capacity()
}

// Reserve grows the backing list by at least additional elements.
func (s *Sparse[E]) Reserve(additional int) {
	s.inner.Reserve(additional)
}

// ShrinkToFit gives back unused capacity of the backing list. It does
// not reclaim holes; call Defragment or DefragmentAndFix first.
func (s *Sparse[E]) ShrinkToFit() {
	s.inner.ShrinkToFit()
}

// NumHoles returns the number of hole slots, in constant time.
func (s *Sparse[E]) NumHoles() int {
	return s.holes
}

// IsDense reports whether the storage has no holes, in constant time.
func (s *Sparse[E]) IsDense() bool {
	return s.holes == 0
}

// Defragment compacts live elements to the front of the backing list
// and truncates the holes away. Keys of relocated elements change
// without any fix-up, so this is only legal for element types without
// cross-references; use DefragmentAndFix otherwise. A dense storage is
// left untouched.
func (s *Sparse[E]) Defragment() {
	s.defragment(nil)
}

// DefragmentAndFix compacts like Defragment and calls fix.FixMove once
// for every relocated element.
func (s *Sparse[E]) DefragmentAndFix(fix MoveFix[E]) {
	assert(fix != nil, "storage: nil move-fix")
	s.defragment(fix)
}

func (s *Sparse[E]) defragment(fix MoveFix[E]) {
	if s.holes == 0 {
		return
	}
	tracer().Debugf("sparse storage defragments %d holes", s.holes)
	i, j := 0, s.inner.Len()-1
	for {
		for i < j && !s.inner.At(i).hole {
			i++
		}
		for j > i && s.inner.At(j).hole {
			j--
		}
		if i >= j {
			break
		}
		hole, live := s.inner.At(i), s.inner.At(j)
		*hole = *live
		*live = Slot[E]{next: -1, hole: true}
		if fix != nil {
			fix.FixMove(s, j, i)
		}
		i++
		j--
	}
	s.inner.Truncate(s.inner.Len() - s.holes)
	s.holes, s.head, s.tail = 0, -1, -1
}

// The raw positional surface. Push is always legal since appending
// shifts nothing; the shifting operations require a dense storage.

// Push appends element at the end.
func (s *Sparse[E]) Push(element E) {
	s.inner.Push(Slot[E]{element: element, next: -1})
}

// Insert places element at index. Panics while holes are present.
func (s *Sparse[E]) Insert(index int, element E) {
	assert(s.holes == 0, "storage: index-shifting operation on a storage with holes")
	s.inner.Insert(index, Slot[E]{element: element, next: -1})
}

// RemoveAt deletes the element at index, shifting later elements left.
// Panics while holes are present. This is the List removal; the arena
// removal is Remove.
func (s *Sparse[E]) RemoveAt(index int) E {
	assert(s.holes == 0, "storage: index-shifting operation on a storage with holes")
	return s.inner.Remove(index).element
}

// Pop removes and returns the last element. Panics while holes are
// present.
func (s *Sparse[E]) Pop() E {
	assert(s.holes == 0, "storage: index-shifting operation on a storage with holes")
	return s.inner.Pop().element
}

// Truncate drops all elements at index n and after. Panics while holes
// are present.
func (s *Sparse[E]) Truncate(n int) {
	assert(s.holes == 0, "storage: index-shifting operation on a storage with holes")
	s.inner.Truncate(n)
}
