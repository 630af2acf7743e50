package storage

// Slice is a growable List backed by a Go slice. The zero value is an
// empty list ready for use.
type Slice[E any] struct {
	elems []E
}

// NewSlice returns an empty Slice with capacity for n elements.
func NewSlice[E any](n int) *Slice[E] {
	return &Slice[E]{elems: make([]E, 0, n)}
}

// Insert places element at index, shifting later elements right.
func (s *Slice[E]) Insert(index int, element E) {
	assert(index >= 0 && index <= len(s.elems), "storage: list index out of range")
	var zero E
	s.elems = append(s.elems, zero)
	copy(s.elems[index+1:], s.elems[index:])
	s.elems[index] = element
}

// Remove deletes the element at index, shifting later elements left.
func (s *Slice[E]) Remove(index int) E {
	assert(index >= 0 && index < len(s.elems), "storage: list index out of range")
	element := s.elems[index]
	copy(s.elems[index:], s.elems[index+1:])
	var zero E
	s.elems[len(s.elems)-1] = zero
	s.elems = s.elems[:len(s.elems)-1]
	return element
}

// Push appends element at the end.
func (s *Slice[E]) Push(element E) {
	s.elems = append(s.elems, element)
}

// Pop removes and returns the last element.
func (s *Slice[E]) Pop() E {
	assert(len(s.elems) > 0, "storage: pop from empty list")
	element := s.elems[len(s.elems)-1]
	var zero E
	s.elems[len(s.elems)-1] = zero
	s.elems = s.elems[:len(s.elems)-1]
	return element
}

// Len returns the number of elements.
func (s *Slice[E]) Len() int {
	return len(s.elems)
}

// At returns a pointer to the element at index.
func (s *Slice[E]) At(index int) *E {
	assert(index >= 0 && index < len(s.elems), "storage: list index out of range")
	return &s.elems[index]
}

// Get is the checked variant of At.
func (s *Slice[E]) Get(index int) (*E, bool) {
	if index < 0 || index >= len(s.elems) {
		return nil, false
	}
	return &s.elems[index], true
}

// Capacity returns the capacity of the backing slice.
func (s *Slice[E]) Capacity() int {
	return cap(s.elems)
}

// Reserve grows capacity by at least additional elements.
func (s *Slice[E]) Reserve(additional int) {
	if additional <= cap(s.elems)-len(s.elems) {
		return
	}
	grown := make([]E, len(s.elems), len(s.elems)+additional)
	copy(grown, s.elems)
	s.elems = grown
}

// ShrinkToFit reallocates the backing slice to the current length.
func (s *Slice[E]) ShrinkToFit() {
	if cap(s.elems) == len(s.elems) {
		return
	}
	shrunk := make([]E, len(s.elems))
	copy(shrunk, s.elems)
	s.elems = shrunk
}

// Truncate drops all elements at index n and after.
func (s *Slice[E]) Truncate(n int) {
	assert(n >= 0 && n <= len(s.elems), "storage: truncation index out of range")
	var zero E
	for i := n; i < len(s.elems); i++ {
		s.elems[i] = zero
	}
	s.elems = s.elems[:n]
}
