package storage

// Fixed is a List with a capacity set at construction time. It never
// reallocates, so element pointers stay valid across mutations which do
// not move the element. Exceeding the capacity panics.
type Fixed[E any] struct {
	elems []E
}

// NewFixed returns an empty Fixed list with capacity for n elements.
func NewFixed[E any](n int) *Fixed[E] {
	assert(n >= 0, "storage: negative capacity")
	return &Fixed[E]{elems: make([]E, 0, n)}
}

// Insert places element at index, shifting later elements right.
// Panics when the list is full.
func (f *Fixed[E]) Insert(index int, element E) {
	assert(index >= 0 && index <= len(f.elems), "storage: list index out of range")
	assert(len(f.elems) < cap(f.elems), "storage: fixed list is full")
	var zero E
	f.elems = append(f.elems, zero)
	copy(f.elems[index+1:], f.elems[index:])
	f.elems[index] = element
}

// Remove deletes the element at index, shifting later elements left.
func (f *Fixed[E]) Remove(index int) E {
	assert(index >= 0 && index < len(f.elems), "storage: list index out of range")
	element := f.elems[index]
	copy(f.elems[index:], f.elems[index+1:])
	var zero E
	f.elems[len(f.elems)-1] = zero
	f.elems = f.elems[:len(f.elems)-1]
	return element
}

// Push appends element at the end. Panics when the list is full.
func (f *Fixed[E]) Push(element E) {
	assert(len(f.elems) < cap(f.elems), "storage: fixed list is full")
	f.elems = append(f.elems, element)
}

// Pop removes and returns the last element.
func (f *Fixed[E]) Pop() E {
	assert(len(f.elems) > 0, "storage: pop from empty list")
	element := f.elems[len(f.elems)-1]
	var zero E
	f.elems[len(f.elems)-1] = zero
	f.elems = f.elems[:len(f.elems)-1]
	return element
}

// Len returns the number of elements.
func (f *Fixed[E]) Len() int {
	return len(f.elems)
}

// At returns a pointer to the element at index.
func (f *Fixed[E]) At(index int) *E {
	assert(index >= 0 && index < len(f.elems), "storage: list index out of range")
	return &f.elems[index]
}

// Get is the checked variant of At.
func (f *Fixed[E]) Get(index int) (*E, bool) {
	if index < 0 || index >= len(f.elems) {
		return nil, false
	}
	return &f.elems[index], true
}

// Capacity returns the fixed capacity.
func (f *Fixed[E]) Capacity() int {
	return cap(f.elems)
}

// Reserve panics if additional elements would not fit into the fixed
// capacity; otherwise it does nothing.
func (f *Fixed[E]) Reserve(additional int) {
	assert(len(f.elems)+additional <= cap(f.elems),
		"storage: fixed list cannot grow")
}

// ShrinkToFit does nothing; the capacity is part of the contract.
func (f *Fixed[E]) ShrinkToFit() {}

// Truncate drops all elements at index n and after.
func (f *Fixed[E]) Truncate(n int) {
	assert(n >= 0 && n <= len(f.elems), "storage: truncation index out of range")
	var zero E
	for i := n; i < len(f.elems); i++ {
		f.elems[i] = zero
	}
	f.elems = f.elems[:n]
}
