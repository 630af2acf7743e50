package storage

// ListArena adapts a List plus a MoveFix into an Arena with shifting
// keys. A key is simply the element's current position in the list.
//
// Key-shift rule: removing the element at key k shifts every element
// with a key greater than k one position to the left and repairs their
// cross-references through the MoveFix. Captured keys less than or equal
// to k stay valid; captured keys greater than k decrement by one.
// Callers removing several elements in one operation do so in descending
// key order so the not-yet-removed keys stay valid.
type ListArena[E any] struct {
	list List[E]
	fix  MoveFix[E]
}

// NewListArena wraps list and fix into an arena. The list is typically
// empty; a pre-filled list is legal as long as its cross-references are
// consistent with positions.
func NewListArena[E any](list List[E], fix MoveFix[E]) *ListArena[E] {
	assert(list != nil, "storage: nil backing list")
	assert(fix != nil, "storage: nil move-fix")
	return &ListArena[E]{list: list, fix: fix}
}

// List exposes the backing list, for callers that want positional
// access alongside the arena surface.
func (a *ListArena[E]) List() List[E] {
	return a.list
}

// Add appends element and returns its key. No existing key changes.
func (a *ListArena[E]) Add(element E) int {
	a.list.Push(element)
	return a.list.Len() - 1
}

// Remove deletes the element at key, left-shifts all higher keys and
// runs the fix-up pass over the shifted elements.
func (a *ListArena[E]) Remove(key int) E {
	assert(key >= 0 && key < a.list.Len(), "storage: no element at key")
	element := a.list.Remove(key)
	if key < a.list.Len() {
		a.fix.FixShift(a.list, key, -1)
	}
	return element
}

// InsertAndFix places element at key, right-shifting all elements at
// and above key and running the fix-up pass over them. The inserted
// element itself is not fixed.
func (a *ListArena[E]) InsertAndFix(key int, element E) {
	a.list.Insert(key, element)
	if key+1 < a.list.Len() {
		a.fix.FixShift(a.list, key, 1)
	}
}

// Contains reports whether key addresses a live element.
func (a *ListArena[E]) Contains(key int) bool {
	return key >= 0 && key < a.list.Len()
}

// Get returns a pointer to the element at key, or nil and false.
func (a *ListArena[E]) Get(key int) (*E, bool) {
	return a.list.Get(key)
}

// At returns a pointer to the element at key and panics if the key is
// not present.
func (a *ListArena[E]) At(key int) *E {
	assert(a.Contains(key), "storage: no element at key")
	return a.list.At(key)
}

// Len returns the number of live elements.
func (a *ListArena[E]) Len() int {
	return a.list.Len()
}

// Capacity returns the capacity of the backing list.
func (a *ListArena[E]) Capacity() int {
	return a.list.Capacity()
}

// Reserve grows the backing list by at least additional elements.
func (a *ListArena[E]) Reserve(additional int) {
	a.list.Reserve(additional)
}

// ShrinkToFit gives back unused capacity of the backing list.
func (a *ListArena[E]) ShrinkToFit() {
	a.list.ShrinkToFit()
}
