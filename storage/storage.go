package storage

// Storage is the key-addressed arena contract which the tree shapes are
// built on. Keys are handed out by Add and stay valid until the element
// is removed, subject to the key-stability promise of the concrete
// implementation: Sparse never moves keys, ListArena shifts keys above a
// removed one and repairs cross-references through its MoveFix.
//
// Get is the checked accessor. At is the unchecked one: callers use it
// when presence of the key is guaranteed by a tree invariant, and it
// panics loudly when that guarantee is broken.
type Storage[K comparable, E any] interface {
	// Add inserts element at an implementation-chosen key and returns
	// that key. Keys of other live elements never change.
	Add(element E) K
	// Remove deletes the element at key and returns it. Panics if key
	// is not present.
	Remove(key K) E
	// Contains reports whether key addresses a live element.
	Contains(key K) bool
	// Get returns a pointer to the element at key, or nil and false.
	Get(key K) (*E, bool)
	// At returns a pointer to the element at key and panics if the key
	// is not present.
	At(key K) *E
	// Len returns the number of live elements.
	Len() int
	// Capacity returns the number of elements the storage can hold
	// without growing.
	Capacity() int
	// Reserve grows capacity by at least additional elements.
	Reserve(additional int)
	// ShrinkToFit gives back unused capacity where the backing
	// collection supports it.
	ShrinkToFit()
}

// Arena is a Storage with int keys, the form all arbor tree shapes use.
type Arena[E any] = Storage[int, E]
