package bintree

import (
	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/storage"
)

// Tree is an arena-allocated binary tree. It always contains at least
// one node, the root. B is the payload type of branch nodes, L the
// payload type of leaves; for trees where the two coincide use
// arbor.Identity as the conversion argument of the mutating
// operations.
type Tree[B, L any] struct {
	storage  storage.Arena[Node[B, L]]
	sparse   *storage.Sparse[Node[B, L]]
	shifting bool
	root     int
}

// New creates a tree with a single leaf root, backed by a sparse slice
// arena.
func New[B, L any](root L) *Tree[B, L] {
	return WithCapacity[B, L](0, root)
}

// WithCapacity creates a tree like New does, with arena capacity for n
// nodes.
func WithCapacity[B, L any](n int, root L) *Tree[B, L] {
	sparse := storage.NewSparseSlice[Node[B, L]](n)
	t := &Tree[B, L]{storage: sparse, sparse: sparse}
	t.root = t.storage.Add(leafNode[B, L](root, none))
	return t
}

// NewIn creates a tree with a single leaf root inside a caller-supplied
// empty arena. When the arena is a *storage.Sparse, the tree's
// defragmentation methods operate on it; for other arenas they are
// no-ops. The arena must either keep keys stable on removal or be a
// *storage.ListArena wired with NodeFix.
func NewIn[B, L any](arena storage.Arena[Node[B, L]], root L) *Tree[B, L] {
	assert(arena != nil, "bintree: nil arena")
	assert(arena.Len() == 0, "bintree: arena must be empty")
	t := &Tree[B, L]{storage: arena}
	switch a := arena.(type) {
	case *storage.Sparse[Node[B, L]]:
		t.sparse = a
	case *storage.ListArena[Node[B, L]]:
		t.shifting = true
	}
	t.root = t.storage.Add(leafNode[B, L](root, none))
	return t
}

// Len returns the number of nodes in the tree.
func (t *Tree[B, L]) Len() int {
	return t.storage.Len()
}

// Root returns a reference to the root node.
func (t *Tree[B, L]) Root() NodeRef[B, L] {
	return NodeRef[B, L]{tree: t, key: t.root}
}

// RootMut returns a mutable reference to the root node.
func (t *Tree[B, L]) RootMut() NodeRefMut[B, L] {
	return NodeRefMut[B, L]{tree: t, key: t.root}
}

// NodeAt returns a reference to the node at key, if it is in the tree.
func (t *Tree[B, L]) NodeAt(key int) (NodeRef[B, L], bool) {
	if !t.storage.Contains(key) {
		return NodeRef[B, L]{}, false
	}
	return NodeRef[B, L]{tree: t, key: key}, true
}

// NodeMutAt returns a mutable reference to the node at key, if it is
// in the tree.
func (t *Tree[B, L]) NodeMutAt(key int) (NodeRefMut[B, L], bool) {
	if !t.storage.Contains(key) {
		return NodeRefMut[B, L]{}, false
	}
	return NodeRefMut[B, L]{tree: t, key: key}, true
}

// Capacity returns the node capacity of the arena.
func (t *Tree[B, L]) Capacity() int {
	return t.storage.Capacity()
}

// Reserve grows the arena by capacity for at least additional nodes.
func (t *Tree[B, L]) Reserve(additional int) {
	t.storage.Reserve(additional)
}

// ShrinkToFit gives back unused arena capacity.
func (t *Tree[B, L]) ShrinkToFit() {
	t.storage.ShrinkToFit()
}

// NumHoles returns the number of holes in a sparse-backed tree's
// arena, 0 otherwise.
func (t *Tree[B, L]) NumHoles() int {
	if t.sparse == nil {
		return 0
	}
	return t.sparse.NumHoles()
}

// IsDense reports whether the arena has no holes. Trees on non-sparse
// arenas are always dense.
func (t *Tree[B, L]) IsDense() bool {
	if t.sparse == nil {
		return true
	}
	return t.sparse.IsDense()
}

// Defragment compacts the arena of a sparse-backed tree, repairing all
// node links and the root key. Keys held by the caller may be
// invalidated. No-op for trees on non-sparse arenas and for dense
// arenas.
func (t *Tree[B, L]) Defragment() {
	if t.sparse == nil {
		return
	}
	tracer().Debugf("defragmenting tree arena with %d holes", t.sparse.NumHoles())
	t.sparse.DefragmentAndFix(rootTrackingFix[B, L]{tree: t})
}

// rootTrackingFix chains the node link repair with keeping the tree's
// root key current while compaction relocates nodes.
type rootTrackingFix[B, L any] struct {
	tree *Tree[B, L]
}

func (fx rootTrackingFix[B, L]) FixShift(s storage.Elements[Node[B, L]], shiftedFrom int, shiftedBy int) {
	NodeFix[B, L]{}.FixShift(s, shiftedFrom, shiftedBy)
}

func (fx rootTrackingFix[B, L]) FixMove(s storage.Elements[Node[B, L]], previousIndex int, currentIndex int) {
	NodeFix[B, L]{}.FixMove(s, previousIndex, currentIndex)
	if fx.tree.root == previousIndex {
		fx.tree.root = currentIndex
	}
}

func (t *Tree[B, L]) node(key int) *Node[B, L] {
	return t.storage.At(key)
}

var _ arbor.TraversableMut[int, int, int] = (*Tree[int, int])(nil)
