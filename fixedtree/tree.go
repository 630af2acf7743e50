package fixedtree

import (
	"sort"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/storage"
)

// Tree is an arena-allocated tree whose branches carry exactly arity
// children. It always contains at least the root node.
type Tree[B, L any] struct {
	storage  storage.Arena[Node[B, L]]
	sparse   *storage.Sparse[Node[B, L]]
	shifting bool
	arity    int
	root     int
}

// New creates a tree with the given arity and a single leaf root,
// backed by a sparse slice arena.
func New[B, L any](arity int, root L) *Tree[B, L] {
	return WithCapacity[B, L](arity, 0, root)
}

// WithCapacity creates a tree like New does, with arena capacity for n
// nodes.
func WithCapacity[B, L any](arity int, n int, root L) *Tree[B, L] {
	assert(arity >= 1, "fixedtree: arity must be at least 1")
	sparse := storage.NewSparseSlice[Node[B, L]](n)
	t := &Tree[B, L]{storage: sparse, sparse: sparse, arity: arity}
	t.root = t.storage.Add(leafNode[B, L](root, none))
	return t
}

// NewIn creates a tree with a single leaf root inside a caller-supplied
// empty arena. The arena must either keep keys stable on removal or be
// a *storage.ListArena wired with NodeFix.
func NewIn[B, L any](arity int, arena storage.Arena[Node[B, L]], root L) *Tree[B, L] {
	assert(arity >= 1, "fixedtree: arity must be at least 1")
	assert(arena != nil, "fixedtree: nil arena")
	assert(arena.Len() == 0, "fixedtree: arena must be empty")
	t := &Tree[B, L]{storage: arena, arity: arity}
	switch a := arena.(type) {
	case *storage.Sparse[Node[B, L]]:
		t.sparse = a
	case *storage.ListArena[Node[B, L]]:
		t.shifting = true
	}
	t.root = t.storage.Add(leafNode[B, L](root, none))
	return t
}

// Arity returns the number of children every branch carries.
func (t *Tree[B, L]) Arity() int {
	return t.arity
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

// IsDense reports whether the arena has no holes.
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

// removeChildNodes removes child nodes in descending key order; track
// follows key shifts on shifting arenas.
func (t *Tree[B, L]) removeChildNodes(track *int, keys []int) []Node[B, L] {
	removed := make([]Node[B, L], len(keys))
	order := make([]int, len(keys))
	for i := range keys {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return keys[order[a]] > keys[order[b]]
	})
	for _, i := range order {
		key := keys[i]
		removed[i] = t.storage.Remove(key)
		if t.shifting && track != nil && key < *track {
			*track--
		}
	}
	return removed
}

var _ arbor.TraversableMut[int, int, int] = (*Tree[int, int])(nil)
