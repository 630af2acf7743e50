package bintree

import (
	"sort"

	"github.com/npillmayer/arbor"
)

// NodeRef is a read reference to a node, a (tree, key) pair.
type NodeRef[B, L any] struct {
	tree *Tree[B, L]
	key  int
}

// NodeRefMut is a read/write reference to a node. It assumes exclusive
// access to the whole tree for its lifetime.
type NodeRefMut[B, L any] struct {
	tree *Tree[B, L]
	key  int
}

// Ref downgrades to a read reference.
func (ref NodeRefMut[B, L]) Ref() NodeRef[B, L] {
	return NodeRef[B, L]{tree: ref.tree, key: ref.key}
}

// Key returns the arena key of the node.
func (ref NodeRef[B, L]) Key() int { return ref.key }

// Key returns the arena key of the node.
func (ref NodeRefMut[B, L]) Key() int { return ref.key }

// IsRoot reports whether the node is the root node.
func (ref NodeRef[B, L]) IsRoot() bool {
	return ref.tree.node(ref.key).parent == none
}

// IsLeaf reports whether the node is a leaf.
func (ref NodeRef[B, L]) IsLeaf() bool {
	return !ref.tree.node(ref.key).isBranch
}

// IsBranch reports whether the node is a branch.
func (ref NodeRef[B, L]) IsBranch() bool {
	return ref.tree.node(ref.key).isBranch
}

// IsFullBranch reports whether the node is a branch with two children.
func (ref NodeRef[B, L]) IsFullBranch() bool {
	n := ref.tree.node(ref.key)
	return n.isBranch && n.right != none
}

// Value returns the payload of the node.
func (ref NodeRef[B, L]) Value() arbor.NodeValue[B, L] {
	return ref.tree.node(ref.key).value()
}

// Parent returns the parent node, or false for the root.
func (ref NodeRef[B, L]) Parent() (NodeRef[B, L], bool) {
	parent := ref.tree.node(ref.key).parent
	if parent == none {
		return NodeRef[B, L]{}, false
	}
	return NodeRef[B, L]{tree: ref.tree, key: parent}, true
}

// LeftChild returns the left child, or false for leaves.
func (ref NodeRef[B, L]) LeftChild() (NodeRef[B, L], bool) {
	n := ref.tree.node(ref.key)
	if !n.isBranch {
		return NodeRef[B, L]{}, false
	}
	return NodeRef[B, L]{tree: ref.tree, key: n.left}, true
}

// RightChild returns the right child, or false for leaves and partial
// branches.
func (ref NodeRef[B, L]) RightChild() (NodeRef[B, L], bool) {
	n := ref.tree.node(ref.key)
	if !n.isBranch || n.right == none {
		return NodeRef[B, L]{}, false
	}
	return NodeRef[B, L]{tree: ref.tree, key: n.right}, true
}

// NumChildren returns 2 for full branches, 1 for partial branches and
// 0 for leaves.
func (ref NodeRef[B, L]) NumChildren() int {
	n := ref.tree.node(ref.key)
	switch {
	case !n.isBranch:
		return 0
	case n.right == none:
		return 1
	default:
		return 2
	}
}

// The read surface of NodeRefMut mirrors NodeRef.

// IsRoot reports whether the node is the root node.
func (ref NodeRefMut[B, L]) IsRoot() bool { return ref.Ref().IsRoot() }

// IsLeaf reports whether the node is a leaf.
func (ref NodeRefMut[B, L]) IsLeaf() bool { return ref.Ref().IsLeaf() }

// IsBranch reports whether the node is a branch.
func (ref NodeRefMut[B, L]) IsBranch() bool { return ref.Ref().IsBranch() }

// IsFullBranch reports whether the node is a branch with two children.
func (ref NodeRefMut[B, L]) IsFullBranch() bool { return ref.Ref().IsFullBranch() }

// Value returns the payload of the node.
func (ref NodeRefMut[B, L]) Value() arbor.NodeValue[B, L] { return ref.Ref().Value() }

// NumChildren returns 2 for full branches, 1 for partial branches and
// 0 for leaves.
func (ref NodeRefMut[B, L]) NumChildren() int { return ref.Ref().NumChildren() }

// Parent returns the parent node, or false for the root.
func (ref NodeRefMut[B, L]) Parent() (NodeRefMut[B, L], bool) {
	r, ok := ref.Ref().Parent()
	return NodeRefMut[B, L]{tree: r.tree, key: r.key}, ok
}

// LeftChild returns the left child, or false for leaves.
func (ref NodeRefMut[B, L]) LeftChild() (NodeRefMut[B, L], bool) {
	r, ok := ref.Ref().LeftChild()
	return NodeRefMut[B, L]{tree: r.tree, key: r.key}, ok
}

// RightChild returns the right child, or false for leaves and partial
// branches.
func (ref NodeRefMut[B, L]) RightChild() (NodeRefMut[B, L], bool) {
	r, ok := ref.Ref().RightChild()
	return NodeRefMut[B, L]{tree: r.tree, key: r.key}, ok
}

// ValueMut returns the payload of the node for in-place modification.
// The pointers are valid until the next mutation of the tree.
func (ref NodeRefMut[B, L]) ValueMut() arbor.NodeValue[*B, *L] {
	n := ref.tree.node(ref.key)
	if n.isBranch {
		return arbor.BranchValue[*B, *L](&n.branch)
	}
	return arbor.LeafValue[*B, *L](&n.leaf)
}

// MakeBranch converts a leaf node into a branch with one or two fresh
// leaf children, converting the node's payload with leafToBranch. A
// branch with a single child is a partial branch, a legal state which
// MakeFullBranch can later complete.
//
// Fails with a *arbor.MakeBranchError (carrying the children back to
// the caller) when the node is already a branch, and with
// arbor.ErrNoChildren or arbor.ErrTooManyChildren for a child count
// outside 1..2.
func (ref NodeRefMut[B, L]) MakeBranch(leafToBranch func(L) B, children ...L) error {
	if len(children) == 0 {
		return arbor.ErrNoChildren
	}
	if len(children) > 2 {
		return arbor.NewMakeBranchError(arbor.ErrTooManyChildren, children)
	}
	n := ref.tree.node(ref.key)
	if n.isBranch {
		return arbor.NewMakeBranchError(arbor.ErrWasBranchNode, children)
	}
	payload := arbor.ConvertOrAbort("leaf-to-branch conversion", leafToBranch, n.leaf)
	left := ref.tree.storage.Add(leafNode[B, L](children[0], ref.key))
	right := none
	if len(children) == 2 {
		right = ref.tree.storage.Add(leafNode[B, L](children[1], ref.key))
	}
	// Add may have grown the arena, re-fetch
	ref.tree.node(ref.key).setBranch(payload, left, right)
	return nil
}

// MakeFullBranch completes a partial branch with a right leaf child.
//
// Fails with a *arbor.MakeBranchError carrying the child back when the
// node is a leaf or already a full branch.
func (ref NodeRefMut[B, L]) MakeFullBranch(right L) error {
	n := ref.tree.node(ref.key)
	if !n.isBranch {
		return arbor.NewMakeBranchError(arbor.ErrWasLeafNode, []L{right})
	}
	if n.right != none {
		return arbor.NewMakeBranchError(arbor.ErrWasFullBranch, []L{right})
	}
	key := ref.tree.storage.Add(leafNode[B, L](right, ref.key))
	ref.tree.node(ref.key).right = key
	return nil
}

// unlinkFromParent detaches the node at key from its parent before the
// node is removed: a right child simply disappears, a left child with
// a right sibling promotes the sibling into the left slot, and the
// only child of a branch collapses the parent back into a leaf with a
// payload produced by branchToLeaf.
func (t *Tree[B, L]) unlinkFromParent(key int, parentKey int, branchToLeaf func(B) L) {
	parent := t.node(parentKey)
	assert(parent.isBranch, "bintree: parent node is not a branch")
	switch {
	case parent.left == key && parent.right != none:
		parent.left, parent.right = parent.right, none
	case parent.left == key:
		payload := arbor.ConvertOrAbort("branch-to-leaf conversion", branchToLeaf, parent.branch)
		parent.setLeaf(payload)
	case parent.right == key:
		parent.right = none
	default:
		panic("bintree: parent does not list the node as a child")
	}
}

// RemoveLeaf removes a leaf node from the tree and returns its
// payload. If the parent loses its only child, it collapses back into
// a leaf with a payload produced by branchToLeaf.
//
// Fails with arbor.ErrWasBranchNode on branches (removing a branch
// with RemoveBranch or RecursivelyRemove instead) and with
// arbor.ErrWasRootNode on the root, which can never be removed.
func (ref NodeRefMut[B, L]) RemoveLeaf(branchToLeaf func(B) L) (L, error) {
	var zero L
	n := ref.tree.node(ref.key)
	if n.isBranch {
		return zero, arbor.ErrWasBranchNode
	}
	if n.parent == none {
		return zero, arbor.ErrWasRootNode
	}
	ref.tree.unlinkFromParent(ref.key, n.parent, branchToLeaf)
	removed := ref.tree.storage.Remove(ref.key)
	return removed.leaf, nil
}

// RemoveBranch removes a branch node together with its children, which
// must all be leaves, and returns the branch payload and the child
// payloads in left-to-right order. The parent link is fixed up the
// same way RemoveLeaf does it.
//
// Fails with arbor.ErrWasLeafNode on leaves, arbor.ErrWasRootNode on
// the root and with a *arbor.BranchChildError naming the first branch
// child when the children are not all leaves. On failure the tree is
// left unmodified.
func (ref NodeRefMut[B, L]) RemoveBranch(branchToLeaf func(B) L) (B, []L, error) {
	var zero B
	n := ref.tree.node(ref.key)
	if !n.isBranch {
		return zero, nil, arbor.ErrWasLeafNode
	}
	if ref.tree.node(n.left).isBranch {
		return zero, nil, &arbor.BranchChildError{Child: 0}
	}
	if n.right != none && ref.tree.node(n.right).isBranch {
		return zero, nil, &arbor.BranchChildError{Child: 1}
	}
	if n.parent == none {
		return zero, nil, arbor.ErrWasRootNode
	}
	left, right := n.left, n.right
	ref.tree.unlinkFromParent(ref.key, n.parent, branchToLeaf)
	removed := ref.tree.removeNodes(nil, ref.key, left, right)
	children := []L{removed[1].leaf}
	if right != none {
		children = append(children, removed[2].leaf)
	}
	return removed[0].branch, children, nil
}

// RemoveChildren removes the children of a branch node, which must all
// be leaves, and turns the node itself back into a leaf with a payload
// produced by branchToLeaf. The child payloads are returned in
// left-to-right order. This works on the root.
//
// Fails with arbor.ErrWasLeafNode on leaves and with a
// *arbor.BranchChildError when a child is a branch; the tree is then
// left unmodified.
func (ref NodeRefMut[B, L]) RemoveChildren(branchToLeaf func(B) L) ([]L, error) {
	n := ref.tree.node(ref.key)
	if !n.isBranch {
		return nil, arbor.ErrWasLeafNode
	}
	if ref.tree.node(n.left).isBranch {
		return nil, &arbor.BranchChildError{Child: 0}
	}
	if n.right != none && ref.tree.node(n.right).isBranch {
		return nil, &arbor.BranchChildError{Child: 1}
	}
	hadRight := n.right != none
	selfKey := ref.key
	removed := ref.tree.removeNodes(&selfKey, none, n.left, n.right)
	children := []L{removed[1].leaf}
	if hadRight {
		children = append(children, removed[2].leaf)
	}
	n = ref.tree.node(selfKey)
	payload := arbor.ConvertOrAbort("branch-to-leaf conversion", branchToLeaf, n.branch)
	n.setLeaf(payload)
	return children, nil
}

// SetChildren replaces the node's children wholesale with 0, 1 or 2
// fresh leaf children, converting the node between leaf and branch as
// needed, and returns the displaced leaf children. A leaf gaining
// children becomes a branch via leafToBranch; a branch losing all of
// its children becomes a leaf via branchToLeaf.
//
// Fails with arbor.ErrTooManyChildren for more than two children and
// with a *arbor.BranchChildError when an existing child is a branch;
// the tree is then left unmodified.
func (ref NodeRefMut[B, L]) SetChildren(leafToBranch func(L) B, branchToLeaf func(B) L, children ...L) ([]L, error) {
	if len(children) > 2 {
		return nil, arbor.ErrTooManyChildren
	}
	n := ref.tree.node(ref.key)
	if !n.isBranch {
		if len(children) == 0 {
			return nil, nil
		}
		return nil, ref.MakeBranch(leafToBranch, children...)
	}
	if ref.tree.node(n.left).isBranch {
		return nil, &arbor.BranchChildError{Child: 0}
	}
	if n.right != none && ref.tree.node(n.right).isBranch {
		return nil, &arbor.BranchChildError{Child: 1}
	}
	hadRight := n.right != none
	selfKey := ref.key
	removed := ref.tree.removeNodes(&selfKey, none, n.left, n.right)
	displaced := []L{removed[1].leaf}
	if hadRight {
		displaced = append(displaced, removed[2].leaf)
	}
	if len(children) == 0 {
		n = ref.tree.node(selfKey)
		payload := arbor.ConvertOrAbort("branch-to-leaf conversion", branchToLeaf, n.branch)
		n.setLeaf(payload)
		return displaced, nil
	}
	left := ref.tree.storage.Add(leafNode[B, L](children[0], selfKey))
	right := none
	if len(children) == 2 {
		right = ref.tree.storage.Add(leafNode[B, L](children[1], selfKey))
	}
	n = ref.tree.node(selfKey)
	n.left, n.right = left, right
	return displaced, nil
}

// RecursivelyRemove removes the node and all of its descendants
// without recursion, at any depth. See arbor.RecursivelyRemove for the
// exact protocol; the root collapses into a leaf instead of being
// removed.
func (ref NodeRefMut[B, L]) RecursivelyRemove(branchToLeaf func(B) L) arbor.NodeValue[B, L] {
	return arbor.RecursivelyRemove[B, L, int](ref.tree, ref.key, branchToLeaf)
}

// removeNodes removes up to three nodes from the arena in descending
// key order, so that on shifting arenas no pending key is invalidated
// by an earlier removal. Keys may be none; the result slice maps
// positions of the input keys to the removed nodes. track, when
// non-nil, is a key the caller still needs afterwards and follows the
// shifts.
func (t *Tree[B, L]) removeNodes(track *int, keys ...int) []Node[B, L] {
	removed := make([]Node[B, L], len(keys))
	order := make([]int, 0, len(keys))
	for i, key := range keys {
		if key != none {
			order = append(order, i)
		}
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
