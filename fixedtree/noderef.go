package fixedtree

import (
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

// Child returns the n-th child, or false for leaves and out-of-range n.
func (ref NodeRef[B, L]) Child(n int) (NodeRef[B, L], bool) {
	node := ref.tree.node(ref.key)
	if !node.isBranch || n < 0 || n >= len(node.children) {
		return NodeRef[B, L]{}, false
	}
	return NodeRef[B, L]{tree: ref.tree, key: node.children[n]}, true
}

// NumChildren returns the tree's arity for branches, 0 for leaves.
func (ref NodeRef[B, L]) NumChildren() int {
	return len(ref.tree.node(ref.key).children)
}

// IsRoot reports whether the node is the root node.
func (ref NodeRefMut[B, L]) IsRoot() bool { return ref.Ref().IsRoot() }

// IsLeaf reports whether the node is a leaf.
func (ref NodeRefMut[B, L]) IsLeaf() bool { return ref.Ref().IsLeaf() }

// IsBranch reports whether the node is a branch.
func (ref NodeRefMut[B, L]) IsBranch() bool { return ref.Ref().IsBranch() }

// Value returns the payload of the node.
func (ref NodeRefMut[B, L]) Value() arbor.NodeValue[B, L] { return ref.Ref().Value() }

// NumChildren returns the tree's arity for branches, 0 for leaves.
func (ref NodeRefMut[B, L]) NumChildren() int { return ref.Ref().NumChildren() }

// Parent returns the parent node, or false for the root.
func (ref NodeRefMut[B, L]) Parent() (NodeRefMut[B, L], bool) {
	r, ok := ref.Ref().Parent()
	return NodeRefMut[B, L]{tree: r.tree, key: r.key}, ok
}

// Child returns the n-th child, or false for leaves and out-of-range n.
func (ref NodeRefMut[B, L]) Child(n int) (NodeRefMut[B, L], bool) {
	r, ok := ref.Ref().Child(n)
	return NodeRefMut[B, L]{tree: r.tree, key: r.key}, ok
}

// ValueMut returns the payload of the node for in-place modification.
func (ref NodeRefMut[B, L]) ValueMut() arbor.NodeValue[*B, *L] {
	n := ref.tree.node(ref.key)
	if n.isBranch {
		return arbor.BranchValue[*B, *L](&n.branch)
	}
	return arbor.LeafValue[*B, *L](&n.leaf)
}

// MakeBranch converts a leaf node into a branch with exactly the
// tree's arity of fresh leaf children, converting the node's payload
// with leafToBranch.
//
// Fails with a *arbor.MakeBranchError (carrying the children back)
// when the node is already a branch, with arbor.ErrNoChildren when
// there are no children at all, and with arbor.ErrTooFewChildren or
// arbor.ErrTooManyChildren when the child count misses the arity.
func (ref NodeRefMut[B, L]) MakeBranch(leafToBranch func(L) B, children ...L) error {
	if len(children) == 0 {
		return arbor.NewMakeBranchError(arbor.ErrNoChildren, children)
	}
	if len(children) < ref.tree.arity {
		return arbor.NewMakeBranchError(arbor.ErrTooFewChildren, children)
	}
	if len(children) > ref.tree.arity {
		return arbor.NewMakeBranchError(arbor.ErrTooManyChildren, children)
	}
	n := ref.tree.node(ref.key)
	if n.isBranch {
		return arbor.NewMakeBranchError(arbor.ErrWasBranchNode, children)
	}
	payload := arbor.ConvertOrAbort("leaf-to-branch conversion", leafToBranch, n.leaf)
	keys := make([]int, len(children))
	for i, child := range children {
		keys[i] = ref.tree.storage.Add(leafNode[B, L](child, ref.key))
	}
	ref.tree.node(ref.key).setBranch(payload, keys)
	return nil
}

// RemoveChildren removes the children of a branch node, which must all
// be leaves, and turns the node itself back into a leaf with a payload
// produced by branchToLeaf. The child payloads are returned in child
// order. This is the only way nodes leave a fixed-arity tree.
//
// Fails with arbor.ErrWasLeafNode on leaves and with a
// *arbor.BranchChildError when a child is a branch; the tree is then
// left unmodified.
func (ref NodeRefMut[B, L]) RemoveChildren(branchToLeaf func(B) L) ([]L, error) {
	n := ref.tree.node(ref.key)
	if !n.isBranch {
		return nil, arbor.ErrWasLeafNode
	}
	for i, child := range n.children {
		if ref.tree.node(child).isBranch {
			return nil, &arbor.BranchChildError{Child: i}
		}
	}
	keys := make([]int, len(n.children))
	copy(keys, n.children)
	selfKey := ref.key
	removed := ref.tree.removeChildNodes(&selfKey, keys)
	children := make([]L, len(removed))
	for i := range removed {
		children[i] = removed[i].leaf
	}
	n = ref.tree.node(selfKey)
	payload := arbor.ConvertOrAbort("branch-to-leaf conversion", branchToLeaf, n.branch)
	n.setLeaf(payload)
	return children, nil
}

// RecursivelyRemove empties the subtree below the node without
// recursion and leaves the node behind as a leaf. See
// arbor.RecursivelyRemove.
func (ref NodeRefMut[B, L]) RecursivelyRemove(branchToLeaf func(B) L) arbor.NodeValue[B, L] {
	return arbor.RecursivelyRemove[B, L, int](ref.tree, ref.key, branchToLeaf)
}
