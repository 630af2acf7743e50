package freeform

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

func (ref NodeRef[B, L]) follow(key int) (NodeRef[B, L], bool) {
	if key == none {
		return NodeRef[B, L]{}, false
	}
	return NodeRef[B, L]{tree: ref.tree, key: key}, true
}

// Parent returns the parent node, or false for the root.
func (ref NodeRef[B, L]) Parent() (NodeRef[B, L], bool) {
	return ref.follow(ref.tree.node(ref.key).parent)
}

// FirstChild returns the first child, or false for leaves.
func (ref NodeRef[B, L]) FirstChild() (NodeRef[B, L], bool) {
	return ref.follow(ref.tree.node(ref.key).firstChild)
}

// LastChild returns the last child, or false for leaves.
func (ref NodeRef[B, L]) LastChild() (NodeRef[B, L], bool) {
	return ref.follow(ref.tree.node(ref.key).lastChild)
}

// PrevSibling returns the previous sibling on the parent's child list,
// or false for first children and the root.
func (ref NodeRef[B, L]) PrevSibling() (NodeRef[B, L], bool) {
	return ref.follow(ref.tree.node(ref.key).prevSibling)
}

// NextSibling returns the next sibling on the parent's child list, or
// false for last children and the root.
func (ref NodeRef[B, L]) NextSibling() (NodeRef[B, L], bool) {
	return ref.follow(ref.tree.node(ref.key).nextSibling)
}

// NumChildren counts the node's children by walking the sibling list.
func (ref NodeRef[B, L]) NumChildren() int {
	return len(ref.tree.childKeys(ref.key))
}

// The read surface of NodeRefMut mirrors NodeRef.

// IsRoot reports whether the node is the root node.
func (ref NodeRefMut[B, L]) IsRoot() bool { return ref.Ref().IsRoot() }

// IsLeaf reports whether the node is a leaf.
func (ref NodeRefMut[B, L]) IsLeaf() bool { return ref.Ref().IsLeaf() }

// IsBranch reports whether the node is a branch.
func (ref NodeRefMut[B, L]) IsBranch() bool { return ref.Ref().IsBranch() }

// Value returns the payload of the node.
func (ref NodeRefMut[B, L]) Value() arbor.NodeValue[B, L] { return ref.Ref().Value() }

// NumChildren counts the node's children by walking the sibling list.
func (ref NodeRefMut[B, L]) NumChildren() int { return ref.Ref().NumChildren() }

// Parent returns the parent node, or false for the root.
func (ref NodeRefMut[B, L]) Parent() (NodeRefMut[B, L], bool) {
	r, ok := ref.Ref().Parent()
	return NodeRefMut[B, L]{tree: r.tree, key: r.key}, ok
}

// FirstChild returns the first child, or false for leaves.
func (ref NodeRefMut[B, L]) FirstChild() (NodeRefMut[B, L], bool) {
	r, ok := ref.Ref().FirstChild()
	return NodeRefMut[B, L]{tree: r.tree, key: r.key}, ok
}

// LastChild returns the last child, or false for leaves.
func (ref NodeRefMut[B, L]) LastChild() (NodeRefMut[B, L], bool) {
	r, ok := ref.Ref().LastChild()
	return NodeRefMut[B, L]{tree: r.tree, key: r.key}, ok
}

// PrevSibling returns the previous sibling, or false for first
// children and the root.
func (ref NodeRefMut[B, L]) PrevSibling() (NodeRefMut[B, L], bool) {
	r, ok := ref.Ref().PrevSibling()
	return NodeRefMut[B, L]{tree: r.tree, key: r.key}, ok
}

// NextSibling returns the next sibling, or false for last children and
// the root.
func (ref NodeRefMut[B, L]) NextSibling() (NodeRefMut[B, L], bool) {
	r, ok := ref.Ref().NextSibling()
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

// MakeBranch converts a leaf node into a branch with one or more
// fresh leaf children, converting the node's payload with
// leafToBranch.
//
// Fails with a *arbor.MakeBranchError (carrying the children back to
// the caller) when the node is already a branch, and with
// arbor.ErrNoChildren when no children are given.
func (ref NodeRefMut[B, L]) MakeBranch(leafToBranch func(L) B, children ...L) error {
	if len(children) == 0 {
		return arbor.ErrNoChildren
	}
	n := ref.tree.node(ref.key)
	if n.isBranch {
		return arbor.NewMakeBranchError(arbor.ErrWasBranchNode, children)
	}
	payload := arbor.ConvertOrAbort("leaf-to-branch conversion", leafToBranch, n.leaf)
	keys := make([]int, len(children))
	for i, child := range children {
		keys[i] = ref.tree.storage.Add(leafNode[B, L](child, ref.key, none, none))
	}
	for i, key := range keys {
		node := ref.tree.node(key)
		if i > 0 {
			node.prevSibling = keys[i-1]
		}
		if i+1 < len(keys) {
			node.nextSibling = keys[i+1]
		}
	}
	// Add may have grown the arena, re-fetch
	ref.tree.node(ref.key).setBranch(payload, keys[0], keys[len(keys)-1])
	return nil
}

// PushBack appends a fresh leaf child at the end of a branch node's
// child list. Fails with arbor.ErrWasLeafNode on leaves; a leaf gains
// its first children with MakeBranch.
func (ref NodeRefMut[B, L]) PushBack(child L) error {
	n := ref.tree.node(ref.key)
	if !n.isBranch {
		return arbor.ErrWasLeafNode
	}
	last := n.lastChild
	key := ref.tree.storage.Add(leafNode[B, L](child, ref.key, last, none))
	ref.tree.node(last).nextSibling = key
	ref.tree.node(ref.key).lastChild = key
	return nil
}

// PushFront prepends a fresh leaf child at the start of a branch
// node's child list. Fails with arbor.ErrWasLeafNode on leaves.
func (ref NodeRefMut[B, L]) PushFront(child L) error {
	n := ref.tree.node(ref.key)
	if !n.isBranch {
		return arbor.ErrWasLeafNode
	}
	first := n.firstChild
	key := ref.tree.storage.Add(leafNode[B, L](child, ref.key, none, first))
	ref.tree.node(first).prevSibling = key
	ref.tree.node(ref.key).firstChild = key
	return nil
}

// unlinkFromParent detaches the node at key from its parent's child
// list before the node is removed: the adjacent siblings are stitched
// together and the parent's first/last child links are updated. The
// only child of a branch collapses the parent back into a leaf with a
// payload produced by branchToLeaf.
func (t *Tree[B, L]) unlinkFromParent(key int, parentKey int, branchToLeaf func(B) L) {
	n := t.node(key)
	parent := t.node(parentKey)
	assert(parent.isBranch, "freeform: parent node is not a branch")
	if n.prevSibling == none && n.nextSibling == none {
		assert(parent.firstChild == key, "freeform: parent does not list the node as a child")
		payload := arbor.ConvertOrAbort("branch-to-leaf conversion", branchToLeaf, parent.branch)
		parent.setLeaf(payload)
		return
	}
	if n.prevSibling != none {
		t.node(n.prevSibling).nextSibling = n.nextSibling
	} else {
		parent.firstChild = n.nextSibling
	}
	if n.nextSibling != none {
		t.node(n.nextSibling).prevSibling = n.prevSibling
	} else {
		parent.lastChild = n.prevSibling
	}
}

// RemoveLeaf removes a leaf node from the tree and returns its
// payload. If the parent loses its only child, it collapses back into
// a leaf with a payload produced by branchToLeaf.
//
// Fails with arbor.ErrWasBranchNode on branches (remove a branch with
// RemoveBranch or RecursivelyRemove instead) and with
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
// payloads in sibling order. The parent's child list is fixed up the
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
	childKeys := ref.tree.childKeys(ref.key)
	for i, child := range childKeys {
		if ref.tree.node(child).isBranch {
			return zero, nil, &arbor.BranchChildError{Child: i}
		}
	}
	if n.parent == none {
		return zero, nil, arbor.ErrWasRootNode
	}
	ref.tree.unlinkFromParent(ref.key, n.parent, branchToLeaf)
	removed := ref.tree.removeNodes(nil, append([]int{ref.key}, childKeys...))
	children := make([]L, len(childKeys))
	for i := range childKeys {
		children[i] = removed[i+1].leaf
	}
	return removed[0].branch, children, nil
}

// RemoveChildren removes the children of a branch node, which must all
// be leaves, and turns the node itself back into a leaf with a payload
// produced by branchToLeaf. The child payloads are returned in sibling
// order. This works on the root.
//
// Fails with arbor.ErrWasLeafNode on leaves and with a
// *arbor.BranchChildError when a child is a branch; the tree is then
// left unmodified.
func (ref NodeRefMut[B, L]) RemoveChildren(branchToLeaf func(B) L) ([]L, error) {
	n := ref.tree.node(ref.key)
	if !n.isBranch {
		return nil, arbor.ErrWasLeafNode
	}
	childKeys := ref.tree.childKeys(ref.key)
	for i, child := range childKeys {
		if ref.tree.node(child).isBranch {
			return nil, &arbor.BranchChildError{Child: i}
		}
	}
	selfKey := ref.key
	removed := ref.tree.removeNodes(&selfKey, childKeys)
	children := make([]L, len(removed))
	for i := range removed {
		children[i] = removed[i].leaf
	}
	n = ref.tree.node(selfKey)
	payload := arbor.ConvertOrAbort("branch-to-leaf conversion", branchToLeaf, n.branch)
	n.setLeaf(payload)
	return children, nil
}

// RecursivelyRemove removes the node and all of its descendants
// without recursion, at any depth. See arbor.RecursivelyRemove for the
// exact protocol; the root collapses into a leaf instead of being
// removed.
func (ref NodeRefMut[B, L]) RecursivelyRemove(branchToLeaf func(B) L) arbor.NodeValue[B, L] {
	return arbor.RecursivelyRemove[B, L, int](ref.tree, ref.key, branchToLeaf)
}
