package bintree

import (
	"github.com/npillmayer/arbor"
)

// The arbor traversal engine drives binary trees through this cursor
// surface; cursors are arena keys.

// CursorToRoot returns a cursor pointing at the root node.
func (t *Tree[B, L]) CursorToRoot() int {
	return t.root
}

// AdvanceCursor moves cursor one step along cmd. A failed movement
// returns a *arbor.CursorError and leaves the cursor where it was.
// NextSibling moves from a left child to its right sibling; there is no
// wrap-around.
func (t *Tree[B, L]) AdvanceCursor(cursor int, cmd arbor.Command[int]) (int, error) {
	if cmd.Direction == arbor.DirSet {
		if !t.storage.Contains(cmd.Target) {
			return 0, arbor.NewCursorError(cursor, "target key is not in the tree")
		}
		return cmd.Target, nil
	}
	if !t.storage.Contains(cursor) {
		return 0, arbor.NewCursorError(cursor, "cursor key is not in the tree")
	}
	n := t.node(cursor)
	switch cmd.Direction {
	case arbor.DirParent:
		if n.parent == none {
			return 0, arbor.NewCursorError(cursor, "root node has no parent")
		}
		return n.parent, nil
	case arbor.DirNextSibling:
		if n.parent == none {
			return 0, arbor.NewCursorError(cursor, "root node has no siblings")
		}
		parent := t.node(n.parent)
		if parent.left == cursor && parent.right != none {
			return parent.right, nil
		}
		return 0, arbor.NewCursorError(cursor, "node has no next sibling")
	case arbor.DirChild:
		child, ok := t.ChildOf(cursor, cmd.Child)
		if !ok {
			return 0, arbor.NewCursorError(cursor, "node has no such child")
		}
		return child, nil
	}
	panic("bintree: unknown cursor direction")
}

// ValueAt returns the payload of the node at cursor.
func (t *Tree[B, L]) ValueAt(cursor int) arbor.NodeValue[B, L] {
	return t.node(cursor).value()
}

// ParentOf returns the parent of the node at cursor, or false for the
// root.
func (t *Tree[B, L]) ParentOf(cursor int) (int, bool) {
	parent := t.node(cursor).parent
	return parent, parent != none
}

// NumChildrenOf returns 2 for full branches, 1 for partial branches
// and 0 for leaves.
func (t *Tree[B, L]) NumChildrenOf(cursor int) int {
	n := t.node(cursor)
	switch {
	case !n.isBranch:
		return 0
	case n.right == none:
		return 1
	default:
		return 2
	}
}

// ChildOf returns the n-th child of the node at cursor, 0 being the
// left and 1 the right child.
func (t *Tree[B, L]) ChildOf(cursor int, n int) (int, bool) {
	node := t.node(cursor)
	if !node.isBranch {
		return 0, false
	}
	switch n {
	case 0:
		return node.left, true
	case 1:
		if node.right == none {
			return 0, false
		}
		return node.right, true
	}
	return 0, false
}

// CanRemoveIndividualChildren reports that binary trees support
// removing single nodes.
func (t *Tree[B, L]) CanRemoveIndividualChildren() bool {
	return true
}

// ValueMutAt returns the payload of the node at cursor for in-place
// modification.
func (t *Tree[B, L]) ValueMutAt(cursor int) arbor.NodeValue[*B, *L] {
	n := t.node(cursor)
	if n.isBranch {
		return arbor.BranchValue[*B, *L](&n.branch)
	}
	return arbor.LeafValue[*B, *L](&n.leaf)
}

// RemoveLeafAt removes the leaf node at cursor. See
// NodeRefMut.RemoveLeaf.
func (t *Tree[B, L]) RemoveLeafAt(cursor int, branchToLeaf func(B) L) (L, error) {
	return NodeRefMut[B, L]{tree: t, key: cursor}.RemoveLeaf(branchToLeaf)
}

// RemoveBranchAt removes the branch node at cursor together with its
// leaf children. See NodeRefMut.RemoveBranch.
func (t *Tree[B, L]) RemoveBranchAt(cursor int, branchToLeaf func(B) L) (B, []L, error) {
	return NodeRefMut[B, L]{tree: t, key: cursor}.RemoveBranch(branchToLeaf)
}

// RemoveChildrenAt removes the leaf children of the branch node at
// cursor. See NodeRefMut.RemoveChildren.
func (t *Tree[B, L]) RemoveChildrenAt(cursor int, branchToLeaf func(B) L) ([]L, error) {
	return NodeRefMut[B, L]{tree: t, key: cursor}.RemoveChildren(branchToLeaf)
}
