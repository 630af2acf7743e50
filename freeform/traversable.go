package freeform

import (
	"github.com/npillmayer/arbor"
)

// CursorToRoot returns a cursor pointing at the root node.
func (t *Tree[B, L]) CursorToRoot() int {
	return t.root
}

// AdvanceCursor moves cursor one step along cmd. NextSibling follows
// the node's stored sibling link.
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
		if n.nextSibling == none {
			return 0, arbor.NewCursorError(cursor, "node has no next sibling")
		}
		return n.nextSibling, nil
	case arbor.DirChild:
		child, ok := t.ChildOf(cursor, cmd.Child)
		if !ok {
			return 0, arbor.NewCursorError(cursor, "node has no such child")
		}
		return child, nil
	}
	panic("freeform: unknown cursor direction")
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

// NumChildrenOf counts the children of the node at cursor.
func (t *Tree[B, L]) NumChildrenOf(cursor int) int {
	return len(t.childKeys(cursor))
}

// ChildOf returns the n-th child of the node at cursor, walking the
// sibling list.
func (t *Tree[B, L]) ChildOf(cursor int, n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	child := t.node(cursor).firstChild
	for child != none && n > 0 {
		child = t.node(child).nextSibling
		n--
	}
	if child == none {
		return 0, false
	}
	return child, true
}

// CanRemoveIndividualChildren reports that freeform trees support
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
