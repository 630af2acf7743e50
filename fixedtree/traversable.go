package fixedtree

import (
	"github.com/npillmayer/arbor"
)

// CursorToRoot returns a cursor pointing at the root node.
func (t *Tree[B, L]) CursorToRoot() int {
	return t.root
}

// AdvanceCursor moves cursor one step along cmd. NextSibling is
// derived from the position among the parent's children; the last
// child has no next sibling.
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
		siblings := t.node(n.parent).children
		for i, sibling := range siblings {
			if sibling == cursor {
				if i+1 < len(siblings) {
					return siblings[i+1], nil
				}
				return 0, arbor.NewCursorError(cursor, "node has no next sibling")
			}
		}
		panic("fixedtree: parent does not list the node as a child")
	case arbor.DirChild:
		child, ok := t.ChildOf(cursor, cmd.Child)
		if !ok {
			return 0, arbor.NewCursorError(cursor, "node has no such child")
		}
		return child, nil
	}
	panic("fixedtree: unknown cursor direction")
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

// NumChildrenOf returns the arity for branches and 0 for leaves.
func (t *Tree[B, L]) NumChildrenOf(cursor int) int {
	return len(t.node(cursor).children)
}

// ChildOf returns the n-th child of the node at cursor.
func (t *Tree[B, L]) ChildOf(cursor int, n int) (int, bool) {
	node := t.node(cursor)
	if !node.isBranch || n < 0 || n >= len(node.children) {
		return 0, false
	}
	return node.children[n], true
}

// CanRemoveIndividualChildren reports that fixed-arity trees do not
// support removing single nodes.
func (t *Tree[B, L]) CanRemoveIndividualChildren() bool {
	return false
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

// RemoveLeafAt always fails: fixed-arity branches cannot lose a single
// child.
func (t *Tree[B, L]) RemoveLeafAt(cursor int, branchToLeaf func(B) L) (L, error) {
	var zero L
	return zero, arbor.ErrCannotRemoveIndividualChildren
}

// RemoveBranchAt always fails: fixed-arity branches cannot be removed
// individually.
func (t *Tree[B, L]) RemoveBranchAt(cursor int, branchToLeaf func(B) L) (B, []L, error) {
	var zero B
	return zero, nil, arbor.ErrCannotRemoveIndividualChildren
}

// RemoveChildrenAt removes the leaf children of the branch node at
// cursor. See NodeRefMut.RemoveChildren.
func (t *Tree[B, L]) RemoveChildrenAt(cursor int, branchToLeaf func(B) L) ([]L, error) {
	return NodeRefMut[B, L]{tree: t, key: cursor}.RemoveChildren(branchToLeaf)
}
