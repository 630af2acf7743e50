package arbor

// RecursivelyRemove removes the whole subtree rooted at pivot, without
// recursion and without growing the call stack with tree depth. It
// drives the traversal engine with a mutating visitor which walks the
// subtree bottom-up: the visitor tries to remove the current branch
// with its children, descends into whichever child is still a branch,
// and ascends again after a removal, until the pivot itself is gone.
//
// branchToLeaf converts the payload of a branch which loses all of its
// children into a leaf payload.
//
// The returned value is the payload the pivot held when it left the
// tree. This is a leaf payload when the pivot was a leaf or was
// converted on the way out, a branch payload when the pivot was removed
// as a branch. A pivot which cannot be removed from the tree itself
// stays behind as a leaf (the root always, and any pivot on a tree
// shape without individual-child removal); its final payload is
// returned as a copy.
//
// RecursivelyRemove relies on cursors staying valid across removals of
// other nodes, so it requires a key-stable storage arena underneath the
// tree (the sparse default).
func RecursivelyRemove[B, L any, C comparable](t TraversableMut[B, L, C], pivot C, branchToLeaf func(B) L) NodeValue[B, L] {
	_, hasParent := t.ParentOf(pivot)
	if !t.CanRemoveIndividualChildren() || (!hasParent && t.ValueAt(pivot).IsBranch()) {
		// a branch root cannot be removed, only emptied
		collapse := &subtreeCollapser[B, L, C]{pivot: pivot, branchToLeaf: branchToLeaf}
		return TraverseFromMut[B, L, C, NodeValue[B, L]](t, pivot, collapse)
	}
	remove := &subtreeRemover[B, L, C]{pivot: pivot, branchToLeaf: branchToLeaf}
	return TraverseFromMut[B, L, C, NodeValue[B, L]](t, pivot, remove)
}

// subtreeRemover is the visitor deleting pivot and all of its
// descendants. Used for tree shapes which support removing single
// nodes. An ascent after a removal has to jump to the remembered
// parent with a set command, since the node under the cursor is gone.
type subtreeRemover[B, L any, C comparable] struct {
	pivot        C
	branchToLeaf func(B) L
}

func (v *subtreeRemover[B, L, C]) VisitMut(t TraversableMut[B, L, C], cursor C, prev error) (Command[C], NodeValue[B, L], bool) {
	assert(prev == nil, "arbor: subtree removal moved to an invalid node")
	var zero NodeValue[B, L]
	if t.ValueAt(cursor).IsLeaf() {
		if cursor == v.pivot {
			payload, err := t.RemoveLeafAt(cursor, v.branchToLeaf)
			if err != nil {
				// the root leaf stays
				return Command[C]{}, t.ValueAt(cursor), true
			}
			return Command[C]{}, LeafValue[B, L](payload), true
		}
		parent, hasParent := t.ParentOf(cursor)
		assert(hasParent, "arbor: subtree removal ascended past its pivot")
		_, err := t.RemoveLeafAt(cursor, v.branchToLeaf)
		assert(err == nil, "arbor: leaf descendant refused removal")
		return ToCursor(parent), zero, false
	}
	parent, hasParent := t.ParentOf(cursor)
	assert(hasParent, "arbor: branch root reached the removing visitor")
	payload, _, err := t.RemoveBranchAt(cursor, v.branchToLeaf)
	if err == nil {
		if cursor == v.pivot {
			return Command[C]{}, BranchValue[B, L](payload), true
		}
		return ToCursor(parent), zero, false
	}
	child, blocking := IsBranchChild(err)
	assert(blocking, "arbor: branch descendant refused removal")
	return ToChild[C](child), zero, false
}

// subtreeCollapser is the visitor emptying the subtree below pivot,
// leaving pivot behind as a leaf. Used for the root and for tree
// shapes which only support removing all children of a branch at once.
// The emptied node stays in the tree, so ascents use the plain parent
// direction.
type subtreeCollapser[B, L any, C comparable] struct {
	pivot        C
	branchToLeaf func(B) L
}

func (v *subtreeCollapser[B, L, C]) VisitMut(t TraversableMut[B, L, C], cursor C, prev error) (Command[C], NodeValue[B, L], bool) {
	assert(prev == nil, "arbor: subtree collapse moved to an invalid node")
	var zero NodeValue[B, L]
	if t.ValueAt(cursor).IsLeaf() {
		assert(cursor == v.pivot, "arbor: subtree collapse descended into a leaf")
		return Command[C]{}, t.ValueAt(cursor), true
	}
	_, err := t.RemoveChildrenAt(cursor, v.branchToLeaf)
	if err == nil {
		if cursor == v.pivot {
			return Command[C]{}, t.ValueAt(cursor), true
		}
		return ToParent[C](), zero, false
	}
	child, blocking := IsBranchChild(err)
	assert(blocking, "arbor: branch descendant refused child removal")
	return ToChild[C](child), zero, false
}
