package freeform

import (
	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/storage"
)

// none marks an absent node link.
const none = -1

// Node is a single freeform tree node as it is stored in the arena.
// Siblings form a doubly linked list; a branch node links to its first
// and last child.
type Node[B, L any] struct {
	branch      B
	leaf        L
	isBranch    bool
	firstChild  int
	lastChild   int
	parent      int
	prevSibling int
	nextSibling int
}

func leafNode[B, L any](payload L, parent, prevSibling, nextSibling int) Node[B, L] {
	return Node[B, L]{
		leaf:        payload,
		firstChild:  none,
		lastChild:   none,
		parent:      parent,
		prevSibling: prevSibling,
		nextSibling: nextSibling,
	}
}

// setLeaf keeps the parent and sibling links, a node stays in place
// when its variant changes.
func (n *Node[B, L]) setLeaf(payload L) {
	var zeroB B
	n.branch = zeroB
	n.leaf = payload
	n.isBranch = false
	n.firstChild = none
	n.lastChild = none
}

func (n *Node[B, L]) setBranch(payload B, firstChild, lastChild int) {
	var zeroL L
	n.leaf = zeroL
	n.branch = payload
	n.isBranch = true
	n.firstChild = firstChild
	n.lastChild = lastChild
}

func (n *Node[B, L]) value() arbor.NodeValue[B, L] {
	if n.isBranch {
		return arbor.BranchValue[B, L](n.branch)
	}
	return arbor.LeafValue[B, L](n.leaf)
}

// NodeFix repairs the links between nodes after the arena moved them.
type NodeFix[B, L any] struct{}

// FixShift rewrites every link which points into the shifted run.
func (NodeFix[B, L]) FixShift(s storage.Elements[Node[B, L]], shiftedFrom int, shiftedBy int) {
	adjust := func(key int) int {
		if key == none {
			return key
		}
		if shiftedBy < 0 && key >= shiftedFrom-shiftedBy {
			return key + shiftedBy
		}
		if shiftedBy > 0 && key >= shiftedFrom {
			return key + shiftedBy
		}
		return key
	}
	for i := 0; i < s.Len(); i++ {
		if shiftedBy > 0 && i >= shiftedFrom && i < shiftedFrom+shiftedBy {
			continue
		}
		n := s.At(i)
		n.parent = adjust(n.parent)
		n.prevSibling = adjust(n.prevSibling)
		n.nextSibling = adjust(n.nextSibling)
		n.firstChild = adjust(n.firstChild)
		n.lastChild = adjust(n.lastChild)
	}
}

// FixMove repairs the links of a single relocated node. Four places
// may still name the old position: the children's parent links, the
// parent's first/last child links and the two adjacent siblings.
func (NodeFix[B, L]) FixMove(s storage.Elements[Node[B, L]], previousIndex int, currentIndex int) {
	n := s.At(currentIndex)
	for child := n.firstChild; child != none; child = s.At(child).nextSibling {
		s.At(child).parent = currentIndex
	}
	if n.prevSibling != none {
		s.At(n.prevSibling).nextSibling = currentIndex
	}
	if n.nextSibling != none {
		s.At(n.nextSibling).prevSibling = currentIndex
	}
	if n.parent == none {
		return
	}
	parent := s.At(n.parent)
	if parent.firstChild == previousIndex {
		parent.firstChild = currentIndex
	}
	if parent.lastChild == previousIndex {
		parent.lastChild = currentIndex
	}
}
