package fixedtree

import (
	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/storage"
)

// none marks an absent node link.
const none = -1

// Node is a single fixed-arity tree node as it is stored in the arena.
// A branch node holds exactly the tree's arity of child keys.
type Node[B, L any] struct {
	branch   B
	leaf     L
	isBranch bool
	children []int
	parent   int
}

func leafNode[B, L any](payload L, parent int) Node[B, L] {
	return Node[B, L]{leaf: payload, parent: parent}
}

func (n *Node[B, L]) setLeaf(payload L) {
	var zeroB B
	n.branch = zeroB
	n.leaf = payload
	n.isBranch = false
	n.children = nil
}

func (n *Node[B, L]) setBranch(payload B, children []int) {
	var zeroL L
	n.leaf = zeroL
	n.branch = payload
	n.isBranch = true
	n.children = children
}

func (n *Node[B, L]) value() arbor.NodeValue[B, L] {
	if n.isBranch {
		return arbor.BranchValue[B, L](n.branch)
	}
	return arbor.LeafValue[B, L](n.leaf)
}

// NodeFix repairs the parent and child links between nodes after the
// arena moved them.
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
		for c := range n.children {
			n.children[c] = adjust(n.children[c])
		}
	}
}

// FixMove repairs the links of a single relocated node.
func (NodeFix[B, L]) FixMove(s storage.Elements[Node[B, L]], previousIndex int, currentIndex int) {
	n := s.At(currentIndex)
	for _, child := range n.children {
		s.At(child).parent = currentIndex
	}
	if n.parent == none {
		return
	}
	parent := s.At(n.parent)
	for c, child := range parent.children {
		if child == previousIndex {
			parent.children[c] = currentIndex
			return
		}
	}
	panic("fixedtree: parent does not list the moved node as a child")
}
