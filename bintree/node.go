package bintree

import (
	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/storage"
)

// none marks an absent node link.
const none = -1

// Node is a single binary tree node as it is stored in the arena. A
// node is either a leaf carrying a leaf payload or a branch carrying a
// branch payload plus one or two child links.
type Node[B, L any] struct {
	branch   B
	leaf     L
	isBranch bool
	left     int
	right    int
	parent   int
}

func leafNode[B, L any](payload L, parent int) Node[B, L] {
	return Node[B, L]{leaf: payload, left: none, right: none, parent: parent}
}

func (n *Node[B, L]) setLeaf(payload L) {
	var zeroB B
	n.branch = zeroB
	n.leaf = payload
	n.isBranch = false
	n.left, n.right = none, none
}

func (n *Node[B, L]) setBranch(payload B, left, right int) {
	var zeroL L
	n.leaf = zeroL
	n.branch = payload
	n.isBranch = true
	n.left, n.right = left, right
}

func (n *Node[B, L]) value() arbor.NodeValue[B, L] {
	if n.isBranch {
		return arbor.BranchValue[B, L](n.branch)
	}
	return arbor.LeafValue[B, L](n.leaf)
}

// NodeFix repairs the parent and child links between nodes after the
// arena moved them. It is wired in automatically by the constructors in
// this package; callers composing their own list arena around Node use
// it explicitly.
type NodeFix[B, L any] struct{}

// FixShift rewrites every link which points into the shifted run. It
// scans the whole storage, since links to shifted nodes can sit
// anywhere in it.
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
			// the inserted nodes carry correct links already
			continue
		}
		n := s.At(i)
		n.parent = adjust(n.parent)
		n.left = adjust(n.left)
		n.right = adjust(n.right)
	}
}

// FixMove repairs the links of a single relocated node: the parent
// links of its children and the child link of its parent. All other
// nodes still sit at their recorded keys when a single node moves, so
// no scan is needed.
func (NodeFix[B, L]) FixMove(s storage.Elements[Node[B, L]], previousIndex int, currentIndex int) {
	n := s.At(currentIndex)
	if n.isBranch {
		if n.left != none {
			s.At(n.left).parent = currentIndex
		}
		if n.right != none {
			s.At(n.right).parent = currentIndex
		}
	}
	if n.parent == none {
		return
	}
	parent := s.At(n.parent)
	if parent.left == previousIndex {
		parent.left = currentIndex
	} else if parent.right == previousIndex {
		parent.right = currentIndex
	} else {
		panic("bintree: parent does not list the moved node as a child")
	}
}
