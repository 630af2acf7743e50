package freeform

import (
	"errors"
	"fmt"
)

// ErrInvalidStructure signals a violated tree invariant.
var ErrInvalidStructure = errors.New("freeform: invalid tree structure")

// Check validates structural tree invariants, including the
// consistency of the doubly linked sibling lists.
//
// This checker is intentionally strict and should be used in tests
// while client code around the tree is evolving.
func (t *Tree[B, L]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidStructure)
	}
	if !t.storage.Contains(t.root) {
		return fmt.Errorf("%w: root key %d not in storage", ErrInvalidStructure, t.root)
	}
	if t.node(t.root).parent != none {
		return fmt.Errorf("%w: root node has a parent", ErrInvalidStructure)
	}
	visited := make(map[int]bool, t.storage.Len())
	stack := []int{t.root}
	for len(stack) > 0 {
		key := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[key] {
			return fmt.Errorf("%w: node %d reachable twice", ErrInvalidStructure, key)
		}
		visited[key] = true
		n := t.node(key)
		if !n.isBranch {
			if n.firstChild != none || n.lastChild != none {
				return fmt.Errorf("%w: leaf %d has child links", ErrInvalidStructure, key)
			}
			continue
		}
		if n.firstChild == none || n.lastChild == none {
			return fmt.Errorf("%w: branch %d has no children", ErrInvalidStructure, key)
		}
		if t.node(n.firstChild).prevSibling != none {
			return fmt.Errorf("%w: first child of node %d has a previous sibling",
				ErrInvalidStructure, key)
		}
		prev := none
		child := n.firstChild
		for child != none {
			if !t.storage.Contains(child) {
				return fmt.Errorf("%w: child key %d of node %d not in storage",
					ErrInvalidStructure, child, key)
			}
			c := t.node(child)
			if c.parent != key {
				return fmt.Errorf("%w: node %d does not point back at parent %d",
					ErrInvalidStructure, child, key)
			}
			if c.prevSibling != prev {
				return fmt.Errorf("%w: node %d does not point back at sibling %d",
					ErrInvalidStructure, child, prev)
			}
			stack = append(stack, child)
			prev = child
			child = c.nextSibling
		}
		if n.lastChild != prev {
			return fmt.Errorf("%w: last child link of node %d is %d, sibling list ends at %d",
				ErrInvalidStructure, key, n.lastChild, prev)
		}
	}
	if len(visited) != t.storage.Len() {
		return fmt.Errorf("%w: %d nodes reachable, storage holds %d",
			ErrInvalidStructure, len(visited), t.storage.Len())
	}
	return nil
}
