package bintree

import (
	"errors"
	"fmt"
)

// ErrInvalidStructure signals a violated tree invariant.
var ErrInvalidStructure = errors.New("bintree: invalid tree structure")

// Check validates structural tree invariants.
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
			if n.left != none || n.right != none {
				return fmt.Errorf("%w: leaf %d has child links", ErrInvalidStructure, key)
			}
			continue
		}
		if n.left == none {
			return fmt.Errorf("%w: branch %d has no left child", ErrInvalidStructure, key)
		}
		for _, child := range []int{n.left, n.right} {
			if child == none {
				continue
			}
			if !t.storage.Contains(child) {
				return fmt.Errorf("%w: child key %d of node %d not in storage",
					ErrInvalidStructure, child, key)
			}
			if t.node(child).parent != key {
				return fmt.Errorf("%w: node %d does not point back at parent %d",
					ErrInvalidStructure, child, key)
			}
			stack = append(stack, child)
		}
	}
	if len(visited) != t.storage.Len() {
		return fmt.Errorf("%w: %d nodes reachable, storage holds %d",
			ErrInvalidStructure, len(visited), t.storage.Len())
	}
	return nil
}
