package fixedtree

import (
	"errors"
	"fmt"
)

// ErrInvalidStructure signals a violated tree invariant.
var ErrInvalidStructure = errors.New("fixedtree: invalid tree structure")

// Check validates structural tree invariants.
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
			if len(n.children) != 0 {
				return fmt.Errorf("%w: leaf %d has child links", ErrInvalidStructure, key)
			}
			continue
		}
		if len(n.children) != t.arity {
			return fmt.Errorf("%w: branch %d has %d children, arity is %d",
				ErrInvalidStructure, key, len(n.children), t.arity)
		}
		for _, child := range n.children {
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
