/*
Package quadtree provides arena-allocated quadtrees: every branch node
carries exactly four children. See package fixedtree for the shared
node and reference API.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package quadtree

import (
	"github.com/npillmayer/arbor/fixedtree"
	"github.com/npillmayer/arbor/storage"
)

// Arity is the number of children of every quadtree branch.
const Arity = 4

// Tree is a quadtree.
type Tree[B, L any] = fixedtree.Tree[B, L]

// Node is a quadtree node as stored in the arena.
type Node[B, L any] = fixedtree.Node[B, L]

// New creates a quadtree with a single leaf root, backed by a sparse
// slice arena.
func New[B, L any](root L) *Tree[B, L] {
	return fixedtree.New[B, L](Arity, root)
}

// WithCapacity creates a quadtree like New does, with arena capacity
// for n nodes.
func WithCapacity[B, L any](n int, root L) *Tree[B, L] {
	return fixedtree.WithCapacity[B, L](Arity, n, root)
}

// NewIn creates a quadtree with a single leaf root inside a
// caller-supplied empty arena.
func NewIn[B, L any](arena storage.Arena[Node[B, L]], root L) *Tree[B, L] {
	return fixedtree.NewIn[B, L](Arity, arena, root)
}
