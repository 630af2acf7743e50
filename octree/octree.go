/*
Package octree provides arena-allocated octrees: every branch node
carries exactly eight children. See package fixedtree for the shared
node and reference API.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package octree

import (
	"github.com/npillmayer/arbor/fixedtree"
	"github.com/npillmayer/arbor/storage"
)

// Arity is the number of children of every octree branch.
const Arity = 8

// Tree is an octree.
type Tree[B, L any] = fixedtree.Tree[B, L]

// Node is an octree node as stored in the arena.
type Node[B, L any] = fixedtree.Node[B, L]

// New creates an octree with a single leaf root, backed by a sparse
// slice arena.
func New[B, L any](root L) *Tree[B, L] {
	return fixedtree.New[B, L](Arity, root)
}

// WithCapacity creates an octree like New does, with arena capacity
// for n nodes.
func WithCapacity[B, L any](n int, root L) *Tree[B, L] {
	return fixedtree.WithCapacity[B, L](Arity, n, root)
}

// NewIn creates an octree with a single leaf root inside a
// caller-supplied empty arena.
func NewIn[B, L any](arena storage.Arena[Node[B, L]], root L) *Tree[B, L] {
	return fixedtree.NewIn[B, L](Arity, arena, root)
}
