/*
Package fixedtree provides arena-allocated trees with a fixed number of
children per branch.

A branch node always carries exactly the tree's arity of children;
partial branches do not exist. As a consequence single nodes cannot be
removed from the tree, only all children of a branch at once, which
collapses the branch back into a leaf. The quadtree and octree packages
instantiate this package at arity 4 and 8.

Storage, keys and references behave as in package bintree: nodes live
in a storage arena (a sparse slice by default) and link to each other
with int keys.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package fixedtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
