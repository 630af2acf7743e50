/*
Package bintree provides arena-allocated binary trees.

A branch node has one or two children; a branch with a single left
child is called a partial branch and is a legal state. Nodes live in a
storage arena and link to each other with int keys, which keeps the
whole tree in at most one allocation and makes dropping it trivial.

The default arena is a sparse slice: removal punches holes which later
insertions reuse, so keys handed out once stay valid until their node
is removed. Defragment compacts the holes away when memory matters more
than key stability.

Node access goes through NodeRef (reading) and NodeRefMut (reading and
mutating). A NodeRefMut assumes exclusive access to the whole tree for
its lifetime.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package bintree

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
