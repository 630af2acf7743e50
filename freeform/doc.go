/*
Package freeform provides arena-allocated trees with a variable number
of children per branch.

A branch node carries one or more children, kept on a doubly linked
sibling list: every node links to its previous and next sibling and a
branch links to its first and last child. Children can be added and
removed one at a time, which neither binary nor fixed-arity trees
allow without restrictions.

Storage, keys and references behave as in package bintree: nodes live
in a storage arena (a sparse slice by default) and link to each other
with int keys.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package freeform

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
