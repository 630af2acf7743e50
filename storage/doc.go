/*
Package storage provides the arena layer underneath the arbor tree shapes.

Trees in arbor do not link nodes with pointers but address them with keys
into a storage arena. The arena decides how keys behave: a plain list
arena reuses freed space immediately and shifts keys, a sparse arena
keeps keys stable and collects holes instead. Both are built on top of a
minimal list contract, so callers can plug in their own backing
collection.

The three contracts layer as follows:

  - List is a position-indexed collection with in-place element access.
  - MoveFix repairs cross-references between elements after an element
    changed its index. Element types that reference each other by key
    (tree nodes do) supply one.
  - Storage (alias Arena for int keys) is the key-addressed surface the
    tree shapes talk to.

ListArena turns any List plus a MoveFix into an Arena with shifting keys.
Sparse wraps a List of slots and trades memory for key stability; it
reclaims memory only on explicit Defragment calls.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package storage

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
