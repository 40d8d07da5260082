/*
Package picktree implements the mutable trie of visited pick sequences a
search walks while looking for distinct generated values.

A Tree owns an arena of nodes (addressed by NodeID, not by pointer — see
the Design Notes on avoiding pointer cycles, grounded on the way
persistent/btree and persistent/vector in this module's ancestor avoid
shared mutable ownership by indexing into a flat node slice / slot path
rather than chasing *Node pointers). Unlike those persistent structures,
a picktree.Tree is deliberately *not* persistent: it is mutated in place
by exactly one Walk at a time, for the lifetime of a single search.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package picktree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'repeattest.picktree'.
func tracer() tracing.Trace {
	return tracing.Select("repeattest.picktree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		panic(fmt.Sprintf(msg, msgargs...))
	}
}
