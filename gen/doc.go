/*
Package gen implements Gen[T], the immutable value produced by exactly
one accepted playout of a pickfunc.Script. A Gen owns its script, the
CallLog recorded while building it, and the value itself; Build/MustBuild
reconstruct a Gen from a literal reply sequence for round-trip testing
and for the shrinker's candidate edits.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package gen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'repeattest.gen'.
func tracer() tracing.Trace {
	return tracing.Select("repeattest.gen")
}
