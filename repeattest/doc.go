/*
Package repeattest is the runner glue: the public operations spec.md §6
names (Generate, GenerateDefault, GenerateAll, Take, TakeAll, Find,
Shrink), wiring pick, picktree, track, backtrack, pickfunc, gen and
shrink together into the surface a built-in generator library, a Domain
layer, or a CLI runner (all out of scope here) would actually import.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package repeattest

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'repeattest.repeattest'.
func tracer() tracing.Trace {
	return tracing.Select("repeattest.repeattest")
}
