/*
Package shrink implements the multi-strategy shrinker: given a seed
gen.Gen and a predicate, it searches for a smaller value that still
satisfies the predicate by editing the seed's recorded trace and
replaying it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package shrink

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'repeattest.shrink'.
func tracer() tracing.Trace {
	return tracing.Select("repeattest.shrink")
}
