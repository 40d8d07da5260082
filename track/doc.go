/*
Package track implements the two search strategies that decide, pick by
pick, what reply a Backtracker should take: Ordered (iterative-deepening
enumeration, for deterministic, duplicate-free exhaustive search) and
Partial (adaptive random sampling, for coverage without the bookkeeping
cost of tracking every branch).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package track

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'repeattest.track'.
func tracer() tracing.Trace {
	return tracing.Select("repeattest.track")
}
