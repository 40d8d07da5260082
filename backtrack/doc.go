/*
Package backtrack hosts a track.Tracker behind the linear playout
lifecycle described in the spec: ready, picking, playoutDone, searchDone.
It is the thing a Script's build function actually calls through (via
pickfunc.PickFunc) to get replies; the Tracker underneath decides
what those replies are, but only the Backtracker enforces the legal
sequencing of start/pick/end calls.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package backtrack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'repeattest.backtrack'.
func tracer() tracing.Trace {
	return tracing.Select("repeattest.backtrack")
}
