/*
Package pickfunc is the user-facing pick-callback: the thing a build
function actually calls to ask for entropy. It has two entry points —
PickFunc.PickInt for a raw integer request, and the package-level
generic PickFrom for a nested Script — and it is the only place that
understands CallLog bookkeeping (call-group spans) and the Filtered
retry protocol.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package pickfunc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'repeattest.pickfunc'.
func tracer() tracing.Trace {
	return tracing.Select("repeattest.pickfunc")
}
