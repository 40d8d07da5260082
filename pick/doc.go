/*
Package pick defines the smallest unit of entropy a generator script can
consume: a request for one integer in an inclusive range, and the
one-shot pickers that answer such requests.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package pick

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'repeattest.pick'.
func tracer() tracing.Trace {
	return tracing.Select("repeattest.pick")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		panic(fmt.Sprintf(msg, msgargs...))
	}
}
