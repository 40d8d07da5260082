package repeattest

import (
	"github.com/skybrian/repeat-test-go/gen"
	"github.com/skybrian/repeat-test-go/shrink"
)

// Shrink searches for a smaller Gen than seed that still satisfies
// test — see shrink.Shrink for the strategies applied.
func Shrink[T any](seed *gen.Gen[T], test func(T) bool, opts shrink.Options) *gen.Gen[T] {
	return shrink.Shrink(seed, test, opts)
}
