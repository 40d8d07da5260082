package shrink

import (
	"fmt"

	"github.com/skybrian/repeat-test-go/gen"
	"github.com/skybrian/repeat-test-go/pickfunc"
)

// DefaultTriesPerStrategy bounds how many candidates a single strategy
// examines in one pass, per Design Notes §9 OQ3 ("treat as tunables
// with conservative defaults (100 tries/strategy)").
const DefaultTriesPerStrategy = 100

// Options configures Shrink.
type Options struct {
	// TriesPerStrategy caps candidates examined per strategy per
	// round. Zero means DefaultTriesPerStrategy.
	TriesPerStrategy int
}

// Shrink searches for a Gen no larger than seed, under the strategies'
// implicit ordering, whose value still satisfies test. seed.Val() must
// already satisfy test — shrink only ever makes things smaller, never
// fixes a non-failing seed.
//
// Strategies run in a fixed order, each pass, until a full round makes
// no progress:
//  1. remove call groups
//  2. shrink tails within each group (reverse order)
//  3. shrink boolean-like "options" to their default
//  4. shrink every pick toward its request's minimum
//
// (5) from spec.md §4.6, "shrink one pick toward a value," is the
// bisection primitive strategy 4 is built on; it is exposed directly as
// PickToward for callers that want to shrink toward something other
// than a request's own minimum.
func Shrink[T any](seed *gen.Gen[T], test func(T) bool, opts Options) *gen.Gen[T] {
	if opts.TriesPerStrategy <= 0 {
		opts.TriesPerStrategy = DefaultTriesPerStrategy
	}
	if !test(seed.Val()) {
		panic(fmt.Sprintf("shrink: %s: seed does not satisfy test", seed.Script().Name()))
	}

	strategies := []func(*gen.Gen[T], func(T) bool, int) (*gen.Gen[T], bool){
		removeGroups[T],
		shrinkTails[T],
		shrinkOptions[T],
		shrinkAllPicks[T],
	}

	current := seed
	for {
		improved := false
		for _, strategy := range strategies {
			if next, ok := strategy(current, test, opts.TriesPerStrategy); ok {
				tracer().Debugf("shrink(%s): improved trace from %d to %d picks",
					current.Script().Name(), len(current.Replies()), len(next.Replies()))
				current = next
				improved = true
			}
		}
		if !improved {
			return current
		}
	}
}

// tryCandidate replays script against replies and, if it regenerates
// successfully and the result passes test, returns it. Any failure —
// Filtered, a genuine playback mismatch, or a failing test — simply
// rejects the candidate, exactly as spec.md §4.6's edit mechanics
// describe.
func tryCandidate[T any](script pickfunc.Script[T], replies []int, test func(T) bool) (*gen.Gen[T], bool) {
	candidate, err := gen.Build(script, replies)
	if err != nil {
		return nil, false
	}
	if !test(candidate.Val()) {
		return nil, false
	}
	return candidate, true
}
