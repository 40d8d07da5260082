package repeattest

import (
	"fmt"

	"github.com/skybrian/repeat-test-go/backtrack"
	"github.com/skybrian/repeat-test-go/gen"
	"github.com/skybrian/repeat-test-go/pickfunc"
	"github.com/skybrian/repeat-test-go/track"
)

// Options configures a single Generate call.
type Options struct {
	// Limit caps the number of picks a playout may take; see
	// backtrack.Options.Limit.
	Limit int
}

// Generate runs playouts against tracker until one is accepted,
// returning the resulting Gen. A script that filters every reachable
// playout (or a tracker that starts out already exhausted) returns an
// error satisfying pickfunc.IsFiltered.
func Generate[T any](script pickfunc.Script[T], tracker track.Tracker, opts Options) (*gen.Gen[T], error) {
	bt := backtrack.New(tracker, backtrack.Options{Limit: opts.Limit})
	for {
		if !bt.StartAt(0) {
			return nil, fmt.Errorf("repeattest: %s: search exhausted: %w", script.Name(), pickfunc.ErrFiltered)
		}
		f := pickfunc.New(bt)
		val, err := script.Build(f)
		if bt.State() == backtrack.Picking {
			bt.EndPlayout(err == nil)
		}
		if err != nil {
			if pickfunc.IsFiltered(err) {
				tracer().Debugf("generate(%s): playout filtered, retrying", script.Name())
				continue
			}
			return nil, err
		}
		return gen.New(script, f.Log(), val), nil
	}
}

// GenerateDefault runs Generate with a fresh ordered tracker — the
// "canonical first value" a script produces under deterministic
// iterative-deepening enumeration.
func GenerateDefault[T any](script pickfunc.Script[T]) (*gen.Gen[T], error) {
	return Generate(script, track.NewOrdered(track.OrderedOptions{}), Options{})
}
