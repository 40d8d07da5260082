package repeattest

import (
	"github.com/skybrian/repeat-test-go/backtrack"
	"github.com/skybrian/repeat-test-go/gen"
	"github.com/skybrian/repeat-test-go/pickfunc"
	"github.com/skybrian/repeat-test-go/track"
)

// Cursor walks the ordered tracker's full enumeration of a script's
// reachable values, one playout at a time.
type Cursor[T any] struct {
	script pickfunc.Script[T]
	bt     *backtrack.Backtracker
	err    error
	done   bool
}

// GenerateAll returns a Cursor over every value script's build function
// can produce, in ordered-tracker depth order — spec.md §6's
// generate_all, "infinite or finite, respects ordered-tracker
// enumeration."
func GenerateAll[T any](script pickfunc.Script[T]) *Cursor[T] {
	return &Cursor[T]{
		script: script,
		bt:     backtrack.New(track.NewOrdered(track.OrderedOptions{}), backtrack.Options{}),
	}
}

// Next returns the next Gen, or (nil, false) once the enumeration is
// exhausted or a non-Filtered error occurred — distinguish the two with
// Err.
func (c *Cursor[T]) Next() (*gen.Gen[T], bool) {
	if c.done {
		return nil, false
	}
	for {
		if !c.bt.StartAt(0) {
			c.done = true
			return nil, false
		}
		f := pickfunc.New(c.bt)
		val, err := c.script.Build(f)
		if c.bt.State() == backtrack.Picking {
			c.bt.EndPlayout(err == nil)
		}
		if err != nil {
			if pickfunc.IsFiltered(err) {
				continue
			}
			c.err = err
			c.done = true
			return nil, false
		}
		return gen.New(c.script, f.Log(), val), true
	}
}

// Err returns the error that stopped iteration, if any (nil on plain
// exhaustion).
func (c *Cursor[T]) Err() error {
	return c.err
}
