package backtrack

import (
	"fmt"

	"github.com/skybrian/repeat-test-go/pick"
	"github.com/skybrian/repeat-test-go/track"
)

// State is one of the four states in the Backtracker's lifecycle.
type State int

const (
	Ready State = iota
	Picking
	PlayoutDone
	SearchDone
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Picking:
		return "picking"
	case PlayoutDone:
		return "playoutDone"
	case SearchDone:
		return "searchDone"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options configures a Backtracker.
type Options struct {
	// Limit caps the number of picks a single playout may take. Once
	// reached, every further request is silently replaced by its
	// default (normally its minimum) before being handed to the
	// Tracker — this is how a generated value's size stays bounded
	// regardless of how deep the build script would otherwise recurse.
	// Zero means unlimited.
	Limit int
}

// Backtracker drives a track.Tracker through the playout lifecycle. It
// is the only thing a pickfunc.Script talks to for entropy; it has no
// opinion about what a "value" is or how picks get logged, only about
// whether a reply can be taken right now.
type Backtracker struct {
	tracker track.Tracker
	opts    Options
	state   State
	depth   int
}

// New wraps tracker behind the playout state machine.
func New(tracker track.Tracker, opts Options) *Backtracker {
	return &Backtracker{tracker: tracker, opts: opts, state: Ready}
}

// State reports the current lifecycle state.
func (b *Backtracker) State() State {
	return b.state
}

// Depth is the number of picks taken so far in the current (or most
// recently ended) playout.
func (b *Backtracker) Depth() int {
	return b.depth
}

// StartAt begins a new playout, reusing the first depth picks of the
// previous one (pass 0 to start from scratch). It returns false iff the
// search is exhausted, transitioning straight to SearchDone.
func (b *Backtracker) StartAt(depth int) bool {
	if b.state == SearchDone {
		return false
	}
	if !b.tracker.StartPlayout(depth) {
		b.state = SearchDone
		tracer().Debugf("search exhausted on startAt(%d)", depth)
		return false
	}
	b.state = Picking
	b.depth = depth
	return true
}

// NextPick asks the tracker for the next reply to req. It must be called
// only in the Picking state. A false second return means the playout
// cannot continue (every remaining branch here is exhausted); the
// Backtracker has already abandoned the playout and transitioned to
// PlayoutDone (or SearchDone if that exhausted the whole tracker) by the
// time it returns.
func (b *Backtracker) NextPick(req pick.Request) (reply int, ok bool) {
	if b.state != Picking {
		panic(fmt.Sprintf("backtrack: NextPick called in state %s, want picking", b.state))
	}
	effective := req
	if b.opts.Limit > 0 && b.depth >= b.opts.Limit {
		effective = pick.Must(req.Default(), req.Default())
	}
	reply, ok = b.tracker.Pick(effective)
	if !ok {
		b.tracker.EndPlayout(false)
		b.finishPlayout()
		tracer().Debugf("nextPick exhausted at depth %d, abandoning playout", b.depth)
		return 0, false
	}
	b.depth++
	return reply, true
}

// EndPlayout must be called exactly once, from the Picking state, when
// the script has finished the playout on its own — i.e. every call to
// NextPick this playout returned ok=true. accepted indicates whether the
// value the script produced should be considered a real result (true)
// or was itself filtered after the fact by something outside the
// picking loop (false). It returns accepted, unchanged, for convenience.
func (b *Backtracker) EndPlayout(accepted bool) bool {
	if b.state != Picking {
		panic(fmt.Sprintf("backtrack: EndPlayout called in state %s, want picking", b.state))
	}
	b.tracker.EndPlayout(accepted)
	b.finishPlayout()
	return accepted
}

func (b *Backtracker) finishPlayout() {
	if b.tracker.Exhausted() {
		b.state = SearchDone
	} else {
		b.state = PlayoutDone
	}
}
