package track

import "github.com/skybrian/repeat-test-go/pick"

// Tracker is the strategy a backtrack.Backtracker hosts: given the
// current pick request, it decides what reply to take, and it manages
// whatever pruning bookkeeping (PickTree walks) that decision depends
// on. Trackers are not reentrant; a Backtracker drives exactly one
// Tracker through its playout/pass lifecycle at a time.
type Tracker interface {
	// StartPlayout begins a new playout, optionally reusing the first
	// reuseDepth picks of the previous playout (a cheap restart: see
	// picktree.Walk.Trim). It returns false if the search is already
	// fully exhausted.
	StartPlayout(reuseDepth int) bool

	// Pick returns the next reply for req, or ok=false if this playout
	// must be abandoned because every remaining branch at this position
	// has already been explored.
	Pick(req pick.Request) (reply int, ok bool)

	// EndPlayout finalizes the playout that just finished. accepted
	// indicates whether the script completed without being filtered.
	EndPlayout(accepted bool)

	// Exhausted reports whether the tracker has established that no
	// further distinct playouts can be produced.
	Exhausted() bool
}
