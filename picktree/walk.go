package picktree

import (
	"fmt"

	"github.com/skybrian/repeat-test-go/pick"
)

// ErrRangeMismatch is the fatal, non-recoverable error raised when a
// script revisits a tree position with a request whose shape (min/max)
// differs from the one recorded there on a prior visit. It indicates the
// script is non-deterministic in the pick requests it issues at a given
// depth, which a backtracking search cannot work around.
var ErrRangeMismatch = fmt.Errorf("picktree: request shape mismatch on revisit")

type step struct {
	id     NodeID
	reply  int
}

// Walk is the single, unique mutator of a Tree during one playout. It
// maintains a cursor (the path taken so far in this playout) and exposes
// the pruning primitives a Tracker needs: push a chosen reply, find the
// next unpruned reply, prune the current position, and trim back to a
// shallower depth to start a new playout cheaply.
//
// A Walk is not safe for concurrent use; the spec's concurrency model is
// single-threaded throughout (§5).
type Walk struct {
	tree *Tree
	cur  NodeID // current node; an untracked node inside an untracked region
	path []step

	// untrackedVisits counts pushes made this playout while the current
	// node was untracked. track.Partial's "should I start tracking"
	// heuristic reads this; it is per-playout, not cumulative, because
	// track.Partial calls ResetUntrackedVisits at the start of every
	// playout (see DESIGN.md).
	untrackedVisits int
}

// Depth is the number of picks taken so far on this walk.
func (w *Walk) Depth() int {
	return len(w.path)
}

// Pruned reports whether the whole tree (not just this walk's position)
// has been exhausted.
func (w *Walk) Pruned() bool {
	return w.tree.Pruned()
}

// UntrackedVisits is the per-playout counter described above.
func (w *Walk) UntrackedVisits() int {
	return w.untrackedVisits
}

// ResetUntrackedVisits zeroes the per-playout counter. track.Partial
// calls this at the start of every playout, since a Walk itself persists
// (trimmed, not recreated) across the playouts of a single Backtracker —
// see DESIGN.md's note on Open Question 2.
func (w *Walk) ResetUntrackedVisits() {
	w.untrackedVisits = 0
}

// curNode returns the node backing the cursor, or nil if the cursor is
// none. Tree.newChild gives every child its own arena node, so inside an
// untracked region this is an untracked node: it records no children and
// is never pruned.
func (w *Walk) curNode() *node {
	if w.cur == none {
		return nil
	}
	return w.tree.node(w.cur)
}

// Push descends to the child for reply, creating a tracked node if one
// doesn't exist yet and the current node is tracked. It returns
// accepted=false if reply names an already-pruned branch (the caller
// should try a different reply or abandon the playout). On a revisit of
// an existing node it validates req's shape against the one recorded
// there; a mismatch panics with ErrRangeMismatch, since a script that
// asks for a differently-shaped request at the same tree position is
// broken in a way no retry can fix.
func (w *Walk) Push(req pick.Request, reply int) (accepted bool) {
	n := w.curNode()
	if n == nil {
		// Untracked region: no pruning information is kept, so nothing
		// can ever be "already pruned" here.
		w.path = append(w.path, step{id: none, reply: reply})
		return true
	}
	w.validateShape(n, req)
	if n.isPrunedPick(reply) {
		return false
	}
	childID, exists := n.children[reply]
	if !exists {
		childID = w.tree.newChild(w.cur, true)
		if n.tracked {
			n.children[reply] = childID
		}
	}
	if !n.tracked {
		w.untrackedVisits++
	}
	w.path = append(w.path, step{id: childID, reply: reply})
	w.cur = childID
	return true
}

// PushUnprunedOptions configures PushUnpruned.
type PushUnprunedOptions struct {
	// Track, when false, creates an untracked child even if the current
	// node is tracked — used by track.Partial once its odds heuristic
	// decides a branch isn't worth remembering.
	Track bool
}

// PushUnpruned behaves like Push, but instead of requiring the caller to
// name an already-unpruned reply, it scans forward (modulo req.Size())
// from max(firstChoice, currentMin) for the first unpruned reply and
// takes that one. track.Partial advances this way, asking for the
// nearest unpruned reply to what the random picker suggested;
// track.Ordered uses FirstUnprunedInRange and Push instead.
func (w *Walk) PushUnpruned(firstChoice int, req pick.Request, opts PushUnprunedOptions) (reply int, ok bool) {
	n := w.curNode()
	if n == nil {
		reply = firstChoice
		if reply < req.Min() {
			reply = req.Min()
		} else if reply > req.Max() {
			reply = req.Max()
		}
		w.path = append(w.path, step{id: none, reply: reply})
		return reply, true
	}
	w.validateShape(n, req)
	size := req.Size()
	start := firstChoice
	if start < n.currentMin {
		start = n.currentMin
	}
	found := false
	for k := 0; k < size; k++ {
		candidate := req.Min() + ((start-req.Min())+k)%size
		if candidate < n.currentMin {
			continue
		}
		if n.isPrunedPick(candidate) {
			continue
		}
		reply = candidate
		found = true
		break
	}
	if !found {
		return 0, false
	}
	childID, exists := n.children[reply]
	if !exists {
		childID = w.tree.newChild(w.cur, opts.Track)
		if n.tracked {
			n.children[reply] = childID
		}
	}
	if !n.tracked {
		w.untrackedVisits++
	}
	w.path = append(w.path, step{id: childID, reply: reply})
	w.cur = childID
	return reply, true
}

// FirstUnprunedInRange reports the lowest unpruned reply in [lo, hi] at
// the current node, without moving the cursor. It returns ok=false if
// every reply in the range is pruned. If the cursor is none it returns
// lo, true: nothing is known to be pruned there.
func (w *Walk) FirstUnprunedInRange(lo, hi int) (reply int, ok bool) {
	n := w.curNode()
	if n == nil {
		return lo, true
	}
	if n.currentMin > lo {
		lo = n.currentMin
	}
	for v := lo; v <= hi; v++ {
		if !n.isPrunedPick(v) {
			return v, true
		}
	}
	return 0, false
}

func (w *Walk) validateShape(n *node, req pick.Request) {
	if !n.shaped {
		n.setShape(req.Min(), req.Max())
		tracer().Debugf("shaped node at depth %d as %s", w.Depth(), req)
		return
	}
	if n.min != req.Min() || n.max != req.Max() {
		panic(fmt.Errorf("%w: depth %d had [%d,%d], now asked for [%d,%d]",
			ErrRangeMismatch, w.Depth(), n.min, n.max, req.Min(), req.Max()))
	}
}

// Prune marks the node the cursor currently sits on as exhausted and
// propagates that fact upward: whenever a parent loses its last
// remaining branch, the edge leading to it from *its* parent is pruned
// too, recursively, all the way to the root if need be. It does not move
// the cursor; callers typically call Prune and then either Trim back to
// continue the current playout's shared state, or simply discard the
// Walk at the end of a playout.
func (w *Walk) Prune() {
	if len(w.path) == 0 {
		root := w.tree.node(rootID)
		root.shaped = true
		root.currentMin = root.max + 1
		return
	}
	w.pruneFrom(len(w.path))
}

// pruneFrom propagates a prune starting at path index idx-1 (the node
// reached by path[idx-1]) up toward the root, stopping as soon as a
// parent still has other branches left.
func (w *Walk) pruneFrom(idx int) {
	for i := idx - 1; i >= 0; i-- {
		var parentID NodeID
		if i == 0 {
			parentID = rootID
		} else {
			parentID = w.path[i-1].id
		}
		if parentID == none {
			return
		}
		parent := w.tree.node(parentID)
		if !parent.tracked {
			return
		}
		parent.markPruned(w.path[i].reply)
		tracer().Debugf("pruned reply %d at depth %d, branchesLeft=%d",
			w.path[i].reply, i, parent.branchesLeft())
		if parent.branchesLeft() > 0 {
			return
		}
	}
}

// PruneBranchTo prunes every child strictly below reply at the current
// node in one step, without visiting each of them individually. Used
// when a search advances past a prefix of replies it has decided never
// to revisit (for example, the ordered tracker narrowing maxSize between
// passes).
func (w *Walk) PruneBranchTo(reply int) {
	n := w.curNode()
	if n == nil || !n.shaped {
		return
	}
	n.pruneBelow(reply)
	if n.branchesLeft() == 0 {
		w.pruneFrom(len(w.path))
	}
}

// Trim discards the walk's local stack above depth, repositioning the
// cursor at the node reached after `depth` picks. It is a cheap restart:
// it does not un-prune anything, it only forgets how far past `depth`
// this walk had gone.
func (w *Walk) Trim(depth int) {
	if depth < 0 || depth > len(w.path) {
		panic(fmt.Sprintf("picktree: trim depth %d out of range [0,%d]", depth, len(w.path)))
	}
	w.path = w.path[:depth]
	if depth == 0 {
		w.cur = rootID
		return
	}
	w.cur = w.path[depth-1].id
}
