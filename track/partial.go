package track

import (
	"github.com/skybrian/repeat-test-go/pick"
	"github.com/skybrian/repeat-test-go/picktree"
)

// OddsThreshold is the point past which Partial starts recording a
// branch in its PickTree. Below it, the expected payoff of remembering
// this branch (to avoid a future duplicate) is judged too small to be
// worth the node.
const OddsThreshold = 1e-6

// PartialOptions configures a Partial tracker.
type PartialOptions struct {
	// NodeCap is the tree node count (picktree.Tree.NodeCount) at which
	// every new node is created untracked regardless of the odds
	// heuristic. Untracked nodes still take an arena slot each, so the
	// node count can grow past NodeCap; the cap stops tracking, it does
	// not bound the tree's size. Zero means no cap.
	NodeCap int
}

// Partial implements adaptive random sampling: it draws replies from an
// underlying pick.IntPicker (normally a seeded random source) and only
// records a branch in its PickTree when the odds that doing so will ever
// pay off (by letting a later playout detect and avoid a duplicate)
// exceed OddsThreshold, or when the walk has already made more untracked
// pushes this playout than the current request has replies.
type Partial struct {
	tree   *picktree.Tree
	walk   *picktree.Walk
	picker pick.IntPicker
	odds   float64
	nodeCap int
}

// NewPartial returns a tracker drawing from picker.
func NewPartial(picker pick.IntPicker, opts PartialOptions) *Partial {
	tree := picktree.New()
	return &Partial{
		tree:    tree,
		walk:    tree.NewWalk(),
		picker:  picker,
		nodeCap: opts.NodeCap,
	}
}

func (p *Partial) StartPlayout(reuseDepth int) bool {
	if p.walk.Pruned() {
		return false
	}
	p.walk.Trim(reuseDepth)
	p.walk.ResetUntrackedVisits()
	p.odds = 0
	return true
}

func (p *Partial) Pick(req pick.Request) (int, bool) {
	size := req.Size()
	p.odds += 1.0 / float64(size)
	track := p.odds > OddsThreshold || p.walk.UntrackedVisits() > size
	if p.nodeCap > 0 && p.tree.NodeCount() >= p.nodeCap {
		track = false
	}

	candidate, err := p.picker.Pick(req)
	if err != nil {
		// Only a Playback picker can fail this way, and Partial is never
		// driven by one; a real failure here is a programming error.
		panic(err)
	}
	reply, ok := p.walk.PushUnpruned(candidate, req, picktree.PushUnprunedOptions{Track: track})
	if !ok {
		return 0, false
	}
	tracer().Debugf("partial picked %d for %s (tracked=%v, odds=%.2e)", reply, req, track, p.odds)
	return reply, true
}

func (p *Partial) EndPlayout(bool) {
	p.walk.Prune()
}

func (p *Partial) Exhausted() bool {
	return p.walk.Pruned()
}

// Tree exposes the underlying PickTree for debug printing (see
// picktree.Tree.Sprint) and for tests that want to assert on its shape.
func (p *Partial) Tree() *picktree.Tree {
	return p.tree
}
