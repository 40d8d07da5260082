package track

import (
	"github.com/skybrian/repeat-test-go/pick"
	"github.com/skybrian/repeat-test-go/picktree"
)

// DefaultMaxPasses is "no cap": Ordered keeps widening passes until a
// pass produces no narrowing at all, however many passes that takes.
// This is what the spec's default values generator uses.
const DefaultMaxPasses = 0

// OrderedOptions configures an Ordered tracker.
type OrderedOptions struct {
	// MaxPasses caps the number of widening passes. Zero means
	// unlimited (DefaultMaxPasses). Exposed mainly so tests can force
	// termination on a script whose reachable set is infinite.
	MaxPasses int
}

// Ordered implements iterative-deepening enumeration: it walks the
// script's reachable playouts shortest-first, widening the window of
// picks it's willing to take at each position pass over pass, and never
// revisiting a playout it has already returned.
//
// It keeps two independent PickTrees (not just two walks over one tree,
// despite the name "tracker" suggesting a single cursor): `shared` prunes
// only the paths of playouts that were actually *accepted*, and persists
// for the Ordered tracker's whole lifetime — this is what guarantees no
// duplicate value is ever produced, across any number of passes. `pass`
// prunes every playout's path, accepted or filtered, and is thrown away
// and recreated at the start of each new pass — this is what lets
// Ordered detect "this pass has nothing left to try" independently of
// whether those tries succeeded.
type Ordered struct {
	sharedTree *picktree.Tree
	shared     *picktree.Walk

	passTree *picktree.Tree
	pass     *picktree.Walk

	currentPass      int
	filteredThisPass bool
	maxPasses        int
	exhausted        bool
}

// NewOrdered returns a tracker starting at pass 1.
func NewOrdered(opts OrderedOptions) *Ordered {
	o := &Ordered{currentPass: 1, maxPasses: opts.MaxPasses}
	o.sharedTree = picktree.New()
	o.shared = o.sharedTree.NewWalk()
	o.resetPass()
	return o
}

func (o *Ordered) resetPass() {
	o.passTree = picktree.New()
	o.pass = o.passTree.NewWalk()
	o.filteredThisPass = false
}

// CurrentPass reports the 1-based pass number in progress, for logging
// and for tests that want to assert on enumeration order.
func (o *Ordered) CurrentPass() int {
	return o.currentPass
}

func (o *Ordered) StartPlayout(reuseDepth int) bool {
	if o.exhausted {
		return false
	}
	o.pass.Trim(reuseDepth)
	o.shared.Trim(reuseDepth)
	return true
}

func (o *Ordered) Pick(req pick.Request) (int, bool) {
	depth := o.pass.Depth()
	maxSize := o.currentPass - depth + 1
	if maxSize < 1 {
		maxSize = 1
	}
	if o.currentPass > 10 {
		maxSize *= o.currentPass - 10
	}
	hi := req.Max()
	if maxSize < req.Size() {
		hi = req.Min() + maxSize - 1
		o.filteredThisPass = true
	}

	reply, ok := o.agreeOnReply(req, hi)
	if !ok {
		return 0, false
	}
	if !o.pass.Push(req, reply) {
		panic("track: ordered pass walk rejected a reply it reported unpruned")
	}
	if !o.shared.Push(req, reply) {
		panic("track: ordered shared walk rejected a reply it reported unpruned")
	}
	tracer().Debugf("ordered pass=%d depth=%d picked %d for %s (hi=%d)", o.currentPass, depth, reply, req, hi)
	return reply, true
}

// agreeOnReply finds the lowest reply in [req.Min(), hi] that neither
// the shared tree (which remembers every accepted playout, forever) nor
// the pass tree (which remembers every playout tried this pass) has
// already ruled out.
func (o *Ordered) agreeOnReply(req pick.Request, hi int) (int, bool) {
	lo := req.Min()
	for {
		s, ok := o.shared.FirstUnprunedInRange(lo, hi)
		if !ok {
			return 0, false
		}
		p, ok := o.pass.FirstUnprunedInRange(lo, hi)
		if !ok {
			return 0, false
		}
		if s == p {
			return s, true
		}
		if s > p {
			lo = s
		} else {
			lo = p
		}
	}
}

func (o *Ordered) EndPlayout(accepted bool) {
	o.pass.Prune()
	if accepted {
		o.shared.Prune()
	}
	if !o.pass.Pruned() {
		return
	}
	if !o.filteredThisPass || (o.maxPasses > 0 && o.currentPass >= o.maxPasses) {
		tracer().Debugf("ordered search exhausted after pass %d", o.currentPass)
		o.exhausted = true
		return
	}
	o.currentPass++
	o.resetPass()
	tracer().Debugf("ordered starting pass %d", o.currentPass)
}

func (o *Ordered) Exhausted() bool {
	return o.exhausted
}
