package picktree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/skybrian/repeat-test-go/pick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushDescendsAndShapesNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "repeattest.picktree")
	defer teardown()
	//
	tr := New()
	w := tr.NewWalk()
	req := pick.Must(0, 1)
	accepted := w.Push(req, 1)
	require.True(t, accepted)
	assert.Equal(t, 1, w.Depth())
}

func TestPushRejectsPrunedReply(t *testing.T) {
	tr := New()
	w := tr.NewWalk()
	req := pick.Must(0, 1)
	require.True(t, w.Push(req, 0))
	w.Prune()
	w.Trim(0)
	accepted := w.Push(req, 0)
	assert.False(t, accepted, "pick 0 should be pruned after Prune")
	accepted = w.Push(req, 1)
	assert.True(t, accepted)
}

func TestPruneAllBranchesMarksTreePruned(t *testing.T) {
	tr := New()
	req := pick.Must(0, 1)
	for _, reply := range []int{0, 1} {
		w := tr.NewWalk()
		require.True(t, w.Push(req, reply))
		w.Prune()
	}
	assert.True(t, tr.Pruned())
}

func TestPruneNestedPropagatesToRoot(t *testing.T) {
	tr := New()
	outer := pick.Must(0, 0) // single-branch request: only one possible reply
	inner := pick.Must(0, 1)

	for _, reply := range []int{0, 1} {
		w := tr.NewWalk()
		require.True(t, w.Push(outer, 0))
		require.True(t, w.Push(inner, reply))
		w.Prune()
	}
	assert.True(t, tr.Pruned(), "exhausting the only outer branch's both inner replies should prune the root")
}

func TestPushUnprunedSkipsPrunedCandidates(t *testing.T) {
	tr := New()
	req := pick.Must(0, 3)

	w := tr.NewWalk()
	require.True(t, w.Push(req, 1))
	w.Prune()
	w.Trim(0)

	w2 := tr.NewWalk()
	reply, ok := w2.PushUnpruned(1, req, PushUnprunedOptions{Track: true})
	require.True(t, ok)
	assert.NotEqual(t, 1, reply, "pick 1 was pruned and must be skipped")
}

func TestPushUnprunedWrapsAroundModuloSize(t *testing.T) {
	tr := New()
	req := pick.Must(0, 2)

	// Prune 2 and 0, leaving only 1.
	for _, reply := range []int{2, 0} {
		w := tr.NewWalk()
		require.True(t, w.Push(req, reply))
		w.Prune()
		w.Trim(0)
	}
	w := tr.NewWalk()
	reply, ok := w.PushUnpruned(2, req, PushUnprunedOptions{Track: true})
	require.True(t, ok)
	assert.Equal(t, 1, reply)
}

func TestFirstUnprunedInRange(t *testing.T) {
	tr := New()
	req := pick.Must(0, 4)
	w := tr.NewWalk()
	require.True(t, w.Push(req, 2))
	w.Prune()
	w.Trim(0)

	w2 := tr.NewWalk()
	reply, ok := w2.FirstUnprunedInRange(0, 4)
	require.True(t, ok)
	assert.Equal(t, 0, reply)
}

func TestTrimRepositionsCursorWithoutUnpruning(t *testing.T) {
	tr := New()
	req := pick.Must(0, 1)
	w := tr.NewWalk()
	require.True(t, w.Push(req, 0))
	require.True(t, w.Push(req, 1))
	w.Trim(1)
	assert.Equal(t, 1, w.Depth())
	// The node at depth 1 still knows its child at reply 1 was visited.
	accepted := w.Push(req, 1)
	assert.True(t, accepted)
}

func TestRangeMismatchPanics(t *testing.T) {
	tr := New()
	w := tr.NewWalk()
	require.True(t, w.Push(pick.Must(0, 1), 0))
	w.Trim(0)
	assert.Panics(t, func() {
		w.Push(pick.Must(0, 2), 0)
	})
}

func TestPruneBranchToPrunesPrefix(t *testing.T) {
	tr := New()
	req := pick.Must(0, 3)
	w := tr.NewWalk()
	require.True(t, w.Push(req, 2)) // shapes the root node as [0,3]
	w.Trim(0)

	w2 := tr.NewWalk()
	w2.PruneBranchTo(2)
	reply, ok := w2.FirstUnprunedInRange(0, 3)
	require.True(t, ok)
	assert.Equal(t, 2, reply)
}
