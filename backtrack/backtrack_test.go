package backtrack

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/skybrian/repeat-test-go/pick"
	"github.com/skybrian/repeat-test-go/track"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleAcceptsTwoBitValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "repeattest.backtrack")
	defer teardown()
	//
	b := New(track.NewOrdered(track.OrderedOptions{}), Options{})
	req := pick.Must(0, 1)

	var got [][2]int
	for len(got) < 4 {
		require.True(t, b.StartAt(0))
		var vals [2]int
		ok := true
		for i := 0; i < 2 && ok; i++ {
			vals[i], ok = b.NextPick(req)
		}
		if !ok {
			continue
		}
		b.EndPlayout(true)
		got = append(got, vals)
	}
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, got)

	require.True(t, b.StartAt(0))
	_, ok := b.NextPick(req)
	for ok {
		_, ok = b.NextPick(req)
	}
	assert.Equal(t, SearchDone, b.State())
}

func TestNextPickPanicsOutsidePicking(t *testing.T) {
	b := New(track.NewOrdered(track.OrderedOptions{}), Options{})
	assert.Panics(t, func() {
		b.NextPick(pick.Must(0, 1))
	})
}

func TestLimitForcesDefaultReply(t *testing.T) {
	b := New(track.NewPartial(pick.NewRandomPicker(1, 2), track.PartialOptions{}), Options{Limit: 1})
	require.True(t, b.StartAt(0))
	req := pick.Must(5, 9, pick.WithDefault(7))
	// Depth 0 is below Limit, so the first pick is not forced.
	reply, ok := b.NextPick(req)
	require.True(t, ok)
	assert.True(t, req.InRange(reply))
	// Depth is now 1 == Limit, so the next pick is forced to the default.
	reply, ok = b.NextPick(req)
	require.True(t, ok)
	assert.Equal(t, 7, reply)
}
