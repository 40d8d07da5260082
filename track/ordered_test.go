package track

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/skybrian/repeat-test-go/pick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playTwoBits runs one full playout of "pick [0,1] then pick [0,1] again"
// against an Ordered tracker, returning the two replies and whether the
// playout could proceed at all.
func playTwoBits(t *testing.T, o *Ordered) ([2]int, bool) {
	t.Helper()
	req := pick.Must(0, 1)
	var out [2]int
	for i := 0; i < 2; i++ {
		reply, ok := o.Pick(req)
		if !ok {
			return out, false
		}
		out[i] = reply
	}
	return out, true
}

func TestOrderedEnumeratesBitsInDepthOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "repeattest.track")
	defer teardown()
	//
	o := NewOrdered(OrderedOptions{})
	var got [][2]int
	depth := 0
	for len(got) < 4 {
		require.True(t, o.StartPlayout(depth))
		vals, ok := playTwoBits(t, o)
		if !ok {
			o.EndPlayout(false)
			depth = 0
			continue
		}
		got = append(got, vals)
		o.EndPlayout(true)
		depth = 0
	}
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, got)

	// A fifth attempt must find nothing new reachable at this depth.
	require.True(t, o.StartPlayout(0))
	seen := map[[2]int]bool{}
	for _, v := range got {
		seen[v] = true
	}
	for tries := 0; tries < 50; tries++ {
		vals, ok := playTwoBits(t, o)
		if !ok {
			o.EndPlayout(false)
			if o.Exhausted() {
				break
			}
			require.True(t, o.StartPlayout(0))
			continue
		}
		assert.False(t, seen[vals], "did not expect a duplicate of %v", vals)
		o.EndPlayout(true)
		require.True(t, o.StartPlayout(0))
	}
	assert.True(t, o.Exhausted(), "all four values were returned, so the search is exhausted")
}

func TestOrderedExhaustsFiniteScript(t *testing.T) {
	o := NewOrdered(OrderedOptions{})
	req := pick.Must(0, 1)
	count := 0
	require.True(t, o.StartPlayout(0))
	for count < 100 {
		reply, ok := o.Pick(req)
		if !ok {
			o.EndPlayout(false)
			if o.Exhausted() {
				break
			}
			require.True(t, o.StartPlayout(0))
			continue
		}
		_ = reply
		count++
		o.EndPlayout(true)
		if o.Exhausted() {
			break
		}
		require.True(t, o.StartPlayout(0))
	}
	assert.Equal(t, 2, count, "a single [0,1] pick has exactly 2 reachable values")
	assert.True(t, o.Exhausted())
}

func TestOrderedMaxPassesCapsInfiniteScript(t *testing.T) {
	o := NewOrdered(OrderedOptions{MaxPasses: 3})
	req := pick.Must(0, 1000000) // effectively unbounded within a few passes
	rounds := 0
	require.True(t, o.StartPlayout(0))
	for rounds < 10000 {
		_, ok := o.Pick(req)
		if !ok {
			o.EndPlayout(false)
		} else {
			o.EndPlayout(true)
		}
		rounds++
		if o.Exhausted() {
			break
		}
		require.True(t, o.StartPlayout(0))
	}
	assert.True(t, o.Exhausted(), "tracker should stop once MaxPasses is reached")
	assert.LessOrEqual(t, o.CurrentPass(), 3)
}
