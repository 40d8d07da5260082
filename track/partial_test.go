package track

import (
	"testing"

	"github.com/skybrian/repeat-test-go/pick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartialStaysInRangeAndTerminates(t *testing.T) {
	picker := pick.NewRandomPicker(7, 11)
	p := NewPartial(picker, PartialOptions{})
	req := pick.Must(0, 1)

	seen := map[int]bool{}
	for tries := 0; tries < 1000 && len(seen) < 2; tries++ {
		require.True(t, p.StartPlayout(0))
		reply, ok := p.Pick(req)
		if !ok {
			p.EndPlayout(false)
			continue
		}
		assert.True(t, req.InRange(reply))
		seen[reply] = true
		p.EndPlayout(true)
	}
	assert.Len(t, seen, 2, "a [0,1] request should eventually produce both replies")
	assert.True(t, p.Exhausted(), "both branches of a [0,1] request are exhaustible")
}

func TestPartialNeverDuplicatesWithinNodeCap(t *testing.T) {
	picker := pick.NewRandomPicker(3, 5)
	p := NewPartial(picker, PartialOptions{})
	req := pick.Must(0, 3)

	seen := map[int]int{}
	for tries := 0; tries < 2000; tries++ {
		if p.Exhausted() {
			break
		}
		require.True(t, p.StartPlayout(0))
		reply, ok := p.Pick(req)
		if !ok {
			p.EndPlayout(false)
			continue
		}
		seen[reply]++
		p.EndPlayout(true)
	}
	for v, n := range seen {
		assert.Equal(t, 1, n, "value %d should have been produced exactly once", v)
	}
	assert.Len(t, seen, 4)
}

func TestPartialHonorsNodeCapByGoingUntracked(t *testing.T) {
	picker := pick.NewRandomPicker(1, 1)
	p := NewPartial(picker, PartialOptions{NodeCap: 1})
	req := pick.Must(0, 100)
	require.True(t, p.StartPlayout(0))
	_, ok := p.Pick(req)
	require.True(t, ok)
	// With NodeCap reached immediately, no further structural growth is
	// guaranteed, but the picker must still answer in range.
	assert.LessOrEqual(t, p.Tree().NodeCount(), 2)
}
