package gen

import (
	"testing"

	"github.com/skybrian/repeat-test-go/pick"
	"github.com/skybrian/repeat-test-go/pickfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bit = pick.Must(0, 1)

func twoBitsScript(cachable bool) pickfunc.Script[int] {
	return pickfunc.Of("two-bits", func(f *pickfunc.PickFunc) (int, error) {
		a, err := f.PickInt(bit)
		if err != nil {
			return 0, err
		}
		b, err := f.PickInt(bit)
		if err != nil {
			return 0, err
		}
		return a*2 + b, nil
	}, pickfunc.Options{Cachable: cachable})
}

func TestBuildRoundTripsRecordedReplies(t *testing.T) {
	g, err := Build(twoBitsScript(true), []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Val())
	assert.Equal(t, []int{1, 0}, g.Replies())
}

func TestBuildReportsOutOfRangeReply(t *testing.T) {
	_, err := Build(twoBitsScript(true), []int{5, 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPlaybackMismatch)
	assert.Contains(t, err.Error(), "two-bits")
}

func TestBuildReportsExhaustedReplies(t *testing.T) {
	_, err := Build(twoBitsScript(true), []int{1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPlaybackMismatch)
}

func TestBuildReportsUnconsumedReplies(t *testing.T) {
	_, err := Build(twoBitsScript(true), []int{1, 0, 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPlaybackMismatch)
	assert.Contains(t, err.Error(), "3 replies recorded but only 2 consumed")
}

func TestMustBuildPanicsOnMismatch(t *testing.T) {
	assert.Panics(t, func() {
		MustBuild(twoBitsScript(true), []int{9})
	})
}

func TestValReturnsSameValueForCachableScript(t *testing.T) {
	g, err := Build(twoBitsScript(true), []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, g.Val())
	assert.Equal(t, 1, g.Val())
}

func TestValRegeneratesAfterFirstAccessForNonCachableScript(t *testing.T) {
	g, err := Build(twoBitsScript(false), []int{1, 1})
	require.NoError(t, err)
	first := g.Val()
	second := g.Val()
	assert.Equal(t, first, second)
	assert.Equal(t, 3, second)
}

func TestKeysOmitEmptyGroups(t *testing.T) {
	outer := pickfunc.Of("outer", func(f *pickfunc.PickFunc) (int, error) {
		inner := pickfunc.Of("inner", func(f *pickfunc.PickFunc) (int, error) {
			return f.PickInt(bit)
		}, pickfunc.Options{})
		empty := pickfunc.Of("empty", func(f *pickfunc.PickFunc) (int, error) {
			return 0, nil
		}, pickfunc.Options{})
		if _, err := pickfunc.PickFrom(f, empty); err != nil {
			return 0, err
		}
		return pickfunc.PickFrom(f, inner)
	}, pickfunc.Options{})

	g, err := Build(outer, []int{1})
	require.NoError(t, err)
	keys := g.Keys()
	require.Len(t, keys, 1)
	reqs, replies := g.GroupPicks(keys[0])
	assert.Equal(t, []int{1}, replies)
	assert.Len(t, reqs, 1)
}
