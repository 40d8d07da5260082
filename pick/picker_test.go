package pick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlwaysMinForcesDefault(t *testing.T) {
	r := Must(5, 9, WithDefault(7))
	reply, err := AlwaysMin.Pick(r)
	require.NoError(t, err)
	assert.Equal(t, 7, reply)
}

func TestRandomPickerStaysInRange(t *testing.T) {
	picker := NewRandomPicker(1, 2)
	r := Must(1, 6)
	for i := 0; i < 200; i++ {
		reply, err := picker.Pick(r)
		require.NoError(t, err)
		assert.True(t, r.InRange(reply))
	}
}

func TestRandomPickerIsReproducibleForSameSeed(t *testing.T) {
	r := Must(0, 1000000)
	a := NewRandomPicker(42, 7)
	b := NewRandomPicker(42, 7)
	for i := 0; i < 50; i++ {
		av, err := a.Pick(r)
		require.NoError(t, err)
		bv, err := b.Pick(r)
		require.NoError(t, err)
		assert.Equal(t, av, bv)
	}
}

func TestPlaybackReplaysExactSequence(t *testing.T) {
	p := NewPlayback([]int{2, 4, 6})
	r := Must(0, 9)
	for _, want := range []int{2, 4, 6} {
		got, err := p.Pick(r)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, p.Done())
	_, err := p.Pick(r)
	require.ErrorIs(t, err, ErrPlaybackExhausted)
}

func TestPlaybackRejectsOutOfRangeReply(t *testing.T) {
	p := NewPlayback([]int{99})
	_, err := p.Pick(Must(0, 9))
	require.Error(t, err)
}
