package pick

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrPlaybackExhausted is returned by a Playback picker once its recorded
// replies have all been consumed.
var ErrPlaybackExhausted = errors.New("pick: playback exhausted")

// IntPicker answers a single Request with a reply, deterministically or
// not depending on the implementation. It is the "one-shot" leaf of the
// pick pipeline: Trackers decide *which* IntPicker-shaped source to
// consult and what first choice to offer it, but the picker itself knows
// nothing about trees, playouts, or call logs.
type IntPicker interface {
	// Pick returns a reply satisfying req, or an error if this picker
	// cannot answer (only Playback can fail this way).
	Pick(req Request) (int, error)
}

// AlwaysMin always answers with the request's default (normally Min).
// backtrack's Options.Limit does not use it: that forces the default by
// narrowing the request to [Default, Default] before the Tracker sees it.
var AlwaysMin IntPicker = alwaysMin{}

type alwaysMin struct{}

func (alwaysMin) Pick(req Request) (int, error) {
	return req.Default(), nil
}

// randomPicker draws uniformly (or per-bias) from math/rand/v2, the
// "random-seeded" picker the spec's PartialTracker drives. It also
// implements Uniform so that Request.Bias functions can call back into
// it for a raw uniform draw.
type randomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker returns a seeded IntPicker. Two uint64 halves seed a
// rand/v2 PCG source directly (no global state, no time-based default:
// callers that want reproducibility pass their own seed, callers that
// want fresh entropy generate one before calling).
func NewRandomPicker(seed1, seed2 uint64) IntPicker {
	return &randomPicker{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

func (p *randomPicker) Pick(req Request) (int, error) {
	if req.Size() == 1 {
		return req.Min(), nil
	}
	bias := req.Bias()
	reply := bias(p)
	if !req.InRange(reply) {
		// A caller-supplied bias function is the only way this can
		// happen; it's a programming error in the bias, not in pick.
		panic(fmt.Sprintf("pick: bias function returned %d outside %s", reply, req))
	}
	return reply, nil
}

func (p *randomPicker) UniformInt(n int) int {
	if n <= 0 {
		panic("pick: UniformInt requires n > 0")
	}
	return p.rng.IntN(n)
}

// Playback replays a fixed sequence of replies, in order, validating each
// against the Request it's asked to satisfy. It underlies Gen.Build /
// Gen.MustBuild (round-tripping a recorded trace) and the shrinker's
// candidate-edit mechanism (replaying an edited trace to see whether the
// script still accepts it).
type Playback struct {
	replies []int
	pos     int
}

// NewPlayback wraps a recorded reply sequence for replay.
func NewPlayback(replies []int) *Playback {
	cp := append([]int(nil), replies...)
	return &Playback{replies: cp}
}

func (p *Playback) Pick(req Request) (int, error) {
	if p.pos >= len(p.replies) {
		return 0, fmt.Errorf("%w: requested %s at index %d, have %d replies",
			ErrPlaybackExhausted, req, p.pos, len(p.replies))
	}
	reply := p.replies[p.pos]
	if !req.InRange(reply) {
		return 0, fmt.Errorf("pick: reply %d at index %d does not satisfy %s", reply, p.pos, req)
	}
	p.pos++
	return reply, nil
}

// Done reports whether every recorded reply has been consumed.
func (p *Playback) Done() bool {
	return p.pos >= len(p.replies)
}

// Pos is the number of replies consumed so far; used by callers (Gen.Build)
// to report "extra picks remain unconsumed" with an exact count.
func (p *Playback) Pos() int {
	return p.pos
}

// Len is the total number of recorded replies.
func (p *Playback) Len() int {
	return len(p.replies)
}
