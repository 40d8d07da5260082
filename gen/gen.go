package gen

import (
	"errors"
	"fmt"

	"github.com/skybrian/repeat-test-go/pick"
	"github.com/skybrian/repeat-test-go/pickfunc"
)

// ErrPlaybackMismatch means Build was given replies that don't satisfy
// the requests its script issued, the wrong count of them, or picks
// left over once the script finished.
var ErrPlaybackMismatch = errors.New("gen: playback mismatch")

// Gen is the immutable result of one accepted playout: a script, the
// CallLog recorded while running it, and the value it produced.
type Gen[T any] struct {
	script   pickfunc.Script[T]
	log      pickfunc.CallLog
	value    T
	accessed bool
}

// New wraps an already-built (script, log, value) triple as a Gen. Used
// by whatever ran the playout (repeattest.generate) once it has an
// accepted result in hand.
func New[T any](script pickfunc.Script[T], log pickfunc.CallLog, value T) *Gen[T] {
	return &Gen[T]{script: script, log: log, value: value}
}

// Build reconstructs a Gen by replaying script against a literal reply
// sequence — the round-trip operation spec.md §4.5/§6 describes. It
// fails descriptively, citing the script's name and (for a pick that
// doesn't satisfy its request, or an exhausted sequence) the offending
// index, if replies don't match what the script actually asks for, or
// if extra replies are left unconsumed.
func Build[T any](script pickfunc.Script[T], replies []int) (*Gen[T], error) {
	src := newPlaybackSource(replies)
	f := pickfunc.New(src)

	val, err := script.Build(f)
	if err != nil {
		if src.err != nil {
			return nil, fmt.Errorf("gen: %s: pick %d: %w: %v", script.Name(), src.depth, ErrPlaybackMismatch, src.err)
		}
		return nil, err
	}
	if !src.pb.Done() {
		return nil, fmt.Errorf("gen: %s: %w: %d replies recorded but only %d consumed",
			script.Name(), ErrPlaybackMismatch, src.pb.Len(), src.pb.Pos())
	}
	return &Gen[T]{script: script, log: f.Log(), value: val}, nil
}

// MustBuild is Build, panicking on error. The panic message carries the
// same script-name-and-pick-index detail Build's error does.
func MustBuild[T any](script pickfunc.Script[T], replies []int) *Gen[T] {
	g, err := Build(script, replies)
	if err != nil {
		panic(err)
	}
	return g
}

// Script returns the script this value was built from.
func (g *Gen[T]) Script() pickfunc.Script[T] { return g.script }

// CallLog returns the recorded requests, replies and call-group spans.
func (g *Gen[T]) CallLog() pickfunc.CallLog { return g.log }

// Replies is the flat recorded reply trace, for feeding to Build again
// (round-trip tests) or to the shrinker as a seed trace to edit.
func (g *Gen[T]) Replies() []int {
	return append([]int(nil), g.log.Replies...)
}

// Val returns the generated value. A cachable script's value is handed
// back by reference every time (Design Notes §9: "mutable Gen value
// caching → explicit clone policy" — Cachable is that policy tag,
// standing in for "deeply frozen"). A non-cachable script's value is
// handed back once as-is; every subsequent call re-runs the script
// against a playback of the recorded replies, so each caller after the
// first gets its own fresh clone rather than a shared mutable value.
func (g *Gen[T]) Val() T {
	if g.script.Options().Cachable {
		return g.value
	}
	if !g.accessed {
		g.accessed = true
		return g.value
	}
	fresh, err := Build(g.script, g.log.Replies)
	if err != nil {
		panic(fmt.Sprintf("gen: %s: regenerating from recorded replies failed: %v", g.script.Name(), err))
	}
	tracer().Debugf("gen(%s): regenerated from %d recorded replies", g.script.Name(), len(g.log.Replies))
	return fresh.value
}

// Keys returns the stable call-group keys that have at least one pick,
// in trace order. A call-group with zero picks (an empty nested
// script) is omitted, per spec.md §4.5.
func (g *Gen[T]) Keys() []int {
	var keys []int
	for i, grp := range g.log.Groups {
		if grp.Len() > 0 {
			keys = append(keys, i)
		}
	}
	return keys
}

// GroupPicks returns the requests and replies spanned by the call-group
// identified by key (as returned by Keys).
func (g *Gen[T]) GroupPicks(key int) ([]pick.Request, []int) {
	grp := g.log.Groups[key]
	return g.log.Requests[grp.Start:grp.End], g.log.Replies[grp.Start:grp.End]
}
