package shrink

import (
	"sort"

	"github.com/skybrian/repeat-test-go/pickfunc"
)

// Action is what an Editor decides to do with one call-group's picks.
type Action int

const (
	// Keep leaves the group's recorded picks untouched.
	Keep Action = iota
	// Replace substitutes the group's picks with a literal sequence.
	Replace
	// Snip removes the group entirely.
	Snip
)

// Edit is one call-group's instruction from an Editor.
type Edit struct {
	Action  Action
	Replies []int // used only when Action == Replace
}

// Editor maps a call-group's index (in the order topLevelGroups
// returns them) to the Edit it should receive. Groups absent from the
// map default to Keep.
type Editor map[int]Edit

// topLevelGroups returns the call-groups that aren't nested inside a
// larger one, sorted by trace position. Composition (pickfunc.Then)
// produces an outer group spanning its segments' inner groups; for
// shrinking purposes the outer group is the editable unit — segment-
// level editing of a Then pipeline is not attempted.
func topLevelGroups(groups []pickfunc.Group) []pickfunc.Group {
	var top []pickfunc.Group
outer:
	for i, g := range groups {
		for j, other := range groups {
			if i == j {
				continue
			}
			contained := other.Start <= g.Start && g.End <= other.End
			strictly := other.Start < g.Start || g.End < other.End
			if contained && strictly {
				continue outer
			}
		}
		top = append(top, g)
	}
	sort.Slice(top, func(i, j int) bool { return top[i].Start < top[j].Start })
	return top
}

// apply builds a candidate flat reply trace by walking replies and the
// top-level groups together in order, applying ed's decision to each
// group and passing through any picks that fall in the gaps between
// groups (the "single picks" spec.md §3 describes) unchanged.
func (ed Editor) apply(replies []int, groups []pickfunc.Group) []int {
	out := make([]int, 0, len(replies))
	pos := 0
	for i, g := range groups {
		out = append(out, replies[pos:g.Start]...)
		switch e := ed[i]; e.Action {
		case Snip:
			// contribute nothing
		case Replace:
			out = append(out, e.Replies...)
		default:
			out = append(out, replies[g.Start:g.End]...)
		}
		pos = g.End
	}
	out = append(out, replies[pos:]...)
	return out
}

// spliceReplies returns a copy of original with [start, end) replaced
// by replacement — the finer-grained edit primitive strategies that
// operate below group granularity (tail truncation, single-pick
// bisection) use directly.
func spliceReplies(original []int, start, end int, replacement []int) []int {
	out := make([]int, 0, len(original)-(end-start)+len(replacement))
	out = append(out, original[:start]...)
	out = append(out, replacement...)
	out = append(out, original[end:]...)
	return out
}
