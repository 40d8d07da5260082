package shrink

import (
	"github.com/skybrian/repeat-test-go/gen"
)

// removeGroups is strategy 1: for each top-level call-group, try the
// candidate with that group's picks deleted entirely. The first
// candidate that regenerates and passes wins.
func removeGroups[T any](seed *gen.Gen[T], test func(T) bool, tries int) (*gen.Gen[T], bool) {
	log := seed.CallLog()
	groups := topLevelGroups(log.Groups)
	replies := seed.Replies()

	for i := range groups {
		if i >= tries {
			break
		}
		candidate := Editor{i: {Action: Snip}}.apply(replies, groups)
		if next, ok := tryCandidate(seed.Script(), candidate, test); ok {
			return next, true
		}
	}
	return nil, false
}

// shrinkTails is strategy 2: for each group, in reverse trace order,
// bisect the group's own length down to the shortest trailing
// truncation that still passes.
func shrinkTails[T any](seed *gen.Gen[T], test func(T) bool, tries int) (*gen.Gen[T], bool) {
	log := seed.CallLog()
	groups := topLevelGroups(log.Groups)
	replies := seed.Replies()

	used := 0
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		span := replies[g.Start:g.End]
		if len(span) == 0 {
			continue
		}
		var found *gen.Gen[T]
		bisectMinimal(0, len(span), func(k int) bool {
			if used >= tries {
				return true // stop probing; treat remaining as passing to unwind quickly
			}
			used++
			candidate := spliceReplies(replies, g.Start, g.End, span[:k])
			next, ok := tryCandidate(seed.Script(), candidate, test)
			if ok {
				found = next
			}
			return ok
		})
		if found != nil {
			return found, true
		}
	}
	return nil, false
}

// isBooleanLike reports whether a request looks like an on/off flag:
// exactly two possible replies.
func isBooleanLike(reqSize int) bool { return reqSize == 2 }

// shrinkOptions is strategy 3: a group whose first pick is a
// boolean-like request answered with the non-default reply is an
// "option". Try replacing the whole group with just that first pick
// forced to its default, i.e. removing the optional element.
func shrinkOptions[T any](seed *gen.Gen[T], test func(T) bool, tries int) (*gen.Gen[T], bool) {
	log := seed.CallLog()
	groups := topLevelGroups(log.Groups)
	replies := seed.Replies()

	tried := 0
	for i, g := range groups {
		if g.Len() == 0 {
			continue
		}
		req := log.Requests[g.Start]
		reply := replies[g.Start]
		if !isBooleanLike(req.Size()) || reply == req.Default() {
			continue
		}
		if tried >= tries {
			break
		}
		tried++
		candidate := Editor{i: {Action: Replace, Replies: []int{req.Default()}}}.apply(replies, groups)
		if next, ok := tryCandidate(seed.Script(), candidate, test); ok {
			return next, true
		}
	}
	return nil, false
}

// shrinkAllPicks is strategy 4: for each individual pick in trace
// order, bisect its reply down toward its request's minimum.
func shrinkAllPicks[T any](seed *gen.Gen[T], test func(T) bool, tries int) (*gen.Gen[T], bool) {
	log := seed.CallLog()
	replies := seed.Replies()

	used := 0
	for i := range replies {
		req := log.Requests[i]
		if replies[i] == req.Min() {
			continue
		}
		var found *gen.Gen[T]
		bisectMinimal(req.Min(), replies[i], func(v int) bool {
			if used >= tries {
				return true
			}
			used++
			candidate := spliceReplies(replies, i, i+1, []int{v})
			next, ok := tryCandidate(seed.Script(), candidate, test)
			if ok {
				found = next
			}
			return ok
		})
		if found != nil {
			return found, true
		}
	}
	return nil, false
}

// PickToward is strategy 5: bisect a single pick at index i between its
// current reply and target (which need not be the request's minimum),
// returning the smallest-distance-from-target candidate that still
// passes, or seed unchanged if none does.
func PickToward[T any](seed *gen.Gen[T], test func(T) bool, index, target int) (*gen.Gen[T], bool) {
	replies := seed.Replies()
	if index < 0 || index >= len(replies) || replies[index] == target {
		return seed, false
	}
	log := seed.CallLog()
	_ = log
	var found *gen.Gen[T]
	try := func(v int) bool {
		candidate := spliceReplies(replies, index, index+1, []int{v})
		next, ok := tryCandidate(seed.Script(), candidate, test)
		if ok {
			found = next
		}
		return ok
	}
	if target < replies[index] {
		bisectMinimal(target, replies[index], try)
	} else {
		bisectMinimal(-target, -replies[index], func(n int) bool { return try(-n) })
	}
	if found != nil {
		return found, true
	}
	return seed, false
}
