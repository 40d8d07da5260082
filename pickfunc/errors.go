package pickfunc

import "errors"

// ErrFiltered is the recoverable control-flow signal meaning "this
// playout cannot produce a value here; try another." It travels as a
// normal wrapped error, not a panic (Design Notes §9: "exceptions for
// control flow → sum types") — callers distinguish it from a genuine
// build failure with IsFiltered. PickFrom recovers it by retrying a
// nested script, and repeattest.Generate and Cursor.Next recover it by
// restarting the playout; Generate returns it, wrapped, only once the
// search is exhausted.
var ErrFiltered = errors.New("pickfunc: filtered")

// ErrGiveUp means an accept filter rejected every attempt up to its
// retry cap.
var ErrGiveUp = errors.New("pickfunc: gave up")

// IsFiltered reports whether err is, or wraps, ErrFiltered.
func IsFiltered(err error) bool {
	return errors.Is(err, ErrFiltered)
}
