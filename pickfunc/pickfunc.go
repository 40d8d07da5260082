package pickfunc

import (
	"fmt"

	"github.com/skybrian/repeat-test-go/pick"
)

// Backtracker is the minimal capability PickFunc needs from a
// backtrack.Backtracker: take the next raw pick, and rewind to a
// previously reached depth to retry a nested call. Accepting the
// interface rather than the concrete type keeps this package testable
// without a real tree underneath.
type Backtracker interface {
	Depth() int
	NextPick(req pick.Request) (int, bool)
	EndPlayout(accepted bool) bool
	StartAt(depth int) bool
}

// PickFunc is the pick-callback handed to a Script's build function. It
// owns the CallLog being assembled for the current playout.
type PickFunc struct {
	backtracker Backtracker
	log         CallLog
	abandoned   bool // a refused pick already ended the backtracker's playout
}

// New wraps a Backtracker as a PickFunc, ready for one playout.
func New(b Backtracker) *PickFunc {
	return &PickFunc{backtracker: b}
}

// Log returns the CallLog assembled so far. Call after a playout
// completes (successfully or not) to inspect what was recorded.
func (f *PickFunc) Log() CallLog {
	return f.log
}

// PickInt is the raw entry point: requests one integer reply. If the
// limit configured on the underlying Backtracker has been reached, the
// request is silently replaced by its default before being asked —
// that narrowing happens inside Backtracker.NextPick, not here. A
// false second return from the tracker becomes a wrapped ErrFiltered.
func (f *PickFunc) PickInt(req pick.Request) (int, error) {
	reply, ok := f.backtracker.NextPick(req)
	if !ok {
		f.abandoned = true
		return 0, fmt.Errorf("pickfunc: pick(%s): %w", req, ErrFiltered)
	}
	f.log.push(req, reply)
	return reply, nil
}

// rewind abandons the in-flight sub-attempt and restarts from depth,
// reusing everything the tree already knows about the prefix up to
// there. It is how a nested script (or an accept filter) "tries
// again from the same depth" without disturbing picks made before it
// started, using Backtracker.EndPlayout/StartAt as the trim-and-restart
// primitive. EndPlayout is only legal while the playout is still live,
// so once a refused pick has ended the playout (PickInt saw ok=false)
// rewind does not restart and returns false.
func (f *PickFunc) rewind(depth int) bool {
	if f.abandoned {
		return false
	}
	f.backtracker.EndPlayout(false)
	return f.backtracker.StartAt(depth)
}

// runSegment runs fn as one call-group: picks made are appended to the
// log, and on success the group [start, end) is closed under name. On
// error (Filtered or otherwise) the group's partial picks are dropped
// from the log before the error is returned, so a caller that retries
// starts the group over cleanly.
func runSegment[T any](f *PickFunc, name string, cachable bool, fn func(f *PickFunc) (T, error)) (T, error) {
	start := f.log.Len()
	val, err := fn(f)
	if err != nil {
		var zero T
		f.log.truncate(start)
		return zero, err
	}
	f.log.closeGroup(name, start, cachable)
	return val, nil
}

// Option configures a single PickFrom call.
type Option[T any] func(*config[T])

type config[T any] struct {
	accept     func(T) bool
	retryLimit int
}

// DefaultRetryLimit is how many times an accept filter may reject a
// value before PickFrom gives up (spec §4.4: "default 1000").
const DefaultRetryLimit = 1000

// WithAccept filters PickFrom's result: values accept rejects are
// discarded and the script is retried from the same depth.
func WithAccept[T any](accept func(T) bool) Option[T] {
	return func(c *config[T]) { c.accept = accept }
}

// WithRetryLimit overrides DefaultRetryLimit for one PickFrom call.
func WithRetryLimit[T any](n int) Option[T] {
	return func(c *config[T]) { c.retryLimit = n }
}

// PickFrom evaluates a nested script, opening a call-group in f's
// CallLog for it. If the script signals Filtered, or an accept option
// rejects its value, PickFrom rewinds to where this call started and
// retries; an accept rejection that survives WithRetryLimit (default
// DefaultRetryLimit) attempts fails with ErrGiveUp naming the script.
// If recovery from Filtered itself fails — the tree has nothing left
// to try below this depth — the Filtered error propagates to the
// caller unchanged. A Filtered that comes from a pick the backtracker
// refused is not retried here: that refusal has already ended the
// playout, so the error propagates and the whole playout is restarted
// by whoever started it (Generate, Cursor.Next).
func PickFrom[T any](f *PickFunc, s Script[T], opts ...Option[T]) (T, error) {
	cfg := config[T]{retryLimit: DefaultRetryLimit}
	for _, o := range opts {
		o(&cfg)
	}
	startDepth := f.backtracker.Depth()
	startLen := f.log.Len()
	var zero T
	for attempt := 1; ; attempt++ {
		val, err := runSegment(f, s.name, s.opts.Cachable, s.build)
		if err != nil {
			if !IsFiltered(err) {
				return zero, err
			}
			if !f.rewind(startDepth) {
				return zero, err
			}
			tracer().Debugf("pickFrom(%s): retrying after filtered, attempt %d", s.name, attempt+1)
			continue
		}
		if cfg.accept != nil && !cfg.accept(val) {
			if attempt >= cfg.retryLimit {
				return zero, fmt.Errorf("pickfunc: %s: accept rejected %d attempts: %w", s.name, cfg.retryLimit, ErrGiveUp)
			}
			f.log.truncate(startLen)
			if !f.rewind(startDepth) {
				return zero, fmt.Errorf("pickfunc: %s: %w", s.name, ErrFiltered)
			}
			continue
		}
		return val, nil
	}
}
