package gen

import "github.com/skybrian/repeat-test-go/pick"

// playbackSource is a pickfunc.Backtracker over a fixed reply sequence:
// no tree, no tracker, no retries. Once it hands back a mismatch it
// stays failed — a Gen built from a literal trace is either right the
// first time or it's an error, never a search to retry.
type playbackSource struct {
	pb    *pick.Playback
	depth int
	err   error
}

func newPlaybackSource(replies []int) *playbackSource {
	return &playbackSource{pb: pick.NewPlayback(replies)}
}

func (s *playbackSource) Depth() int { return s.depth }

func (s *playbackSource) NextPick(req pick.Request) (int, bool) {
	reply, err := s.pb.Pick(req)
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return 0, false
	}
	s.depth++
	return reply, true
}

func (s *playbackSource) EndPlayout(accepted bool) bool { return accepted }

func (s *playbackSource) StartAt(depth int) bool { return false }
