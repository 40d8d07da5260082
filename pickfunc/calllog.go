package pickfunc

import "github.com/skybrian/repeat-test-go/pick"

// PickLog is the flat, parallel record of every raw pick taken during a
// playout: Replies[i] is the reply to Requests[i].
type PickLog struct {
	Requests []pick.Request
	Replies  []int
}

// Len is the number of picks recorded so far.
func (p PickLog) Len() int { return len(p.Requests) }

func (p *PickLog) push(req pick.Request, reply int) {
	p.Requests = append(p.Requests, req)
	p.Replies = append(p.Replies, reply)
}

func (p *PickLog) truncate(n int) {
	p.Requests = p.Requests[:n]
	p.Replies = p.Replies[:n]
}

// Group is a contiguous span [Start, End) of PickLog indices attributed
// to one nested Script call — the unit of shrinking edits.
type Group struct {
	Name     string
	Start    int
	End      int
	Cachable bool
}

// Len is the number of picks the group spans.
func (g Group) Len() int { return g.End - g.Start }

// CallLog records, for one completed playout, the flat PickLog plus the
// call-group spans nested Script calls carved out of it. Single picks
// made directly (not through a nested script) are whatever indices no
// Group covers — SinglePicks reports them.
type CallLog struct {
	PickLog
	Groups []Group
}

// SinglePicks returns the PickLog indices not claimed by any Group.
func (c *CallLog) SinglePicks() []int {
	covered := make([]bool, c.Len())
	for _, g := range c.Groups {
		for i := g.Start; i < g.End && i < len(covered); i++ {
			covered[i] = true
		}
	}
	var out []int
	for i, taken := range covered {
		if !taken {
			out = append(out, i)
		}
	}
	return out
}

func (c *CallLog) truncate(n int) {
	c.PickLog.truncate(n)
	for len(c.Groups) > 0 && c.Groups[len(c.Groups)-1].Start >= n {
		c.Groups = c.Groups[:len(c.Groups)-1]
	}
}

func (c *CallLog) closeGroup(name string, start int, cachable bool) {
	c.Groups = append(c.Groups, Group{Name: name, Start: start, End: c.Len(), Cachable: cachable})
}
