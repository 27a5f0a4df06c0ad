package pointers

import "github.com/reusee/amr/graphs"

// Status tells whether the lenient decoder produced a genuine graph or
// substituted the backoff graph. It is the decoder's only error channel.
type Status uint8

const (
	StatusOK Status = iota
	StatusBackoff
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusBackoff:
		return "BACKOFF"
	}
	return "unknown"
}

// Backoff returns a fresh copy of the fixed one-node placeholder graph
// substituted when decoding fails.
func Backoff() *graphs.Graph {
	return graphs.New([]graphs.Triple{
		{Source: "x1", Role: graphs.InstanceRole, Target: "string-entity"},
	})
}
