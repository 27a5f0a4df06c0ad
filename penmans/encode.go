package penmans

import (
	"fmt"
	"strings"

	"github.com/reusee/amr/graphs"
)

// Encode renders a graph as single-line bracketed notation. When the graph
// carries epidata, Push markers decide where each variable is expanded;
// otherwise every variable is expanded at its first appearance as a target.
// Structurally empty graphs, an unknown top, and instance triples
// unreachable from the top are errors.
func Encode(g *graphs.Graph) (string, error) {
	if g.IsEmpty() {
		return "", &EncodeError{Msg: "cannot encode an empty graph"}
	}

	e := &encoder{
		graph:    g,
		concepts: make(map[string]string),
		edges:    make(map[string][]graphs.Triple),
		expanded: make(map[string]bool),
	}

	for _, t := range g.Triples {
		if t.IsInstance() {
			e.concepts[t.Source] = t.Target
		} else {
			e.edges[t.Source] = append(e.edges[t.Source], t)
		}
		for _, m := range g.Epidata[t] {
			if _, ok := m.(graphs.Push); ok {
				e.hasLayout = true
			}
		}
	}

	if _, ok := e.concepts[g.Top]; !ok {
		return "", &EncodeError{
			Msg: fmt.Sprintf("top %q is not a declared variable", g.Top),
		}
	}

	e.emitNode(g.Top)

	for _, t := range g.Triples {
		if t.IsInstance() && !e.expanded[t.Source] {
			return "", &EncodeError{
				Msg: fmt.Sprintf("variable %q is unreachable from the top", t.Source),
			}
		}
	}

	return e.sb.String(), nil
}

type encoder struct {
	graph     *graphs.Graph
	sb        strings.Builder
	concepts  map[string]string
	edges     map[string][]graphs.Triple
	expanded  map[string]bool
	hasLayout bool
}

// expands reports whether the value position of t opens a nested node.
func (e *encoder) expands(t graphs.Triple) bool {
	if _, ok := e.concepts[t.Target]; !ok {
		return false
	}
	if e.expanded[t.Target] {
		return false
	}
	if !e.hasLayout {
		return true
	}
	for _, m := range e.graph.Epidata[t] {
		if push, ok := m.(graphs.Push); ok && push.Variable == t.Target {
			return true
		}
	}
	return false
}

func (e *encoder) emitNode(variable string) {
	e.expanded[variable] = true
	e.sb.WriteString("(")
	e.sb.WriteString(variable)
	e.sb.WriteString(" / ")
	e.sb.WriteString(e.concepts[variable])
	for _, t := range e.edges[variable] {
		e.sb.WriteString(" ")
		e.sb.WriteString(t.Role)
		e.sb.WriteString(" ")
		if e.expands(t) {
			e.emitNode(t.Target)
		} else {
			e.sb.WriteString(t.Target)
		}
	}
	e.sb.WriteString(")")
}
