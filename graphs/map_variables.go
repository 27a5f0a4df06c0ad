package graphs

// MapVariables returns a new graph with every triple endpoint matching
// isVariable rewritten by rename, along with Top and every Push marker.
// All references to one original variable map to the same new token; a
// self-loop triple rewrites both endpoints. Metadata is carried through
// untouched.
func MapVariables(
	g *Graph,
	isVariable func(string) bool,
	rename func(string) string,
) *Graph {
	newTriples := make([]Triple, 0, len(g.Triples))
	newEpidata := make(map[Triple][]Marker, len(g.Epidata))

	for _, t := range g.Triples {
		markers := g.Epidata[t]

		if isVariable(t.Source) {
			t.Source = rename(t.Source)
		}
		if !t.IsInstance() && isVariable(t.Target) {
			t.Target = rename(t.Target)
		}
		newTriples = append(newTriples, t)

		var newMarkers []Marker
		for _, m := range markers {
			if push, ok := m.(Push); ok && isVariable(push.Variable) {
				newMarkers = append(newMarkers, Push{Variable: rename(push.Variable)})
			} else {
				newMarkers = append(newMarkers, m)
			}
		}
		newEpidata[t] = newMarkers
	}

	top := g.Top
	if isVariable(top) {
		top = rename(top)
	}

	return &Graph{
		Triples:  newTriples,
		Top:      top,
		Epidata:  newEpidata,
		Metadata: g.Metadata,
	}
}
