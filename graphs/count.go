package graphs

// NodeCount counts the distinct nodes of g: the top plus every endpoint of
// a non-instance triple.
func NodeCount(g *Graph) int {
	nodes := map[string]bool{}
	if g.Top != "" {
		nodes[g.Top] = true
	}
	for _, t := range g.Triples {
		if t.IsInstance() {
			continue
		}
		nodes[t.Source] = true
		nodes[t.Target] = true
	}
	return len(nodes)
}
