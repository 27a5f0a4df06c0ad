package graphs

// InstanceRole binds a variable to its concept.
const InstanceRole = ":instance"

// Triple is one labeled edge. Source is always a variable. Role is either
// InstanceRole or a relation starting with ":". Target is a variable, a
// constant atom, or a quoted string literal kept verbatim with its quotes.
type Triple struct {
	Source string
	Role   string
	Target string
}

func (t Triple) IsInstance() bool {
	return t.Role == InstanceRole
}

// Graph is a rooted, labeled, directed graph. Triples carries the
// serialization order; Epidata carries per-triple layout markers; Metadata
// is opaque and passes through every transformation unchanged.
//
// A Graph is treated as immutable once built. Deriving a modified graph
// means building a new value from an edited triple slice and carrying over
// Top, Epidata and Metadata explicitly.
type Graph struct {
	Triples  []Triple
	Top      string
	Epidata  map[Triple][]Marker
	Metadata map[string]string
}

// New builds a graph over triples, rooting it at the first triple's source.
// Validation is advisory: an unresolvable Top or missing instances surface
// as errors in the encoder and parsers, not here.
func New(triples []Triple) *Graph {
	g := &Graph{
		Triples: triples,
		Epidata: make(map[Triple][]Marker),
	}
	if len(triples) > 0 {
		g.Top = triples[0].Source
	}
	return g
}

func (g *Graph) IsEmpty() bool {
	return g == nil || len(g.Triples) == 0
}

// Instances returns the instance triples in serialization order.
func (g *Graph) Instances() []Triple {
	var ret []Triple
	for _, t := range g.Triples {
		if t.IsInstance() {
			ret = append(ret, t)
		}
	}
	return ret
}

// Instance returns the instance triple declaring variable v, if any.
func (g *Graph) Instance(v string) (Triple, bool) {
	for _, t := range g.Triples {
		if t.IsInstance() && t.Source == v {
			return t, true
		}
	}
	return Triple{}, false
}

// Variables returns the set of variables declared by instance triples.
func (g *Graph) Variables() map[string]bool {
	vars := make(map[string]bool)
	for _, t := range g.Triples {
		if t.IsInstance() {
			vars[t.Source] = true
		}
	}
	return vars
}

// WithoutMetadata returns a copy of g sharing triples and epidata but
// carrying an empty metadata map.
func WithoutMetadata(g *Graph) *Graph {
	return &Graph{
		Triples:  g.Triples,
		Top:      g.Top,
		Epidata:  g.Epidata,
		Metadata: map[string]string{},
	}
}
