package graphs

import "testing"

func TestMapVariables(t *testing.T) {
	edge := Triple{"a", ":ARG0", "b"}
	g := New([]Triple{
		{"a", InstanceRole, "go-01"},
		edge,
		{"b", InstanceRole, "person"},
		{"b", ":mod", "b"},
	})
	g.Epidata[edge] = []Marker{Push{Variable: "b"}}
	g.Metadata = map[string]string{"id": "42"}

	pointers := map[string]string{
		"a": "<pointer:0>",
		"b": "<pointer:1>",
	}
	mapped := MapVariables(g,
		func(v string) bool {
			_, ok := pointers[v]
			return ok
		},
		func(v string) string {
			return pointers[v]
		},
	)

	if mapped.Top != "<pointer:0>" {
		t.Fatalf("got %q", mapped.Top)
	}

	// concepts are not variables, even when targets elsewhere are
	if mapped.Triples[0] != (Triple{"<pointer:0>", InstanceRole, "go-01"}) {
		t.Fatalf("got %v", mapped.Triples[0])
	}

	// self-loop rewrites both endpoints
	if mapped.Triples[3] != (Triple{"<pointer:1>", ":mod", "<pointer:1>"}) {
		t.Fatalf("got %v", mapped.Triples[3])
	}

	newEdge := Triple{"<pointer:0>", ":ARG0", "<pointer:1>"}
	markers := mapped.Epidata[newEdge]
	if len(markers) != 1 {
		t.Fatalf("got %v", markers)
	}
	if push, ok := markers[0].(Push); !ok || push.Variable != "<pointer:1>" {
		t.Fatalf("got %v", markers[0])
	}

	if mapped.Metadata["id"] != "42" {
		t.Fatal()
	}

	// the input graph is untouched
	if g.Top != "a" {
		t.Fatalf("got %q", g.Top)
	}
	if g.Triples[1] != edge {
		t.Fatalf("got %v", g.Triples[1])
	}
}
