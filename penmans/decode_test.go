package penmans

import (
	"errors"
	"reflect"
	"testing"

	"github.com/reusee/amr/graphs"
)

func TestDecode(t *testing.T) {
	g, err := Decode("(a / go-01 :ARG0 (p / person) :time (k / yesterday))")
	if err != nil {
		t.Fatal(err)
	}
	if g.Top != "a" {
		t.Fatalf("got %q", g.Top)
	}

	want := []graphs.Triple{
		{Source: "a", Role: graphs.InstanceRole, Target: "go-01"},
		{Source: "a", Role: ":ARG0", Target: "p"},
		{Source: "p", Role: graphs.InstanceRole, Target: "person"},
		{Source: "a", Role: ":time", Target: "k"},
		{Source: "k", Role: graphs.InstanceRole, Target: "yesterday"},
	}
	if !reflect.DeepEqual(g.Triples, want) {
		t.Fatalf("got %v", g.Triples)
	}

	markers := g.Epidata[want[1]]
	if len(markers) != 1 {
		t.Fatalf("got %v", markers)
	}
	if push, ok := markers[0].(graphs.Push); !ok || push.Variable != "p" {
		t.Fatalf("got %v", markers[0])
	}
	// the last triple closes both the inner node and the whole graph
	if n := len(g.Epidata[want[4]]); n != 2 {
		t.Fatalf("got %d markers", n)
	}
}

func TestDecodeReentrancy(t *testing.T) {
	g, err := Decode("(a / adore-01 :ARG0 (d / dog) :ARG1 d)")
	if err != nil {
		t.Fatal(err)
	}
	last := g.Triples[len(g.Triples)-1]
	if last != (graphs.Triple{Source: "a", Role: ":ARG1", Target: "d"}) {
		t.Fatalf("got %v", last)
	}
	// a plain variable reference carries no Push
	if len(g.Epidata[last]) != 0 {
		t.Fatalf("got %v", g.Epidata[last])
	}
}

func TestDecodeLiteral(t *testing.T) {
	g, err := Decode(`(n / name :op1 "A \"nested\" quote")`)
	if err != nil {
		t.Fatal(err)
	}
	if g.Triples[1].Target != `"A \"nested\" quote"` {
		t.Fatalf("got %q", g.Triples[1].Target)
	}
}

func TestDecodeMultiLine(t *testing.T) {
	g, err := Decode(`(a / go-01
	:ARG0 (p / person)
	:time (k / yesterday))`)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Triples) != 5 {
		t.Fatalf("got %d triples", len(g.Triples))
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, src := range []string{
		"",
		"a / b",
		"(a / b",
		"(a b)",
		"(a / b) extra",
		"(a / b :ARG0)",
		"(a / x :ARG0 (a / y))",
		"(a / b :ARG0 (/ c))",
	} {
		if _, err := Decode(src); err == nil {
			t.Fatalf("expected error for %q", src)
		}
	}

	_, err := Decode("(a / x :ARG0 (a / y))")
	var synErr *SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("got %v", err)
	}
	if synErr.Expected != "an undeclared variable" {
		t.Fatalf("got %q", synErr.Expected)
	}
}
