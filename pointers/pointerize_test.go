package pointers

import (
	"errors"
	"testing"
)

func TestPointerize(t *testing.T) {
	for _, c := range []struct {
		input string
		want  string
	}{
		{
			input: "(a / go-01 :ARG0 (p / person) :time (k / yesterday))",
			want:  "( <pointer:0> go-01 :ARG0 ( <pointer:1> person ) :time ( <pointer:2> yesterday ) )",
		},
		// backward reference reuses the pointer of the declaration
		{
			input: "(a / adore-01 :ARG0 (d / dog) :ARG1 d)",
			want:  "( <pointer:0> adore-01 :ARG0 ( <pointer:1> dog ) :ARG1 <pointer:1> )",
		},
		// forward reference allocates first, the declaration resolves it
		{
			input: "(a / see-01 :ARG0 b :ARG1 (b / boy))",
			want:  "( <pointer:0> see-01 :ARG0 <pointer:1> :ARG1 ( <pointer:1> boy ) )",
		},
		// constants pass through unchanged
		{
			input: "(t / temperature :quant -5.5 :unit (d / degree))",
			want:  "( <pointer:0> temperature :quant -5.5 :unit ( <pointer:1> degree ) )",
		},
		// literals are copied verbatim, escaped quotes included
		{
			input: `(n / name :op1 "A \"nested\" quote")`,
			want:  `( <pointer:0> name :op1 "A \"nested\" quote" )`,
		},
		// irregular whitespace collapses to the canonical spacing
		{
			input: "(a / go-01\n\t:ARG0   (p / person))",
			want:  "( <pointer:0> go-01 :ARG0 ( <pointer:1> person ) )",
		},
	} {
		got, err := Pointerize(c.input)
		if err != nil {
			t.Fatalf("%q: %v", c.input, err)
		}
		if got != c.want {
			t.Fatalf("got %q", got)
		}
	}
}

func TestPointerizeErrors(t *testing.T) {
	for _, c := range []struct {
		input string
		err   error
	}{
		{"(1 / x)", ErrUnexpectedBeginOfNodeName},
		{"(a? / x)", ErrUnexpectedCharOfNodeName},
		{"(abcd / x)", ErrUnexpectedNodeName},
		{"(a / x :ARG0 (a / y))", ErrDuplicateNodeName},
		{"(a x)", ErrExpectingSlash},
		{"(a / X)", ErrUnexpectedBeginOfConcept},
		{"(a / x? )", ErrUnexpectedCharOfConcept},
		{"(a / x y)", ErrExpectingRightOrRelation},
		{"(a / x :ARG0? b)", ErrUnexpectedCharOfRelation},
		{"(a / x :ARG0 ?)", ErrExpectingValue},
		{"(a / x :ARG0 b? )", ErrUnexpectedCharOfValue},
		{"(a / x) junk", ErrExpectingEnd},
		{"(a / go-01", ErrUnexpectedEndStatus},
		{"(a / x :ARG0 b)", ErrUnresolvedNodeNames},
	} {
		_, err := Pointerize(c.input)
		if !errors.Is(err, c.err) {
			t.Fatalf("%q: got %v", c.input, err)
		}
	}
}

func TestPointerizeDuplicateAfterResolution(t *testing.T) {
	// once a forward reference is resolved, another declaration is again an
	// error
	_, err := Pointerize("(a / x :ARG0 b :ARG1 (b / y) :ARG2 (b / z))")
	if !errors.Is(err, ErrDuplicateNodeName) {
		t.Fatalf("got %v", err)
	}
}
