package graphs

import "testing"

func TestNodeCount(t *testing.T) {
	g := New([]Triple{
		{"a", InstanceRole, "go-01"},
		{"a", ":ARG0", "p"},
		{"p", InstanceRole, "person"},
		{"a", ":time", "k"},
		{"k", InstanceRole, "yesterday"},
	})
	if n := NodeCount(g); n != 3 {
		t.Fatalf("got %d", n)
	}

	leaf := New([]Triple{
		{"a", InstanceRole, "go-01"},
	})
	if n := NodeCount(leaf); n != 1 {
		t.Fatalf("got %d", n)
	}
}
