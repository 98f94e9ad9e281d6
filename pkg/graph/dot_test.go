package graph

import (
	"errors"
	"strings"
	"testing"
)

func TestWriteDOT(t *testing.T) {
	g := New()
	g.AddEdge(Edge{From: Root, To: "os"})
	g.AddEdge(Edge{From: "os", To: "sys"})

	var buf strings.Builder
	if err := WriteDOT(&buf, g, DOTOptions{}); err != nil {
		t.Fatalf("WriteDOT: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "digraph \"importgraph\" {\n") {
		t.Errorf("missing digraph declaration:\n%s", out)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("missing closing brace:\n%s", out)
	}
	for _, want := range []string{
		`"__root__" -> "os";`,
		`"os" -> "sys";`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteDOTEveryEdgeExactlyOnce(t *testing.T) {
	g := New()
	edges := []Edge{
		{From: Root, To: "a"},
		{From: "a", To: "b"},
		{From: "a", To: "c"},
		{From: "b", To: "c"},
	}
	for _, e := range edges {
		g.AddEdge(e)
	}

	out := ToDOT(g, DOTOptions{})
	for _, e := range edges {
		line := quote(e.From) + " -> " + quote(e.To) + ";"
		if got := strings.Count(out, line); got != 1 {
			t.Errorf("edge %v appears %d times, want 1", e, got)
		}
	}
	if got := strings.Count(out, "->"); got != len(edges) {
		t.Errorf("edge lines = %d, want %d", got, len(edges))
	}
}

func TestWriteDOTQuotesDottedNames(t *testing.T) {
	g := New()
	g.AddEdge(Edge{From: "a.b.c", To: "x.y"})

	out := ToDOT(g, DOTOptions{})
	if !strings.Contains(out, `"a.b.c" -> "x.y";`) {
		t.Errorf("dotted names must stay single quoted tokens:\n%s", out)
	}
}

func TestWriteDOTEscapesSpecialCharacters(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`has"quote`, `"has\"quote"`},
		{`back\slash`, `"back\\slash"`},
		{"plain", `"plain"`},
	}

	for _, tt := range tests {
		if got := quote(tt.input); got != tt.want {
			t.Errorf("quote(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestWriteDOTCustomName(t *testing.T) {
	g := New()
	out := ToDOT(g, DOTOptions{Name: "deps"})
	if !strings.HasPrefix(out, "digraph \"deps\" {") {
		t.Errorf("custom graph name not used:\n%s", out)
	}
}

// failWriter fails after n bytes have been accepted.
type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		return 0, errors.New("disk full")
	}
	w.n -= len(p)
	return len(p), nil
}

func TestWriteDOTPropagatesWriteFailure(t *testing.T) {
	g := New()
	g.AddEdge(Edge{From: Root, To: "os"})

	err := WriteDOT(&failWriter{}, g, DOTOptions{})
	if err == nil {
		t.Fatal("write failure must be reported, not ignored")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("underlying cause should be preserved, got %v", err)
	}
}
