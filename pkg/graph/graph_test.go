package graph

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func buildSample(directed bool) *Graph {
	g := New(directed)
	for _, id := range []string{"start", "A", "b", "end"} {
		g.EnsureNode(id)
	}
	g.AddEdge(Edge{From: "start", To: "A"})
	g.AddEdge(Edge{From: "A", To: "b", Weight: 3})
	g.AddEdge(Edge{From: "b", To: "end"})
	return g
}

func TestAddNode(t *testing.T) {
	g := New(true)
	tests := []struct {
		name string
		node Node
		want error
	}{
		{"ok", Node{ID: "a"}, nil},
		{"empty", Node{}, ErrInvalidNodeID},
		{"duplicate", Node{ID: "a"}, ErrDuplicateNodeID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.AddNode(tt.node); !errors.Is(err, tt.want) {
				t.Errorf("AddNode() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAddEdgeUnknown(t *testing.T) {
	g := New(true)
	g.EnsureNode("a")
	if err := g.AddEdge(Edge{From: "x", To: "a"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("AddEdge(x→a) = %v, want %v", err, ErrUnknownSourceNode)
	}
	if err := g.AddEdge(Edge{From: "a", To: "x"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("AddEdge(a→x) = %v, want %v", err, ErrUnknownTargetNode)
	}
}

func TestNeighbors(t *testing.T) {
	directed := buildSample(true)
	if diff := cmp.Diff([]string{"b"}, directed.Neighbors("A")); diff != "" {
		t.Errorf("directed Neighbors(A) mismatch (-want +got):\n%s", diff)
	}

	undirected := buildSample(false)
	if diff := cmp.Diff([]string{"start", "b"}, undirected.Neighbors("A")); diff != "" {
		t.Errorf("undirected Neighbors(A) mismatch (-want +got):\n%s", diff)
	}
	if got := undirected.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount() = %d, want 3", got)
	}
}

func TestNodesSorted(t *testing.T) {
	g := buildSample(true)
	var ids []string
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	if diff := cmp.Diff([]string{"A", "b", "end", "start"}, ids); diff != "" {
		t.Errorf("Nodes() order mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g := buildSample(false)
	g.AddNode(Node{ID: "lonely", Label: "Lonely node"})

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}

	if back.Directed() {
		t.Error("Directed() = true after round trip")
	}
	if diff := cmp.Diff(g.Nodes(), back.Nodes()); diff != "" {
		t.Errorf("nodes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(g.Edges(), back.Edges()); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeJSON(t *testing.T) {
	data, err := EncodeJSON(buildSample(true))
	if err != nil {
		t.Fatalf("EncodeJSON() error: %v", err)
	}
	back, err := ReadJSON(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if !back.Directed() || back.NodeCount() != 4 || back.EdgeCount() != 3 {
		t.Errorf("decoded directed=%v nodes=%d edges=%d, want true 4 3", back.Directed(), back.NodeCount(), back.EdgeCount())
	}
}

func TestReadJSONRejectsDanglingEdge(t *testing.T) {
	in := `{"directed":true,"nodes":[{"id":"a"}],"edges":[{"from":"a","to":"b"}]}`
	if _, err := ReadJSON(strings.NewReader(in)); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("ReadJSON() = %v, want %v", err, ErrUnknownTargetNode)
	}
}

func TestToDOT(t *testing.T) {
	tests := []struct {
		name     string
		directed bool
		opts     Options
		contains []string
		absent   []string
	}{
		{
			name:     "directed",
			directed: true,
			contains: []string{"digraph G {", `"start" -> "A";`, `"A" -> "b";`},
			absent:   []string{"--", "label=\"3\""},
		},
		{
			name:     "undirected with weights",
			opts:     Options{Title: "caves", Weights: true},
			contains: []string{"graph G {", `"start" -- "A";`, `"A" -- "b" [label="3"];`, `label="caves";`},
			absent:   []string{"->", "digraph"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dot := ToDOT(buildSample(tt.directed), tt.opts)
			for _, s := range tt.contains {
				if !strings.Contains(dot, s) {
					t.Errorf("DOT missing %q:\n%s", s, dot)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(dot, s) {
					t.Errorf("DOT unexpectedly contains %q:\n%s", s, dot)
				}
			}
		})
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 62.00 116.00" width="62" height="116"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); !bytes.Equal(got, plain) {
		t.Errorf("normalizeViewBox() changed svg without viewBox: %s", got)
	}
}
