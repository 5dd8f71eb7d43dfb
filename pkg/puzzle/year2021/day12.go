package year2021

import (
	"strings"
	"unicode"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/graph"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

const (
	caveStart = "start"
	caveEnd   = "end"
)

// Day12 counts the paths through a cave system.
type Day12 struct {
	caves *graph.Graph
}

func (d *Day12) Info() puzzle.Info {
	return puzzle.Info{Name: "Passage Pathing", Year: 2021, Day: 12}
}

func (d *Day12) SetInput(lines []string) error {
	d.caves = nil
	g := graph.New(false)
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		a, b, ok := strings.Cut(l, "-")
		if !ok || !caveName(a) || !caveName(b) || a == b {
			return errors.New(errors.ErrCodeInvalidInput, "line %d: %q is not a passage", i+1, l)
		}
		if big(a) && big(b) {
			return errors.New(errors.ErrCodeInvalidInput, "line %d: two big caves %q would loop forever", i+1, l)
		}
		g.EnsureNode(a)
		g.EnsureNode(b)
		if err := g.AddEdge(graph.Edge{From: a, To: b}); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", i+1)
		}
	}
	if _, ok := g.Node(caveStart); !ok {
		return errors.New(errors.ErrCodeInvalidInput, "no %s cave", caveStart)
	}
	if _, ok := g.Node(caveEnd); !ok {
		return errors.New(errors.ErrCodeInvalidInput, "no %s cave", caveEnd)
	}
	d.caves = g
	return nil
}

func caveName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func big(cave string) bool { return unicode.IsUpper(rune(cave[0])) }

// PartOne counts paths visiting each small cave at most once.
func (d *Day12) PartOne() (int64, error) {
	if d.caves == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return d.paths(caveStart, map[string]bool{caveStart: true}, false), nil
}

// PartTwo allows a single small cave other than start and end to be visited twice.
func (d *Day12) PartTwo() (int64, error) {
	if d.caves == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return d.paths(caveStart, map[string]bool{caveStart: true}, true), nil
}

// paths is a depth-first search over the caves. visited holds the small caves
// on the current path; spare reports whether a repeat visit is still allowed.
func (d *Day12) paths(cave string, visited map[string]bool, spare bool) int64 {
	if cave == caveEnd {
		return 1
	}
	var n int64
	for _, next := range d.caves.Neighbors(cave) {
		switch {
		case next == caveStart:
		case big(next):
			n += d.paths(next, visited, spare)
		case !visited[next]:
			visited[next] = true
			n += d.paths(next, visited, spare)
			delete(visited, next)
		case spare && next != caveEnd:
			n += d.paths(next, visited, false)
		}
	}
	return n
}

// Graph returns the cave system.
func (d *Day12) Graph() (*graph.Graph, error) {
	if d.caves == nil {
		return nil, errors.NotReady(d.Info().String())
	}
	g := graph.New(false)
	for _, n := range d.caves.Nodes() {
		g.EnsureNode(n.ID)
	}
	for _, e := range d.caves.Edges() {
		if err := g.AddEdge(e); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "cave graph")
		}
	}
	return g, nil
}
