package year2020

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/graph"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

const myBag = "shiny gold"

var (
	bagRuleRe    = regexp.MustCompile(`^(.+?) bags contain (.+)\.$`)
	bagContentRe = regexp.MustCompile(`^(\d+) (.+?) bags?$`)
)

type bagContent struct {
	colour string
	count  int
}

// Day7 walks the bag containment rules.
type Day7 struct {
	rules map[string][]bagContent
	order []string // colours in input order
}

func (d *Day7) Info() puzzle.Info {
	return puzzle.Info{Name: "Handy Haversacks", Year: 2020, Day: 7}
}

func (d *Day7) SetInput(lines []string) error {
	d.rules, d.order = nil, nil
	rules := make(map[string][]bagContent)
	var order []string
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		m := bagRuleRe.FindStringSubmatch(l)
		if m == nil {
			return errors.New(errors.ErrCodeInvalidInput, "line %d: %q is not a bag rule", i+1, l)
		}
		colour := m[1]
		if _, dup := rules[colour]; dup {
			return errors.New(errors.ErrCodeInvalidInput, "line %d: second rule for %q", i+1, colour)
		}
		contents := []bagContent{}
		if m[2] != "no other bags" {
			for _, part := range strings.Split(m[2], ", ") {
				cm := bagContentRe.FindStringSubmatch(part)
				if cm == nil {
					return errors.New(errors.ErrCodeInvalidInput, "line %d: %q is not a bag count", i+1, part)
				}
				n, _ := strconv.Atoi(cm[1])
				contents = append(contents, bagContent{colour: cm[2], count: n})
			}
		}
		rules[colour] = contents
		order = append(order, colour)
	}
	if len(rules) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no bag rules in input")
	}
	d.rules, d.order = rules, order
	return nil
}

// PartOne counts the colours that can eventually hold a shiny gold bag.
func (d *Day7) PartOne() (int64, error) {
	if d.rules == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	if _, ok := d.rules[myBag]; !ok {
		return 0, errors.New(errors.ErrCodeNoSolution, "no rule for %s bags", myBag)
	}
	parents := make(map[string][]string)
	for outer, contents := range d.rules {
		for _, c := range contents {
			parents[c.colour] = append(parents[c.colour], outer)
		}
	}

	seen := map[string]bool{}
	queue := []string{myBag}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range parents[cur] {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}
	delete(seen, myBag)
	return int64(len(seen)), nil
}

// PartTwo counts the bags required inside a single shiny gold bag.
func (d *Day7) PartTwo() (int64, error) {
	if d.rules == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	if _, ok := d.rules[myBag]; !ok {
		return 0, errors.New(errors.ErrCodeNoSolution, "no rule for %s bags", myBag)
	}
	memo := make(map[string]int64)
	visiting := make(map[string]bool)
	var inside func(colour string) (int64, error)
	inside = func(colour string) (int64, error) {
		if n, ok := memo[colour]; ok {
			return n, nil
		}
		if visiting[colour] {
			return 0, errors.New(errors.ErrCodeNoSolution, "%s bags contain themselves", colour)
		}
		visiting[colour] = true
		defer delete(visiting, colour)

		var total int64
		for _, c := range d.rules[colour] {
			n, err := inside(c.colour)
			if err != nil {
				return 0, err
			}
			total += int64(c.count) * (1 + n)
		}
		memo[colour] = total
		return total, nil
	}
	return inside(myBag)
}

// Graph returns the containment rules as a directed graph from outer bag to
// inner bag, weighted by count.
func (d *Day7) Graph() (*graph.Graph, error) {
	if d.rules == nil {
		return nil, errors.NotReady(d.Info().String())
	}
	g := graph.New(true)
	for _, outer := range d.order {
		g.EnsureNode(outer)
		for _, c := range d.rules[outer] {
			g.EnsureNode(c.colour)
		}
	}
	for _, outer := range d.order {
		for _, c := range d.rules[outer] {
			if err := g.AddEdge(graph.Edge{From: outer, To: c.colour, Weight: c.count}); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "bag graph")
			}
		}
	}
	return g, nil
}
