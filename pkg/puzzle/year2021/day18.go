package year2021

import (
	"strconv"
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// snail is a snailfish number: either a regular number (left and right nil)
// or a pair.
type snail struct {
	value       int
	left, right *snail
	parent      *snail
}

func (s *snail) regular() bool { return s.left == nil }

func (s *snail) clone(parent *snail) *snail {
	c := &snail{value: s.value, parent: parent}
	if !s.regular() {
		c.left = s.left.clone(c)
		c.right = s.right.clone(c)
	}
	return c
}

func (s *snail) String() string {
	if s.regular() {
		return strconv.Itoa(s.value)
	}
	return "[" + s.left.String() + "," + s.right.String() + "]"
}

func (s *snail) magnitude() int64 {
	if s.regular() {
		return int64(s.value)
	}
	return 3*s.left.magnitude() + 2*s.right.magnitude()
}

// parseSnail reads a number like [[1,2],3].
func parseSnail(s string) (*snail, error) {
	p := &snailParser{src: s}
	n, err := p.parse(nil)
	if err != nil {
		return nil, err
	}
	if p.pos != len(s) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "trailing %q after snailfish number", s[p.pos:])
	}
	if n.regular() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%q is not a pair", s)
	}
	return n, nil
}

type snailParser struct {
	src string
	pos int
}

func (p *snailParser) expect(c byte) error {
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return errors.New(errors.ErrCodeInvalidInput, "expected %q at %d in %q", c, p.pos, p.src)
	}
	p.pos++
	return nil
}

func (p *snailParser) parse(parent *snail) (*snail, error) {
	if p.pos < len(p.src) && p.src[p.pos] == '[' {
		p.pos++
		n := &snail{parent: parent}
		var err error
		if n.left, err = p.parse(n); err != nil {
			return nil, err
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
		if n.right, err = p.parse(n); err != nil {
			return nil, err
		}
		if err := p.expect(']'); err != nil {
			return nil, err
		}
		return n, nil
	}
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return nil, errors.New(errors.ErrCodeInvalidInput, "expected a number at %d in %q", start, p.src)
	}
	v, _ := strconv.Atoi(p.src[start:p.pos])
	return &snail{value: v, parent: parent}, nil
}

// addSnail returns the reduced sum of a and b. Neither input is modified.
func addSnail(a, b *snail) *snail {
	sum := &snail{}
	sum.left = a.clone(sum)
	sum.right = b.clone(sum)
	for sum.explode() || sum.split() {
	}
	return sum
}

// leaves returns the regular numbers left to right, with their depth.
func (s *snail) leaves() (nodes []*snail, depths []int) {
	var walk func(n *snail, depth int)
	walk = func(n *snail, depth int) {
		if n.regular() {
			nodes = append(nodes, n)
			depths = append(depths, depth)
			return
		}
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(s, 0)
	return nodes, depths
}

// explode finds the leftmost pair nested inside four pairs, adds its values
// to the nearest regular numbers on either side, and replaces it with 0.
func (s *snail) explode() bool {
	leaves, depths := s.leaves()
	for i, leaf := range leaves {
		pair := leaf.parent
		if depths[i] <= 4 || pair.left != leaf || !pair.right.regular() {
			continue
		}
		if i > 0 {
			leaves[i-1].value += pair.left.value
		}
		if i+2 < len(leaves) {
			leaves[i+2].value += pair.right.value
		}
		pair.left, pair.right, pair.value = nil, nil, 0
		return true
	}
	return false
}

// split replaces the leftmost regular number of 10 or more with a pair of
// its halves, rounding the left down and the right up.
func (s *snail) split() bool {
	leaves, _ := s.leaves()
	for _, leaf := range leaves {
		if leaf.value < 10 {
			continue
		}
		leaf.left = &snail{value: leaf.value / 2, parent: leaf}
		leaf.right = &snail{value: (leaf.value + 1) / 2, parent: leaf}
		leaf.value = 0
		return true
	}
	return false
}

// Day18 does snailfish homework.
type Day18 struct {
	numbers []*snail
}

func (d *Day18) Info() puzzle.Info {
	return puzzle.Info{Name: "Snailfish", Year: 2021, Day: 18}
}

func (d *Day18) SetInput(lines []string) error {
	d.numbers = nil
	var numbers []*snail
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		n, err := parseSnail(l)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", i+1)
		}
		numbers = append(numbers, n)
	}
	if len(numbers) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no snailfish numbers in input")
	}
	d.numbers = numbers
	return nil
}

// PartOne returns the magnitude of the sum of all numbers in order.
func (d *Day18) PartOne() (int64, error) {
	if d.numbers == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	sum := d.numbers[0]
	for _, n := range d.numbers[1:] {
		sum = addSnail(sum, n)
	}
	return sum.magnitude(), nil
}

// PartTwo returns the largest magnitude of any sum of two different numbers.
// Addition is not commutative, so both orders are tried.
func (d *Day18) PartTwo() (int64, error) {
	if d.numbers == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	if len(d.numbers) < 2 {
		return 0, errors.New(errors.ErrCodeNoSolution, "need at least two numbers")
	}
	var best int64
	for i, a := range d.numbers {
		for j, b := range d.numbers {
			if i != j {
				best = max(best, addSnail(a, b).magnitude())
			}
		}
	}
	return best, nil
}
