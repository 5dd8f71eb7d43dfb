package year2021

import (
	"math"
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// Day14 grows a polymer by pair insertion.
type Day14 struct {
	template string
	rules    map[[2]byte]byte
}

func (d *Day14) Info() puzzle.Info {
	return puzzle.Info{Name: "Extended Polymerization", Year: 2021, Day: 14}
}

func (d *Day14) SetInput(lines []string) error {
	d.template, d.rules = "", nil
	blocks := puzzle.Blocks(lines)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return errors.New(errors.ErrCodeInvalidInput, "want a template line, a blank line and insertion rules")
	}
	template := strings.TrimSpace(blocks[0][0])
	if len(template) < 2 {
		return errors.New(errors.ErrCodeInvalidInput, "template %q is too short", template)
	}
	rules := make(map[[2]byte]byte, len(blocks[1]))
	for i, l := range blocks[1] {
		pair, insert, ok := strings.Cut(strings.TrimSpace(l), " -> ")
		if !ok || len(pair) != 2 || len(insert) != 1 {
			return errors.New(errors.ErrCodeInvalidInput, "rule %d: %q is not AB -> C", i+1, l)
		}
		rules[[2]byte{pair[0], pair[1]}] = insert[0]
	}
	d.template, d.rules = template, rules
	return nil
}

// PartOne returns most common minus least common element after 10 steps.
func (d *Day14) PartOne() (int64, error) {
	if d.rules == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return d.grow(10), nil
}

// PartTwo does the same after 40 steps.
func (d *Day14) PartTwo() (int64, error) {
	if d.rules == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return d.grow(40), nil
}

// grow tracks pair counts instead of the polymer itself; an inserted element
// turns pair AB into AC and CB.
func (d *Day14) grow(steps int) int64 {
	pairs := make(map[[2]byte]int64)
	for i := 0; i+1 < len(d.template); i++ {
		pairs[[2]byte{d.template[i], d.template[i+1]}]++
	}
	for range steps {
		next := make(map[[2]byte]int64, len(pairs))
		for p, n := range pairs {
			c, ok := d.rules[p]
			if !ok {
				next[p] += n
				continue
			}
			next[[2]byte{p[0], c}] += n
			next[[2]byte{c, p[1]}] += n
		}
		pairs = next
	}

	// Every element is the first of exactly one pair, except the last one of
	// the template, which never changes.
	counts := map[byte]int64{d.template[len(d.template)-1]: 1}
	for p, n := range pairs {
		counts[p[0]] += n
	}
	lo, hi := int64(math.MaxInt64), int64(0)
	for _, n := range counts {
		lo, hi = min(lo, n), max(hi, n)
	}
	return hi - lo
}
