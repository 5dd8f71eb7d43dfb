package year2020

import (
	"math/bits"
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// group holds one bitmask of answered questions per person, bit 0 for 'a'.
type group []uint32

// Day6 tallies the customs declaration answers of each group.
type Day6 struct {
	groups []group
}

func (d *Day6) Info() puzzle.Info {
	return puzzle.Info{Name: "Custom Customs", Year: 2020, Day: 6}
}

func (d *Day6) SetInput(lines []string) error {
	d.groups = nil
	blocks := puzzle.Blocks(lines)
	if len(blocks) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no groups in input")
	}
	groups := make([]group, 0, len(blocks))
	for _, block := range blocks {
		g := make(group, 0, len(block))
		for _, person := range block {
			var mask uint32
			for _, c := range strings.TrimSpace(person) {
				if c < 'a' || c > 'z' {
					return errors.New(errors.ErrCodeInvalidInput, "answer %q is not a question letter", c)
				}
				mask |= 1 << (c - 'a')
			}
			g = append(g, mask)
		}
		groups = append(groups, g)
	}
	d.groups = groups
	return nil
}

// PartOne sums, per group, the questions anyone answered.
func (d *Day6) PartOne() (int64, error) {
	if d.groups == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	var sum int64
	for _, g := range d.groups {
		var anyone uint32
		for _, m := range g {
			anyone |= m
		}
		sum += int64(bits.OnesCount32(anyone))
	}
	return sum, nil
}

// PartTwo sums, per group, the questions everyone answered.
func (d *Day6) PartTwo() (int64, error) {
	if d.groups == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	var sum int64
	for _, g := range d.groups {
		everyone := ^uint32(0)
		for _, m := range g {
			everyone &= m
		}
		sum += int64(bits.OnesCount32(everyone))
	}
	return sum, nil
}
