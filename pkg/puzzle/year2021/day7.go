package year2021

import (
	"math"
	"slices"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/geom"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// Day7 aligns crab submarines with the least fuel.
type Day7 struct {
	crabs []int
}

func (d *Day7) Info() puzzle.Info {
	return puzzle.Info{Name: "The Treachery of Whales", Year: 2021, Day: 7}
}

func (d *Day7) SetInput(lines []string) error {
	d.crabs = nil
	line, err := puzzle.FirstLine(lines)
	if err != nil {
		return err
	}
	crabs, err := puzzle.CSVInts(line)
	if err != nil {
		return err
	}
	d.crabs = crabs
	return nil
}

// PartOne uses a constant fuel cost per step.
func (d *Day7) PartOne() (int64, error) {
	if d.crabs == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return d.cheapest(func(n int64) int64 { return n }), nil
}

// PartTwo charges one more unit of fuel for every further step.
func (d *Day7) PartTwo() (int64, error) {
	if d.crabs == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return d.cheapest(func(n int64) int64 { return n * (n + 1) / 2 }), nil
}

func (d *Day7) cheapest(cost func(steps int64) int64) int64 {
	lo, hi := slices.Min(d.crabs), slices.Max(d.crabs)
	best := int64(math.MaxInt64)
	for target := lo; target <= hi; target++ {
		var fuel int64
		for _, c := range d.crabs {
			fuel += cost(int64(geom.Abs(c - target)))
		}
		best = min(best, fuel)
	}
	return best
}
