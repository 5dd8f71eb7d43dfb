package year2021

import (
	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// Day1 counts how often the sea floor depth increases.
type Day1 struct {
	depths []int
}

func (d *Day1) Info() puzzle.Info {
	return puzzle.Info{Name: "Sonar Sweep", Year: 2021, Day: 1}
}

func (d *Day1) SetInput(lines []string) error {
	d.depths = nil
	depths, err := puzzle.Ints(lines)
	if err != nil {
		return err
	}
	d.depths = depths
	return nil
}

// PartOne counts measurements larger than the previous one.
func (d *Day1) PartOne() (int64, error) {
	if d.depths == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return increases(d.depths, 1), nil
}

// PartTwo counts increases of the three-measurement sliding window sum.
func (d *Day1) PartTwo() (int64, error) {
	if d.depths == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return increases(d.depths, 3), nil
}

// increases compares windows of the given width. Two adjacent windows share
// all but their end values, so only those need comparing.
func increases(depths []int, window int) int64 {
	var n int64
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			n++
		}
	}
	return n
}
