package year2020

import (
	"slices"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

const reportTarget = 2020

// Day1 finds the expense report entries that sum to 2020.
type Day1 struct {
	entries []int
}

func (d *Day1) Info() puzzle.Info {
	return puzzle.Info{Name: "Report Repair", Year: 2020, Day: 1}
}

func (d *Day1) SetInput(lines []string) error {
	d.entries = nil
	entries, err := puzzle.Ints(lines)
	if err != nil {
		return err
	}
	slices.Sort(entries)
	d.entries = entries
	return nil
}

// PartOne returns the product of the two entries summing to 2020.
func (d *Day1) PartOne() (int64, error) {
	if d.entries == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	if a, b, ok := pairSum(d.entries, 0, reportTarget); ok {
		return int64(a) * int64(b), nil
	}
	return 0, errors.New(errors.ErrCodeNoSolution, "no two entries sum to %d", reportTarget)
}

// PartTwo returns the product of the three entries summing to 2020.
func (d *Day1) PartTwo() (int64, error) {
	if d.entries == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	for i, a := range d.entries {
		if b, c, ok := pairSum(d.entries, i+1, reportTarget-a); ok {
			return int64(a) * int64(b) * int64(c), nil
		}
	}
	return 0, errors.New(errors.ErrCodeNoSolution, "no three entries sum to %d", reportTarget)
}

// pairSum looks for two distinct entries at or after from that add up to
// target. sorted must be in ascending order.
func pairSum(sorted []int, from, target int) (int, int, bool) {
	lo, hi := from, len(sorted)-1
	for lo < hi {
		switch s := sorted[lo] + sorted[hi]; {
		case s == target:
			return sorted[lo], sorted[hi], true
		case s < target:
			lo++
		default:
			hi--
		}
	}
	return 0, 0, false
}
