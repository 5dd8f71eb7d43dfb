package year2021

import (
	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/geom"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// maxSyncSteps bounds the search for the first simultaneous flash.
const maxSyncSteps = 100_000

// Day11 simulates flashing dumbo octopuses.
type Day11 struct {
	energy [][]int
}

func (d *Day11) Info() puzzle.Info {
	return puzzle.Info{Name: "Dumbo Octopus", Year: 2021, Day: 11}
}

func (d *Day11) SetInput(lines []string) error {
	d.energy = nil
	grid, err := puzzle.DigitGrid(lines)
	if err != nil {
		return err
	}
	d.energy = grid
	return nil
}

// PartOne counts the flashes during the first 100 steps.
func (d *Day11) PartOne() (int64, error) {
	if d.energy == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	grid := puzzle.CloneGrid(d.energy)
	var total int64
	for range 100 {
		total += int64(octopusStep(grid))
	}
	return total, nil
}

// PartTwo returns the first step on which every octopus flashes.
func (d *Day11) PartTwo() (int64, error) {
	if d.energy == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	grid := puzzle.CloneGrid(d.energy)
	all := len(grid) * len(grid[0])
	for step := 1; step <= maxSyncSteps; step++ {
		if octopusStep(grid) == all {
			return int64(step), nil
		}
	}
	return 0, errors.New(errors.ErrCodeNoSolution, "octopuses do not synchronise within %d steps", maxSyncSteps)
}

// octopusStep advances the grid one step and returns how many flashed.
// An octopus above 9 flashes once per step, raising its eight neighbours,
// and ends the step at 0.
func octopusStep(grid [][]int) int {
	h, w := len(grid), len(grid[0])
	var pending []geom.Point2
	for y := range h {
		for x := range w {
			grid[y][x]++
			if grid[y][x] == 10 {
				pending = append(pending, geom.Point2{X: x, Y: y})
			}
		}
	}
	flashed := 0
	for len(pending) > 0 {
		p := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		flashed++
		for _, step := range geom.Neighbours8 {
			n := p.Add(step)
			if !n.InBounds(w, h) {
				continue
			}
			grid[n.Y][n.X]++
			if grid[n.Y][n.X] == 10 {
				pending = append(pending, n)
			}
		}
	}
	for y := range h {
		for x := range w {
			if grid[y][x] > 9 {
				grid[y][x] = 0
			}
		}
	}
	return flashed
}
