package year2020

import (
	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/geom"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// Day3 counts the trees hit while sledding down a horizontally repeating map.
type Day3 struct {
	grid [][]byte
}

func (d *Day3) Info() puzzle.Info {
	return puzzle.Info{Name: "Toboggan Trajectory", Year: 2020, Day: 3}
}

func (d *Day3) SetInput(lines []string) error {
	d.grid = nil
	grid, err := puzzle.CharGrid(lines)
	if err != nil {
		return err
	}
	for y, row := range grid {
		for _, c := range row {
			if c != '.' && c != '#' {
				return errors.New(errors.ErrCodeInvalidInput, "line %d: unexpected %q", y+1, c)
			}
		}
	}
	d.grid = grid
	return nil
}

// PartOne counts trees on the right 3, down 1 slope.
func (d *Day3) PartOne() (int64, error) {
	if d.grid == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return d.trees(geom.Point2{X: 3, Y: 1}), nil
}

// PartTwo multiplies the tree counts of five slopes.
func (d *Day3) PartTwo() (int64, error) {
	if d.grid == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	slopes := []geom.Point2{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 5, Y: 1}, {X: 7, Y: 1}, {X: 1, Y: 2}}
	product := int64(1)
	for _, s := range slopes {
		product *= d.trees(s)
	}
	return product, nil
}

func (d *Day3) trees(slope geom.Point2) int64 {
	width := len(d.grid[0])
	var n int64
	for p := (geom.Point2{}); p.Y < len(d.grid); p = p.Add(slope) {
		if d.grid[p.Y][p.X%width] == '#' {
			n++
		}
	}
	return n
}
