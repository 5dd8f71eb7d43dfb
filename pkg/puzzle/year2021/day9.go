package year2021

import (
	"slices"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/geom"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// Day9 finds the low points and basins of a cave heightmap.
type Day9 struct {
	heights [][]int
}

func (d *Day9) Info() puzzle.Info {
	return puzzle.Info{Name: "Smoke Basin", Year: 2021, Day: 9}
}

func (d *Day9) SetInput(lines []string) error {
	d.heights = nil
	grid, err := puzzle.DigitGrid(lines)
	if err != nil {
		return err
	}
	d.heights = grid
	return nil
}

// PartOne sums the risk level (height + 1) of every low point.
func (d *Day9) PartOne() (int64, error) {
	if d.heights == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	var risk int64
	for _, p := range d.lowPoints() {
		risk += int64(d.at(p) + 1)
	}
	return risk, nil
}

// PartTwo multiplies the sizes of the three largest basins.
func (d *Day9) PartTwo() (int64, error) {
	if d.heights == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	var sizes []int
	seen := make(map[geom.Point2]bool)
	for _, low := range d.lowPoints() {
		if !seen[low] {
			sizes = append(sizes, d.fill(low, seen))
		}
	}
	if len(sizes) < 3 {
		return 0, errors.New(errors.ErrCodeNoSolution, "found %d basins, need 3", len(sizes))
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return int64(sizes[0]) * int64(sizes[1]) * int64(sizes[2]), nil
}

func (d *Day9) at(p geom.Point2) int { return d.heights[p.Y][p.X] }

func (d *Day9) inside(p geom.Point2) bool {
	return p.InBounds(len(d.heights[0]), len(d.heights))
}

func (d *Day9) lowPoints() []geom.Point2 {
	var lows []geom.Point2
	for y, row := range d.heights {
		for x := range row {
			p := geom.Point2{X: x, Y: y}
			low := true
			for _, step := range geom.Orthogonal {
				if n := p.Add(step); d.inside(n) && d.at(n) <= d.at(p) {
					low = false
					break
				}
			}
			if low {
				lows = append(lows, p)
			}
		}
	}
	return lows
}

// fill counts the basin around start. Basins are bounded by height 9.
func (d *Day9) fill(start geom.Point2, seen map[geom.Point2]bool) int {
	size := 0
	stack := []geom.Point2{start}
	seen[start] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		for _, step := range geom.Orthogonal {
			n := p.Add(step)
			if d.inside(n) && !seen[n] && d.at(n) != 9 {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return size
}
