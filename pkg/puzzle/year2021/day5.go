package year2021

import (
	"fmt"
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/geom"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

type ventLine struct {
	from, to geom.Point2
}

func (l ventLine) diagonal() bool { return l.from.X != l.to.X && l.from.Y != l.to.Y }

// Day5 maps overlapping lines of hydrothermal vents.
type Day5 struct {
	lines []ventLine
}

func (d *Day5) Info() puzzle.Info {
	return puzzle.Info{Name: "Hydrothermal Venture", Year: 2021, Day: 5}
}

func (d *Day5) SetInput(lines []string) error {
	d.lines = nil
	var vents []ventLine
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		var v ventLine
		if _, err := fmt.Sscanf(l, "%d,%d -> %d,%d", &v.from.X, &v.from.Y, &v.to.X, &v.to.Y); err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "line %d: %q is not a vent line", i+1, l)
		}
		if v.diagonal() && geom.Abs(v.to.X-v.from.X) != geom.Abs(v.to.Y-v.from.Y) {
			return errors.New(errors.ErrCodeInvalidInput, "line %d: %q is not horizontal, vertical or at 45 degrees", i+1, l)
		}
		vents = append(vents, v)
	}
	if len(vents) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no vent lines in input")
	}
	d.lines = vents
	return nil
}

// PartOne counts points covered by two or more horizontal or vertical lines.
func (d *Day5) PartOne() (int64, error) {
	if d.lines == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return d.overlaps(false), nil
}

// PartTwo also counts diagonal lines.
func (d *Day5) PartTwo() (int64, error) {
	if d.lines == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return d.overlaps(true), nil
}

func (d *Day5) overlaps(diagonals bool) int64 {
	cover := make(map[geom.Point2]int)
	for _, l := range d.lines {
		if l.diagonal() && !diagonals {
			continue
		}
		step := geom.Point2{X: geom.Sign(l.to.X - l.from.X), Y: geom.Sign(l.to.Y - l.from.Y)}
		for p := l.from; ; p = p.Add(step) {
			cover[p]++
			if p == l.to {
				break
			}
		}
	}
	var n int64
	for _, c := range cover {
		if c >= 2 {
			n++
		}
	}
	return n
}
