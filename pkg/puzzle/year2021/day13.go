package year2021

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/geom"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

type fold struct {
	alongX bool
	at     int
}

func (f fold) apply(p geom.Point2) geom.Point2 {
	if f.alongX && p.X > f.at {
		p.X = 2*f.at - p.X
	}
	if !f.alongX && p.Y > f.at {
		p.Y = 2*f.at - p.Y
	}
	return p
}

// Day13 folds a sheet of transparent paper to reveal an activation code.
type Day13 struct {
	dots  []geom.Point2
	folds []fold
}

func (d *Day13) Info() puzzle.Info {
	return puzzle.Info{Name: "Transparent Origami", Year: 2021, Day: 13}
}

func (d *Day13) SetInput(lines []string) error {
	d.dots, d.folds = nil, nil
	blocks := puzzle.Blocks(lines)
	if len(blocks) != 2 {
		return errors.New(errors.ErrCodeInvalidInput, "want dots and folds separated by a blank line")
	}
	dots := make([]geom.Point2, 0, len(blocks[0]))
	for i, l := range blocks[0] {
		var p geom.Point2
		if _, err := fmt.Sscanf(strings.TrimSpace(l), "%d,%d", &p.X, &p.Y); err != nil || p.X < 0 || p.Y < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "dot %d: %q is not x,y", i+1, l)
		}
		dots = append(dots, p)
	}
	folds := make([]fold, 0, len(blocks[1]))
	for i, l := range blocks[1] {
		var axis rune
		var at int
		if _, err := fmt.Sscanf(strings.TrimSpace(l), "fold along %c=%d", &axis, &at); err != nil || (axis != 'x' && axis != 'y') {
			return errors.New(errors.ErrCodeInvalidInput, "fold %d: %q is not a fold instruction", i+1, l)
		}
		folds = append(folds, fold{alongX: axis == 'x', at: at})
	}
	d.dots, d.folds = dots, folds
	return nil
}

func (d *Day13) foldAll(folds []fold) map[geom.Point2]bool {
	sheet := make(map[geom.Point2]bool, len(d.dots))
	for _, p := range d.dots {
		for _, f := range folds {
			p = f.apply(p)
		}
		sheet[p] = true
	}
	return sheet
}

// PartOne counts visible dots after the first fold.
func (d *Day13) PartOne() (int64, error) {
	if d.dots == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return int64(len(d.foldAll(d.folds[:1]))), nil
}

// PartTwo counts visible dots after every fold. The code itself is read from
// [Day13.Render].
func (d *Day13) PartTwo() (int64, error) {
	if d.dots == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return int64(len(d.foldAll(d.folds))), nil
}

// Render draws the fully folded sheet, '#' for a dot and '.' for paper.
// Folds past the edge can push dots to negative coordinates; the picture
// starts at the smallest coordinate seen.
func (d *Day13) Render() (string, error) {
	if d.dots == nil {
		return "", errors.NotReady(d.Info().String())
	}
	sheet := d.foldAll(d.folds)
	if len(sheet) == 0 {
		return "", nil
	}
	lo := geom.Point2{X: math.MaxInt, Y: math.MaxInt}
	hi := geom.Point2{X: math.MinInt, Y: math.MinInt}
	for p := range sheet {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	lo.X, lo.Y = min(lo.X, 0), min(lo.Y, 0)
	var b strings.Builder
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			if sheet[geom.Point2{X: x, Y: y}] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
