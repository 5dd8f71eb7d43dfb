package year2021

import (
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

const enhancementSize = 512

// image is a finite lit/unlit grid surrounded by an infinite background of
// uniform colour.
type image struct {
	px         [][]bool
	background bool
}

func (im *image) at(x, y int) bool {
	if y < 0 || y >= len(im.px) || x < 0 || x >= len(im.px[y]) {
		return im.background
	}
	return im.px[y][x]
}

func (im *image) lit() int64 {
	var n int64
	for _, row := range im.px {
		for _, p := range row {
			if p {
				n++
			}
		}
	}
	return n
}

// Day20 enhances a trench image.
type Day20 struct {
	rules [enhancementSize]bool
	input [][]bool
}

func (d *Day20) Info() puzzle.Info {
	return puzzle.Info{Name: "Trench Map", Year: 2021, Day: 20}
}

func (d *Day20) SetInput(lines []string) error {
	d.input = nil
	blocks := puzzle.Blocks(lines)
	if len(blocks) != 2 {
		return errors.New(errors.ErrCodeInvalidInput, "want an enhancement rule line, a blank line and an image")
	}
	rule := strings.Join(blocks[0], "")
	if len(rule) != enhancementSize {
		return errors.New(errors.ErrCodeInvalidInput, "enhancement rules have %d entries, want %d", len(rule), enhancementSize)
	}
	var rules [enhancementSize]bool
	for i := range rule {
		lit, err := pixel(rule[i])
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "enhancement rule %d", i)
		}
		rules[i] = lit
	}
	grid, err := puzzle.CharGrid(blocks[1])
	if err != nil {
		return err
	}
	px := make([][]bool, len(grid))
	for y, row := range grid {
		px[y] = make([]bool, len(row))
		for x, c := range row {
			lit, err := pixel(c)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "image line %d", y+1)
			}
			px[y][x] = lit
		}
	}
	d.rules, d.input = rules, px
	return nil
}

func pixel(c byte) (bool, error) {
	switch c {
	case '#':
		return true, nil
	case '.':
		return false, nil
	}
	return false, errors.New(errors.ErrCodeInvalidInput, "%q is not a pixel", c)
}

// PartOne counts lit pixels after two enhancements.
func (d *Day20) PartOne() (int64, error) {
	if d.input == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return d.enhance(2).lit(), nil
}

// PartTwo counts lit pixels after fifty enhancements.
func (d *Day20) PartTwo() (int64, error) {
	if d.input == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return d.enhance(50).lit(), nil
}

// enhance applies the rules rounds times. Each round grows the image by one
// pixel on every side, and the background becomes rule 0 (if unlit) or rule
// 511 (if lit), so it may flip between rounds.
func (d *Day20) enhance(rounds int) *image {
	im := &image{px: d.input}
	for range rounds {
		h, w := len(im.px)+2, len(im.px[0])+2
		next := make([][]bool, h)
		for y := range h {
			next[y] = make([]bool, w)
			for x := range w {
				idx := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						idx <<= 1
						if im.at(x-1+dx, y-1+dy) {
							idx |= 1
						}
					}
				}
				next[y][x] = d.rules[idx]
			}
		}
		bg := d.rules[0]
		if im.background {
			bg = d.rules[enhancementSize-1]
		}
		im = &image{px: next, background: bg}
	}
	return im
}
