package year2021

import (
	"fmt"
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/geom"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// Day17 searches for probe launch velocities that land in a target area.
type Day17 struct {
	target *targetArea
}

type targetArea struct {
	x1, x2, y1, y2 int
	mirrored       bool // target was left of the launcher; x has been negated
}

func (d *Day17) Info() puzzle.Info {
	return puzzle.Info{Name: "Trick Shot", Year: 2021, Day: 17}
}

func (d *Day17) SetInput(lines []string) error {
	d.target = nil
	line, err := puzzle.FirstLine(lines)
	if err != nil {
		return err
	}
	var t targetArea
	if _, err := fmt.Sscanf(strings.TrimSpace(line), "target area: x=%d..%d, y=%d..%d", &t.x1, &t.x2, &t.y1, &t.y2); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "%q is not a target area", line)
	}
	t.x1, t.x2 = min(t.x1, t.x2), max(t.x1, t.x2)
	t.y1, t.y2 = min(t.y1, t.y2), max(t.y1, t.y2)
	if t.x1 <= 0 && t.x2 >= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "target x range %d..%d must not contain the launcher", t.x1, t.x2)
	}
	if t.x2 < 0 {
		t.x1, t.x2, t.mirrored = -t.x2, -t.x1, true
	}
	d.target = &t
	return nil
}

// PartOne returns the highest y reached by any shot that hits the target.
func (d *Day17) PartOne() (int64, error) {
	if d.target == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	best, hits := d.target.search()
	if hits == 0 {
		return 0, errors.New(errors.ErrCodeNoSolution, "no velocity reaches the target")
	}
	return int64(best), nil
}

// PartTwo counts the distinct velocities that hit the target.
func (d *Day17) PartTwo() (int64, error) {
	if d.target == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	_, hits := d.target.search()
	if hits == 0 {
		return 0, errors.New(errors.ErrCodeNoSolution, "no velocity reaches the target")
	}
	return int64(hits), nil
}

// search tries every velocity that could hit. vx is bounded by the far edge
// of the target. A probe launched upward at vy returns to y=0 at -(vy+1), so
// vy beyond the target's farthest y overshoots in one step either way.
func (t *targetArea) search() (highest, hits int) {
	vyMax := max(geom.Abs(t.y1), geom.Abs(t.y2))
	vyMin := min(t.y1, 0)
	highest = t.y1
	for vx := 1; vx <= t.x2; vx++ {
		for vy := vyMin; vy <= vyMax; vy++ {
			if top, ok := t.shoot(vx, vy); ok {
				hits++
				highest = max(highest, top)
			}
		}
	}
	return highest, hits
}

// shoot simulates one launch, applying drag and gravity each step.
func (t *targetArea) shoot(vx, vy int) (top int, hit bool) {
	var x, y int
	for {
		x, y = x+vx, y+vy
		vx -= geom.Sign(vx)
		vy--
		top = max(top, y)
		if x >= t.x1 && x <= t.x2 && y >= t.y1 && y <= t.y2 {
			return top, true
		}
		if x > t.x2 || (y < t.y1 && vy < 0) || (vx == 0 && x < t.x1) {
			return top, false
		}
	}
}
