package year2020

import (
	"slices"
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// Day5 decodes binary space partitioned boarding passes.
type Day5 struct {
	seats []int // sorted seat IDs
}

func (d *Day5) Info() puzzle.Info {
	return puzzle.Info{Name: "Binary Boarding", Year: 2020, Day: 5}
}

func (d *Day5) SetInput(lines []string) error {
	d.seats = nil
	var seats []int
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		id, err := seatID(l)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", i+1)
		}
		seats = append(seats, id)
	}
	if len(seats) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no boarding passes in input")
	}
	slices.Sort(seats)
	d.seats = seats
	return nil
}

// seatID reads a 7-letter row code (F/B) and a 3-letter column code (L/R)
// as a single 10-bit number: row*8 + column.
func seatID(code string) (int, error) {
	if len(code) != 10 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "boarding pass %q: want 10 characters", code)
	}
	id := 0
	for i := 0; i < len(code); i++ {
		c := code[i]
		var bit int
		switch {
		case i < 7 && c == 'F', i >= 7 && c == 'L':
			bit = 0
		case i < 7 && c == 'B', i >= 7 && c == 'R':
			bit = 1
		default:
			return 0, errors.New(errors.ErrCodeInvalidInput, "boarding pass %q: unexpected %q at %d", code, c, i)
		}
		id = id<<1 | bit
	}
	return id, nil
}

// PartOne returns the highest seat ID.
func (d *Day5) PartOne() (int64, error) {
	if d.seats == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return int64(d.seats[len(d.seats)-1]), nil
}

// PartTwo returns the empty seat whose neighbours on both sides are taken.
func (d *Day5) PartTwo() (int64, error) {
	if d.seats == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	for i := 1; i < len(d.seats); i++ {
		if d.seats[i]-d.seats[i-1] == 2 {
			return int64(d.seats[i] - 1), nil
		}
	}
	return 0, errors.New(errors.ErrCodeNoSolution, "no single free seat between two taken seats")
}
