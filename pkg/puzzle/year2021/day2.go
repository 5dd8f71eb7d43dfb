package year2021

import (
	"strconv"
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

type command struct {
	dir   string
	units int
}

// Day2 pilots the submarine through a list of commands.
type Day2 struct {
	commands []command
}

func (d *Day2) Info() puzzle.Info {
	return puzzle.Info{Name: "Dive!", Year: 2021, Day: 2}
}

func (d *Day2) SetInput(lines []string) error {
	d.commands = nil
	var cmds []command
	for i, l := range lines {
		fields := strings.Fields(l)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return errors.New(errors.ErrCodeInvalidInput, "line %d: %q is not a command", i+1, l)
		}
		switch fields[0] {
		case "forward", "down", "up":
		default:
			return errors.New(errors.ErrCodeInvalidInput, "line %d: unknown direction %q", i+1, fields[0])
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "line %d: bad distance %q", i+1, fields[1])
		}
		cmds = append(cmds, command{dir: fields[0], units: n})
	}
	if len(cmds) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no commands in input")
	}
	d.commands = cmds
	return nil
}

// PartOne multiplies the final horizontal position by the final depth.
func (d *Day2) PartOne() (int64, error) {
	if d.commands == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	var pos, depth int64
	for _, c := range d.commands {
		switch c.dir {
		case "forward":
			pos += int64(c.units)
		case "down":
			depth += int64(c.units)
		case "up":
			depth -= int64(c.units)
		}
	}
	return pos * depth, nil
}

// PartTwo does the same with up and down adjusting aim instead of depth.
func (d *Day2) PartTwo() (int64, error) {
	if d.commands == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	var pos, depth, aim int64
	for _, c := range d.commands {
		switch c.dir {
		case "forward":
			pos += int64(c.units)
			depth += aim * int64(c.units)
		case "down":
			aim += int64(c.units)
		case "up":
			aim -= int64(c.units)
		}
	}
	return pos * depth, nil
}
