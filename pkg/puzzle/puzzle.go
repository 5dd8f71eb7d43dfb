// Package puzzle defines the contract shared by every puzzle unit and the
// input decoding helpers the units are built from.
//
// A puzzle unit is one day of an Advent of Code event: it decodes its raw
// input lines once with [Solver.SetInput] and then answers the two parts of
// the challenge. Parts are independent of each other and may be requested in
// any order, any number of times.
//
// # Errors
//
// Units report failures with codes from pkg/errors:
//   - NOT_READY when a part is requested before input was supplied
//   - INVALID_INPUT when the input cannot be decoded
//   - NO_SOLUTION when the input is well formed but has no answer
package puzzle

import (
	"fmt"

	"github.com/matzehuels/adventofcode/pkg/graph"
)

// Info identifies a puzzle unit.
type Info struct {
	Name string // Challenge title, e.g. "Sonar Sweep"
	Year int
	Day  int
}

// String returns "2021/01 Sonar Sweep".
func (i Info) String() string {
	return fmt.Sprintf("%d/%02d %s", i.Year, i.Day, i.Name)
}

// ID returns the short "2021/1" identifier used for cache keys and flags.
func (i Info) ID() string {
	return fmt.Sprintf("%d/%d", i.Year, i.Day)
}

// Solver is implemented by every puzzle unit.
type Solver interface {
	// Info returns the unit's challenge name, year and day.
	Info() Info

	// SetInput decodes the puzzle input, replacing any previous input.
	// On failure the unit is left without input.
	SetInput(lines []string) error

	// PartOne answers the first part of the challenge.
	PartOne() (int64, error)

	// PartTwo answers the second part of the challenge.
	PartTwo() (int64, error)
}

// Grapher is implemented by units whose decoded model is a graph.
type Grapher interface {
	Graph() (*graph.Graph, error)
}

// Renderer is implemented by units whose answer is also readable as a picture.
type Renderer interface {
	Render() (string, error)
}

// Part selects one half of a challenge.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

// Parts lists both parts in order.
var Parts = []Part{PartOne, PartTwo}

func (p Part) String() string {
	return fmt.Sprintf("part %d", int(p))
}

// Solve runs the requested part of s.
func Solve(s Solver, p Part) (int64, error) {
	switch p {
	case PartOne:
		return s.PartOne()
	case PartTwo:
		return s.PartTwo()
	}
	return 0, fmt.Errorf("unknown %s", p)
}
