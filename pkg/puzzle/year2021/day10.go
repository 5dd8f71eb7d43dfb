package year2021

import (
	"slices"
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

var (
	closerOf = map[rune]rune{'(': ')', '[': ']', '{': '}', '<': '>'}

	corruptScore = map[rune]int64{')': 3, ']': 57, '}': 1197, '>': 25137}

	completeScore = map[rune]int64{')': 1, ']': 2, '}': 3, '>': 4}
)

// Day10 scores corrupted and incomplete navigation subsystem lines.
type Day10 struct {
	lines []string
}

func (d *Day10) Info() puzzle.Info {
	return puzzle.Info{Name: "Syntax Scoring", Year: 2021, Day: 10}
}

func (d *Day10) SetInput(lines []string) error {
	d.lines = nil
	rows := puzzle.NonBlank(lines)
	if len(rows) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no navigation lines in input")
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		r = strings.TrimSpace(r)
		if strings.Trim(r, "()[]{}<>") != "" {
			return errors.New(errors.ErrCodeInvalidInput, "line %d: %q contains non-bracket characters", i+1, r)
		}
		out[i] = r
	}
	d.lines = out
	return nil
}

// check returns the first illegal closer of a corrupted line, or the closers
// still owed by an incomplete one.
func check(line string) (illegal rune, missing []rune) {
	var stack []rune
	for _, c := range line {
		if closer, ok := closerOf[c]; ok {
			stack = append(stack, closer)
			continue
		}
		if len(stack) == 0 || stack[len(stack)-1] != c {
			return c, nil
		}
		stack = stack[:len(stack)-1]
	}
	slices.Reverse(stack)
	return 0, stack
}

// PartOne sums the syntax error scores of corrupted lines.
func (d *Day10) PartOne() (int64, error) {
	if d.lines == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	var total int64
	for _, l := range d.lines {
		if illegal, _ := check(l); illegal != 0 {
			total += corruptScore[illegal]
		}
	}
	return total, nil
}

// PartTwo returns the median completion score of the incomplete lines.
func (d *Day10) PartTwo() (int64, error) {
	if d.lines == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	var scores []int64
	for _, l := range d.lines {
		illegal, missing := check(l)
		if illegal != 0 || len(missing) == 0 {
			continue
		}
		var s int64
		for _, c := range missing {
			s = s*5 + completeScore[c]
		}
		scores = append(scores, s)
	}
	if len(scores) == 0 {
		return 0, errors.New(errors.ErrCodeNoSolution, "no incomplete lines")
	}
	slices.Sort(scores)
	return scores[len(scores)/2], nil
}
