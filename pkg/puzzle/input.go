package puzzle

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
)

// maxLineLength bounds a single input line. Some inputs (packet transmissions,
// enhancement rules) are one long line.
const maxLineLength = 1 << 20

// ReadLines reads r fully and returns its lines without line terminators.
// A trailing newline does not produce an empty final line; CRLF endings are
// accepted.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read input")
	}
	return lines, nil
}

// Lines splits s into lines the same way ReadLines does.
func Lines(s string) []string {
	lines, _ := ReadLines(strings.NewReader(s))
	return lines
}

// NonBlank returns lines with blank lines removed.
func NonBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// Blocks splits lines into groups separated by one or more blank lines.
// Empty groups are dropped.
func Blocks(lines []string) [][]string {
	var blocks [][]string
	var cur []string
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

// Atoi parses s as a decimal integer, reporting the offending line on failure.
func Atoi(line int, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "line %d: %q is not a number", line, s)
	}
	return n, nil
}

// Ints parses one integer per non-blank line.
func Ints(lines []string) ([]int, error) {
	out := make([]int, 0, len(lines))
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n, err := Atoi(i+1, l)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no numbers in input")
	}
	return out, nil
}

// CSVInts parses a single comma-separated line of integers.
func CSVInts(line string) ([]int, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := Atoi(1, f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// FirstLine returns the first non-blank line.
func FirstLine(lines []string) (string, error) {
	for _, l := range lines {
		if s := strings.TrimSpace(l); s != "" {
			return s, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "input is empty")
}

// CharGrid decodes a rectangular grid of bytes. Blank lines are ignored.
func CharGrid(lines []string) ([][]byte, error) {
	rows := NonBlank(lines)
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "grid is empty")
	}
	width := len(rows[0])
	grid := make([][]byte, len(rows))
	for i, r := range rows {
		if len(r) != width {
			return nil, errors.New(errors.ErrCodeInvalidInput, "line %d: width %d, want %d", i+1, len(r), width)
		}
		grid[i] = []byte(r)
	}
	return grid, nil
}

// DigitGrid decodes a rectangular grid of single decimal digits.
func DigitGrid(lines []string) ([][]int, error) {
	chars, err := CharGrid(lines)
	if err != nil {
		return nil, err
	}
	grid := make([][]int, len(chars))
	for y, row := range chars {
		grid[y] = make([]int, len(row))
		for x, c := range row {
			if c < '0' || c > '9' {
				return nil, errors.New(errors.ErrCodeInvalidInput, "line %d: %q is not a digit", y+1, c)
			}
			grid[y][x] = int(c - '0')
		}
	}
	return grid, nil
}

// CloneGrid returns a deep copy of g.
func CloneGrid[T any](g [][]T) [][]T {
	out := make([][]T, len(g))
	for i, row := range g {
		out[i] = append([]T(nil), row...)
	}
	return out
}
