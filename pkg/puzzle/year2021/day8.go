package year2021

import (
	"math/bits"
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// segments is a set of lit display segments, bit 0 for 'a'.
type segments uint8

func (s segments) count() int { return bits.OnesCount8(uint8(s)) }

func (s segments) has(o segments) bool { return s&o == o }

type displayEntry struct {
	patterns [10]segments
	outputs  [4]segments
}

// Day8 untangles the scrambled wiring of four-digit seven-segment displays.
type Day8 struct {
	entries []displayEntry
}

func (d *Day8) Info() puzzle.Info {
	return puzzle.Info{Name: "Seven Segment Search", Year: 2021, Day: 8}
}

func (d *Day8) SetInput(lines []string) error {
	d.entries = nil
	var entries []displayEntry
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		left, right, ok := strings.Cut(l, "|")
		if !ok {
			return errors.New(errors.ErrCodeInvalidInput, "line %d: missing '|'", i+1)
		}
		patterns, outputs := strings.Fields(left), strings.Fields(right)
		if len(patterns) != 10 || len(outputs) != 4 {
			return errors.New(errors.ErrCodeInvalidInput, "line %d: want 10 patterns and 4 outputs, got %d and %d", i+1, len(patterns), len(outputs))
		}
		var e displayEntry
		for j, p := range patterns {
			s, err := parseSegments(p)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", i+1)
			}
			e.patterns[j] = s
		}
		for j, p := range outputs {
			s, err := parseSegments(p)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", i+1)
			}
			e.outputs[j] = s
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no display entries in input")
	}
	d.entries = entries
	return nil
}

func parseSegments(s string) (segments, error) {
	var out segments
	for _, c := range s {
		if c < 'a' || c > 'g' {
			return 0, errors.New(errors.ErrCodeInvalidInput, "%q is not a segment pattern", s)
		}
		out |= 1 << (c - 'a')
	}
	return out, nil
}

// PartOne counts output digits that use a unique number of segments
// (1, 4, 7 and 8).
func (d *Day8) PartOne() (int64, error) {
	if d.entries == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	var n int64
	for _, e := range d.entries {
		for _, o := range e.outputs {
			switch o.count() {
			case 2, 3, 4, 7:
				n++
			}
		}
	}
	return n, nil
}

// PartTwo deduces each display's wiring and sums the decoded outputs.
func (d *Day8) PartTwo() (int64, error) {
	if d.entries == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	var sum int64
	for i, e := range d.entries {
		digits, err := e.deduce()
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeNoSolution, err, "entry %d", i+1)
		}
		value := 0
		for _, o := range e.outputs {
			digit := -1
			for v, s := range digits {
				if s == o {
					digit = v
				}
			}
			if digit < 0 {
				return 0, errors.New(errors.ErrCodeNoSolution, "entry %d: output is not one of the patterns", i+1)
			}
			value = value*10 + digit
		}
		sum += int64(value)
	}
	return sum, nil
}

// deduce maps each digit to its scrambled segment set. The unique lengths
// give 1, 4, 7 and 8; the six-segment digits are told apart by containing 4
// or 1, and the five-segment ones by containing 1 or the 4-minus-1 "elbow".
func (e displayEntry) deduce() ([10]segments, error) {
	var digits [10]segments
	for _, p := range e.patterns {
		switch p.count() {
		case 2:
			digits[1] = p
		case 3:
			digits[7] = p
		case 4:
			digits[4] = p
		case 7:
			digits[8] = p
		}
	}
	if digits[1] == 0 || digits[4] == 0 || digits[7] == 0 || digits[8] == 0 {
		return digits, errors.New(errors.ErrCodeNoSolution, "patterns lack a unique-length digit")
	}
	elbow := digits[4] &^ digits[1]
	for _, p := range e.patterns {
		switch p.count() {
		case 6:
			switch {
			case p.has(digits[4]):
				digits[9] = p
			case p.has(digits[1]):
				digits[0] = p
			default:
				digits[6] = p
			}
		case 5:
			switch {
			case p.has(digits[1]):
				digits[3] = p
			case p.has(elbow):
				digits[5] = p
			default:
				digits[2] = p
			}
		}
	}
	seen := make(map[segments]bool, 10)
	for _, s := range digits {
		if s == 0 || seen[s] {
			return digits, errors.New(errors.ErrCodeNoSolution, "patterns do not describe ten distinct digits")
		}
		seen[s] = true
	}
	return digits, nil
}
