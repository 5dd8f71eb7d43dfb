package year2021

import (
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// Day3 decodes the submarine's binary diagnostic report.
type Day3 struct {
	report []string
	width  int
}

func (d *Day3) Info() puzzle.Info {
	return puzzle.Info{Name: "Binary Diagnostic", Year: 2021, Day: 3}
}

func (d *Day3) SetInput(lines []string) error {
	d.report, d.width = nil, 0
	rows := puzzle.NonBlank(lines)
	if len(rows) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "report is empty")
	}
	width := len(strings.TrimSpace(rows[0]))
	if width == 0 || width > 62 {
		return errors.New(errors.ErrCodeInvalidInput, "report width %d out of range", width)
	}
	report := make([]string, len(rows))
	for i, r := range rows {
		r = strings.TrimSpace(r)
		if len(r) != width || strings.Trim(r, "01") != "" {
			return errors.New(errors.ErrCodeInvalidInput, "line %d: %q is not a %d-bit binary number", i+1, r, width)
		}
		report[i] = r
	}
	d.report, d.width = report, width
	return nil
}

// PartOne returns gamma × epsilon, built from the most and least common bits.
func (d *Day3) PartOne() (int64, error) {
	if d.report == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	var gamma int64
	for col := 0; col < d.width; col++ {
		gamma <<= 1
		if ones(d.report, col)*2 >= len(d.report) {
			gamma |= 1
		}
	}
	epsilon := ^gamma & (1<<d.width - 1)
	return gamma * epsilon, nil
}

// PartTwo returns the oxygen generator rating × the CO2 scrubber rating.
func (d *Day3) PartTwo() (int64, error) {
	if d.report == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	oxygen := d.rating(true)
	co2 := d.rating(false)
	return oxygen * co2, nil
}

// rating filters the report column by column, keeping entries that hold the
// most common bit (ties keep 1) or, for the least common bit, ties keep 0.
func (d *Day3) rating(mostCommon bool) int64 {
	keep := d.report
	for col := 0; col < d.width && len(keep) > 1; col++ {
		n := ones(keep, col)
		var want byte = '0'
		if (n*2 >= len(keep)) == mostCommon {
			want = '1'
		}
		var next []string
		for _, r := range keep {
			if r[col] == want {
				next = append(next, r)
			}
		}
		if len(next) > 0 {
			keep = next
		}
	}
	var v int64
	for i := 0; i < d.width; i++ {
		v = v<<1 | int64(keep[0][i]-'0')
	}
	return v
}

func ones(report []string, col int) int {
	n := 0
	for _, r := range report {
		if r[col] == '1' {
			n++
		}
	}
	return n
}
