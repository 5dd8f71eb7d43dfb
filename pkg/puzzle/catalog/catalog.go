// Package catalog lists every puzzle unit and constructs them by year and day.
package catalog

import (
	"slices"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
	"github.com/matzehuels/adventofcode/pkg/puzzle/year2020"
	"github.com/matzehuels/adventofcode/pkg/puzzle/year2021"
)

// Entry describes one registered puzzle unit.
type Entry struct {
	puzzle.Info
	New func() puzzle.Solver
}

var entries = build(
	func() puzzle.Solver { return &year2020.Day1{} },
	func() puzzle.Solver { return &year2020.Day2{} },
	func() puzzle.Solver { return &year2020.Day3{} },
	func() puzzle.Solver { return &year2020.Day4{} },
	func() puzzle.Solver { return &year2020.Day5{} },
	func() puzzle.Solver { return &year2020.Day6{} },
	func() puzzle.Solver { return &year2020.Day7{} },

	func() puzzle.Solver { return &year2021.Day1{} },
	func() puzzle.Solver { return &year2021.Day2{} },
	func() puzzle.Solver { return &year2021.Day3{} },
	func() puzzle.Solver { return &year2021.Day4{} },
	func() puzzle.Solver { return &year2021.Day5{} },
	func() puzzle.Solver { return &year2021.Day6{} },
	func() puzzle.Solver { return &year2021.Day7{} },
	func() puzzle.Solver { return &year2021.Day8{} },
	func() puzzle.Solver { return &year2021.Day9{} },
	func() puzzle.Solver { return &year2021.Day10{} },
	func() puzzle.Solver { return &year2021.Day11{} },
	func() puzzle.Solver { return &year2021.Day12{} },
	func() puzzle.Solver { return &year2021.Day13{} },
	func() puzzle.Solver { return &year2021.Day14{} },
	func() puzzle.Solver { return &year2021.Day15{} },
	func() puzzle.Solver { return &year2021.Day16{} },
	func() puzzle.Solver { return &year2021.Day17{} },
	func() puzzle.Solver { return &year2021.Day18{} },
	func() puzzle.Solver { return &year2021.Day19{} },
	func() puzzle.Solver { return &year2021.Day20{} },
)

// build reads each unit's identity once and sorts the table by year and day.
func build(ctors ...func() puzzle.Solver) []Entry {
	out := make([]Entry, 0, len(ctors))
	for _, c := range ctors {
		out = append(out, Entry{Info: c().Info(), New: c})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return a.Day - b.Day
	})
	return out
}

// All returns every registered unit ordered by year, then day.
func All() []Entry { return slices.Clone(entries) }

// Year returns the units of one year, ordered by day.
func Year(year int) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Year == year {
			out = append(out, e)
		}
	}
	return out
}

// Find returns a fresh solver for the given year and day.
func Find(year, day int) (puzzle.Solver, error) {
	e, err := Lookup(year, day)
	if err != nil {
		return nil, err
	}
	return e.New(), nil
}

// Lookup returns the entry for the given year and day.
func Lookup(year, day int) (Entry, error) {
	if err := errors.ValidateYearDay(year, day); err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.Year == year && e.Day == day {
			return e, nil
		}
	}
	return Entry{}, errors.New(errors.ErrCodePuzzleNotFound, "no solution for %d day %d", year, day)
}

// Years returns the years that have at least one unit, ascending.
func Years() []int {
	var years []int
	for _, e := range entries {
		if len(years) == 0 || years[len(years)-1] != e.Year {
			years = append(years, e.Year)
		}
	}
	return years
}

// Latest returns the most recent unit.
func Latest() Entry { return entries[len(entries)-1] }
