package year2020

import (
	"testing"

	"github.com/matzehuels/adventofcode/pkg/puzzle"
	"github.com/matzehuels/adventofcode/pkg/puzzle/puzzletest"
)

func TestSetInputFailureClearsState(t *testing.T) {
	tests := []struct {
		unit      puzzle.Solver
		valid     string
		malformed string
	}{
		{&Day1{}, day1Sample, "12\nabc\n"},
		{&Day2{}, day2Sample, "1-3 a abcde"},
		{&Day3{}, day3Sample, "..#\n.x.\n"},
		{&Day4{}, day4Sample, "byr:1920 nocolon\n"},
		{&Day5{}, day5Sample, "FBFBBFFRLX"},
		{&Day6{}, day6Sample, "ab\nA\n"},
		{&Day7{}, day7Sample, "shiny gold bags contain two red bags."},
	}
	for _, tt := range tests {
		t.Run(tt.unit.Info().String(), func(t *testing.T) {
			puzzletest.Reset(t, tt.unit, tt.valid, tt.malformed)
		})
	}
}
