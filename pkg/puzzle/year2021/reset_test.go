package year2021

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
		{&Day1{}, day1Sample, "199\ndeep\n"},
		{&Day2{}, day2Sample, "backward 5"},
		{&Day3{}, day3Sample, "0120\n"},
		{&Day4{}, day4Sample, "1,2,3\n"},
		{&Day5{}, day5Sample, "0,0 -> 2,1"},
		{&Day6{}, "3,4,3,1,2\n", "3,-1"},
		{&Day7{}, "16,1,2,0,4,2,7,1,2,14\n", "16,one,2"},
		{&Day8{}, day8Patterns + " | cdfeb fcadb cdfeb cdbaf\n", day8Patterns + " | ab ab ab xy"},
		{&Day9{}, day9Sample, "12a\n"},
		{&Day10{}, day10Sample, "(a)"},
		{&Day11{}, day11Sample, "1x\n"},
		{&Day12{}, day12Sample, "start-end\nb-b\n"},
		{&Day13{}, day13Sample, "1,2\n\nfold along z=3\n"},
		{&Day14{}, day14Sample, "NNCB\n\nNN => C\n"},
		{&Day15{}, day15Sample, "10\n11\n"},
		{&Day16{}, "D2FE28\n", "D2FG28"},
		{&Day17{}, day17Sample, "target area: x=-5..5, y=-10..-5"},
		{&Day18{}, day18Sample, "[1,2"},
		{&Day19{}, day19Sample, "--- scanner 0 ---\n1,2\n"},
		{&Day20{}, day20Rules + "\n\n" + day20Image, day20Rules + "\n\n#o\n"},
	}
	for _, tt := range tests {
		t.Run(tt.unit.Info().String(), func(t *testing.T) {
			puzzletest.Reset(t, tt.unit, tt.valid, tt.malformed)
		})
	}
}
