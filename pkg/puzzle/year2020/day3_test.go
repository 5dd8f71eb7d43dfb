package year2020

import (
	"testing"

	"github.com/matzehuels/adventofcode/pkg/puzzle/puzzletest"
)

const day3Sample = `..##.......
#...#...#..
.#....#..#.
..#.#...#.#
.#...##..#.
..#.##.....
.#.#.#....#
.#........#
#.##...#...
#...##....#
.#..#...#.#
`

func TestDay3(t *testing.T) {
	puzzletest.Info(t, &Day3{}, "Toboggan Trajectory", 2020, 3)
	puzzletest.NotReady(t, &Day3{})
	puzzletest.Sample(t, &Day3{}, day3Sample, 7, 336)
}

func TestDay3Malformed(t *testing.T) {
	for _, in := range []string{"", "..#\n.#\n", "..#\n.x.\n"} {
		puzzletest.Malformed(t, &Day3{}, in)
	}
}
