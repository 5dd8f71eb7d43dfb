package year2021

import (
	"testing"

	"github.com/matzehuels/adventofcode/pkg/puzzle/puzzletest"
)

const day3Sample = `00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010
`

func TestDay3(t *testing.T) {
	puzzletest.Info(t, &Day3{}, "Binary Diagnostic", 2021, 3)
	puzzletest.NotReady(t, &Day3{})
	puzzletest.Sample(t, &Day3{}, day3Sample, 198, 230)
}

func TestDay3TieBreaks(t *testing.T) {
	// Column 0 ties: oxygen keeps 1 (10), CO2 keeps 0 (01).
	puzzletest.PartTwo(t, &Day3{}, "10\n01\n", 2*1)
}

func TestDay3Malformed(t *testing.T) {
	for _, in := range []string{"", "0101\n011\n", "0120\n"} {
		puzzletest.Malformed(t, &Day3{}, in)
	}
}
