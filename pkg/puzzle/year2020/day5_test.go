package year2020

import (
	"testing"

	"github.com/matzehuels/adventofcode/pkg/puzzle/puzzletest"
)

const day5Sample = `BFFFBBFRRR
FFFBBBFRRR
BBFFBBFRLL
BBFFBBFRRL
FBFBBFFRLR
`

func TestDay5(t *testing.T) {
	puzzletest.Info(t, &Day5{}, "Binary Boarding", 2020, 5)
	puzzletest.NotReady(t, &Day5{})
	puzzletest.Sample(t, &Day5{}, day5Sample, 822, 821)
}

func TestSeatID(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"FBFBBFFRLR", 357},
		{"BFFFBBFRRR", 567},
		{"FFFBBBFRRR", 119},
		{"BBFFBBFRLL", 820},
	}
	for _, tt := range tests {
		got, err := seatID(tt.code)
		if err != nil {
			t.Fatalf("seatID(%q) error = %v", tt.code, err)
		}
		if got != tt.want {
			t.Errorf("seatID(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestDay5Malformed(t *testing.T) {
	for _, in := range []string{"", "FBFBBFFRL", "FBFBBFFRLX", "FBFBBFRRLR"} {
		puzzletest.Malformed(t, &Day5{}, in)
	}
}
