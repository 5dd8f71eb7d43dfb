package year2021

import (
	"testing"

	"github.com/matzehuels/adventofcode/pkg/puzzle/puzzletest"
)

func TestDay6(t *testing.T) {
	puzzletest.Info(t, &Day6{}, "Lanternfish", 2021, 6)
	puzzletest.NotReady(t, &Day6{})
	puzzletest.Sample(t, &Day6{}, "3,4,3,1,2\n", 5934, 26984457539)
}

func TestDay6Simulate(t *testing.T) {
	d := &Day6{}
	if err := d.SetInput([]string{"3,4,3,1,2"}); err != nil {
		t.Fatalf("SetInput() error = %v", err)
	}
	tests := []struct {
		days int
		want int64
	}{
		{0, 5},
		{1, 5},
		{2, 6},
		{18, 26},
	}
	for _, tt := range tests {
		if got := d.simulate(tt.days); got != tt.want {
			t.Errorf("simulate(%d) = %d, want %d", tt.days, got, tt.want)
		}
	}
}

func TestDay6Malformed(t *testing.T) {
	for _, in := range []string{"", "3,4,9", "3,-1", "3,,4"} {
		puzzletest.Malformed(t, &Day6{}, in)
	}
}
