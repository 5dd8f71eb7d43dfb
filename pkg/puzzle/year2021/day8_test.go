package year2021

import (
	"testing"

	"github.com/matzehuels/adventofcode/pkg/puzzle/puzzletest"
)

const day8Patterns = "acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab"

func TestDay8(t *testing.T) {
	puzzletest.Info(t, &Day8{}, "Seven Segment Search", 2021, 8)
	puzzletest.NotReady(t, &Day8{})
	puzzletest.Sample(t, &Day8{}, day8Patterns+" | cdfeb fcadb cdfeb cdbaf\n", 0, 5353)
}

func TestDay8UniqueDigits(t *testing.T) {
	// ab, dab, eafb and acedgfb are 1, 7, 4 and 8 in any segment order.
	in := day8Patterns + " | ba bad beaf gfbdeca\n" + day8Patterns + " | cdfeb fcadb cdfeb cdbaf\n"
	puzzletest.Sample(t, &Day8{}, in, 4, 1748+5353)
}

func TestDeduceDigits(t *testing.T) {
	d := &Day8{}
	if err := d.SetInput([]string{day8Patterns + " | ab ab ab ab"}); err != nil {
		t.Fatalf("SetInput() error = %v", err)
	}
	digits, err := d.entries[0].deduce()
	if err != nil {
		t.Fatalf("deduce() error = %v", err)
	}
	want := map[int]string{
		0: "cagedb", 1: "ab", 2: "gcdfa", 3: "fbcad", 4: "eafb",
		5: "cdfbe", 6: "cdfgeb", 7: "dab", 8: "acedgfb", 9: "cefabd",
	}
	for digit, pattern := range want {
		s, _ := parseSegments(pattern)
		if digits[digit] != s {
			t.Errorf("digit %d = %07b, want %s", digit, digits[digit], pattern)
		}
	}
}

func TestDay8Malformed(t *testing.T) {
	tests := []string{
		"",
		day8Patterns,
		"ab cd | ab ab ab ab",
		day8Patterns + " | ab ab ab xy",
	}
	for _, in := range tests {
		puzzletest.Malformed(t, &Day8{}, in)
	}
}
