package year2021

import (
	"testing"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
	"github.com/matzehuels/adventofcode/pkg/puzzle/puzzletest"
)

const day13Sample = `6,10
0,14
9,10
0,3
10,4
4,11
6,0
6,12
4,1
0,13
10,12
3,4
3,0
8,4
1,10
2,14
8,10
9,0

fold along y=7
fold along x=5
`

func TestDay13(t *testing.T) {
	puzzletest.Info(t, &Day13{}, "Transparent Origami", 2021, 13)
	puzzletest.NotReady(t, &Day13{})
	puzzletest.Sample(t, &Day13{}, day13Sample, 17, 16)
}

func TestDay13Render(t *testing.T) {
	d := &Day13{}
	if _, err := d.Render(); !errors.Is(err, errors.ErrCodeNotReady) {
		t.Errorf("Render() before input error = %v, want %s", err, errors.ErrCodeNotReady)
	}
	if err := d.SetInput(puzzle.Lines(day13Sample)); err != nil {
		t.Fatalf("SetInput() error = %v", err)
	}
	got, err := d.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "#####\n#...#\n#...#\n#...#\n#####\n"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
	var _ puzzle.Renderer = d
}

func TestDay13RenderNegative(t *testing.T) {
	// Folding at x=2 mirrors x=6 to x=-2.
	d := &Day13{}
	in := "0,0\n6,0\n\nfold along x=2\n"
	puzzletest.PartTwo(t, d, in, 2)
	got, err := d.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := "#.#\n"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestDay13Malformed(t *testing.T) {
	tests := []string{
		"",
		"1,2\n3,4\n",
		"1,2\n\nfold along z=3\n",
		"1;2\n\nfold along x=3\n",
		"1,2\n\nfold x=3\n",
	}
	for _, in := range tests {
		puzzletest.Malformed(t, &Day13{}, in)
	}
}
