package year2021

import (
	"testing"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
	"github.com/matzehuels/adventofcode/pkg/puzzle/puzzletest"
)

const day10Sample = `[({(<(())[]>[[{[]{<()<>>
[(()[<>])]({[<{<<[]>>(
{([(<{}[<>[]}>{[]{[(<()>
(((({<>}<{<{<>}{[]{[]{}
[[<[([]))<([[{}[[()]]]
[{[{({}]{}}([{[{{{}}([]
{<[[]]>}<{[{[{[]{()[[[]
[<(<(<(<{}))><([]([]()
<{([([[(<>()){}]>(<<{{
<{([{{}}[<[[[<>{}]]]>[]]
`

func TestDay10(t *testing.T) {
	puzzletest.Info(t, &Day10{}, "Syntax Scoring", 2021, 10)
	puzzletest.NotReady(t, &Day10{})
	puzzletest.Sample(t, &Day10{}, day10Sample, 26397, 288957)
}

func TestCheckLine(t *testing.T) {
	tests := []struct {
		line    string
		illegal rune
		missing string
	}{
		{"{([(<{}[<>[]}>{[]{[(<()>", '}', ""},
		{"[({(<(())[]>[[{[]{<()<>>", 0, "}}]])})]"},
		{"<{([{{}}[<[[[<>{}]]]>[]]", 0, "])}>"},
		{"()[]", 0, ""},
	}
	for _, tt := range tests {
		illegal, missing := check(tt.line)
		if illegal != tt.illegal || string(missing) != tt.missing {
			t.Errorf("check(%q) = %q, %q, want %q, %q", tt.line, illegal, string(missing), tt.illegal, tt.missing)
		}
	}
}

func TestDay10NoIncompleteLines(t *testing.T) {
	d := &Day10{}
	if err := d.SetInput(puzzle.Lines("(]\n()\n")); err != nil {
		t.Fatalf("SetInput() error = %v", err)
	}
	if got, err := d.PartOne(); err != nil || got != 57 {
		t.Errorf("PartOne() = %d, %v, want 57", got, err)
	}
	if _, err := d.PartTwo(); !errors.Is(err, errors.ErrCodeNoSolution) {
		t.Errorf("PartTwo() error = %v, want %s", err, errors.ErrCodeNoSolution)
	}
}

func TestDay10Malformed(t *testing.T) {
	for _, in := range []string{"", "(a)"} {
		puzzletest.Malformed(t, &Day10{}, in)
	}
}
