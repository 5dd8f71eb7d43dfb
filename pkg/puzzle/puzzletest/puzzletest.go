// Package puzzletest provides assertions shared by the puzzle unit tests.
package puzzletest

import (
	"testing"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// Sample feeds input to s and checks both answers. Part two is solved before
// part one, then part one again, so units that leak state between parts fail.
func Sample(t *testing.T, s puzzle.Solver, input string, wantOne, wantTwo int64) {
	t.Helper()
	if err := s.SetInput(puzzle.Lines(input)); err != nil {
		t.Fatalf("SetInput() error = %v", err)
	}
	checkPart(t, s, puzzle.PartTwo, wantTwo)
	checkPart(t, s, puzzle.PartOne, wantOne)
	checkPart(t, s, puzzle.PartTwo, wantTwo)
}

// PartOne feeds input to s and checks only the first answer.
func PartOne(t *testing.T, s puzzle.Solver, input string, want int64) {
	t.Helper()
	if err := s.SetInput(puzzle.Lines(input)); err != nil {
		t.Fatalf("SetInput() error = %v", err)
	}
	checkPart(t, s, puzzle.PartOne, want)
}

// PartTwo feeds input to s and checks only the second answer.
func PartTwo(t *testing.T, s puzzle.Solver, input string, want int64) {
	t.Helper()
	if err := s.SetInput(puzzle.Lines(input)); err != nil {
		t.Fatalf("SetInput() error = %v", err)
	}
	checkPart(t, s, puzzle.PartTwo, want)
}

func checkPart(t *testing.T, s puzzle.Solver, p puzzle.Part, want int64) {
	t.Helper()
	got, err := puzzle.Solve(s, p)
	if err != nil {
		t.Fatalf("%s %s error = %v", s.Info(), p, err)
	}
	if got != want {
		t.Errorf("%s %s = %d, want %d", s.Info(), p, got, want)
	}
}

// NotReady checks that both parts fail with NOT_READY on a fresh unit.
func NotReady(t *testing.T, s puzzle.Solver) {
	t.Helper()
	for _, p := range puzzle.Parts {
		_, err := puzzle.Solve(s, p)
		if !errors.Is(err, errors.ErrCodeNotReady) {
			t.Errorf("%s %s before input: error = %v, want %s", s.Info(), p, err, errors.ErrCodeNotReady)
		}
	}
}

// Malformed checks that input is rejected with INVALID_INPUT and that the
// unit is left not ready.
func Malformed(t *testing.T, s puzzle.Solver, input string) {
	t.Helper()
	err := s.SetInput(puzzle.Lines(input))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("%s SetInput(%q) error = %v, want %s", s.Info(), input, err, errors.ErrCodeInvalidInput)
	}
	NotReady(t, s)
}

// Reset loads valid input and solves both parts, then feeds malformed input
// and checks that nothing of the earlier input survives.
func Reset(t *testing.T, s puzzle.Solver, valid, malformed string) {
	t.Helper()
	if err := s.SetInput(puzzle.Lines(valid)); err != nil {
		t.Fatalf("%s SetInput(valid) error = %v", s.Info(), err)
	}
	for _, p := range puzzle.Parts {
		_, _ = puzzle.Solve(s, p)
	}
	Malformed(t, s, malformed)
}

// Info checks a unit's identity.
func Info(t *testing.T, s puzzle.Solver, name string, year, day int) {
	t.Helper()
	want := puzzle.Info{Name: name, Year: year, Day: day}
	if got := s.Info(); got != want {
		t.Errorf("Info() = %+v, want %+v", got, want)
	}
}
