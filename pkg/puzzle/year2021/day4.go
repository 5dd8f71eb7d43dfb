package year2021

import (
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

const bingoSize = 5

type bingoBoard [bingoSize][bingoSize]int

// Day4 plays bingo against a giant squid.
type Day4 struct {
	draws  []int
	boards []bingoBoard
}

func (d *Day4) Info() puzzle.Info {
	return puzzle.Info{Name: "Giant Squid", Year: 2021, Day: 4}
}

func (d *Day4) SetInput(lines []string) error {
	d.draws, d.boards = nil, nil
	blocks := puzzle.Blocks(lines)
	if len(blocks) < 2 || len(blocks[0]) != 1 {
		return errors.New(errors.ErrCodeInvalidInput, "want a line of draws followed by boards")
	}
	draws, err := puzzle.CSVInts(blocks[0][0])
	if err != nil {
		return err
	}
	boards := make([]bingoBoard, 0, len(blocks)-1)
	for i, block := range blocks[1:] {
		if len(block) != bingoSize {
			return errors.New(errors.ErrCodeInvalidInput, "board %d: %d rows, want %d", i+1, len(block), bingoSize)
		}
		var b bingoBoard
		for r, row := range block {
			fields := strings.Fields(row)
			if len(fields) != bingoSize {
				return errors.New(errors.ErrCodeInvalidInput, "board %d row %d: %d numbers, want %d", i+1, r+1, len(fields), bingoSize)
			}
			for c, f := range fields {
				n, err := puzzle.Atoi(r+1, f)
				if err != nil {
					return errors.Wrap(errors.ErrCodeInvalidInput, err, "board %d", i+1)
				}
				b[r][c] = n
			}
		}
		boards = append(boards, b)
	}
	d.draws, d.boards = draws, boards
	return nil
}

// PartOne scores the first board to win.
func (d *Day4) PartOne() (int64, error) {
	if d.boards == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	scores := d.play()
	if len(scores) == 0 {
		return 0, errors.New(errors.ErrCodeNoSolution, "no board wins")
	}
	return scores[0], nil
}

// PartTwo scores the last board to win.
func (d *Day4) PartTwo() (int64, error) {
	if d.boards == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	scores := d.play()
	if len(scores) == 0 {
		return 0, errors.New(errors.ErrCodeNoSolution, "no board wins")
	}
	return scores[len(scores)-1], nil
}

// play draws every number and returns the winning scores in order of winning.
// A score is the sum of unmarked numbers times the number that completed a
// row or column.
func (d *Day4) play() []int64 {
	marked := make([][bingoSize][bingoSize]bool, len(d.boards))
	won := make([]bool, len(d.boards))
	var scores []int64
	for _, n := range d.draws {
		for i, b := range d.boards {
			if won[i] {
				continue
			}
			for r := range bingoSize {
				for c := range bingoSize {
					if b[r][c] == n {
						marked[i][r][c] = true
					}
				}
			}
			if complete(&marked[i]) {
				won[i] = true
				var unmarked int64
				for r := range bingoSize {
					for c := range bingoSize {
						if !marked[i][r][c] {
							unmarked += int64(b[r][c])
						}
					}
				}
				scores = append(scores, unmarked*int64(n))
			}
		}
	}
	return scores
}

func complete(m *[bingoSize][bingoSize]bool) bool {
	for i := range bingoSize {
		row, col := true, true
		for j := range bingoSize {
			row = row && m[i][j]
			col = col && m[j][i]
		}
		if row || col {
			return true
		}
	}
	return false
}
