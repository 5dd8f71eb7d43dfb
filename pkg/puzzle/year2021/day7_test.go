package year2021

import (
	"testing"

	"github.com/matzehuels/adventofcode/pkg/puzzle/puzzletest"
)

func TestDay7(t *testing.T) {
	puzzletest.Info(t, &Day7{}, "The Treachery of Whales", 2021, 7)
	puzzletest.NotReady(t, &Day7{})
	puzzletest.Sample(t, &Day7{}, "16,1,2,0,4,2,7,1,2,14\n", 37, 168)
}

func TestDay7SingleCrab(t *testing.T) {
	puzzletest.Sample(t, &Day7{}, "42\n", 0, 0)
}

func TestDay7Malformed(t *testing.T) {
	for _, in := range []string{"", "16,one,2"} {
		puzzletest.Malformed(t, &Day7{}, in)
	}
}
