package year2021

import (
	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

const (
	spawnTimer  = 8
	resetTimer  = 6
	timerBucket = spawnTimer + 1
)

// Day6 models the exponential growth of a lanternfish school.
type Day6 struct {
	timers *[timerBucket]int64 // fish count per timer value
}

func (d *Day6) Info() puzzle.Info {
	return puzzle.Info{Name: "Lanternfish", Year: 2021, Day: 6}
}

func (d *Day6) SetInput(lines []string) error {
	d.timers = nil
	line, err := puzzle.FirstLine(lines)
	if err != nil {
		return err
	}
	fish, err := puzzle.CSVInts(line)
	if err != nil {
		return err
	}
	var timers [timerBucket]int64
	for _, f := range fish {
		if f < 0 || f > spawnTimer {
			return errors.New(errors.ErrCodeInvalidInput, "timer %d out of range 0..%d", f, spawnTimer)
		}
		timers[f]++
	}
	d.timers = &timers
	return nil
}

// PartOne counts the fish after 80 days.
func (d *Day6) PartOne() (int64, error) {
	if d.timers == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return d.simulate(80), nil
}

// PartTwo counts the fish after 256 days.
func (d *Day6) PartTwo() (int64, error) {
	if d.timers == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return d.simulate(256), nil
}

func (d *Day6) simulate(days int) int64 {
	t := *d.timers
	for range days {
		spawning := t[0]
		copy(t[:], t[1:])
		t[spawnTimer] = spawning
		t[resetTimer] += spawning
	}
	var total int64
	for _, n := range t {
		total += n
	}
	return total
}
