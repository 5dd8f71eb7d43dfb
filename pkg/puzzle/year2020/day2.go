package year2020

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

var policyRe = regexp.MustCompile(`^(\d+)-(\d+) ([a-z]): ([a-z]*)$`)

type passwordPolicy struct {
	lo, hi   int
	letter   byte
	password string
}

// Day2 checks passwords against the shopkeeper's policies.
type Day2 struct {
	policies []passwordPolicy
}

func (d *Day2) Info() puzzle.Info {
	return puzzle.Info{Name: "Password Philosophy", Year: 2020, Day: 2}
}

func (d *Day2) SetInput(lines []string) error {
	d.policies = nil
	var policies []passwordPolicy
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		m := policyRe.FindStringSubmatch(strings.TrimSpace(l))
		if m == nil {
			return errors.New(errors.ErrCodeInvalidInput, "line %d: %q is not a password policy", i+1, l)
		}
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if lo < 1 || lo > hi {
			return errors.New(errors.ErrCodeInvalidInput, "line %d: bad range %d-%d", i+1, lo, hi)
		}
		policies = append(policies, passwordPolicy{lo: lo, hi: hi, letter: m[3][0], password: m[4]})
	}
	if len(policies) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no password policies in input")
	}
	d.policies = policies
	return nil
}

// PartOne counts passwords whose letter count lies within the policy range.
func (d *Day2) PartOne() (int64, error) {
	if d.policies == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	var valid int64
	for _, p := range d.policies {
		n := strings.Count(p.password, string(p.letter))
		if n >= p.lo && n <= p.hi {
			valid++
		}
	}
	return valid, nil
}

// PartTwo counts passwords where exactly one of the two 1-based positions
// holds the letter.
func (d *Day2) PartTwo() (int64, error) {
	if d.policies == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	var valid int64
	for _, p := range d.policies {
		if p.at(p.lo) != p.at(p.hi) {
			valid++
		}
	}
	return valid, nil
}

func (p passwordPolicy) at(pos int) bool {
	return pos <= len(p.password) && p.password[pos-1] == p.letter
}
