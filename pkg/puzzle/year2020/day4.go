package year2020

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// requiredFields are the passport fields that must be present. cid is optional.
var requiredFields = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

var (
	hairColourRe = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	passportIDRe = regexp.MustCompile(`^[0-9]{9}$`)
	eyeColours   = []string{"amb", "blu", "brn", "gry", "grn", "hzl", "oth"}
)

type passport map[string]string

// Day4 validates passports made of blank-line separated key:value records.
type Day4 struct {
	passports []passport
}

func (d *Day4) Info() puzzle.Info {
	return puzzle.Info{Name: "Passport Processing", Year: 2020, Day: 4}
}

func (d *Day4) SetInput(lines []string) error {
	d.passports = nil
	blocks := puzzle.Blocks(lines)
	if len(blocks) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no passports in input")
	}
	passports := make([]passport, 0, len(blocks))
	for i, block := range blocks {
		p := passport{}
		for _, field := range strings.Fields(strings.Join(block, " ")) {
			key, value, ok := strings.Cut(field, ":")
			if !ok || key == "" {
				return errors.New(errors.ErrCodeInvalidInput, "passport %d: %q is not key:value", i+1, field)
			}
			p[key] = value
		}
		passports = append(passports, p)
	}
	d.passports = passports
	return nil
}

// PartOne counts passports carrying every required field.
func (d *Day4) PartOne() (int64, error) {
	if d.passports == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	var n int64
	for _, p := range d.passports {
		if p.complete() {
			n++
		}
	}
	return n, nil
}

// PartTwo counts complete passports whose fields also pass validation.
func (d *Day4) PartTwo() (int64, error) {
	if d.passports == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	var n int64
	for _, p := range d.passports {
		if p.complete() && p.valid() {
			n++
		}
	}
	return n, nil
}

func (p passport) complete() bool {
	for _, f := range requiredFields {
		if _, ok := p[f]; !ok {
			return false
		}
	}
	return true
}

func (p passport) valid() bool {
	return yearIn(p["byr"], 1920, 2002) &&
		yearIn(p["iyr"], 2010, 2020) &&
		yearIn(p["eyr"], 2020, 2030) &&
		heightValid(p["hgt"]) &&
		hairColourRe.MatchString(p["hcl"]) &&
		slices.Contains(eyeColours, p["ecl"]) &&
		passportIDRe.MatchString(p["pid"])
}

func yearIn(s string, lo, hi int) bool {
	if len(s) != 4 {
		return false
	}
	return numberIn(s, lo, hi)
}

func heightValid(s string) bool {
	if v, ok := strings.CutSuffix(s, "cm"); ok {
		return numberIn(v, 150, 193)
	}
	if v, ok := strings.CutSuffix(s, "in"); ok {
		return numberIn(v, 59, 76)
	}
	return false
}

func numberIn(s string, lo, hi int) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= lo && n <= hi
}
