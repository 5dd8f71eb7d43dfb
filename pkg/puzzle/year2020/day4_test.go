package year2020

import (
	"testing"

	"github.com/matzehuels/adventofcode/pkg/puzzle/puzzletest"
)

const day4Sample = `ecl:gry pid:860033327 eyr:2020 hcl:#fffffd
byr:1937 iyr:2017 cid:147 hgt:183cm

iyr:2013 ecl:amb cid:350 eyr:2023 pid:028048884
hcl:#cfa07d byr:1929

hcl:#ae17e1 iyr:2013
eyr:2024
ecl:brn pid:760753108 byr:1931
hgt:179cm

hcl:#cfa07d eyr:2025 pid:166559648
iyr:2011 ecl:brn hgt:59in
`

const day4Invalid = `eyr:1972 cid:100
hcl:#18171d ecl:amb hgt:170 pid:186cm iyr:2018 byr:1926

iyr:2019
hcl:#602927 eyr:1967 hgt:170cm
ecl:grn pid:012533040 byr:1946

hcl:dab227 iyr:2012
ecl:brn hgt:182cm pid:021572410 eyr:2020 byr:1992 cid:277

hgt:59cm ecl:zzz
eyr:2038 hcl:74454a iyr:2023
pid:3556412378 byr:2007
`

const day4Valid = `pid:087499704 hgt:74in ecl:grn iyr:2012 eyr:2030 byr:1980
hcl:#623a2f

eyr:2029 ecl:blu cid:129 byr:1989
iyr:2014 pid:896056539 hcl:#a97842 hgt:165cm

hcl:#888785
hgt:164cm byr:2001 iyr:2015 cid:88
pid:545766238 ecl:hzl
eyr:2022

iyr:2010 hgt:158cm hcl:#b6652a ecl:blu byr:1944 eyr:2021 pid:093154719
`

func TestDay4(t *testing.T) {
	puzzletest.Info(t, &Day4{}, "Passport Processing", 2020, 4)
	puzzletest.NotReady(t, &Day4{})
	puzzletest.Sample(t, &Day4{}, day4Sample, 2, 2)
	puzzletest.PartTwo(t, &Day4{}, day4Invalid, 0)
	puzzletest.PartTwo(t, &Day4{}, day4Valid, 4)
}

func TestPassportFieldRules(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		got  bool
	}{
		{"byr valid", true, yearIn("2002", 1920, 2002)},
		{"byr too late", false, yearIn("2003", 1920, 2002)},
		{"byr five digits", false, yearIn("02002", 1920, 2002)},
		{"hgt cm", true, heightValid("190cm")},
		{"hgt in", true, heightValid("60in")},
		{"hgt too tall", false, heightValid("190in")},
		{"hgt no unit", false, heightValid("190")},
		{"hcl valid", true, hairColourRe.MatchString("#123abc")},
		{"hcl bad letter", false, hairColourRe.MatchString("#123abz")},
		{"hcl no hash", false, hairColourRe.MatchString("123abc")},
		{"pid valid", true, passportIDRe.MatchString("000000001")},
		{"pid ten digits", false, passportIDRe.MatchString("0123456789")},
	}
	for _, tt := range tests {
		if tt.got != tt.ok {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.ok)
		}
	}
}

func TestDay4Malformed(t *testing.T) {
	for _, in := range []string{"", "byr:1920 nocolon\n"} {
		puzzletest.Malformed(t, &Day4{}, in)
	}
}
