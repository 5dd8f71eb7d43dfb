package year2021

import (
	"testing"

	"github.com/matzehuels/adventofcode/pkg/puzzle/puzzletest"
)

func TestDay16(t *testing.T) {
	puzzletest.Info(t, &Day16{}, "Packet Decoder", 2021, 16)
	puzzletest.NotReady(t, &Day16{})
	puzzletest.Sample(t, &Day16{}, "D2FE28\n", 6, 2021)
	puzzletest.Sample(t, &Day16{}, "38006F45291200\n", 9, 1)
}

func TestDay16VersionSums(t *testing.T) {
	tests := []struct {
		hex  string
		want int64
	}{
		{"8A004A801A8002F478", 16},
		{"620080001611562C8802118E34", 12},
		{"C0015000016115A2E0802F182340", 23},
		{"A0016C880162017C3686B18A3D4780", 31},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			puzzletest.PartOne(t, &Day16{}, tt.hex, tt.want)
		})
	}
}

func TestDay16Evaluate(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want int64
	}{
		{"sum", "C200B40A82", 3},
		{"product", "04005AC33890", 54},
		{"minimum", "880086C3E88112", 7},
		{"maximum", "CE00C43D881120", 9},
		{"less than", "D8005AC2A8F0", 1},
		{"greater than", "F600BC2D8F", 0},
		{"equal", "9C005AC2F8F0", 0},
		{"nested", "9C0141080250320F1802104A08", 1},
		{"lower case", "c200b40a82", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			puzzletest.PartTwo(t, &Day16{}, tt.hex, tt.want)
		})
	}
}

func TestDay16Malformed(t *testing.T) {
	tests := []struct {
		name string
		hex  string
	}{
		{"empty", ""},
		{"not hex", "D2FG28"},
		{"truncated literal", "D2FE2"},
		{"truncated operator", "38006F4529"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			puzzletest.Malformed(t, &Day16{}, tt.hex)
		})
	}
}
