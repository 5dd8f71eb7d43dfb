package year2021

import (
	"math"
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// Packet type IDs.
const (
	opSum     = 0
	opProduct = 1
	opMinimum = 2
	opMaximum = 3
	opLiteral = 4
	opGreater = 5
	opLess    = 6
	opEqual   = 7
)

// packet is a node of a decoded BITS transmission.
type packet struct {
	version  int
	typeID   int
	literal  int64
	children []*packet
}

func (p *packet) versionSum() int64 {
	sum := int64(p.version)
	for _, c := range p.children {
		sum += c.versionSum()
	}
	return sum
}

func (p *packet) value() int64 {
	if p.typeID == opLiteral {
		return p.literal
	}
	vals := make([]int64, len(p.children))
	for i, c := range p.children {
		vals[i] = c.value()
	}
	switch p.typeID {
	case opSum:
		var s int64
		for _, v := range vals {
			s += v
		}
		return s
	case opProduct:
		prod := int64(1)
		for _, v := range vals {
			prod *= v
		}
		return prod
	case opMinimum:
		m := int64(math.MaxInt64)
		for _, v := range vals {
			m = min(m, v)
		}
		return m
	case opMaximum:
		m := int64(math.MinInt64)
		for _, v := range vals {
			m = max(m, v)
		}
		return m
	case opGreater:
		return boolInt(vals[0] > vals[1])
	case opLess:
		return boolInt(vals[0] < vals[1])
	case opEqual:
		return boolInt(vals[0] == vals[1])
	}
	return 0
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// bitReader reads big-endian bit fields from a hex transmission.
type bitReader struct {
	bits []byte // one 0/1 per element
	pos  int
}

func newBitReader(hex string) (*bitReader, error) {
	r := &bitReader{bits: make([]byte, 0, len(hex)*4)}
	for i := 0; i < len(hex); i++ {
		var v byte
		switch c := hex[i]; {
		case c >= '0' && c <= '9':
			v = c - '0'
		case c >= 'A' && c <= 'F':
			v = c - 'A' + 10
		case c >= 'a' && c <= 'f':
			v = c - 'a' + 10
		default:
			return nil, errors.New(errors.ErrCodeInvalidInput, "%q at %d is not a hex digit", c, i)
		}
		for b := 3; b >= 0; b-- {
			r.bits = append(r.bits, (v>>b)&1)
		}
	}
	return r, nil
}

func (r *bitReader) read(n int) (int64, error) {
	if r.pos+n > len(r.bits) {
		return 0, errors.New(errors.ErrCodeInvalidInput, "transmission truncated at bit %d", r.pos)
	}
	var v int64
	for _, b := range r.bits[r.pos : r.pos+n] {
		v = v<<1 | int64(b)
	}
	r.pos += n
	return v, nil
}

func (r *bitReader) packet() (*packet, error) {
	version, err := r.read(3)
	if err != nil {
		return nil, err
	}
	typeID, err := r.read(3)
	if err != nil {
		return nil, err
	}
	p := &packet{version: int(version), typeID: int(typeID)}

	if p.typeID == opLiteral {
		for groups := 0; ; groups++ {
			if groups == 16 {
				return nil, errors.New(errors.ErrCodeInvalidInput, "literal does not fit in 64 bits")
			}
			group, err := r.read(5)
			if err != nil {
				return nil, err
			}
			p.literal = p.literal<<4 | group&0xF
			if group&0x10 == 0 {
				return p, nil
			}
		}
	}

	lengthType, err := r.read(1)
	if err != nil {
		return nil, err
	}
	if lengthType == 0 {
		length, err := r.read(15)
		if err != nil {
			return nil, err
		}
		end := r.pos + int(length)
		for r.pos < end {
			c, err := r.packet()
			if err != nil {
				return nil, err
			}
			p.children = append(p.children, c)
		}
		if r.pos != end {
			return nil, errors.New(errors.ErrCodeInvalidInput, "sub-packets overrun their declared length")
		}
	} else {
		count, err := r.read(11)
		if err != nil {
			return nil, err
		}
		for range count {
			c, err := r.packet()
			if err != nil {
				return nil, err
			}
			p.children = append(p.children, c)
		}
	}

	switch {
	case len(p.children) == 0:
		return nil, errors.New(errors.ErrCodeInvalidInput, "operator packet type %d has no sub-packets", p.typeID)
	case p.typeID >= opGreater && len(p.children) != 2:
		return nil, errors.New(errors.ErrCodeInvalidInput, "comparison packet type %d has %d sub-packets, want 2", p.typeID, len(p.children))
	}
	return p, nil
}

// Day16 decodes a BITS transmission.
type Day16 struct {
	root *packet
}

func (d *Day16) Info() puzzle.Info {
	return puzzle.Info{Name: "Packet Decoder", Year: 2021, Day: 16}
}

// SetInput decodes the outermost packet. Trailing zero padding is ignored.
func (d *Day16) SetInput(lines []string) error {
	d.root = nil
	line, err := puzzle.FirstLine(lines)
	if err != nil {
		return err
	}
	r, err := newBitReader(strings.TrimSpace(line))
	if err != nil {
		return err
	}
	root, err := r.packet()
	if err != nil {
		return err
	}
	d.root = root
	return nil
}

// PartOne sums the version numbers of every packet.
func (d *Day16) PartOne() (int64, error) {
	if d.root == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return d.root.versionSum(), nil
}

// PartTwo evaluates the expression the transmission encodes.
func (d *Day16) PartTwo() (int64, error) {
	if d.root == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return d.root.value(), nil
}
