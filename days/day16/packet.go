package day16

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors of the BITS decoder.
var (
	// ErrBadHex indicates that the transmission is not valid hexadecimal.
	ErrBadHex = errors.New("day16: transmission is not hexadecimal")

	// ErrTruncated indicates that the stream ended inside a packet.
	ErrTruncated = errors.New("day16: truncated packet")

	// ErrBadOperator indicates an operator with the wrong number of operands.
	ErrBadOperator = errors.New("day16: bad operator arity")

	// ErrLiteralOverflow indicates a literal wider than 64 bits.
	ErrLiteralOverflow = errors.New("day16: literal overflows 64 bits")
)

// Packet type IDs.
const (
	TypeSum     = 0
	TypeProduct = 1
	TypeMin     = 2
	TypeMax     = 3
	TypeLiteral = 4
	TypeGreater = 5
	TypeLess    = 6
	TypeEqual   = 7
)

var opNames = [...]string{"sum", "product", "min", "max", "literal", "gt", "lt", "eq"}

// Packet is a decoded BITS packet.
type Packet struct {
	Version  int
	Type     int
	Literal  uint64    // TypeLiteral only
	Children []*Packet // operators only
}

// bitReader reads big-endian bit fields from a byte slice.
type bitReader struct {
	data []byte
	pos  int // bit offset
}

func (r *bitReader) remaining() int { return len(r.data)*8 - r.pos }

func (r *bitReader) read(n int) (uint64, error) {
	if n > r.remaining() {
		return 0, fmt.Errorf("%w: need %d bits at offset %d, have %d", ErrTruncated, n, r.pos, r.remaining())
	}
	var v uint64
	for i := 0; i < n; i++ {
		b := r.data[r.pos>>3] >> (7 - r.pos&7) & 1
		v = v<<1 | uint64(b)
		r.pos++
	}
	return v, nil
}

// Decode parses the outermost packet of a hexadecimal transmission. Trailing
// zero padding is ignored.
func Decode(transmission string) (*Packet, error) {
	data, err := hex.DecodeString(strings.TrimSpace(transmission))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHex, err)
	}
	r := &bitReader{data: data}
	return r.packet()
}

func (r *bitReader) packet() (*Packet, error) {
	version, err := r.read(3)
	if err != nil {
		return nil, err
	}
	typ, err := r.read(3)
	if err != nil {
		return nil, err
	}
	p := &Packet{Version: int(version), Type: int(typ)}
	if p.Type == TypeLiteral {
		p.Literal, err = r.literal()
		return p, err
	}
	p.Children, err = r.operands()
	if err != nil {
		return nil, err
	}
	if p.Type >= TypeGreater && len(p.Children) != 2 || len(p.Children) == 0 {
		return nil, fmt.Errorf("%w: %s with %d operands", ErrBadOperator, opNames[p.Type], len(p.Children))
	}
	return p, nil
}

// literal reads 5-bit groups until one has a clear continuation bit.
func (r *bitReader) literal() (uint64, error) {
	var v uint64
	for groups := 0; ; groups++ {
		g, err := r.read(5)
		if err != nil {
			return 0, err
		}
		if groups == 16 {
			return 0, ErrLiteralOverflow
		}
		v = v<<4 | g&0xF
		if g&0x10 == 0 {
			return v, nil
		}
	}
}

// operands reads sub-packets by total bit length (mode 0) or by count (mode 1).
func (r *bitReader) operands() ([]*Packet, error) {
	mode, err := r.read(1)
	if err != nil {
		return nil, err
	}
	var out []*Packet
	if mode == 0 {
		length, err := r.read(15)
		if err != nil {
			return nil, err
		}
		end := r.pos + int(length)
		if int(length) > r.remaining() {
			return nil, fmt.Errorf("%w: sub-packets claim %d bits, have %d", ErrTruncated, length, r.remaining())
		}
		for r.pos < end {
			c, err := r.packet()
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
		if r.pos != end {
			return nil, fmt.Errorf("%w: sub-packets overran their length by %d bits", ErrTruncated, r.pos-end)
		}
		return out, nil
	}
	count, err := r.read(11)
	if err != nil {
		return nil, err
	}
	for i := 0; i < int(count); i++ {
		c, err := r.packet()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// VersionSum adds the versions of p and every nested packet.
func (p *Packet) VersionSum() int {
	s := p.Version
	for _, c := range p.Children {
		s += c.VersionSum()
	}
	return s
}

// Value evaluates the expression rooted at p.
func (p *Packet) Value() uint64 {
	if p.Type == TypeLiteral {
		return p.Literal
	}
	vals := make([]uint64, len(p.Children))
	for i, c := range p.Children {
		vals[i] = c.Value()
	}
	switch p.Type {
	case TypeSum:
		var s uint64
		for _, v := range vals {
			s += v
		}
		return s
	case TypeProduct:
		s := uint64(1)
		for _, v := range vals {
			s *= v
		}
		return s
	case TypeMin:
		m := vals[0]
		for _, v := range vals[1:] {
			m = min(m, v)
		}
		return m
	case TypeMax:
		m := vals[0]
		for _, v := range vals[1:] {
			m = max(m, v)
		}
		return m
	case TypeGreater:
		return boolValue(vals[0] > vals[1])
	case TypeLess:
		return boolValue(vals[0] < vals[1])
	default:
		return boolValue(vals[0] == vals[1])
	}
}

func boolValue(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// String renders the packet as an s-expression, e.g. "(sum 1 2)".
func (p *Packet) String() string {
	if p.Type == TypeLiteral {
		return fmt.Sprint(p.Literal)
	}
	parts := make([]string, 0, len(p.Children)+1)
	parts = append(parts, opNames[p.Type])
	for _, c := range p.Children {
		parts = append(parts, c.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}
