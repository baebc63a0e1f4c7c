package nodedesc

import (
	"encoding/binary"
	"math"
)

// Fixed widths of the primitive fields.
const (
	intWidth   = 8
	floatWidth = 8
	flagWidth  = 1
	lenWidth   = 4
)

// Encoder appends primitive fields to an in-memory buffer.
// The zero value is ready to use.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an encoder with capacity for n bytes.
func NewEncoder(n int) *Encoder { return &Encoder{buf: make([]byte, 0, n)} }

// WriteInt appends v as a little-endian int64.
func (e *Encoder) WriteInt(v int) {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, uint64(int64(v)))
}

// WriteFloat appends the IEEE-754 bits of v.
func (e *Encoder) WriteFloat(v float64) {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, math.Float64bits(v))
}

// WriteFlag appends one byte: 1 for true, 0 for false.
func (e *Encoder) WriteFlag(b bool) {
	var v byte
	if b {
		v = 1
	}
	e.buf = append(e.buf, v)
}

// WriteBytes appends a uint32 length followed by p.
func (e *Encoder) WriteBytes(p []byte) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(len(p)))
	e.buf = append(e.buf, p...)
}

// Bytes returns the encoded stream. It aliases the encoder's buffer.
func (e *Encoder) Bytes() []byte { return e.buf }

// Len returns the number of bytes written.
func (e *Encoder) Len() int { return len(e.buf) }

// Decoder reads primitive fields from a byte slice.
type Decoder struct {
	buf []byte
	off int
}

// NewDecoder returns a decoder over b. b is not copied.
func NewDecoder(b []byte) *Decoder { return &Decoder{buf: b} }

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int { return len(d.buf) - d.off }

func (d *Decoder) take(n int) ([]byte, error) {
	if n < 0 || d.Remaining() < n {
		return nil, ErrTruncated
	}
	p := d.buf[d.off : d.off+n]
	d.off += n

	return p, nil
}

// ReadInt reads a little-endian int64.
func (d *Decoder) ReadInt() (int, error) {
	p, err := d.take(intWidth)
	if err != nil {
		return 0, err
	}

	return int(int64(binary.LittleEndian.Uint64(p))), nil
}

// ReadFloat reads IEEE-754 bits.
func (d *Decoder) ReadFloat() (float64, error) {
	p, err := d.take(floatWidth)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(p)), nil
}

// ReadFlag reads one byte and reports whether it is nonzero.
// WriteFlag only emits 0 and 1, but any nonzero byte reads as set.
func (d *Decoder) ReadFlag() (bool, error) {
	p, err := d.take(flagWidth)
	if err != nil {
		return false, err
	}

	return p[0] != 0, nil
}

// ReadBytes reads a length-prefixed byte string. The result is a copy.
func (d *Decoder) ReadBytes() ([]byte, error) {
	p, err := d.take(lenWidth)
	if err != nil {
		return nil, err
	}
	n := int(binary.LittleEndian.Uint32(p))
	if p, err = d.take(n); err != nil {
		return nil, err
	}

	return append(make([]byte, 0, n), p...), nil
}

// readCount reads a non-negative element count and checks that at least
// count*width bytes remain.
func (d *Decoder) readCount(width int) (int, error) {
	n, err := d.ReadInt()
	if err != nil {
		return 0, err
	}
	if n < 0 || n > d.Remaining()/width {
		return 0, ErrTruncated
	}

	return n, nil
}
