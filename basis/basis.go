// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"

	"github.com/katalvlaran/disco/nodedesc"
)

// Status is the basis status of a column or row.
type Status uint8

const (
	// StatusFree marks a free nonbasic variable.
	StatusFree Status = iota
	// StatusBasic marks a basic variable.
	StatusBasic
	// StatusUpper marks a nonbasic variable at its upper bound.
	StatusUpper
	// StatusLower marks a nonbasic variable at its lower bound.
	StatusLower
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool { return s <= StatusLower }

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusFree:
		return "Free"
	case StatusBasic:
		return "Basic"
	case StatusUpper:
		return "Upper"
	case StatusLower:
		return "Lower"
	default:
		return "Unknown"
	}
}

// Basis holds the statuses of the structural columns and of the row
// (artificial) variables.
type Basis struct {
	Structural []Status
	Artificial []Status
}

// New returns a slack basis: every row basic, every column at its lower bound.
func New(numCols, numRows int) Basis {
	b := Basis{
		Structural: make([]Status, numCols),
		Artificial: make([]Status, numRows),
	}
	for i := range b.Structural {
		b.Structural[i] = StatusLower
	}
	for i := range b.Artificial {
		b.Artificial[i] = StatusBasic
	}

	return b
}

// NumBasic counts basic statuses over columns and rows.
func (b Basis) NumBasic() int {
	var n int
	for _, s := range b.Structural {
		if s == StatusBasic {
			n++
		}
	}
	for _, s := range b.Artificial {
		if s == StatusBasic {
			n++
		}
	}

	return n
}

// MarshalBinary writes both status lists, each as a length-prefixed byte string.
func (b Basis) MarshalBinary() ([]byte, error) {
	e := nodedesc.NewEncoder(8 + len(b.Structural) + len(b.Artificial))
	for _, list := range [2][]Status{b.Structural, b.Artificial} {
		raw := make([]byte, len(list))
		for i, s := range list {
			if !s.Valid() {
				return nil, fmt.Errorf("status %d at %d: %w", s, i, ErrBadStatus)
			}
			raw[i] = byte(s)
		}
		e.WriteBytes(raw)
	}

	return e.Bytes(), nil
}

// UnmarshalBinary reads a basis written by MarshalBinary.
func (b *Basis) UnmarshalBinary(p []byte) error {
	var (
		d     = nodedesc.NewDecoder(p)
		lists [2][]Status
	)
	for k := range lists {
		raw, err := d.ReadBytes()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		lists[k] = make([]Status, len(raw))
		for i, c := range raw {
			s := Status(c)
			if !s.Valid() {
				return fmt.Errorf("status %d at %d: %w", c, i, ErrBadStatus)
			}
			lists[k][i] = s
		}
	}
	if d.Remaining() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrMalformed, d.Remaining())
	}
	b.Structural, b.Artificial = lists[0], lists[1]

	return nil
}

// WarmStart encodes b as a node-descriptor warm start.
func (b Basis) WarmStart() (*nodedesc.WarmStart, error) {
	p, err := b.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return nodedesc.NewWarmStart(p), nil
}

// FromWarmStart decodes the basis held by ws.
func FromWarmStart(ws *nodedesc.WarmStart) (Basis, error) {
	var b Basis
	if ws == nil || ws.Released() {
		return b, ErrNilWarmStart
	}
	err := b.UnmarshalBinary(ws.Payload())

	return b, err
}
