// SPDX-License-Identifier: MIT

// Package nodedesc - Node descriptor: branching record, bound deltas and warm start.
//
// Purpose:
//   - Carry the incremental state of a search node across a serialization boundary.
//   - Own at most one warm start and release it exactly once.
//
// Wire order:
//   - BoundDeltas (Vars, then Cons), branched direction, index, value,
//     availability flag, length-prefixed warm-start payload when the flag is set.
//
// Note:
//   - Decode releases the held warm start before reading, even if the stream turns out to be bad.
//   - A descriptor has one owner at a time; it is not safe for concurrent use.

package nodedesc

// Descriptor is the per-node incremental state.
type Descriptor struct {
	// Deltas is the generic tree-node part; it is encoded first.
	Deltas BoundDeltas

	branchedDir int
	branchedInd int
	branchedVal float64

	basis     *WarmStart
	onRelease func()
}

// New returns a descriptor with no branching information:
// direction 0, index -1, value 0, no warm start.
func New() *Descriptor {
	return &Descriptor{branchedInd: -1}
}

// NewChild returns a descriptor for a node created by branching on variable
// ind in direction dir at value val.
func NewChild(dir, ind int, val float64) *Descriptor {
	return &Descriptor{branchedDir: dir, branchedInd: ind, branchedVal: val}
}

// BranchedDir returns the branching direction that created the node.
func (d *Descriptor) BranchedDir() int { return d.branchedDir }

// SetBranchedDir sets the branching direction.
func (d *Descriptor) SetBranchedDir(v int) { d.branchedDir = v }

// BranchedInd returns the index of the branched variable (-1 at the root).
func (d *Descriptor) BranchedInd() int { return d.branchedInd }

// SetBranchedInd sets the branched variable index.
func (d *Descriptor) SetBranchedInd(v int) { d.branchedInd = v }

// BranchedVal returns the value branched on.
func (d *Descriptor) BranchedVal() float64 { return d.branchedVal }

// SetBranchedVal sets the branched value.
func (d *Descriptor) SetBranchedVal(v float64) { d.branchedVal = v }

// Basis returns the warm start, nil when unset.
func (d *Descriptor) Basis() *WarmStart { return d.basis }

// SetBasis installs ws, taking ownership of it, and releases the previous
// warm start. ws may be nil to clear the slot. The caller must not use ws
// after the call.
func (d *Descriptor) SetBasis(ws *WarmStart) {
	if d.basis != nil && d.basis != ws {
		d.basis.Release()
		if d.onRelease != nil {
			d.onRelease()
		}
	}
	d.basis = ws
}

// OnRelease registers fn to run each time d releases a warm start it held,
// through SetBasis, Close or Decode. A nil fn removes the hook. The hook is
// not part of the encoded state.
func (d *Descriptor) OnRelease(fn func()) { d.onRelease = fn }

// Close releases the warm start. Called when the search engine discards the node.
func (d *Descriptor) Close() { d.SetBasis(nil) }

// Encode writes the base deltas, then the branching fields and the warm start.
func (d *Descriptor) Encode(e *Encoder) error {
	if d == nil {
		return ErrNilDescriptor
	}
	d.Deltas.Encode(e)
	e.WriteInt(d.branchedDir)
	e.WriteInt(d.branchedInd)
	e.WriteFloat(d.branchedVal)
	e.WriteFlag(d.basis != nil)
	if d.basis != nil {
		e.WriteBytes(d.basis.payload)
	}

	return nil
}

// Decode reads a descriptor written by Encode into d. The base deltas are
// consumed first. Any warm start held by d is released, whether or not the
// stream carries a new one.
//
// On error d may be partially overwritten; its warm start is released anyway.
func (d *Descriptor) Decode(dec *Decoder) error {
	if d == nil {
		return ErrNilDescriptor
	}
	d.SetBasis(nil)

	var err error
	if err = d.Deltas.Decode(dec); err != nil {
		return err
	}
	if d.branchedDir, err = dec.ReadInt(); err != nil {
		return err
	}
	if d.branchedInd, err = dec.ReadInt(); err != nil {
		return err
	}
	if d.branchedVal, err = dec.ReadFloat(); err != nil {
		return err
	}

	ava, err := dec.ReadFlag()
	if err != nil {
		return err
	}
	if ava {
		payload, err := dec.ReadBytes()
		if err != nil {
			return err
		}
		d.basis = &WarmStart{payload: payload}
	}

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d *Descriptor) MarshalBinary() ([]byte, error) {
	e := NewEncoder(d.sizeHint())
	if err := d.Encode(e); err != nil {
		return nil, err
	}

	return e.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The whole slice
// must be consumed.
func (d *Descriptor) UnmarshalBinary(b []byte) error {
	dec := NewDecoder(b)
	if err := d.Decode(dec); err != nil {
		return err
	}
	if dec.Remaining() != 0 {
		return ErrTrailingBytes
	}

	return nil
}

// Marshal encodes d into a fresh byte slice.
func Marshal(d *Descriptor) ([]byte, error) { return d.MarshalBinary() }

// Unmarshal decodes b into a new descriptor.
func Unmarshal(b []byte) (*Descriptor, error) {
	d := New()
	if err := d.UnmarshalBinary(b); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Descriptor) sizeHint() int {
	if d == nil {
		return 0
	}
	n := 8*intWidth + boundWidth*(d.Deltas.Vars.count()+d.Deltas.Cons.count()) +
		2*intWidth + floatWidth + flagWidth
	if d.basis != nil {
		n += lenWidth + d.basis.Len()
	}

	return n
}
