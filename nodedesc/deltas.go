package nodedesc

// Bound is one (index, value) bound change.
type Bound struct {
	Index int
	Value float64
}

// ObjectDeltas holds the bound changes of one object class (variables or
// constraints) relative to the parent node.
type ObjectDeltas struct {
	LbHard []Bound
	UbHard []Bound
	LbSoft []Bound
	UbSoft []Bound
}

// BoundDeltas is the generic tree-node part of a descriptor.
type BoundDeltas struct {
	Vars ObjectDeltas
	Cons ObjectDeltas
}

const boundWidth = intWidth + floatWidth

// Encode writes variables then constraints; each class as hard lb, hard ub,
// soft lb, soft ub; each list as a count followed by (index, value) pairs.
func (b *BoundDeltas) Encode(e *Encoder) {
	b.Vars.encode(e)
	b.Cons.encode(e)
}

// Decode replaces b with the deltas read from d.
func (b *BoundDeltas) Decode(d *Decoder) error {
	if err := b.Vars.decode(d); err != nil {
		return err
	}

	return b.Cons.decode(d)
}

// Empty reports whether no list holds a change.
func (b *BoundDeltas) Empty() bool {
	return b.Vars.count() == 0 && b.Cons.count() == 0
}

func (o *ObjectDeltas) lists() [4]*[]Bound {
	return [4]*[]Bound{&o.LbHard, &o.UbHard, &o.LbSoft, &o.UbSoft}
}

func (o *ObjectDeltas) count() int {
	var n int
	for _, l := range o.lists() {
		n += len(*l)
	}

	return n
}

func (o *ObjectDeltas) encode(e *Encoder) {
	for _, l := range o.lists() {
		e.WriteInt(len(*l))
		for _, b := range *l {
			e.WriteInt(b.Index)
			e.WriteFloat(b.Value)
		}
	}
}

func (o *ObjectDeltas) decode(d *Decoder) error {
	for _, l := range o.lists() {
		n, err := d.readCount(boundWidth)
		if err != nil {
			return err
		}
		*l = nil
		if n == 0 {
			continue
		}
		out := make([]Bound, n)
		for i := range out {
			if out[i].Index, err = d.ReadInt(); err != nil {
				return err
			}
			if out[i].Value, err = d.ReadFloat(); err != nil {
				return err
			}
		}
		*l = out
	}

	return nil
}
