package cone

import "fmt"

// WarningKind classifies a cone configuration warning.
type WarningKind string

const (
	// WarnUnsupportedType marks a cone whose type code is not 1 or 2.
	WarnUnsupportedType WarningKind = "unsupported_cone_type"
	// WarnRotatedSize marks a rotated cone with fewer than 3 members.
	WarnRotatedSize WarningKind = "rotated_cone_size"
)

// MinRotatedMembers is the smallest rotated cone the solver is expected to accept.
const MinRotatedMembers = 3

// Warning is a non-fatal configuration problem found on a cone record.
// The cone is still materialized; the relaxation solver may reject it later.
type Warning struct {
	Kind    WarningKind
	Cone    int // position in the cone list
	Type    Type
	Members int
}

func (w Warning) String() string {
	return fmt.Sprintf("cone %d (%s, %d members): %s", w.Cone, w.Type, w.Members, w.Kind)
}

// Check scans cones and reports configuration warnings in list order.
func Check(cones []Cone) []Warning {
	var out []Warning
	for i, c := range cones {
		if !c.Type.Valid() {
			out = append(out, Warning{Kind: WarnUnsupportedType, Cone: i, Type: c.Type, Members: len(c.Members)})
			continue
		}
		if c.Type == Rotated && len(c.Members) < MinRotatedMembers {
			out = append(out, Warning{Kind: WarnRotatedSize, Cone: i, Type: c.Type, Members: len(c.Members)})
		}
	}

	return out
}
