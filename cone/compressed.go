// SPDX-License-Identifier: MIT

package cone

import "fmt"

// Compressed is the handoff form of a cone list:
//
//	len(Types) == numCones, len(Start) == numCones+1, Start[0] == 0,
//	Members[Start[k]:Start[k+1]] are the members of cone k.
//
// Types holds raw codes; anything other than 1 or 2 is unsupported.
type Compressed struct {
	Start   []int
	Members []int
	Types   []int
}

// Compress flattens records into the compressed form.
func Compress(cones []Cone) Compressed {
	var total int
	for _, c := range cones {
		total += len(c.Members)
	}
	out := Compressed{
		Start:   make([]int, 1, len(cones)+1),
		Members: make([]int, 0, total),
		Types:   make([]int, 0, len(cones)),
	}
	for _, c := range cones {
		out.Members = append(out.Members, c.Members...)
		out.Start = append(out.Start, len(out.Members))
		out.Types = append(out.Types, int(c.Type))
	}

	return out
}

// NumCones returns the number of cones in c.
func (c Compressed) NumCones() int { return len(c.Types) }

// Expand rebuilds cone records from c. Member slices are copies.
// Returns ErrCompressed when the arrays are inconsistent.
func (c Compressed) Expand() ([]Cone, error) {
	n := len(c.Types)
	if len(c.Start) != n+1 || c.Start[0] != 0 || c.Start[n] != len(c.Members) {
		return nil, ErrCompressed
	}

	out := make([]Cone, n)
	for k := 0; k < n; k++ {
		lo, hi := c.Start[k], c.Start[k+1]
		if hi < lo || hi > len(c.Members) {
			return nil, fmt.Errorf("cone %d: members [%d, %d) of %d: %w", k, lo, hi, len(c.Members), ErrCompressed)
		}
		members := make([]int, hi-lo)
		copy(members, c.Members[lo:hi])
		out[k] = Cone{Type: Type(c.Types[k]), Members: members}
	}

	return out, nil
}
