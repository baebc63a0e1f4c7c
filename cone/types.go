// SPDX-License-Identifier: MIT

package cone

import "fmt"

// Kind is the domain placed on a contiguous slice of variables or rows.
type Kind int

const (
	// Free leaves the slice unconstrained.
	Free Kind = iota
	// PositiveOrthant constrains every member to be ≥ 0.
	PositiveOrthant
	// NegativeOrthant constrains every member to be ≤ 0.
	NegativeOrthant
	// FixedZero constrains every member to be = 0.
	FixedZero
	// QuadraticCone constrains the slice to a Lorentz cone.
	QuadraticCone
	// RotatedQuadraticCone constrains the slice to a rotated Lorentz cone.
	RotatedQuadraticCone
)

// kindTokens maps the textual domain tokens onto kinds.
var kindTokens = map[string]Kind{
	"F":  Free,
	"L+": PositiveOrthant,
	"L-": NegativeOrthant,
	"L=": FixedZero,
	"Q":  QuadraticCone,
	"QR": RotatedQuadraticCone,
}

// ParseKind maps a domain token onto its Kind.
// Returns ErrUnknownKind for anything else.
func ParseKind(tok string) (Kind, error) {
	k, ok := kindTokens[tok]
	if !ok {
		return Free, fmt.Errorf("%w: %q", ErrUnknownKind, tok)
	}

	return k, nil
}

// Token returns the textual token of k ("?" for an invalid kind).
func (k Kind) Token() string {
	for tok, kk := range kindTokens {
		if kk == k {
			return tok
		}
	}

	return "?"
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Free:
		return "Free"
	case PositiveOrthant:
		return "PositiveOrthant"
	case NegativeOrthant:
		return "NegativeOrthant"
	case FixedZero:
		return "FixedZero"
	case QuadraticCone:
		return "QuadraticCone"
	case RotatedQuadraticCone:
		return "RotatedQuadraticCone"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsConic reports whether k is one of the two cone kinds.
func (k Kind) IsConic() bool {
	return k == QuadraticCone || k == RotatedQuadraticCone
}

// ConeType returns the cone type a conic kind materializes as.
// Non-conic kinds return 0.
func (k Kind) ConeType() Type {
	switch k {
	case QuadraticCone:
		return Quadratic
	case RotatedQuadraticCone:
		return Rotated
	default:
		return 0
	}
}

// Domain is one entry of a variable or row domain list.
type Domain struct {
	Kind   Kind
	Size   int // number of scalar members
	Offset int // first index in the column/row space
}

// End returns the index one past the last member of d.
func (d Domain) End() int { return d.Offset + d.Size }

// Type is the solver-facing cone type code.
type Type int

const (
	// Quadratic is the Lorentz cone (code 1).
	Quadratic Type = 1
	// Rotated is the rotated Lorentz cone (code 2).
	Rotated Type = 2
)

// Valid reports whether t is a type the relaxation solver accepts.
func (t Type) Valid() bool { return t == Quadratic || t == Rotated }

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case Quadratic:
		return "Quadratic"
	case Rotated:
		return "Rotated"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// LeadingNonnegative is the number of leading members the cone forces to be
// nonnegative: 1 for Quadratic, 2 for Rotated, 0 otherwise.
func (t Type) LeadingNonnegative() int {
	switch t {
	case Quadratic:
		return 1
	case Rotated:
		return 2
	default:
		return 0
	}
}

// Cone is one explicit cone record over variables.
type Cone struct {
	Type    Type
	Members []int // ordered column indices
}
