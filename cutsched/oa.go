package cutsched

import (
	"context"
	"math"

	"github.com/katalvlaran/disco/cone"
)

// OuterApproximation returns a conic separator that adds, for every cone
// violated by more than tol at x, the gradient cut of the cone's norm form
// at x. The cut is g·x <= 0; it holds for every point of the cone and cuts
// x off.
//
// Quadratic cones use ||z|| - x0. Rotated cones use
// ||(x0-x1, sqrt(2)z)|| - (x0+x1). Cones of other types or with too few
// members are skipped.
func OuterApproximation(tol float64) ConicFunc {
	return func(ctx context.Context, cones []cone.Cone, x []float64) ([]Cut, error) {
		var cuts []Cut
		for _, c := range cones {
			if err := ctx.Err(); err != nil {
				return cuts, err
			}
			if cut, ok := separate(c, x, tol); ok {
				cuts = append(cuts, cut)
			}
		}

		return cuts, nil
	}
}

// ConeViolation returns how far x lies outside cone c in the norm form
// used by OuterApproximation; values <= 0 mean x is inside. ok is false for
// cones OuterApproximation skips.
func ConeViolation(c cone.Cone, x []float64) (v float64, ok bool) {
	_, norm, lin, ok := normForm(c, x)
	if !ok {
		return 0, false
	}

	return norm - lin, true
}

// normForm splits the cone's norm form at x into the leading-part term
// inside the norm, the norm itself and the linear term subtracted from it.
func normForm(c cone.Cone, x []float64) (head, norm, lin float64, ok bool) {
	m := c.Members
	lead := c.Type.LeadingNonnegative()
	if lead == 0 || len(m) < lead {
		return 0, 0, 0, false
	}

	scale := 1.0
	switch c.Type {
	case cone.Quadratic:
		lin = x[m[0]]
	case cone.Rotated:
		head = x[m[0]] - x[m[1]]
		lin = x[m[0]] + x[m[1]]
		scale = 2
	}
	sq := head * head
	for _, j := range m[lead:] {
		sq += scale * x[j] * x[j]
	}

	return head, math.Sqrt(sq), lin, true
}

func separate(c cone.Cone, x []float64, tol float64) (Cut, bool) {
	head, norm, lin, ok := normForm(c, x)
	if !ok || norm-lin <= tol {
		return Cut{}, false
	}

	var (
		m     = c.Members
		lead  = c.Type.LeadingNonnegative()
		coef  = make([]float64, len(m))
		scale = 1.0
	)
	if c.Type == cone.Rotated {
		scale = 2
	}
	if norm == 0 {
		// x sits at the apex side with a negative leading part.
		for k := 0; k < lead; k++ {
			coef[k] = -1
		}
	} else {
		switch c.Type {
		case cone.Quadratic:
			coef[0] = -1
		case cone.Rotated:
			coef[0] = head/norm - 1
			coef[1] = -head/norm - 1
		}
		for k := lead; k < len(m); k++ {
			coef[k] = scale * x[m[k]] / norm
		}
	}

	return Cut{
		Index: append([]int(nil), m...),
		Coef:  coef,
		LB:    math.Inf(-1),
		UB:    0,
	}, true
}
