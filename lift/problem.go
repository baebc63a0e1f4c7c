package lift

import (
	"github.com/katalvlaran/disco/cbf"
	"github.com/katalvlaran/disco/cone"
	"github.com/katalvlaran/disco/matrix"
)

// Problem is the canonical primal form.
type Problem struct {
	Sense cbf.Sense

	// NumOrigCols columns come from the file, NumLifted follow them.
	NumOrigCols int
	NumLifted   int

	ColLB, ColUB []float64 // len NumCols()
	RowLB, RowUB []float64 // len NumRows()
	Matrix       *matrix.Packed

	// Objective has NumCols() entries; lifted columns have coefficient 0.
	Objective   []float64
	ObjConstant float64
	Integers    []int

	// Warnings lists the configuration warnings found on the cone records.
	Warnings []cone.Warning

	cones []cone.Cone
}

// NumCols returns the column count after lifting.
func (p *Problem) NumCols() int { return len(p.ColLB) }

// NumRows returns the row count.
func (p *Problem) NumRows() int { return len(p.RowLB) }

// NumCones returns the number of cone records.
func (p *Problem) NumCones() int { return len(p.cones) }

// Cones returns a copy of the cone records in discovery order.
func (p *Problem) Cones() []cone.Cone {
	out := make([]cone.Cone, len(p.cones))
	for i, c := range p.cones {
		out[i] = cone.Cone{Type: c.Type, Members: append([]int(nil), c.Members...)}
	}

	return out
}

// Compressed returns the cone records in the solver handoff form.
func (p *Problem) Compressed() cone.Compressed { return cone.Compress(p.cones) }

// MinObjective returns the objective as a minimization: the coefficients
// negated when Sense is Maximize.
func (p *Problem) MinObjective() []float64 {
	out := make([]float64, len(p.Objective))
	for j, c := range p.Objective {
		out[j] = float64(p.Sense) * c
	}

	return out
}
