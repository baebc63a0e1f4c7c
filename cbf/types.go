package cbf

import "github.com/katalvlaran/disco/cone"

// Sense is the internal objective sense: +1 minimize, -1 maximize.
type Sense int

const (
	// Minimize is the default sense.
	Minimize Sense = 1
	// Maximize is selected by OBJSENSE MAX.
	Maximize Sense = -1
)

func (s Sense) String() string {
	if s == Maximize {
		return "MAX"
	}

	return "MIN"
}

// Instance is the raw content of a conic-program file.
type Instance struct {
	Version int
	Sense   Sense

	NumCols    int
	NumRows    int
	ColDomains []cone.Domain
	RowDomains []cone.Domain

	// Integers lists integer columns in file order.
	Integers []int

	// Objective has NumCols entries; unspecified coefficients are zero.
	Objective   []float64
	ObjConstant float64

	// A in coordinate form, as read.
	ARows []int
	ACols []int
	AVals []float64

	// Constant is the per-row term b of A·x + b ∈ K; NumRows entries.
	Constant []float64
}

// HasConicRows reports whether any row domain is a cone.
func (in *Instance) HasConicRows() bool {
	for _, d := range in.RowDomains {
		if d.Kind.IsConic() {
			return true
		}
	}

	return false
}

// NumConicRows returns the number of rows covered by conic row domains.
func (in *Instance) NumConicRows() int {
	var n int
	for _, d := range in.RowDomains {
		if d.Kind.IsConic() {
			n += d.Size
		}
	}

	return n
}
