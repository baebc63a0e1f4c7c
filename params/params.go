package params

import (
	"maps"

	"github.com/katalvlaran/disco/cutsched"
)

// BranchStrategy labels a variable-selection rule.
type BranchStrategy string

// Known branching labels. Only MaxInfeasibility and PseudoCost are implemented.
const (
	MaxInfeasibility BranchStrategy = "maxInfeasibility"
	PseudoCost       BranchStrategy = "pseudoCost"
	Reliability      BranchStrategy = "reliability"
	Strong           BranchStrategy = "strong"
	Bilevel          BranchStrategy = "bilevel"
)

// Supported reports whether the search implements b.
func (b BranchStrategy) Supported() bool {
	return b == MaxInfeasibility || b == PseudoCost
}

// Params holds the run parameters.
type Params struct {
	BranchStrategy       BranchStrategy `yaml:"branchStrategy" validate:"branchstrategy"`
	BranchStrategyRampUp BranchStrategy `yaml:"branchStrategyRampUp" validate:"branchstrategy"`

	Cut          cutsched.Config `yaml:"cut"`
	CutPass      int             `yaml:"cutPass" validate:"gte=0"`
	QuickCutPass int             `yaml:"quickCutPass" validate:"gte=0"`
	CutFactor    float64         `yaml:"cutFactor" validate:"gt=0"`

	IntegerTol    float64 `yaml:"integerTol" validate:"gt=0,lt=0.5"`
	OptimalRelGap float64 `yaml:"optimalRelGap" validate:"gte=0"`
	OptimalAbsGap float64 `yaml:"optimalAbsGap" validate:"gte=0"`
	TailOff       float64 `yaml:"tailOff" validate:"gte=0"`
	ObjTol        float64 `yaml:"objTol" validate:"gte=0"`
	ConeTol       float64 `yaml:"coneTol" validate:"gt=0"`

	LookAhead         int     `yaml:"lookAhead" validate:"gte=0"`
	PseudoReliability int     `yaml:"pseudoReliability" validate:"gte=0"`
	PseudoWeight      float64 `yaml:"pseudoWeight" validate:"gte=0,lte=1"`
	StrongCandSize    int     `yaml:"strongCandSize" validate:"gte=1"`
}

// Default returns the built-in parameters.
func Default() Params {
	return Params{
		BranchStrategy:       PseudoCost,
		BranchStrategyRampUp: PseudoCost,
		Cut:                  cutsched.DefaultConfig(),
		CutPass:              20,
		QuickCutPass:         0,
		CutFactor:            4.0,
		IntegerTol:           1e-5,
		OptimalRelGap:        1e-4,
		OptimalAbsGap:        1e-6,
		TailOff:              1e-7,
		ObjTol:               1e-6,
		ConeTol:              1e-5,
		LookAhead:            4,
		PseudoReliability:    8,
		PseudoWeight:         0.8,
		StrongCandSize:       10,
	}
}

// VRP returns the defaults with every built-in cut family switched off, for
// models that register their own separation.
func VRP() Params {
	p := Default()
	p.Cut = cutsched.AllNone(cutsched.FamilyNames()...)

	return p
}

// CutConfig returns the scheduler configuration. The family map is copied.
func (p Params) CutConfig() cutsched.Config {
	cfg := p.Cut
	cfg.Families = maps.Clone(p.Cut.Families)

	return cfg
}
