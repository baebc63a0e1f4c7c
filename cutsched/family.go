package cutsched

// Kind separates row-based linear generators from cone-based ones.
type Kind int

const (
	// Linear generators derive cuts from the linear rows.
	Linear Kind = iota
	// Conic generators derive cuts from the cone records.
	Conic
)

func (k Kind) String() string {
	if k == Conic {
		return "conic"
	}

	return "linear"
}

// Family is one row of the resolution table.
type Family struct {
	Name string
	Kind Kind

	// Fallback is used when both the family and the global default are NotSet.
	Fallback Strategy

	// FallbackGlobalFreq makes the fallback adopt the global frequency
	// instead of the family's own.
	FallbackGlobalFreq bool

	// Disabled families never register, whatever the configuration says.
	Disabled bool
}

// Built-in family names.
const (
	Probing   = "Probing"
	Clique    = "Clique"
	OddHole   = "OddHole"
	FlowCover = "FlowCover"
	Knapsack  = "Knapsack"
	MIR       = "MIR"
	Gomory    = "Gomory"
	TwoMIR    = "TwoMIR"
	IPM       = "IPM"
	IPMInt    = "IPMint"
	OA        = "OA"
)

// DefaultFamilies returns the built-in table in registration order.
func DefaultFamilies() []Family {
	return []Family{
		{Name: Probing, Kind: Linear, Fallback: None},
		{Name: Clique, Kind: Linear, Fallback: Root},
		{Name: OddHole, Kind: Linear, Fallback: None},
		{Name: FlowCover, Kind: Linear, Fallback: Auto, FallbackGlobalFreq: true},
		{Name: Knapsack, Kind: Linear, Fallback: Root},
		{Name: MIR, Kind: Linear, Fallback: None},
		{Name: Gomory, Kind: Linear, Fallback: Root},
		{Name: TwoMIR, Kind: Linear, Fallback: None, Disabled: true},
		{Name: IPM, Kind: Conic, Fallback: Root},
		{Name: IPMInt, Kind: Conic, Fallback: Root},
		{Name: OA, Kind: Conic, Fallback: Periodic},
	}
}

// FamilyNames lists the built-in family names in table order.
func FamilyNames() []string {
	fams := DefaultFamilies()
	names := make([]string, len(fams))
	for i, f := range fams {
		names[i] = f.Name
	}

	return names
}
