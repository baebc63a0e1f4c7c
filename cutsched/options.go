package cutsched

import "go.uber.org/zap"

// Defaults for the global policy.
const (
	// DefaultFrequency is the global frequency when no parameter sets one.
	DefaultFrequency = 1

	// IdleFrequency is the global frequency reported for non-periodic
	// aggregate policies.
	IdleFrequency = 100
)

// Options configures Resolve.
type Options struct {
	Logger *zap.Logger
	Extra  []Family
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the logger used for configuration warnings.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithFamilies appends application-defined families after the built-in table.
// Panics on an empty name.
func WithFamilies(f ...Family) Option {
	for _, fam := range f {
		if fam.Name == "" {
			panic("cutsched: WithFamilies requires a family name")
		}
	}

	return func(o *Options) { o.Extra = append(o.Extra, f...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{Logger: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
