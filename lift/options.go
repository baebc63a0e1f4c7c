package lift

import (
	"math"

	"go.uber.org/zap"
)

// DefaultInfinity is the magnitude used for absent bounds.
var DefaultInfinity = math.Inf(1)

const panicInfinityInvalid = "lift: WithInfinity: value must be > 0 and not NaN"

// Option configures Canonicalize.
type Option func(*Options)

// Options holds canonicalization settings.
type Options struct {
	logger   *zap.Logger
	infinity float64
}

// WithLogger sets the logger receiving configuration warnings.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithInfinity sets the magnitude written for absent bounds, for solvers
// that expect a finite sentinel such as math.MaxFloat64.
// Panics on a non-positive or NaN value.
func WithInfinity(v float64) Option {
	if !(v > 0) {
		panic(panicInfinityInvalid)
	}

	return func(o *Options) { o.infinity = v }
}

func gatherOptions(opts []Option) Options {
	o := Options{logger: zap.NewNop(), infinity: DefaultInfinity}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
