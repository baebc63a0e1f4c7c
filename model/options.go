package model

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/disco/cutsched"
	"github.com/katalvlaran/disco/metrics"
)

// Options configures Load and New.
type Options struct {
	Logger   *zap.Logger
	Metrics  *metrics.Collectors
	Families []cutsched.Family
	// BuiltinOA binds the outer-approximation separator to the OA family
	// when it is registered.
	BuiltinOA bool
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the logger passed to every stage.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records setup metrics on c.
func WithMetrics(c *metrics.Collectors) Option {
	return func(o *Options) { o.Metrics = c }
}

// WithFamilies adds application cut families to the schedule.
func WithFamilies(f ...cutsched.Family) Option {
	return func(o *Options) { o.Families = append(o.Families, f...) }
}

// WithoutBuiltinOA leaves the OA family unbound.
func WithoutBuiltinOA() Option {
	return func(o *Options) { o.BuiltinOA = false }
}

func gatherOptions(opts []Option) Options {
	o := Options{Logger: zap.NewNop(), BuiltinOA: true}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
