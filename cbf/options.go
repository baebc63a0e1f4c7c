package cbf

import "go.uber.org/zap"

// Option configures Read.
type Option func(*Options)

// DefaultMaxSize bounds the declared column and row counts.
const DefaultMaxSize = 1 << 26

// Options holds reader configuration.
type Options struct {
	logger  *zap.Logger
	maxSize int
}

// WithLogger sets the logger receiving per-block debug records.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxSize caps the column and row counts a file may declare; larger
// headers fail with ErrMalformed before anything is allocated.
// Panics if n < 1.
func WithMaxSize(n int) Option {
	if n < 1 {
		panic("cbf: WithMaxSize requires n >= 1")
	}

	return func(o *Options) { o.maxSize = n }
}

func gatherOptions(opts []Option) Options {
	o := Options{logger: zap.NewNop(), maxSize: DefaultMaxSize}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
