// SPDX-License-Identifier: MIT

package cutsched

import (
	"fmt"

	"go.uber.org/zap"
)

// WarningKind classifies a configuration warning.
type WarningKind string

const (
	// WarnFrequency: a per-family frequency below 1 was raised to 1.
	WarnFrequency WarningKind = "cut_frequency"
	// WarnGlobalFrequency: the global frequency below 1 was raised to 1.
	WarnGlobalFrequency WarningKind = "global_cut_frequency"
)

// Warning is a non-fatal configuration problem found by Resolve.
type Warning struct {
	Kind   WarningKind
	Family string
	Given  int
	Used   int
}

func (w Warning) String() string {
	if w.Family == "" {
		return fmt.Sprintf("%s: %d changed to %d", w.Kind, w.Given, w.Used)
	}

	return fmt.Sprintf("%s %s: %d changed to %d", w.Kind, w.Family, w.Given, w.Used)
}

// Resolve turns cfg into a schedule over the built-in families plus any
// added with WithFamilies.
func Resolve(cfg Config, opts ...Option) (*Schedule, error) {
	var (
		o     = gatherOptions(opts...)
		table = append(DefaultFamilies(), o.Extra...)
		s     = newSchedule(len(table))
	)

	known := make(map[string]bool, len(table))
	for _, f := range table {
		if known[f.Name] {
			return nil, fmt.Errorf("%q: %w", f.Name, ErrDuplicateFamily)
		}
		known[f.Name] = true
	}
	for name := range cfg.Families {
		if !known[name] {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownFamily)
		}
	}

	global, globalFreq := cfg.Strategy, cfg.Freq
	if !global.Valid() {
		return nil, fmt.Errorf("global %w: %d", ErrUnknownStrategy, int(global))
	}
	if globalFreq < 1 {
		s.warn(o.Logger, Warning{Kind: WarnGlobalFrequency, Given: globalFreq, Used: 1})
		globalFreq = 1
	}

	for _, f := range table {
		fc := cfg.family(f.Name)
		if !fc.Strategy.Valid() {
			return nil, fmt.Errorf("family %s %w: %d", f.Name, ErrUnknownStrategy, int(fc.Strategy))
		}

		e := Entry{Family: f.Name, Kind: f.Kind}
		e.Strategy, e.Freq = resolveOne(f, fc, global, globalFreq)
		if f.Disabled {
			e.Strategy = None
		}
		if e.Strategy != None && e.Freq < 1 {
			s.warn(o.Logger, Warning{Kind: WarnFrequency, Family: f.Name, Given: e.Freq, Used: 1})
			e.Freq = 1
		}
		s.add(e)
	}
	s.aggregate()

	o.Logger.Debug("cut schedule resolved",
		zap.Stringer("strategy", s.strategy),
		zap.Int("frequency", s.freq),
		zap.Int("registered", len(s.registered)),
	)

	return s, nil
}

// resolveOne applies the NotSet rules to a single family.
func resolveOne(f Family, fc FamilyConfig, global Strategy, globalFreq int) (Strategy, int) {
	if fc.Strategy != NotSet {
		return fc.Strategy, fc.Freq
	}
	switch global {
	case NotSet:
		if f.FallbackGlobalFreq {
			return f.Fallback, globalFreq
		}

		return f.Fallback, fc.Freq
	case Periodic:
		return Periodic, globalFreq
	default:
		return global, fc.Freq
	}
}
