package cutsched

import (
	"fmt"

	"go.uber.org/zap"
)

// Entry is the resolved strategy of one family.
type Entry struct {
	Family   string
	Kind     Kind
	Strategy Strategy
	Freq     int
}

// Registered reports whether the family's generator is invoked at all.
func (e Entry) Registered() bool { return e.Strategy != None }

// Due reports whether the family runs at a node of the given depth that is
// the index-th node processed.
func (e Entry) Due(depth, index int) bool {
	freq := e.Freq
	if freq < 1 {
		freq = 1
	}
	switch e.Strategy {
	case Root:
		return depth == 0
	case Periodic:
		return index%freq == 0
	case Auto:
		return depth == 0 || index%freq == 0
	default:
		return false
	}
}

// Schedule is the resolved per-family table plus the aggregate policy.
type Schedule struct {
	strategy Strategy
	freq     int

	entries    []Entry
	byName     map[string]int
	registered []int // indexes into entries
	gens       map[string][]Generator
	warnings   []Warning
}

func newSchedule(n int) *Schedule {
	return &Schedule{
		entries: make([]Entry, 0, n),
		byName:  make(map[string]int, n),
		gens:    make(map[string][]Generator),
	}
}

func (s *Schedule) add(e Entry) {
	s.byName[e.Family] = len(s.entries)
	if e.Registered() {
		s.registered = append(s.registered, len(s.entries))
	}
	s.entries = append(s.entries, e)
}

func (s *Schedule) warn(l *zap.Logger, w Warning) {
	s.warnings = append(s.warnings, w)
	l.Warn("invalid cut frequency",
		zap.String("kind", string(w.Kind)),
		zap.String("family", w.Family),
		zap.Int("frequency", w.Given),
		zap.Int("used", w.Used),
	)
}

// aggregate recomputes the global policy from the registered families.
func (s *Schedule) aggregate() {
	s.strategy, s.freq = None, IdleFrequency
	for _, i := range s.registered {
		switch s.entries[i].Strategy {
		case Periodic:
			s.strategy, s.freq = Periodic, 1

			return
		case Root:
			s.strategy = Root
		}
	}
}

// Global returns the aggregate strategy and frequency.
func (s *Schedule) Global() (Strategy, int) { return s.strategy, s.freq }

// Entries returns the registered entries in table order.
func (s *Schedule) Entries() []Entry {
	out := make([]Entry, len(s.registered))
	for k, i := range s.registered {
		out[k] = s.entries[i]
	}

	return out
}

// Entry returns the resolved entry of a family, registered or not.
func (s *Schedule) Entry(family string) (Entry, bool) {
	i, ok := s.byName[family]
	if !ok {
		return Entry{}, false
	}

	return s.entries[i], true
}

// Warnings returns the configuration warnings raised by Resolve.
func (s *Schedule) Warnings() []Warning { return append([]Warning(nil), s.warnings...) }

// Bind attaches g to its family. It must be called during setup, before the
// schedule is shared with workers.
func (s *Schedule) Bind(g Generator) error {
	e, ok := s.Entry(g.Family())
	switch {
	case !ok:
		return fmt.Errorf("%q: %w", g.Family(), ErrUnknownFamily)
	case !e.Registered():
		return fmt.Errorf("%q: %w", g.Family(), ErrNotRegistered)
	case e.Kind != g.Kind():
		return fmt.Errorf("%q is %s, generator is %s: %w", g.Family(), e.Kind, g.Kind(), ErrKindMismatch)
	}
	s.gens[e.Family] = append(s.gens[e.Family], g)

	return nil
}

// Bound returns the number of generators attached with Bind.
func (s *Schedule) Bound() int {
	var n int
	for _, g := range s.gens {
		n += len(g)
	}

	return n
}

// Due returns the bound generators to run at a node, in table order.
func (s *Schedule) Due(depth, index int) []Generator {
	var out []Generator
	for _, i := range s.registered {
		e := s.entries[i]
		if e.Due(depth, index) {
			out = append(out, s.gens[e.Family]...)
		}
	}

	return out
}
