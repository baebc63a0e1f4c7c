package cutsched

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Strategy says when a family's generator is invoked.
type Strategy int

// Strategy codes, as used in parameter files.
const (
	NotSet   Strategy = -1
	None     Strategy = 0
	Root     Strategy = 1
	Auto     Strategy = 2
	Periodic Strategy = 3
)

var strategyNames = map[Strategy]string{
	NotSet:   "notset",
	None:     "none",
	Root:     "root",
	Auto:     "auto",
	Periodic: "periodic",
}

// Valid reports whether s is one of the defined codes.
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]

	return ok
}

func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}

	return "Strategy(" + strconv.Itoa(int(s)) + ")"
}

// ParseStrategy accepts a name (case-insensitive) or an integer code.
func ParseStrategy(v string) (Strategy, error) {
	v = strings.TrimSpace(v)
	if code, err := strconv.Atoi(v); err == nil {
		s := Strategy(code)
		if !s.Valid() {
			return NotSet, fmt.Errorf("code %d: %w", code, ErrUnknownStrategy)
		}

		return s, nil
	}
	key := strings.ToLower(strings.ReplaceAll(v, "_", ""))
	for s, n := range strategyNames {
		if n == key {
			return s, nil
		}
	}

	return NotSet, fmt.Errorf("%q: %w", v, ErrUnknownStrategy)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("code %d: %w", int(s), ErrUnknownStrategy)
	}

	return []byte(s.String()), nil
}

// UnmarshalYAML accepts both `root` and `1`.
func (s *Strategy) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: strategy must be a scalar: %w", n.Line, ErrUnknownStrategy)
	}

	return s.UnmarshalText([]byte(n.Value))
}

// Set and Type make Strategy usable as a command-line flag value.
func (s *Strategy) Set(v string) error { return s.UnmarshalText([]byte(v)) }

// Type returns the flag type name.
func (s *Strategy) Type() string { return "strategy" }
