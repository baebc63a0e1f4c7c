// SPDX-License-Identifier: MIT

package cutsched

import "errors"

var (
	// ErrUnknownStrategy is returned when parsing an unrecognised strategy.
	ErrUnknownStrategy = errors.New("cutsched: unknown strategy")

	// ErrUnknownFamily is returned when a configuration or generator names a
	// family absent from the table.
	ErrUnknownFamily = errors.New("cutsched: unknown cut family")

	// ErrNotRegistered is returned by Bind for a family resolved to None.
	ErrNotRegistered = errors.New("cutsched: family not registered")

	// ErrKindMismatch is returned by Bind when a generator's kind differs
	// from its family's kind.
	ErrKindMismatch = errors.New("cutsched: generator kind does not match family")

	// ErrDuplicateFamily is returned when a family name occurs twice in the table.
	ErrDuplicateFamily = errors.New("cutsched: duplicate family")
)
