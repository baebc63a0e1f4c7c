// SPDX-License-Identifier: MIT

package params

import "errors"

var (
	// ErrInvalid is returned when a parameter value fails validation.
	ErrInvalid = errors.New("params: invalid parameters")

	// ErrUnknownBranchStrategy is returned for a branching strategy the
	// search does not implement.
	ErrUnknownBranchStrategy = errors.New("params: unknown branch strategy")
)
