// SPDX-License-Identifier: MIT

package cone

import "errors"

var (
	// ErrUnknownKind is returned by ParseKind for a token outside F, L+, L-, L=, Q, QR.
	ErrUnknownKind = errors.New("cone: unknown domain token")

	// ErrBadSize indicates a domain with a non-positive number of members.
	ErrBadSize = errors.New("cone: domain size must be > 0")

	// ErrPartition indicates that domain sizes do not sum to the declared count.
	ErrPartition = errors.New("cone: domain sizes do not match declared count")

	// ErrCompressed indicates an inconsistent compressed cone form
	// (Start length, monotonicity or Members length).
	ErrCompressed = errors.New("cone: malformed compressed cone list")
)
