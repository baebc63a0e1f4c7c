// SPDX-License-Identifier: MIT

package cbf

import "errors"

var (
	// ErrUnsupportedVersion is returned when VER is not 1.
	ErrUnsupportedVersion = errors.New("cbf: only version 1 is supported")

	// ErrUnknownDomain is returned for a domain token outside F, L+, L-, L=, Q, QR.
	ErrUnknownDomain = errors.New("cbf: unknown domain")

	// ErrMalformed covers unparsable numbers, truncated blocks, negative counts
	// and repeated blocks.
	ErrMalformed = errors.New("cbf: malformed input")

	// ErrMissingBlock is returned when a required block is absent or a block is
	// used before the block it depends on.
	ErrMissingBlock = errors.New("cbf: missing block")

	// ErrPartition is returned when domain sizes do not sum to the declared
	// column or row count.
	ErrPartition = errors.New("cbf: domain sizes do not match declared count")

	// ErrIndexOutOfRange is returned for a sparse entry or integer index
	// outside the declared columns or rows.
	ErrIndexOutOfRange = errors.New("cbf: index out of range")
)
