// SPDX-License-Identifier: MIT

package nodedesc

import "errors"

var (
	// ErrTruncated is returned when the stream ends inside a field or a
	// declared count exceeds the bytes left.
	ErrTruncated = errors.New("nodedesc: truncated stream")

	// ErrTrailingBytes is returned by Unmarshal when bytes remain after the
	// descriptor.
	ErrTrailingBytes = errors.New("nodedesc: trailing bytes after descriptor")

	// ErrNilDescriptor is returned when a nil *Descriptor is encoded or decoded.
	ErrNilDescriptor = errors.New("nodedesc: nil descriptor")
)
