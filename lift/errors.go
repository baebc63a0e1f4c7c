// SPDX-License-Identifier: MIT

package lift

import "errors"

var (
	// ErrNilInstance is returned when Canonicalize receives a nil instance.
	ErrNilInstance = errors.New("lift: nil instance")

	// ErrInconsistent is returned when an instance violates the domain
	// partition or array-length invariants (hand-built instances only;
	// cbf.Read rejects such files itself).
	ErrInconsistent = errors.New("lift: inconsistent instance")
)
