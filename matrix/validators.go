// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateTriplets checks that ri, ci, v have equal lengths, that every
// index lies inside rows×cols and that every value is finite.
//
// Complexity: O(len(v)).
func ValidateTriplets(rows, cols int, ri, ci []int, v []float64) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateTriplets", ErrBadShape)
	}
	if len(ri) != len(ci) || len(ci) != len(v) {
		return validatorErrorf("ValidateTriplets: lengths", ErrDimensionMismatch)
	}

	var k int
	for k = range v {
		if ri[k] < 0 || ri[k] >= rows {
			return fmt.Errorf("ValidateTriplets: entry %d row %d: %w", k, ri[k], ErrOutOfRange)
		}
		if ci[k] < 0 || ci[k] >= cols {
			return fmt.Errorf("ValidateTriplets: entry %d col %d: %w", k, ci[k], ErrOutOfRange)
		}
		if math.IsNaN(v[k]) || math.IsInf(v[k], 0) {
			return fmt.Errorf("ValidateTriplets: entry %d: %w", k, ErrNaNInf)
		}
	}

	return nil
}

// ValidateVecLen checks len(x) == n.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
