package basis

import "errors"

var (
	// ErrBadStatus is returned when a payload holds an unknown status code.
	ErrBadStatus = errors.New("basis: unknown status code")

	// ErrMalformed is returned when a payload cannot be decoded as a basis.
	ErrMalformed = errors.New("basis: malformed payload")

	// ErrNilWarmStart is returned by FromWarmStart for a nil or released value.
	ErrNilWarmStart = errors.New("basis: nil or released warm start")
)
