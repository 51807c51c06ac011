package lti

import "errors"

var (
	// ErrZeroInputGain is returned when the input gain a is zero. The
	// recurrence gain K = c/a is undefined in that case.
	ErrZeroInputGain = errors.New("lti: input gain a must be non-zero")
	// ErrNegativeLength is returned for a negative sequence length.
	ErrNegativeLength = errors.New("lti: sequence length must be >= 0")
	// ErrNonFinite is returned when a parameter is NaN or infinite.
	ErrNonFinite = errors.New("lti: parameter must be finite")
)
