package simulate

import (
	"errors"
	"fmt"
)

// ErrUnstable is matched by errors.Is for every *InstabilityError.
var ErrUnstable = errors.New("simulate: system is unstable")

// InstabilityError reports parameters that fail the d + |k| < 0 test.
type InstabilityError struct {
	D, K float64
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("simulate: system is unstable with d=%g, k=%g: d + |k| must be < 0", e.D, e.K)
}

// Is reports whether target is ErrUnstable.
func (e *InstabilityError) Is(target error) bool {
	return target == ErrUnstable
}
