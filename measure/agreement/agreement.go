package agreement

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// DefaultTolerance is the deviation below which two samples are considered
// to agree. It is absolute for reference values up to 1 in magnitude and
// relative beyond that.
const DefaultTolerance = 1e-9

var (
	// ErrLengthMismatch is returned when the reference and processed
	// sequences differ in length.
	ErrLengthMismatch = errors.New("agreement: sequences differ in length")
	// ErrInvalidTolerance is returned for a negative or NaN tolerance.
	ErrInvalidTolerance = errors.New("agreement: tolerance must be >= 0")
)

// Result holds the agreement metrics of one run.
type Result struct {
	Length          int
	MaxAbsError     float64
	MaxAbsPos       int // -1 for empty input
	MaxRelError     float64
	RMSError        float64
	FirstDivergence int // first index with deviation > tol*max(1, |reference|), -1 if none
	Tolerance       float64
	Finite          bool // false if any processed sample is NaN or Inf
}

// Agrees reports whether every sample was within the tolerance.
func (r Result) Agrees() bool {
	return r.Finite && r.FirstDivergence < 0
}

// Compare measures processed against reference using DefaultTolerance.
func Compare(reference, processed []float64) (Result, error) {
	return CompareWithTolerance(reference, processed, DefaultTolerance)
}

// CompareWithTolerance measures processed against reference.
//
// Empty sequences agree trivially. Non-finite deviations count as
// divergence and make MaxAbsError and RMSError non-finite as well.
func CompareWithTolerance(reference, processed []float64, tol float64) (Result, error) {
	if len(reference) != len(processed) {
		return Result{}, ErrLengthMismatch
	}
	if !(tol >= 0) {
		return Result{}, ErrInvalidTolerance
	}

	r := Result{
		Length:          len(reference),
		MaxAbsPos:       -1,
		FirstDivergence: -1,
		Tolerance:       tol,
		Finite:          true,
	}
	if r.Length == 0 {
		return r, nil
	}

	residual := make([]float64, r.Length)
	floats.SubTo(residual, processed, reference)

	for i, e := range residual {
		if math.IsNaN(processed[i]) || math.IsInf(processed[i], 0) {
			r.Finite = false
		}

		abs := math.Abs(e)
		if math.IsNaN(abs) {
			abs = math.Inf(1)
		}
		if r.MaxAbsPos < 0 || abs > r.MaxAbsError {
			r.MaxAbsError = abs
			r.MaxAbsPos = i
		}
		if r.FirstDivergence < 0 && abs > tol*math.Max(1, math.Abs(reference[i])) {
			r.FirstDivergence = i
		}
		if ref := math.Abs(reference[i]); ref > 0 {
			r.MaxRelError = math.Max(r.MaxRelError, abs/ref)
		}
	}

	squared := make([]float64, r.Length)
	vecmath.MulBlock(squared, residual, residual)
	r.RMSError = math.Sqrt(floats.Sum(squared) / float64(r.Length))

	return r, nil
}
