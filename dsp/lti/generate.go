package lti

import (
	"fmt"
	"math"
)

// Signals holds the sample index together with the input sequence and the
// closed-form output it should produce. All three slices have equal length.
type Signals struct {
	Index  []int
	X      []float64
	Theory []float64
}

// Len returns the number of samples.
func (s Signals) Len() int {
	return len(s.X)
}

// Generate returns n samples of the index, the input x[n] = a*exp(b*n) and the
// closed-form output y[n] = c*exp(d*n)*cosh(k*n). n == 0 yields empty
// sequences; a negative n returns ErrNegativeLength.
func Generate(p Params, n int) (Signals, error) {
	if n < 0 {
		return Signals{}, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}

	s := Signals{
		Index:  make([]int, n),
		X:      make([]float64, n),
		Theory: make([]float64, n),
	}
	for i := range n {
		t := float64(i)
		s.Index[i] = i
		s.X[i] = p.A * math.Exp(p.B*t)
		s.Theory[i] = p.C * math.Exp(p.D*t) * math.Cosh(p.K*t)
	}
	return s, nil
}

