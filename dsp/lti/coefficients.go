package lti

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Coefficients are the difference-equation coefficients derived from Params:
//
//	y[n] = C1*y[n-1] - C2*y[n-2] + K*(x[n] - C3*x[n-1] + C4*x[n-2])
//
// A Coefficients value is immutable once derived; derive a new one whenever
// the parameters change.
type Coefficients struct {
	K  float64 // overall gain c/a
	C1 float64 // 2*e^d*cosh(k)
	C2 float64 // e^(2d)
	C3 float64 // e^b + e^d*cosh(k)
	C4 float64 // e^(b+d)*cosh(k)
}

// DeriveCoefficients computes the recurrence coefficients for p. It returns
// ErrZeroInputGain when a == 0 instead of producing an infinite gain.
func DeriveCoefficients(p Params) (Coefficients, error) {
	if p.A == 0 {
		return Coefficients{}, ErrZeroInputGain
	}

	expB := math.Exp(p.B)
	expD := math.Exp(p.D)
	coshK := math.Cosh(p.K)
	c1, c2 := feedback(p)

	return Coefficients{
		K:  p.C / p.A,
		C1: c1,
		C2: c2,
		C3: expB + expD*coshK,
		C4: math.Exp(p.B+p.D) * coshK,
	}, nil
}

// Numerator returns the feedforward polynomial K*[1, -C3, C4] in powers of
// z^-1.
func (c Coefficients) Numerator() [3]float64 {
	return [3]float64{c.K, -c.K * c.C3, c.K * c.C4}
}

// Denominator returns the feedback polynomial [1, -C1, C2] in powers of z^-1.
func (c Coefficients) Denominator() [3]float64 {
	return [3]float64{1, -c.C1, c.C2}
}

// Poles returns the z-plane roots of the denominator.
func (c Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, -c.C1, c.C2)
}

// Zeros returns the z-plane roots of the numerator, e^b and e^d*cosh(k).
func (c Coefficients) Zeros() [2]complex128 {
	num := c.Numerator()
	return quadraticRoots(num[0], num[1], num[2])
}

// Response returns the frequency response H(e^jw) at the normalized angular
// frequency omega in radians per sample.
func (c Coefficients) Response(omega float64) complex128 {
	z1 := cmplx.Exp(complex(0, -omega))
	z2 := z1 * z1

	num := c.Numerator()
	den := c.Denominator()
	n := complex(num[0], 0) + complex(num[1], 0)*z1 + complex(num[2], 0)*z2
	d := complex(den[0], 0) + complex(den[1], 0)*z1 + complex(den[2], 0)*z2
	return n / d
}

// MagnitudeDB returns 20*log10(|H(e^jw)|).
func (c Coefficients) MagnitudeDB(omega float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(omega)))
}

// ImpulseResponse returns the first n samples of h[n].
func (c Coefficients) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	impulse := make([]float64, n)
	impulse[0] = 1
	return c.Apply(impulse)
}

// String formats the coefficients on a single line.
func (c Coefficients) String() string {
	return fmt.Sprintf("K=%.9g C1=%.9g C2=%.9g C3=%.9g C4=%.9g", c.K, c.C1, c.C2, c.C3, c.C4)
}
