package lti

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// IsStable reports whether d + |k| < 0. Only D and K are consulted. The
// boundary d + |k| == 0 is unstable, and NaN in either field yields false.
func IsStable(p Params) bool {
	return p.D+math.Abs(p.K) < 0
}

// StabilityMargin returns -(d + |k|). Positive values are stable; the margin
// is the log-distance of the dominant pole from the unit circle.
func StabilityMargin(p Params) float64 {
	return -(p.D + math.Abs(p.K))
}

// Poles returns the roots of the characteristic polynomial
//
//	z^2 - C1*z + C2 = 0
//
// which equal e^(d+k) and e^(d-k). The input gain does not affect the poles,
// so Poles is defined even when a == 0.
func Poles(p Params) [2]complex128 {
	c1, c2 := feedback(p)
	return quadraticRoots(1, -c1, c2)
}

// SpectralRadius returns the largest pole magnitude, computed from the
// eigenvalues of the companion matrix of the recurrence
//
//	[ C1  -C2 ]
//	[ 1    0  ]
//
// It returns NaN if the eigen decomposition fails.
func SpectralRadius(p Params) float64 {
	c1, c2 := feedback(p)
	companion := mat.NewDense(2, 2, []float64{
		c1, -c2,
		1, 0,
	})

	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return math.NaN()
	}

	radius := 0.0
	for _, v := range eig.Values(nil) {
		radius = math.Max(radius, cmplx.Abs(v))
	}
	return radius
}

func feedback(p Params) (c1, c2 float64) {
	return 2 * math.Exp(p.D) * math.Cosh(p.K), math.Exp(2 * p.D)
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-c/b, 0), 0}
	}

	sq := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	den := complex(2*a, 0)
	return [2]complex128{
		(-complex(b, 0) + sq) / den,
		(-complex(b, 0) - sq) / den,
	}
}
