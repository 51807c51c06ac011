package lti

// Process derives the coefficients for p and runs x through the recurrence.
// The returned slice has the same length as x. Stability is not checked;
// an unstable configuration may overflow to Inf or NaN.
func Process(x []float64, p Params) ([]float64, error) {
	c, err := DeriveCoefficients(p)
	if err != nil {
		return nil, err
	}
	return c.Apply(x), nil
}

// Apply evaluates the recurrence over x with zero initial conditions and
// returns a new slice of len(x).
func (c Coefficients) Apply(x []float64) []float64 {
	y := make([]float64, len(x))
	c.ApplyTo(y, x)
	return y
}

// ApplyTo evaluates the recurrence over x into dst. dst must be at least
// len(x) long. dst may be x itself, so ApplyTo(buf, buf) filters in place.
// Zero-alloc.
//
// Samples before n = 0 are zero, which leaves two special cases ahead of the
// general recurrence:
//
//	y[0] = K*x[0]
//	y[1] = C1*y[0] + K*(x[1] - C3*x[0])
func (c Coefficients) ApplyTo(dst, x []float64) {
	n := len(x)
	if n == 0 {
		return
	}
	_ = dst[n-1] // bounds check hint

	// Past inputs are carried in locals because dst may overwrite x.
	x0 := x[0]
	dst[0] = c.K * x0
	if n == 1 {
		return
	}
	x1 := x[1]
	dst[1] = c.C1*dst[0] + c.K*(x1-c.C3*x0)

	xm2, xm1 := x0, x1
	for i := 2; i < n; i++ {
		xi := x[i]
		fb := c.C1*dst[i-1] - c.C2*dst[i-2]
		ff := c.K * (xi - c.C3*xm1 + c.C4*xm2)
		dst[i] = fb + ff
		xm2, xm1 = xm1, xi
	}
}
