package lti

import (
	"fmt"
	"math"
)

// Default parameter values.
const (
	DefaultA       = 1.0
	DefaultB       = 0.01
	DefaultC       = 1.0
	DefaultD       = -0.1
	DefaultK       = 0.05
	DefaultNPoints = 150
)

// Params is the complete parameter record of one simulation run.
type Params struct {
	A       float64 // input gain
	B       float64 // input exponential rate
	C       float64 // output gain
	D       float64 // output exponential decay rate
	K       float64 // cosh modulation rate
	NPoints int     // sequence length
}

// Option mutates a Params value.
type Option func(*Params)

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{
		A:       DefaultA,
		B:       DefaultB,
		C:       DefaultC,
		D:       DefaultD,
		K:       DefaultK,
		NPoints: DefaultNPoints,
	}
}

// LabPreset returns the stable configuration the interactive simulator
// starts with. It differs from [DefaultParams] only in the output gain.
func LabPreset() Params {
	p := DefaultParams()
	p.C = 1.5
	return p
}

// WithGain sets the input gain a and the output gain c.
func WithGain(a, c float64) Option {
	return func(p *Params) {
		p.A = a
		p.C = c
	}
}

// WithRates sets the input rate b and the output decay rate d.
func WithRates(b, d float64) Option {
	return func(p *Params) {
		p.B = b
		p.D = d
	}
}

// WithCosh sets the cosh modulation rate k.
func WithCosh(k float64) Option {
	return func(p *Params) {
		p.K = k
	}
}

// WithPoints sets the sequence length. A negative length is kept and
// reported by Validate.
func WithPoints(n int) Option {
	return func(p *Params) {
		p.NPoints = n
	}
}

// NewParams applies zero or more options to [DefaultParams].
func NewParams(opts ...Option) Params {
	p := DefaultParams()
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	return p
}

// Validate checks that p can be simulated. A zero input gain and a negative
// length are rejected, as are NaN or infinite fields.
func (p Params) Validate() error {
	fields := [...]struct {
		name  string
		value float64
	}{
		{"a", p.A}, {"b", p.B}, {"c", p.C}, {"d", p.D}, {"k", p.K},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s=%v", ErrNonFinite, f.name, f.value)
		}
	}
	if p.A == 0 {
		return ErrZeroInputGain
	}
	if p.NPoints < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLength, p.NPoints)
	}
	return nil
}

// String formats the parameters on a single line.
func (p Params) String() string {
	return fmt.Sprintf("a=%g b=%g c=%g d=%g k=%g n=%d", p.A, p.B, p.C, p.D, p.K, p.NPoints)
}
