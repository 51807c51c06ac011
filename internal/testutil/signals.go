// Package testutil holds fixtures and assertions shared by package tests.
package testutil

import "math"

// Exponential returns n samples of amp*exp(rate*i).
func Exponential(amp, rate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amp * math.Exp(rate*float64(i))
	}
	return out
}

// DampedCosh returns n samples of amp*exp(decay*i)*cosh(k*i).
func DampedCosh(amp, decay, k float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		t := float64(i)
		out[i] = amp * math.Exp(decay*t) * math.Cosh(k*t)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Ramp returns 0, 1, ..., n-1 as float64.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
