// Package lti simulates a fixed second-order discrete-time LTI system.
//
// The system is described by five scalar [Params]: an input gain a and rate b
// for the causal exponential input
//
//	x[n] = a * exp(b*n) * u(n)
//
// and an output gain c, decay rate d and cosh modulation rate k for the
// closed-form output
//
//	y[n] = c * exp(d*n) * cosh(k*n) * u(n).
//
// [Generate] produces both sequences directly. [Process] instead derives the
// difference-equation [Coefficients] from the parameters and evaluates
//
//	y[n] = C1*y[n-1] - C2*y[n-2] + K*(x[n] - C3*x[n-1] + C4*x[n-2])
//
// sample by sample with zero initial conditions. For the canonical input the
// two outputs agree to floating-point precision.
//
// [IsStable] reports whether d + |k| < 0, i.e. whether both poles e^(d±k) lie
// inside the unit circle. The predicate is advisory: [Process] never consults
// it, so callers decide whether to run an unstable configuration.
package lti
