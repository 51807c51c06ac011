// Package agreement measures how closely a simulated output tracks its
// closed-form reference.
//
// [Compare] reports the largest absolute and relative deviations, the RMS
// error, and the first sample whose deviation exceeds a tolerance. A
// non-finite processed sample marks the run as diverged.
package agreement
