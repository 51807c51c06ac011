// Package spectrum computes one-sided magnitude and power spectra of real
// sequences.
//
// [Analyze] zero-pads its input to the next power of two and transforms it
// with algo-fft. Magnitude and power conversion use the SIMD kernels of
// algo-vecmath when the CPU supports them.
package spectrum
