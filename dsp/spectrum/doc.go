// Package spectrum provides FFT-adjacent helpers for turning complex bins
// into magnitude and power values.
//
// The package does not implement an FFT itself. Callers hand it bins
// produced by an external backend (algo-fft in this module) and get back
// real-valued spectra computed with SIMD kernels where available.
package spectrum
