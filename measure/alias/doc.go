// Package alias measures how much of a periodic signal's energy lies off its
// harmonic series.
//
// A band-limited oscillator playing a fundamental f0 should only produce
// energy at k*f0 below Nyquist. Harmonics of a naive waveform that exceed
// Nyquist fold back to inharmonic frequencies. Measure windows the signal,
// transforms it and splits the power spectrum into a harmonic part (the
// bins around each k*f0) and everything else, reporting the ratio of the two.
package alias
