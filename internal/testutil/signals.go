package testutil

import "math"

// DeterministicSine generates amplitude*sin(2*pi*freqHz*n/sampleRate).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// NaiveSquare generates a square wave by thresholding a phase accumulator.
// It is not band-limited, so every harmonic above Nyquist aliases.
func NaiveSquare(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	inc := freqHz / sampleRate
	phase := 0.0
	for i := range out {
		if phase < 0.5 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
		phase += inc
		if phase >= 1 {
			phase--
		}
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
