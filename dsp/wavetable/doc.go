// Package wavetable implements a band-limited wavetable oscillator.
//
// At construction the oscillator builds one single-cycle table per octave
// band for a fixed waveform shape (sawtooth, square or triangle). Each table
// is synthesised from the analytic Fourier series of the shape, truncated to
// the number of harmonics that stays alias-safe up to the band's top
// frequency, and converted to the time domain with an in-place radix-2 FFT.
// All bands of one oscillator share a single normalisation factor so that
// loudness does not jump between octaves.
//
// Playback is driven by caller-owned phase state: the phase increment selects
// the band, the phasor selects the position within the cycle, and the phase
// offset drives the pulse-width output:
//
//	osc, err := wavetable.New(44100, wavetable.WaveSawtooth)
//	if err != nil {
//		return err
//	}
//	osc.SetFrequency(220)
//	osc.SetPhaseOffset(0.25)
//	for i := range out {
//		out[i] = osc.OutputMinusOffset()
//		osc.UpdatePhase()
//	}
//
// Construction allocates and is not real-time safe. The output accessors do
// not allocate and never mutate the tables, so they can run inside an audio
// callback once New has returned.
package wavetable
