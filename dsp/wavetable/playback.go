package wavetable

import (
	"github.com/cwbudde/algo-wavetable/dsp/core"
	"github.com/cwbudde/algo-wavetable/dsp/interp"
)

// SetPhase sets the phasor, wrapped into [0, 1).
func (o *Oscillator) SetPhase(phase float64) {
	o.phasor = core.Wrap01(phase)
}

// Phase returns the phasor.
func (o *Oscillator) Phase() float64 { return o.phasor }

// SetPhaseIncrement sets the per-sample phase advance in cycles/sample.
// Values outside (0, 1) do not map onto a meaningful band.
func (o *Oscillator) SetPhaseIncrement(inc float64) {
	o.phaseInc = inc
}

// PhaseIncrement returns the per-sample phase advance.
func (o *Oscillator) PhaseIncrement() float64 { return o.phaseInc }

// SetFrequency sets the phase increment from a pitch in Hz.
func (o *Oscillator) SetFrequency(hz float64) {
	o.phaseInc = hz / o.sampleRate
}

// Frequency returns the pitch in Hz implied by the phase increment.
func (o *Oscillator) Frequency() float64 { return o.phaseInc * o.sampleRate }

// SetPhaseOffset sets the pulse-width offset, wrapped into [0, 1).
func (o *Oscillator) SetPhaseOffset(offset float64) {
	o.phaseOfs = core.Wrap01(offset)
}

// PhaseOffset returns the pulse-width offset.
func (o *Oscillator) PhaseOffset() float64 { return o.phaseOfs }

// UpdatePhase advances the phasor by one sample.
func (o *Oscillator) UpdatePhase() {
	o.phasor += o.phaseInc
	if o.phasor >= 1 {
		o.phasor -= 1
	}
}

// Output returns the current sample.
func (o *Oscillator) Output() float64 {
	t := o.tables.tables[o.tables.index(o.phaseInc)]
	return o.gain * o.read(t, o.phasor)
}

// OutputMinusOffset returns the current sample minus the sample at
// phasor+phaseOffset. Built from a sawtooth this is a pulse wave whose duty
// cycle follows the phase offset.
func (o *Oscillator) OutputMinusOffset() float64 {
	t := o.tables.tables[o.tables.index(o.phaseInc)]

	offset := o.phasor + o.phaseOfs
	if offset >= 1 {
		offset -= 1
	}

	return o.gain * (o.read(t, o.phasor) - o.read(t, offset))
}

// ProcessBlock fills dst with Output, advancing the phase after each sample.
func (o *Oscillator) ProcessBlock(dst []float64) {
	for i := range dst {
		dst[i] = o.Output()
		o.UpdatePhase()
	}
}

// ProcessPulseBlock fills dst with OutputMinusOffset, advancing the phase
// after each sample.
func (o *Oscillator) ProcessPulseBlock(dst []float64) {
	for i := range dst {
		dst[i] = o.OutputMinusOffset()
		o.UpdatePhase()
	}
}

// read returns the table value at phase in [0, 1).
func (o *Oscillator) read(t *Table, phase float64) float64 {
	s := t.samples
	n := len(s)
	mask := n - 1

	pos := phase * float64(n)
	i := int(pos)
	frac := pos - float64(i)

	if i >= n {
		// phase a hair below 1 can round up to n.
		i, frac = 0, 0
	}

	switch o.interpolation {
	case InterpolationTruncate:
		return s[i]
	case InterpolationHermite:
		return interp.Hermite4(frac, s[(i-1)&mask], s[i], s[(i+1)&mask], s[(i+2)&mask])
	default:
		next := i + 1
		if next >= n {
			next = 0
		}

		return interp.Linear2(frac, s[i], s[next])
	}
}
