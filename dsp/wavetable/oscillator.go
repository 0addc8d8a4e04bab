package wavetable

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavetable/dsp/core"
)

// Oscillator plays a set of band-limited tables for one waveform shape.
//
// The table set is built once in New and is read-only afterwards. Phase
// state (phasor, phase increment, phase offset) belongs to the caller: it is
// stored on the oscillator for convenience but only the setters and
// UpdatePhase change it.
type Oscillator struct {
	sampleRate    float64
	waveType      WaveType
	baseFrequency float64
	gain          float64
	interpolation Interpolation
	scale         float64

	tables tableSet

	phasor   float64
	phaseInc float64
	phaseOfs float64
}

// New builds the full band set for waveType at sampleRate.
//
// The first band holds round(sampleRate / (3*base)) harmonics, where base is
// the configured base frequency; each following band covers the next octave
// with half the harmonics, down to a single one. With the defaults at
// 44.1 kHz that yields ten 4096-sample tables.
func New(sampleRate float64, waveType WaveType, opts ...Option) (*Oscillator, error) {
	if !isFinite(sampleRate) || sampleRate <= 0 {
		return nil, fmt.Errorf("wavetable: sample rate must be > 0 and finite: %f", sampleRate)
	}

	if !waveType.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWaveType, int(waveType))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	o := &Oscillator{
		sampleRate:    sampleRate,
		waveType:      waveType,
		baseFrequency: cfg.baseFrequency,
		gain:          cfg.gain,
		interpolation: cfg.interpolation,
		tables:        newTableSet(cfg.capacity),
		phaseOfs:      defaultPhaseOffset,
	}

	if err := o.build(cfg); err != nil {
		return nil, err
	}

	return o, nil
}

// build fills the table set, lowest band first.
func (o *Oscillator) build(cfg config) error {
	// Harmonic count at which the top harmonic of the base band and the
	// lowest alias one octave up meet.
	maxHarmonics := int(math.Floor(o.sampleRate/(3*cfg.baseFrequency) + 0.5))
	if maxHarmonics < 1 {
		return fmt.Errorf("wavetable: sample rate %g too low for base frequency %g", o.sampleRate, cfg.baseFrequency)
	}

	tableLen := core.NextPowerOfTwo(maxHarmonics) * 2 * cfg.oversampling
	sc := newScratch(tableLen)

	topFreq := cfg.baseFrequency * 2 / o.sampleRate
	scale := 0.0

	for ; maxHarmonics >= 1; maxHarmonics /= 2 {
		if !core.IsPowerOfTwo(tableLen) {
			panic(fmt.Sprintf("wavetable: table length %d is not a power of two", tableLen))
		}

		partials, wave := sc.view(tableLen)
		harmonics := definePartials(o.waveType, partials, wave, maxHarmonics)

		scale = o.tables.makeTable(sc, tableLen, scale, topFreq, harmonics)
		if scale == 0 {
			// Capacity reached: the remaining bands are the highest octaves.
			break
		}

		o.scale = scale
		topFreq *= 2

		if tableLen > cfg.constantRatioLimit {
			tableLen /= 2
		}
	}

	if o.tables.len() == 0 {
		return fmt.Errorf("wavetable: no table could be built for %s at %g Hz", o.waveType, o.sampleRate)
	}

	return nil
}

// SampleRate returns the sample rate in Hz.
func (o *Oscillator) SampleRate() float64 { return o.sampleRate }

// WaveType returns the waveform shape.
func (o *Oscillator) WaveType() WaveType { return o.waveType }

// BaseFrequency returns the lowest band's reference pitch in Hz.
func (o *Oscillator) BaseFrequency() float64 { return o.baseFrequency }

// Gain returns the output gain.
func (o *Oscillator) Gain() float64 { return o.gain }

// Interpolation returns the read interpolation mode.
func (o *Oscillator) Interpolation() Interpolation { return o.interpolation }

// Scale returns the normalisation factor shared by all bands.
func (o *Oscillator) Scale() float64 { return o.scale }

// NumTables returns the number of bands built.
func (o *Oscillator) NumTables() int { return o.tables.len() }

// Tables returns the bands ordered by increasing top frequency.
func (o *Oscillator) Tables() []*Table {
	return append([]*Table(nil), o.tables.tables...)
}

// SelectTable returns the index of the band used at phaseInc: the first
// whose top frequency exceeds phaseInc, or the last band.
func (o *Oscillator) SelectTable(phaseInc float64) int {
	return o.tables.index(phaseInc)
}
