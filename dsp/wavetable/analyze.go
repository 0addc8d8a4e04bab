package wavetable

import (
	"errors"
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavetable/dsp/spectrum"
)

// harmonicFloor is the magnitude, relative to the strongest bin, below which
// a bin counts as empty.
const harmonicFloor = 1e-9

// Analysis describes the measured harmonic content of a table.
type Analysis struct {
	// Peak is the largest absolute sample value.
	Peak float64
	// DC is the mean sample value.
	DC float64
	// HighestHarmonic is the highest bin above the harmonic floor.
	HighestHarmonic int
	// MaxPartialFreq is HighestHarmonic*TopFreq, the normalised frequency of
	// the highest partial when the table plays at its top frequency.
	MaxPartialFreq float64
	// Magnitudes holds bins 0..N/2, normalised to 1 at the strongest bin.
	Magnitudes []float64
}

// Analyze measures the spectrum of t with a forward FFT.
func Analyze(t *Table) (Analysis, error) {
	if t == nil || len(t.samples) == 0 {
		return Analysis{}, errors.New("wavetable: analyze requires a non-empty table")
	}

	n := len(t.samples)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Analysis{}, fmt.Errorf("wavetable: analyze plan for %d samples: %w", n, err)
	}

	in := make([]complex128, n)
	for i, v := range t.samples {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Analysis{}, fmt.Errorf("wavetable: analyze forward transform: %w", err)
	}

	mag := spectrum.Magnitude(spectrum.HalfSpectrum(out))

	a := Analysis{
		Peak:       vecmath.MaxAbs(t.samples),
		DC:         real(out[0]) / float64(n),
		Magnitudes: mag,
	}

	strongest := vecmath.MaxAbs(mag)
	if strongest == 0 {
		return a, nil
	}

	floor := strongest * harmonicFloor
	for k := len(mag) - 1; k >= 1; k-- {
		if mag[k] > floor {
			a.HighestHarmonic = k
			break
		}
	}

	a.MaxPartialFreq = float64(a.HighestHarmonic) * t.topFreq
	vecmath.ScaleBlock(mag, mag, 1/strongest)

	return a, nil
}
