package wavetable

import (
	"fmt"

	"github.com/cwbudde/algo-wavetable/dsp/core"
)

// scratch holds the split complex buffer shared by the partial generator and
// the transform while a table set is being built. partials carries the real
// part, wave the imaginary part. Both are overwritten for every band.
type scratch struct {
	partials []float64
	wave     []float64
}

func newScratch(n int) *scratch {
	return &scratch{
		partials: make([]float64, n),
		wave:     make([]float64, n),
	}
}

// view returns the leading n entries of both buffers.
func (s *scratch) view(n int) (partials, wave []float64) {
	return s.partials[:n], s.wave[:n]
}

// definePartials zeroes both buffers and writes the harmonic amplitudes of
// shape w for harmonics 1..numHarmonics into partials, mirrored with opposite
// sign at n-1..n-numHarmonics. Bin 0 (DC) and the Nyquist bin stay zero.
// numHarmonics is clamped to n/2 and the clamped count is returned.
func definePartials(w WaveType, partials, wave []float64, numHarmonics int) int {
	n := len(partials)
	if len(wave) != n {
		panic("wavetable: partial buffer length mismatch")
	}

	if numHarmonics > n/2 {
		numHarmonics = n / 2
	}

	core.Zero(partials)
	core.Zero(wave)

	amplitude := harmonicAmplitude(w)
	for idx, jdx := 1, n-1; idx <= numHarmonics; idx, jdx = idx+1, jdx-1 {
		a := amplitude(idx)
		partials[idx] = a
		partials[jdx] = -a
	}

	return numHarmonics
}

// harmonicAmplitude returns the low-half amplitude of harmonic k for shape w.
func harmonicAmplitude(w WaveType) func(k int) float64 {
	switch w {
	case WaveSawtooth:
		return func(k int) float64 {
			return 1 / float64(k)
		}
	case WaveSquare:
		return func(k int) float64 {
			if k&1 == 0 {
				return 0
			}
			return -1 / float64(k)
		}
	case WaveTriangle:
		return func(k int) float64 {
			if k&1 == 0 {
				return 0
			}
			a := 1 / float64(k*k)
			// +, -, +, ... over the odd harmonics 1, 3, 5, ...
			if (k>>1)&1 == 1 {
				return -a
			}
			return a
		}
	default:
		panic(fmt.Sprintf("wavetable: no partial recipe for wave type %d", int(w)))
	}
}
