package wavetable

import "github.com/cwbudde/algo-vecmath"

// peakHeadroom is the normalised peak of the auto-scaled table, kept just
// below full scale so interpolated reads cannot clip.
const peakHeadroom = 0.999

// makeTable transforms the spectrum held in sc (first n entries), normalises
// it and registers it in s at topFreq.
//
// A zero scale requests auto-scaling to peakHeadroom. The applied scale is
// returned so that later bands reuse it; zero signals that the table could
// not be registered.
func (s *tableSet) makeTable(sc *scratch, n int, scale, topFreq float64, harmonics int) float64 {
	partials, wave := sc.view(n)
	transform(partials, wave)

	if scale == 0 {
		peak := vecmath.MaxAbs(wave)
		if peak == 0 {
			return 0
		}

		scale = peakHeadroom / peak
	}

	samples := make([]float64, n)
	vecmath.ScaleBlock(samples, wave, scale)

	err := s.add(&Table{
		samples:   samples,
		topFreq:   topFreq,
		harmonics: harmonics,
	})
	if err != nil {
		return 0
	}

	return scale
}
