package wavetable

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-wavetable/internal/testutil"
)

func TestAnalyzeBandLimits(t *testing.T) {
	for _, rate := range []float64{44100, 48000} {
		for _, w := range allWaveTypes {
			osc := mustNew(t, rate, w)

			for band, tbl := range osc.Tables() {
				a, err := Analyze(tbl)
				if err != nil {
					t.Fatalf("%v/%s band %d: Analyze error = %v", rate, w, band, err)
				}

				if a.HighestHarmonic > tbl.Harmonics() {
					t.Fatalf("%v/%s band %d: highest harmonic %d exceeds %d",
						rate, w, band, a.HighestHarmonic, tbl.Harmonics())
				}

				// Square and triangle carry odd harmonics only.
				if a.HighestHarmonic < tbl.Harmonics()-1 {
					t.Fatalf("%v/%s band %d: highest harmonic %d, want >= %d",
						rate, w, band, a.HighestHarmonic, tbl.Harmonics()-1)
				}

				if w == WaveSawtooth && a.HighestHarmonic != tbl.Harmonics() {
					t.Fatalf("%v/saw band %d: highest harmonic %d, want %d",
						rate, band, a.HighestHarmonic, tbl.Harmonics())
				}

				if a.MaxPartialFreq > 2.0/3.0+1e-9 {
					t.Fatalf("%v/%s band %d: max partial %.9f above 2/3",
						rate, w, band, a.MaxPartialFreq)
				}

				if math.Abs(a.DC) > 1e-12 {
					t.Fatalf("%v/%s band %d: dc=%g", rate, w, band, a.DC)
				}
			}
		}
	}
}

func TestAnalyzePeakAndShape(t *testing.T) {
	tests := []struct {
		wave  WaveType
		third float64
	}{
		{wave: WaveSawtooth, third: 1.0 / 3},
		{wave: WaveSquare, third: 1.0 / 3},
		{wave: WaveTriangle, third: 1.0 / 9},
	}

	for _, tt := range tests {
		t.Run(tt.wave.String(), func(t *testing.T) {
			osc := mustNew(t, 44100, tt.wave)

			a, err := Analyze(osc.Tables()[0])
			if err != nil {
				t.Fatalf("Analyze error = %v", err)
			}

			testutil.RequireNearlyEqual(t, "peak", a.Peak, peakHeadroom, 1e-12)
			testutil.RequireNearlyEqual(t, "fundamental", a.Magnitudes[1], 1, 1e-12)
			testutil.RequireNearlyEqual(t, "third harmonic", a.Magnitudes[3], tt.third, 1e-9)

			if len(a.Magnitudes) != osc.Tables()[0].Len()/2+1 {
				t.Fatalf("len(Magnitudes)=%d, want %d", len(a.Magnitudes), osc.Tables()[0].Len()/2+1)
			}

			if tt.wave == WaveSawtooth {
				testutil.RequireNearlyEqual(t, "second harmonic", a.Magnitudes[2], 0.5, 1e-9)
				return
			}

			for k := 2; k <= 20; k += 2 {
				if a.Magnitudes[k] > 1e-9 {
					t.Fatalf("even harmonic %d = %g, want 0", k, a.Magnitudes[k])
				}
			}
		})
	}
}

func TestAnalyzeRejectsEmptyTable(t *testing.T) {
	if _, err := Analyze(nil); err == nil {
		t.Fatal("Analyze(nil) succeeded")
	}

	if _, err := Analyze(&Table{}); err == nil {
		t.Fatal("Analyze(empty) succeeded")
	}
}

func TestAnalyzeSilentTable(t *testing.T) {
	a, err := Analyze(&Table{samples: make([]float64, 16), topFreq: 0.1})
	if err != nil {
		t.Fatalf("Analyze error = %v", err)
	}

	if a.HighestHarmonic != 0 || a.Peak != 0 || a.MaxPartialFreq != 0 {
		t.Fatalf("silent analysis = %+v", a)
	}
}
