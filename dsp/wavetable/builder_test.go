package wavetable

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-wavetable/internal/testutil"
)

func TestMakeTableAutoScale(t *testing.T) {
	const n = 256

	s := newTableSet(4)
	sc := newScratch(n)
	partials, wave := sc.view(n)
	definePartials(WaveSquare, partials, wave, 31)

	scale := s.makeTable(sc, n, 0, 0.01, 31)
	if scale <= 0 {
		t.Fatalf("scale = %v, want > 0", scale)
	}

	peak := 0.0
	for _, v := range s.tables[0].samples {
		peak = math.Max(peak, math.Abs(v))
	}

	testutil.RequireNearlyEqual(t, "peak", peak, peakHeadroom, 1e-12)
}

func TestMakeTableReusesScale(t *testing.T) {
	const n = 128

	s := newTableSet(4)
	sc := newScratch(n)
	partials, wave := sc.view(n)
	definePartials(WaveSawtooth, partials, wave, 8)

	got := s.makeTable(sc, n, 0.25, 0.01, 8)
	if got != 0.25 {
		t.Fatalf("scale = %v, want 0.25", got)
	}

	partials, wave = sc.view(n)
	definePartials(WaveSawtooth, partials, wave, 8)
	transform(partials, wave)

	for i, v := range s.tables[0].samples {
		if math.Abs(v-0.25*wave[i]) > 1e-15 {
			t.Fatalf("sample %d = %v, want %v", i, v, 0.25*wave[i])
		}
	}
}

func TestMakeTableCapacityReturnsZero(t *testing.T) {
	const n = 64

	s := newTableSet(1)
	sc := newScratch(n)

	for i, want := range []bool{true, false} {
		partials, wave := sc.view(n)
		definePartials(WaveTriangle, partials, wave, 4)

		scale := s.makeTable(sc, n, 0, 0.01*float64(i+1), 4)
		if (scale != 0) != want {
			t.Fatalf("call %d: scale = %v, want success=%v", i, scale, want)
		}
	}

	if s.len() != 1 {
		t.Fatalf("len = %d, want 1", s.len())
	}
}

func TestMakeTableSilentSpectrum(t *testing.T) {
	const n = 32

	s := newTableSet(2)
	if scale := s.makeTable(newScratch(n), n, 0, 0.01, 0); scale != 0 {
		t.Fatalf("scale = %v, want 0 for a silent spectrum", scale)
	}

	if s.len() != 0 {
		t.Fatalf("len = %d, want 0", s.len())
	}
}
