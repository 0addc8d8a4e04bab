package window

import (
	"math"
	"testing"
)

func TestGenerateAllTypes(t *testing.T) {
	types := []Type{
		TypeRectangular,
		TypeHann,
		TypeBlackman,
		TypeBlackmanHarris4Term,
	}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
				if v < -1e-12 || v > 1+1e-12 {
					t.Fatalf("coefficient[%d]=%v outside [0,1]", i, v)
				}
			}

			// Symmetric form is mirror-symmetric.
			for i := range w {
				if d := math.Abs(w[i] - w[len(w)-1-i]); d > 1e-12 {
					t.Fatalf("asymmetric at %d: %v vs %v", i, w[i], w[len(w)-1-i])
				}
			}
		})
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)
	b := Generate(TypeHann, 16, WithPeriodic())

	if len(a) != 16 || len(b) != 16 {
		t.Fatalf("unexpected lengths: %d %d", len(a), len(b))
	}

	if math.Abs(b[8]-1) > 1e-12 {
		t.Fatalf("periodic hann centre = %v, want 1", b[8])
	}

	if math.Abs(a[15]) > 1e-12 || math.Abs(b[15]) < 1e-3 {
		t.Fatalf("unexpected end samples: symmetric=%v periodic=%v", a[15], b[15])
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	if Generate(TypeHann, 0) != nil {
		t.Fatal("expected nil for zero length")
	}
}

func TestCoherentGain(t *testing.T) {
	tests := []struct {
		typ  Type
		want float64
	}{
		{typ: TypeRectangular, want: 1},
		{typ: TypeHann, want: 0.5},
		{typ: TypeBlackman, want: 0.42},
		{typ: TypeBlackmanHarris4Term, want: 0.35875},
	}

	for _, tt := range tests {
		got := CoherentGain(Generate(tt.typ, 4096, WithPeriodic()))
		if math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("%s: coherent gain = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestApplyMatchesGenerate(t *testing.T) {
	buf := []float64{2, 2, 2, 2, 2}
	Apply(TypeBlackman, buf)

	w := Generate(TypeBlackman, 5)
	for i := range buf {
		if math.Abs(buf[i]-2*w[i]) > 1e-12 {
			t.Fatalf("buf[%d]=%v want %v", i, buf[i], 2*w[i])
		}
	}
}
