package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudePower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}

	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}

	if math.Abs(mag[1]-math.Sqrt2) > 1e-12 {
		t.Fatalf("Magnitude[1]=%f want=sqrt(2)", mag[1])
	}

	pow := Power(bins)
	if math.Abs(pow[0]-25) > 1e-12 {
		t.Fatalf("Power[0]=%f want=25", pow[0])
	}

	if pow[2] != 0 {
		t.Fatalf("Power[2]=%f want=0", pow[2])
	}
}

func TestEmptyInput(t *testing.T) {
	if Magnitude(nil) != nil {
		t.Fatal("expected nil magnitude for empty input")
	}
	if Power(nil) != nil {
		t.Fatal("expected nil power for empty input")
	}
	if HalfSpectrum(nil) != nil {
		t.Fatal("expected nil half spectrum for empty input")
	}
}

func TestMagnitudeFromParts(t *testing.T) {
	re := []float64{3, 0, -6}
	im := []float64{4, 2, 8}
	dst := make([]float64, 3)

	MagnitudeFromParts(dst, re, im)

	want := []float64{5, 2, 10}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Fatalf("dst[%d]=%f want=%f", i, dst[i], want[i])
		}
	}
}

func TestPowerFromParts(t *testing.T) {
	re := []float64{1, 2}
	im := []float64{1, 0}
	dst := make([]float64, 2)

	PowerFromParts(dst, re, im)

	if dst[0] != 2 || dst[1] != 4 {
		t.Fatalf("unexpected power: %v", dst)
	}
}

func TestHalfSpectrum(t *testing.T) {
	full := make([]complex128, 8)
	half := HalfSpectrum(full)
	if len(half) != 5 {
		t.Fatalf("len=%d want=5", len(half))
	}
}
