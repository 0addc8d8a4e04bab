package wavetable

import (
	"errors"
	"testing"
)

func TestTableSetCapacity(t *testing.T) {
	s := newTableSet(2)

	if err := s.add(&Table{topFreq: 0.1}); err != nil {
		t.Fatalf("add #1: %v", err)
	}

	if err := s.add(&Table{topFreq: 0.2}); err != nil {
		t.Fatalf("add #2: %v", err)
	}

	if err := s.add(&Table{topFreq: 0.4}); !errors.Is(err, ErrCapacity) {
		t.Fatalf("add #3 error = %v, want ErrCapacity", err)
	}

	if s.len() != 2 {
		t.Fatalf("len = %d, want 2", s.len())
	}
}

func TestTableSetRejectsOutOfOrder(t *testing.T) {
	s := newTableSet(4)

	if err := s.add(&Table{topFreq: 0.2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	for _, f := range []float64{0.2, 0.1} {
		if err := s.add(&Table{topFreq: f}); !errors.Is(err, errTableOrder) {
			t.Fatalf("add(%v) error = %v, want order error", f, err)
		}
	}
}

func TestTableSetIndex(t *testing.T) {
	s := newTableSet(4)
	for _, f := range []float64{0.01, 0.02, 0.04} {
		if err := s.add(&Table{topFreq: f}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	tests := []struct {
		phaseInc float64
		want     int
	}{
		{phaseInc: 0, want: 0},
		{phaseInc: 0.005, want: 0},
		{phaseInc: 0.01, want: 1},
		{phaseInc: 0.015, want: 1},
		{phaseInc: 0.039, want: 2},
		{phaseInc: 0.04, want: 2},
		{phaseInc: 0.9, want: 2},
	}

	for _, tt := range tests {
		if got := s.index(tt.phaseInc); got != tt.want {
			t.Fatalf("index(%v) = %d, want %d", tt.phaseInc, got, tt.want)
		}
	}
}

func TestTableAccessors(t *testing.T) {
	tbl := &Table{samples: []float64{0, 1, 0, -1}, topFreq: 0.25, harmonics: 1}

	if tbl.Len() != 4 || tbl.TopFreq() != 0.25 || tbl.Harmonics() != 1 {
		t.Fatalf("unexpected accessors: len=%d top=%v harmonics=%d", tbl.Len(), tbl.TopFreq(), tbl.Harmonics())
	}

	cp := tbl.Samples()
	cp[1] = 42
	if tbl.At(1) != 1 {
		t.Fatal("Samples must return a copy")
	}
}
