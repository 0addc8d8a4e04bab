package wavetable

import "fmt"

// Table is one band-limited single-cycle waveform. It is immutable once the
// owning oscillator has been constructed.
type Table struct {
	samples   []float64
	topFreq   float64
	harmonics int
}

// Len returns the number of samples in one cycle (a power of two).
func (t *Table) Len() int { return len(t.samples) }

// TopFreq returns the highest normalised phase increment (cycles/sample) for
// which the table is alias-safe.
func (t *Table) TopFreq() float64 { return t.topFreq }

// Harmonics returns the number of harmonics the table was synthesised with.
func (t *Table) Harmonics() int { return t.harmonics }

// Samples returns a copy of the cycle.
func (t *Table) Samples() []float64 {
	return append([]float64(nil), t.samples...)
}

// At returns sample i of the cycle.
func (t *Table) At(i int) float64 { return t.samples[i] }

// tableSet is an ordered, capacity-bounded collection of tables with
// strictly increasing top frequencies.
type tableSet struct {
	tables   []*Table
	capacity int
}

func newTableSet(capacity int) tableSet {
	return tableSet{
		tables:   make([]*Table, 0, capacity),
		capacity: capacity,
	}
}

// add appends t. It returns ErrCapacity when the set is full.
func (s *tableSet) add(t *Table) error {
	if len(s.tables) >= s.capacity {
		return ErrCapacity
	}

	if n := len(s.tables); n > 0 && t.topFreq <= s.tables[n-1].topFreq {
		return fmt.Errorf("%w: %g after %g", errTableOrder, t.topFreq, s.tables[n-1].topFreq)
	}

	s.tables = append(s.tables, t)

	return nil
}

// index returns the first table whose top frequency exceeds phaseInc, or the
// last table when none does.
func (s *tableSet) index(phaseInc float64) int {
	last := len(s.tables) - 1

	i := 0
	for i < last && phaseInc >= s.tables[i].topFreq {
		i++
	}

	return i
}

func (s *tableSet) len() int { return len(s.tables) }
