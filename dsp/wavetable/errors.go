package wavetable

import "errors"

var (
	// ErrCapacity reports that a table set has no free slot left.
	ErrCapacity = errors.New("wavetable: table capacity exhausted")

	// ErrInvalidWaveType reports an unknown waveform shape selector.
	ErrInvalidWaveType = errors.New("wavetable: invalid wave type")

	errTableOrder = errors.New("wavetable: tables must be added in increasing top frequency order")
)
