package wavetable

import (
	"fmt"
	"strings"
)

// WaveType selects the harmonic recipe used to build the tables.
type WaveType int

const (
	// WaveSawtooth contains every harmonic k with amplitude 1/k.
	WaveSawtooth WaveType = iota
	// WaveSquare contains odd harmonics k with amplitude 1/k.
	WaveSquare
	// WaveTriangle contains odd harmonics k with amplitude 1/k², alternating in sign.
	WaveTriangle
)

func (w WaveType) String() string {
	switch w {
	case WaveSawtooth:
		return "sawtooth"
	case WaveSquare:
		return "square"
	case WaveTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

func (w WaveType) valid() bool {
	return w >= WaveSawtooth && w <= WaveTriangle
}

// ParseWaveType resolves a shape name. Accepted names are the String forms
// plus the short aliases "saw", "sqr" and "tri", case-insensitively.
func ParseWaveType(name string) (WaveType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sawtooth", "saw":
		return WaveSawtooth, nil
	case "square", "sqr":
		return WaveSquare, nil
	case "triangle", "tri":
		return WaveTriangle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidWaveType, name)
	}
}
