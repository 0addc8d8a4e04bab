package wavetable

import (
	"fmt"
	"math"
)

const (
	defaultBaseFrequency      = 20.0
	defaultOversampling       = 2
	defaultConstantRatioLimit = 99999
	defaultCapacity           = 16
	defaultGain               = 0.5
	defaultPhaseOffset        = 0.5

	maxCapacity = 64
	maxGain     = 4.0
)

// Interpolation selects how the output accessors read between table samples.
type Interpolation int

const (
	// InterpolationLinear blends the two neighbouring samples.
	InterpolationLinear Interpolation = iota
	// InterpolationTruncate reads the sample at the truncated position.
	InterpolationTruncate
	// InterpolationHermite uses 4-point cubic Hermite interpolation.
	InterpolationHermite
)

func (i Interpolation) String() string {
	switch i {
	case InterpolationLinear:
		return "linear"
	case InterpolationTruncate:
		return "truncate"
	case InterpolationHermite:
		return "hermite"
	default:
		return "unknown"
	}
}

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	baseFrequency      float64
	oversampling       int
	constantRatioLimit int
	capacity           int
	gain               float64
	interpolation      Interpolation
}

func defaultConfig() config {
	return config{
		baseFrequency:      defaultBaseFrequency,
		oversampling:       defaultOversampling,
		constantRatioLimit: defaultConstantRatioLimit,
		capacity:           defaultCapacity,
		gain:               defaultGain,
		interpolation:      InterpolationLinear,
	}
}

// WithBaseFrequency sets the lowest pitch in Hz the first band covers.
// Lower values give more harmonics and longer tables. Must be finite and > 0.
func WithBaseFrequency(hz float64) Option {
	return func(cfg *config) error {
		if !isFinite(hz) || hz <= 0 {
			return fmt.Errorf("wavetable: base frequency must be > 0 and finite: %f", hz)
		}

		cfg.baseFrequency = hz

		return nil
	}
}

// WithOversampling sets the table oversampling factor. Allowed values: 1, 2, 4, 8.
func WithOversampling(factor int) Option {
	return func(cfg *config) error {
		switch factor {
		case 1, 2, 4, 8:
		default:
			return fmt.Errorf("wavetable: oversampling factor must be one of {1,2,4,8}: %d", factor)
		}

		cfg.oversampling = factor

		return nil
	}
}

// WithConstantRatioLimit halves the table length for every higher band while
// the current length exceeds limit. 0 keeps the oversampling ratio constant
// across all bands; a limit at or above the first table length keeps every
// table the same length (the default).
func WithConstantRatioLimit(limit int) Option {
	return func(cfg *config) error {
		if limit < 0 {
			return fmt.Errorf("wavetable: constant ratio limit must be >= 0: %d", limit)
		}

		cfg.constantRatioLimit = limit

		return nil
	}
}

// WithCapacity sets the maximum number of bands in [1, 64]. Bands beyond the
// capacity (the highest octaves) are not built.
func WithCapacity(n int) Option {
	return func(cfg *config) error {
		if n < 1 || n > maxCapacity {
			return fmt.Errorf("wavetable: capacity must be in [1,%d]: %d", maxCapacity, n)
		}

		cfg.capacity = n

		return nil
	}
}

// WithGain sets the gain applied by the output accessors, in [0, 4].
func WithGain(gain float64) Option {
	return func(cfg *config) error {
		if !isFinite(gain) || gain < 0 || gain > maxGain {
			return fmt.Errorf("wavetable: gain must be in [0,%g]: %f", maxGain, gain)
		}

		cfg.gain = gain

		return nil
	}
}

// WithInterpolation selects the read interpolation.
func WithInterpolation(mode Interpolation) Option {
	return func(cfg *config) error {
		switch mode {
		case InterpolationLinear, InterpolationTruncate, InterpolationHermite:
		default:
			return fmt.Errorf("wavetable: invalid interpolation mode: %d", mode)
		}

		cfg.interpolation = mode

		return nil
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
