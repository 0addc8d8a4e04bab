package alias

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-wavetable/dsp/core"
	"github.com/cwbudde/algo-wavetable/dsp/spectrum"
	"github.com/cwbudde/algo-wavetable/dsp/window"
)

// ErrInvalidConfig reports an unusable measurement configuration.
var ErrInvalidConfig = errors.New("alias: invalid config")

// Config holds alias measurement parameters.
type Config struct {
	// SampleRate of the signal in Hz. Required.
	SampleRate float64
	// Fundamental is the expected fundamental frequency in Hz. Required.
	Fundamental float64
	// FFTSize is the transform length. Zero selects the next power of two
	// at or above the signal length; longer signals are truncated.
	FFTSize int
	// CaptureBins is the half-width of the region around each harmonic that
	// counts as harmonic energy. Zero derives it from the window main lobe.
	CaptureBins int
	// Window selects the analysis window. The zero value (rectangular) is
	// replaced by the 4-term Blackman-Harris window, whose sidelobes sit
	// below any alias level worth reporting.
	Window window.Type
}

// Result holds an alias measurement.
type Result struct {
	// BinHz is the spectral resolution of the measurement.
	BinHz float64
	// Harmonics is the number of harmonics below Nyquist that were captured.
	Harmonics int
	// HarmonicPower is the summed power of all harmonic regions.
	HarmonicPower float64
	// AliasPower is the summed power of every other bin above DC.
	AliasPower float64
	// AliasRatio is AliasPower/HarmonicPower.
	AliasRatio float64
	// AliasRatiodB is AliasRatio in dB (10*log10).
	AliasRatiodB float64
}

// Measure analyses signal, which should contain a steady periodic tone at
// cfg.Fundamental.
func Measure(signal []float64, cfg Config) (Result, error) {
	if len(signal) == 0 {
		return Result{}, fmt.Errorf("%w: empty signal", ErrInvalidConfig)
	}

	cfg, err := normalizeConfig(cfg, len(signal))
	if err != nil {
		return Result{}, err
	}

	n := cfg.FFTSize
	used := min(len(signal), n)

	buf := make([]float64, used)
	copy(buf, signal)
	window.Apply(cfg.Window, buf, window.WithPeriodic())

	in := make([]complex128, n)
	for i, v := range buf {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("alias: plan for %d points: %w", n, err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("alias: forward transform: %w", err)
	}

	power := spectrum.Power(spectrum.HalfSpectrum(out))
	binHz := cfg.SampleRate / float64(n)

	return classify(power, binHz, cfg.Fundamental, cfg.CaptureBins), nil
}

// classify splits a half power spectrum into harmonic and alias energy. Bins
// within capture of DC belong to neither.
func classify(power []float64, binHz, fundamental float64, capture int) Result {
	maxBin := len(power) - 1
	nyquist := float64(maxBin) * binHz

	harmonic := make([]bool, len(power))
	res := Result{BinHz: binHz}

	for k := 1; float64(k)*fundamental < nyquist; k++ {
		center := int(math.Round(float64(k) * fundamental / binHz))
		lo := max(center-capture, 0)
		hi := min(center+capture, maxBin)

		for i := lo; i <= hi; i++ {
			harmonic[i] = true
		}

		res.Harmonics++
	}

	for i := capture + 1; i <= maxBin; i++ {
		if harmonic[i] {
			res.HarmonicPower += power[i]
		} else {
			res.AliasPower += power[i]
		}
	}

	if res.HarmonicPower > 0 {
		res.AliasRatio = res.AliasPower / res.HarmonicPower
	}

	res.AliasRatiodB = core.LinearPowerToDB(res.AliasRatio)

	return res
}

func normalizeConfig(cfg Config, signalLen int) (Config, error) {
	if !(cfg.SampleRate > 0) || math.IsInf(cfg.SampleRate, 0) {
		return cfg, fmt.Errorf("%w: sample rate %g", ErrInvalidConfig, cfg.SampleRate)
	}

	if !(cfg.Fundamental > 0) || cfg.Fundamental >= cfg.SampleRate/2 {
		return cfg, fmt.Errorf("%w: fundamental %g Hz outside (0, %g)", ErrInvalidConfig,
			cfg.Fundamental, cfg.SampleRate/2)
	}

	if cfg.FFTSize == 0 {
		cfg.FFTSize = core.NextPowerOfTwo(signalLen)
	}

	if cfg.FFTSize < 2 || !core.IsPowerOfTwo(cfg.FFTSize) {
		return cfg, fmt.Errorf("%w: fft size %d", ErrInvalidConfig, cfg.FFTSize)
	}

	if cfg.Window == window.TypeRectangular {
		cfg.Window = window.TypeBlackmanHarris4Term
	}

	if cfg.CaptureBins < 0 {
		return cfg, fmt.Errorf("%w: capture bins %d", ErrInvalidConfig, cfg.CaptureBins)
	}

	if cfg.CaptureBins == 0 {
		cfg.CaptureBins = cfg.Window.MainLobeHalfWidth() + 1
	}

	return cfg, nil
}
