package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-wavetable/dsp/core"
	"github.com/cwbudde/algo-wavetable/dsp/wavetable"
	"github.com/cwbudde/algo-wavetable/measure/alias"
)

// aliasSeconds is the length rendered for an alias measurement.
const aliasSeconds = 0.5

func printBands(w io.Writer, osc *wavetable.Oscillator) error {
	if _, err := fmt.Fprintf(w, "%s @ %g Hz, base %g Hz, %d tables, scale %.6g\n\n",
		osc.WaveType(), osc.SampleRate(), osc.BaseFrequency(), osc.NumTables(), osc.Scale()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Band\tLength\tHarmonics\tTop Freq\tTop [Hz]\n")
	fmt.Fprintf(tw, "----\t------\t---------\t--------\t--------\n")

	for i, t := range osc.Tables() {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.6f\t%.1f\n",
			i, t.Len(), t.Harmonics(), t.TopFreq(), t.TopFreq()*osc.SampleRate())
	}

	return tw.Flush()
}

func printAnalysis(w io.Writer, osc *wavetable.Oscillator) error {
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Band\tPeak\tDC\tHighest\tMax Partial\tFold Floor [Hz]\n")
	fmt.Fprintf(tw, "----\t----\t--\t-------\t-----------\t---------------\n")

	for i, t := range osc.Tables() {
		a, err := wavetable.Analyze(t)
		if err != nil {
			return fmt.Errorf("band %d: %w", i, err)
		}

		// A partial at f folds back to sampleRate-f.
		fold := (1 - a.MaxPartialFreq) * osc.SampleRate()

		fmt.Fprintf(tw, "%d\t%.4f\t%.1e\t%d\t%.4f\t%.1f\n",
			i, a.Peak, a.DC, a.HighestHarmonic, a.MaxPartialFreq, fold)
	}

	return tw.Flush()
}

func printAlias(w io.Writer, osc *wavetable.Oscillator, hz float64) error {
	res, err := measureAlias(osc, hz)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "\nalias at %g Hz (band %d): %d harmonics, ratio %.2f dB\n",
		hz, osc.SelectTable(hz/osc.SampleRate()), res.Harmonics, res.AliasRatiodB)

	return err
}

func measureAlias(osc *wavetable.Oscillator, hz float64) (alias.Result, error) {
	cfg := core.ApplyProcessorOptions(core.WithSampleRate(osc.SampleRate()))

	n := core.NextPowerOfTwo(int(aliasSeconds * cfg.SampleRate))
	signal := make([]float64, n)

	osc.SetPhase(0)
	osc.SetFrequency(hz)

	for off := 0; off < n; off += cfg.BlockSize {
		osc.ProcessBlock(signal[off:min(off+cfg.BlockSize, n)])
	}

	return alias.Measure(signal, alias.Config{
		SampleRate:  cfg.SampleRate,
		Fundamental: hz,
		FFTSize:     n,
	})
}
