// Command wtinfo prints the band layout of a band-limited wavetable
// oscillator.
//
// Usage:
//
//	wtinfo [flags]
//
// Examples:
//
//	wtinfo -wave square
//	wtinfo -rate 48000 -wave saw -analyze
//	wtinfo -wave triangle -plot 3
//	wtinfo -wave saw -alias 1000
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/cwbudde/algo-wavetable/dsp/wavetable"
)

const (
	defaultPlotWidth  = 72
	defaultPlotHeight = 15
)

func main() {
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	wave := flag.String("wave", "saw", "waveform: saw, square or triangle")
	oversample := flag.Int("oversample", 2, "table oversampling factor (1, 2, 4 or 8)")
	base := flag.Float64("base", 20, "lowest covered frequency in Hz")
	capacity := flag.Int("capacity", 16, "maximum number of tables")
	ratioLimit := flag.Int("ratio-limit", 99999, "table length below which halving stops")
	analyze := flag.Bool("analyze", false, "measure the spectrum of every table")
	plotBand := flag.Int("plot", -1, "draw one cycle of this band")
	aliasHz := flag.Float64("alias", 0, "render this frequency and measure its alias ratio")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wtinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the band layout of a band-limited wavetable oscillator.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wtinfo -wave square\n")
		fmt.Fprintf(os.Stderr, "  wtinfo -rate 48000 -analyze\n")
		fmt.Fprintf(os.Stderr, "  wtinfo -wave triangle -plot 3\n")
		fmt.Fprintf(os.Stderr, "  wtinfo -alias 1000\n")
	}
	flag.Parse()

	w, err := wavetable.ParseWaveType(*wave)
	if err != nil {
		fail(err)
	}

	osc, err := wavetable.New(*rate, w,
		wavetable.WithOversampling(*oversample),
		wavetable.WithBaseFrequency(*base),
		wavetable.WithCapacity(*capacity),
		wavetable.WithConstantRatioLimit(*ratioLimit),
	)
	if err != nil {
		fail(err)
	}

	if err := printBands(os.Stdout, osc); err != nil {
		fail(err)
	}

	if *analyze {
		if err := printAnalysis(os.Stdout, osc); err != nil {
			fail(err)
		}
	}

	if *plotBand >= 0 {
		if *plotBand >= osc.NumTables() {
			fail(fmt.Errorf("band %d out of range [0, %d)", *plotBand, osc.NumTables()))
		}

		width, height := plotSize()
		fmt.Printf("\nband %d, one cycle:\n", *plotBand)

		if err := plot(os.Stdout, osc.Tables()[*plotBand].Samples(), width, height); err != nil {
			fail(err)
		}
	}

	if *aliasHz > 0 {
		if err := printAlias(os.Stdout, osc, *aliasHz); err != nil {
			fail(err)
		}
	}
}

// plotSize fits the plot to the terminal when stdout is one.
func plotSize() (int, int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultPlotWidth, defaultPlotHeight
	}

	width, height, err := term.GetSize(fd)
	if err != nil || width < 16 || height < 8 {
		return defaultPlotWidth, defaultPlotHeight
	}

	return width - 1, min(height/2, 2*defaultPlotHeight)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
