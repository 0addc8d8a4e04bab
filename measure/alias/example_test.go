package alias_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavetable/dsp/wavetable"
	"github.com/cwbudde/algo-wavetable/measure/alias"
)

func ExampleMeasure() {
	const sampleRate = 44100.0

	osc, err := wavetable.New(sampleRate, wavetable.WaveSquare, wavetable.WithGain(1))
	if err != nil {
		panic(err)
	}

	osc.SetFrequency(1000)

	signal := make([]float64, 16384)
	osc.ProcessBlock(signal)

	res, err := alias.Measure(signal, alias.Config{SampleRate: sampleRate, Fundamental: 1000})
	if err != nil {
		panic(err)
	}

	fmt.Println(res.Harmonics, res.AliasRatiodB < -50)
	// Output: 22 true
}
