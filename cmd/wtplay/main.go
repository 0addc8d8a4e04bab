// Command wtplay renders a band-limited wavetable oscillator to the sound
// card or to a WAV file.
//
// Usage:
//
//	wtplay [flags]
//
// Examples:
//
//	wtplay -wave square -freq 110
//	wtplay -wave saw -freq 55 -sweep-to 7040 -duration 4s
//	wtplay -wave saw -pwm -duty 0.2 -freq 220
//	wtplay -wave triangle -freq 440 -wav out.wav
//	wtplay -wave square -freq 55 -wav out.wav -dither
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cwbudde/algo-vecmath"
	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-wavetable/dsp/core"
	"github.com/cwbudde/algo-wavetable/dsp/wavetable"
)

func main() {
	rate := flag.Int("rate", 44100, "sample rate in Hz")
	wave := flag.String("wave", "saw", "waveform: saw, square or triangle")
	freq := flag.Float64("freq", 220, "start frequency in Hz")
	sweepTo := flag.Float64("sweep-to", 0, "end frequency of an exponential sweep in Hz (0 disables)")
	duration := flag.Duration("duration", 2*time.Second, "length of the rendered signal")
	pwm := flag.Bool("pwm", false, "play the pulse-width output")
	duty := flag.Float64("duty", 0.5, "pulse width as phase offset in [0, 1)")
	gain := flag.Float64("gain", 0.5, "output gain")
	wavPath := flag.String("wav", "", "write 16-bit PCM WAV to this path instead of playing")
	dither := flag.Bool("dither", false, "add TPDF dither when writing WAV")
	seed := flag.Int64("seed", 1, "dither noise seed")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wtplay [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders a band-limited wavetable oscillator.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wtplay -wave square -freq 110\n")
		fmt.Fprintf(os.Stderr, "  wtplay -wave saw -freq 55 -sweep-to 7040 -duration 4s\n")
		fmt.Fprintf(os.Stderr, "  wtplay -wave triangle -freq 440 -wav out.wav\n")
	}
	flag.Parse()

	w, err := wavetable.ParseWaveType(*wave)
	if err != nil {
		fail(err)
	}

	cfg := core.ApplyProcessorOptions(core.WithSampleRate(float64(*rate)))

	osc, err := wavetable.New(cfg.SampleRate, w, wavetable.WithGain(*gain))
	if err != nil {
		fail(err)
	}

	r, err := newRenderer(osc, renderConfig{
		startHz:  *freq,
		endHz:    *sweepTo,
		duration: *duration,
		pwm:      *pwm,
		duty:     *duty,
		block:    cfg.BlockSize,
	})
	if err != nil {
		fail(err)
	}

	if *wavPath != "" {
		var state *vecmath.DitherState
		if *dither {
			state = vecmath.NewDitherState(*seed)
		}

		if err := writeWAVFile(*wavPath, r, *rate, state); err != nil {
			fail(err)
		}

		fmt.Fprintf(os.Stderr, "wrote %d samples to %s\n", r.total, *wavPath)

		return
	}

	if err := play(r, *rate); err != nil {
		fail(err)
	}
}

func play(r *renderer, sampleRate int) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(r)
	defer player.Close()

	player.Play()

	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	return player.Err()
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
