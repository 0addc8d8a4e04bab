package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/cwbudde/algo-wavetable/dsp/core"
	"github.com/cwbudde/algo-wavetable/dsp/wavetable"
)

type renderConfig struct {
	startHz  float64
	endHz    float64 // zero holds startHz
	duration time.Duration
	pwm      bool
	duty     float64
	block    int
}

// renderer pulls blocks from an oscillator, gliding the pitch exponentially
// from startHz to endHz over the rendered length.
type renderer struct {
	osc   *wavetable.Oscillator
	pwm   bool
	total int
	pos   int
	inc   float64
	glide float64 // per-sample increment multiplier
	block int
	buf   []float64
}

func newRenderer(osc *wavetable.Oscillator, cfg renderConfig) (*renderer, error) {
	nyquist := osc.SampleRate() / 2

	if !(cfg.startHz > 0) || cfg.startHz >= nyquist {
		return nil, fmt.Errorf("frequency %g Hz outside (0, %g)", cfg.startHz, nyquist)
	}

	if cfg.endHz < 0 || cfg.endHz >= nyquist {
		return nil, fmt.Errorf("sweep target %g Hz outside [0, %g)", cfg.endHz, nyquist)
	}

	if cfg.duty < 0 || cfg.duty >= 1 {
		return nil, fmt.Errorf("duty %g outside [0, 1)", cfg.duty)
	}

	total := int(math.Round(cfg.duration.Seconds() * osc.SampleRate()))
	if total <= 0 {
		return nil, errors.New("duration must cover at least one sample")
	}

	r := &renderer{
		osc:   osc,
		pwm:   cfg.pwm,
		total: total,
		inc:   cfg.startHz / osc.SampleRate(),
		glide: 1,
		block: max(cfg.block, 1),
	}

	if cfg.endHz > 0 {
		r.glide = math.Pow(cfg.endHz/cfg.startHz, 1/float64(total))
	}

	osc.SetPhase(0)
	osc.SetPhaseIncrement(r.inc)
	osc.SetPhaseOffset(cfg.duty)

	return r, nil
}

// next renders up to len(dst) samples and returns how many were written.
func (r *renderer) next(dst []float64) int {
	n := min(len(dst), r.total-r.pos)

	for i := range n {
		r.osc.SetPhaseIncrement(r.inc)

		if r.pwm {
			dst[i] = r.osc.OutputMinusOffset()
		} else {
			dst[i] = r.osc.Output()
		}

		r.osc.UpdatePhase()
		r.inc *= r.glide
	}

	r.pos += n

	return n
}

// Read implements io.Reader, producing float32 little-endian mono samples.
func (r *renderer) Read(p []byte) (int, error) {
	want := min(len(p)/4, r.block)
	if r.pos >= r.total {
		return 0, io.EOF
	}

	if want == 0 {
		return 0, nil
	}

	r.buf = core.EnsureLen(r.buf, want)
	n := r.next(r.buf)

	for i, v := range r.buf[:n] {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(float32(v)))
	}

	return n * 4, nil
}
