package main

import (
	"errors"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// plot draws samples as a width x height character grid. Each column shows
// the sample range it covers, so narrow edges stay visible.
func plot(w io.Writer, samples []float64, width, height int) error {
	if len(samples) == 0 {
		return errors.New("plot: no samples")
	}

	if width < 1 || height < 2 {
		return errors.New("plot: grid too small")
	}

	peak := vecmath.MaxAbs(samples)
	if peak == 0 {
		peak = 1
	}

	grid := make([][]byte, height)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(" ", width))
	}

	zero := row(0, peak, height)
	for c := range width {
		grid[zero][c] = '-'
	}

	for c := range width {
		lo := c * len(samples) / width
		hi := max((c+1)*len(samples)/width, lo+1)

		top := row(slices.Max(samples[lo:hi]), peak, height)
		bottom := row(slices.Min(samples[lo:hi]), peak, height)

		for r := top; r <= bottom; r++ {
			grid[r][c] = '*'
		}
	}

	var sb strings.Builder
	for _, line := range grid {
		sb.Write(line)
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// row maps v in [-peak, peak] to a grid row, 0 at the top.
func row(v, peak float64, height int) int {
	r := int(math.Round((1 - v/peak) / 2 * float64(height-1)))
	return min(max(r, 0), height-1)
}
