package wavetable

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavetable/dsp/core"
)

// transform runs an in-place radix-2 decimation-in-time FFT over the split
// complex buffer (re, im): a bit-reversal permutation followed by log2(N)
// butterfly stages with negative-exponent twiddles (Cooley, Lewis and Welch).
//
// The partial generators write odd-symmetric spectra into re, so after the
// call im holds the time-domain cycle. re is left with a rounding-level
// residue and must not be read as a spectrum.
//
// len(re) must equal len(im) and be a power of two; anything else would
// corrupt the bit-reversal indexing, so it panics.
func transform(re, im []float64) {
	n := len(re)
	if len(im) != n {
		panic("wavetable: transform buffer length mismatch")
	}

	if !core.IsPowerOfTwo(n) {
		panic(fmt.Sprintf("wavetable: transform length must be a power of two: %d", n))
	}

	half := n >> 1

	j := 0
	for i := 0; i < n-1; i++ {
		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}

		k := half
		for k <= j {
			j -= k
			k >>= 1
		}

		j += k
	}

	for le := 2; le <= n; le <<= 1 {
		le1 := le >> 1
		ur, ui := 1.0, 0.0
		wr := math.Cos(math.Pi / float64(le1))
		wi := -math.Sin(math.Pi / float64(le1))

		for j := 0; j < le1; j++ {
			for i := j; i < n; i += le {
				ip := i + le1
				tr := re[ip]*ur - im[ip]*ui
				ti := re[ip]*ui + im[ip]*ur
				re[ip] = re[i] - tr
				im[ip] = im[i] - ti
				re[i] += tr
				im[i] += ti
			}

			ur, ui = ur*wr-ui*wi, ur*wi+ui*wr
		}
	}
}
