package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavetable/dsp/core"
)

const (
	wavHeaderSize = 44
	// pcm16LSB is one quantisation step of 16-bit PCM in float units.
	pcm16LSB = 1.0 / 32768
)

// writeWAVFile renders r to a mono 16-bit PCM WAV file at path. A non-nil
// dither state adds +-1 LSB TPDF noise before quantisation.
func writeWAVFile(path string, r *renderer, sampleRate int, dither *vecmath.DitherState) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := writeWAV(f, r, sampleRate, dither); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}

// writeWAV streams r into w. The header is written last, once the data size
// is known.
func writeWAV(w io.WriteSeeker, r *renderer, sampleRate int, dither *vecmath.DitherState) error {
	if _, err := w.Write(make([]byte, wavHeaderSize)); err != nil {
		return err
	}

	var dataSize uint32

	block := make([]float64, r.block)
	pcm := make([]byte, 2*r.block)

	for {
		n := r.next(block)
		if n == 0 {
			break
		}

		if dither != nil {
			vecmath.AddDitherTPDF(block[:n], pcm16LSB, dither)
		}

		for i, v := range block[:n] {
			binary.LittleEndian.PutUint16(pcm[i*2:], uint16(toPCM16(v)))
		}

		written, err := w.Write(pcm[:2*n])
		if err != nil {
			return err
		}

		dataSize += uint32(written)
	}

	header := make([]byte, wavHeaderSize)
	writeWAVHeader(header, dataSize, sampleRate, 1)

	if _, err := w.Seek(0, io.SeekStart); err != nil {
		return err
	}

	_, err := w.Write(header)

	return err
}

func toPCM16(v float64) int16 {
	scaled := core.Clamp(v*32768, -32768, 32767)
	return int16(math.RoundToEven(scaled))
}

func writeWAVHeader(dst []byte, dataSize uint32, sampleRate, channels int) {
	copy(dst[0:4], "RIFF")
	binary.LittleEndian.PutUint32(dst[4:8], 36+dataSize)
	copy(dst[8:12], "WAVE")
	copy(dst[12:16], "fmt ")
	binary.LittleEndian.PutUint32(dst[16:20], 16)
	binary.LittleEndian.PutUint16(dst[20:22], 1)
	binary.LittleEndian.PutUint16(dst[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(dst[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(dst[28:32], uint32(sampleRate*channels*2))
	binary.LittleEndian.PutUint16(dst[32:34], uint16(channels*2))
	binary.LittleEndian.PutUint16(dst[34:36], 16)
	copy(dst[36:40], "data")
	binary.LittleEndian.PutUint32(dst[40:44], dataSize)
}
