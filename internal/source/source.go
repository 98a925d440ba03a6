// Package source provides the audio frame producers the sync engine pulls
// from: live capture adapters, decoded files, and a synthetic generator.
package source

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// Frame is one analysis tick worth of audio data. Spectrum holds
// frequency-bin magnitudes normalized to [0,1] (byte scale / 255);
// Waveform holds byte-scale time-domain samples centered at 128. Both
// carry the same number of values.
type Frame struct {
	Spectrum []float64
	Waveform []float64
}

// Source delivers the latest audio frame on demand. Read must never
// block on upstream audio; producers keep a rolling buffer and hand out
// the most recent window.
type Source interface {
	SampleRate() float64
	Read() Frame
}

// MakeFrame converts one window of mono samples in [-1,1] into a Frame.
// The window length is halved into frequency bins, so both frame buffers
// come out at len(window)/2 values.
func MakeFrame(window []float64) Frame {
	bins := len(window) / 2
	if bins == 0 {
		return Frame{}
	}

	windowed := make([]float64, len(window))
	n := float64(len(window))
	for i, s := range window {
		windowed[i] = s * hann(float64(i), n)
	}

	spectrum := make([]float64, bins)
	for i, c := range fft.FFTReal(windowed)[:bins] {
		// 4/N compensates FFT scaling plus the Hann coherent gain of 0.5.
		mag := cmplxAbs(c) * 4 / n
		spectrum[i] = clamp01(mag)
	}

	waveform := make([]float64, bins)
	tail := window[len(window)-bins:]
	for i, s := range tail {
		waveform[i] = clampByte(s*128 + 128)
	}

	return Frame{Spectrum: spectrum, Waveform: waveform}
}

func hann(i, size float64) float64 {
	return 0.5 * (1.0 - math.Cos(2.0*math.Pi*i/size))
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampByte(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func nextPow2(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	return n + 1
}
