package analyzer

import "math"

// Waveform holds the outputs of one temporal analysis pass.
type Waveform struct {
	RMS  float64
	Peak float64
	ZCR  float64
}

// TemporalAnalyzer converts time-domain sample buffers into loudness,
// peak amplitude, and zero-crossing rate. It carries no state.
type TemporalAnalyzer struct{}

// Analyze processes one buffer of byte-scale samples centered at 128.
// Samples are normalized to [-1,1] via (raw-128)/128 before measurement.
// An empty buffer yields zeroed results.
func (TemporalAnalyzer) Analyze(samples []float64) Waveform {
	if len(samples) == 0 {
		return Waveform{}
	}

	var sumSquares, peak float64
	crossings := 0
	prevNonNegative := true
	for i, raw := range samples {
		s := (raw - 128) / 128
		sumSquares += s * s
		if abs := math.Abs(s); abs > peak {
			peak = abs
		}
		nonNegative := s >= 0
		if i > 0 && nonNegative != prevNonNegative {
			crossings++
		}
		prevNonNegative = nonNegative
	}

	n := float64(len(samples))
	return Waveform{
		RMS:  math.Sqrt(sumSquares / n),
		Peak: peak,
		ZCR:  float64(crossings) / n,
	}
}
