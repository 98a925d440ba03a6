package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpectralUniformBuffer(t *testing.T) {
	mags := make([]float64, 1024)
	for i := range mags {
		mags[i] = 1.0
	}

	sp := NewSpectralAnalyzer().Analyze(mags, 44100, false)
	assert.InDelta(t, 1.0, sp.Bass, 1e-9)
	assert.InDelta(t, 1.0, sp.Mids, 1e-9)
	assert.InDelta(t, 1.0, sp.Treble, 1e-9)
}

func TestSpectralBandsPartitionBins(t *testing.T) {
	const binCount = 1024
	const sampleRate = 44100.0
	a := NewSpectralAnalyzer()
	mags := make([]float64, binCount)

	bandBins := 0
	for i := 0; i < binCount; i++ {
		mags[i] = 1.0
		sp := a.Analyze(mags, sampleRate, false)
		mags[i] = 0.0

		nonZero := 0
		for _, band := range []float64{sp.Bass, sp.Mids, sp.Treble} {
			if band > 0 {
				nonZero++
			}
		}
		require.Equalf(t, 1, nonZero, "bin %d must land in exactly one band", i)
		bandBins++
	}
	assert.Equal(t, binCount, bandBins)
}

func TestSpectralEmptyBuffer(t *testing.T) {
	sp := NewSpectralAnalyzer().Analyze(nil, 44100, false)
	assert.Equal(t, Spectrum{}, sp)
}

func TestSpectralCentroidAndRolloffSingleBin(t *testing.T) {
	const binCount = 512
	const sampleRate = 48000.0
	mags := make([]float64, binCount)
	mags[100] = 0.8

	sp := NewSpectralAnalyzer().Analyze(mags, sampleRate, false)
	wantFreq := 100.0 * (sampleRate / 2) / binCount
	assert.InDelta(t, wantFreq, sp.Centroid, 1e-6)
	assert.InDelta(t, wantFreq, sp.Rolloff, 1e-6)
}

func TestPaulaShape(t *testing.T) {
	if got := paulaShape(0); got != 0 {
		t.Fatalf("paulaShape(0)=%f want 0", got)
	}

	q := math.Floor(0.5*255) / 255
	want := q * (1 + 0.1*math.Sin(q*math.Pi))
	assert.InDelta(t, want, paulaShape(0.5), 1e-12)
}

func TestSpectralPaulaModeShapesBands(t *testing.T) {
	mags := make([]float64, 1024)
	for i := range mags {
		mags[i] = 0.5
	}
	a := NewSpectralAnalyzer()

	plain := a.Analyze(mags, 44100, false)
	shaped := a.Analyze(mags, 44100, true)
	assert.InDelta(t, paulaShape(plain.Bass), shaped.Bass, 1e-12)
	assert.InDelta(t, paulaShape(plain.Treble), shaped.Treble, 1e-12)
}

func TestMFCCHasAllCoefficients(t *testing.T) {
	mags := make([]float64, 256)
	for i := range mags {
		mags[i] = 0.3 + 0.2*math.Sin(float64(i)/10)
	}
	sp := NewSpectralAnalyzer().Analyze(mags, 44100, false)
	for k, c := range sp.MFCC {
		require.Falsef(t, math.IsNaN(c) || math.IsInf(c, 0), "mfcc[%d] is not finite: %f", k, c)
	}
}
