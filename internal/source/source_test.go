package source

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeFrameSineLandsInExpectedBin(t *testing.T) {
	const window = 2048
	const sampleRate = 44100.0
	const freq = 440.0

	samples := make([]float64, window)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
	}

	frame := MakeFrame(samples)
	require.Len(t, frame.Spectrum, window/2)
	require.Len(t, frame.Waveform, window/2)

	peakBin := 0
	for i, m := range frame.Spectrum {
		if m > frame.Spectrum[peakBin] {
			peakBin = i
		}
	}
	wantBin := int(math.Round(freq * window / sampleRate))
	assert.InDelta(t, wantBin, peakBin, 1)
	assert.Greater(t, frame.Spectrum[peakBin], 0.5)
}

func TestMakeFrameBuffersAreByteScale(t *testing.T) {
	samples := make([]float64, 256)
	for i := range samples {
		samples[i] = math.Sin(float64(i) * 0.7)
	}
	frame := MakeFrame(samples)
	for _, m := range frame.Spectrum {
		assert.GreaterOrEqual(t, m, 0.0)
		assert.LessOrEqual(t, m, 1.0)
	}
	for _, s := range frame.Waveform {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 255.0)
	}
}

func TestMakeFrameEmptyWindow(t *testing.T) {
	assert.Equal(t, Frame{}, MakeFrame(nil))
}

func TestPCMWrapsAtEOF(t *testing.T) {
	samples := make([]float64, 300) // shorter than one window
	for i := range samples {
		samples[i] = math.Sin(float64(i) * 0.2)
	}
	p := NewPCM(samples, 44100, 256)

	for i := 0; i < 10; i++ {
		frame := p.Read()
		require.Len(t, frame.Spectrum, 128)
		require.Len(t, frame.Waveform, 128)
	}
}

func TestPCMEmptyMaterial(t *testing.T) {
	p := NewPCM(nil, 44100, 256)
	assert.Equal(t, Frame{}, p.Read())
}

func TestSyntheticFrameShape(t *testing.T) {
	s := NewSynthetic(512, 60)
	assert.Equal(t, 44100.0, s.SampleRate())

	for i := 0; i < 120; i++ {
		frame := s.Read()
		require.Len(t, frame.Spectrum, 512)
		require.Len(t, frame.Waveform, 512)
		for _, m := range frame.Spectrum {
			require.GreaterOrEqual(t, m, 0.0)
			require.LessOrEqual(t, m, 1.0)
		}
		for _, w := range frame.Waveform {
			require.GreaterOrEqual(t, w, 0.0)
			require.LessOrEqual(t, w, 255.0)
		}
	}
}

func TestNextPow2(t *testing.T) {
	cases := map[int]int{
		0:    1,
		1:    1,
		2:    2,
		3:    4,
		5:    8,
		1024: 1024,
		1025: 2048,
	}
	for input, want := range cases {
		if got := nextPow2(input); got != want {
			t.Fatalf("nextPow2(%d)=%d want=%d", input, got, want)
		}
	}
}
