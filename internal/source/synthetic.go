package source

import (
	"math"
	"math/rand"
	"time"
)

// Synthetic fabricates plausible audio frames without any capture device:
// a kick pulse twice a second, slower mid/high oscillations, and a little
// noise. Useful for demos and for driving the engine in tests.
type Synthetic struct {
	rng  *rand.Rand
	bins int
	step float64
	t    float64

	phaseMid  float64
	phaseHigh float64
}

// NewSynthetic creates a generator emitting bins-sized frames, advancing
// its internal clock by 1/ticksPerSecond per Read.
func NewSynthetic(bins int, ticksPerSecond float64) *Synthetic {
	if bins <= 0 {
		bins = 1024
	}
	if ticksPerSecond <= 0 {
		ticksPerSecond = 60
	}
	return &Synthetic{
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		bins: bins,
		step: 1.0 / ticksPerSecond,
	}
}

// SampleRate reports the nominal rate the fabricated spectrum pretends
// to have been captured at.
func (s *Synthetic) SampleRate() float64 {
	return 44100
}

// Read fabricates the next frame.
func (s *Synthetic) Read() Frame {
	s.t += s.step
	s.phaseMid += s.step * 1.2
	s.phaseHigh += s.step * 2.1

	// Kick pulse at 120 BPM: sharp attack, fast decay.
	beatPhase := s.t * 2
	kick := math.Max(0, 1-(beatPhase-math.Floor(beatPhase))*4)
	bassLevel := clamp01(0.15 + 0.85*kick)
	midLevel := clamp01(0.35 + 0.35*math.Sin(s.phaseMid+0.5))
	highLevel := clamp01(0.25 + 0.25*math.Sin(s.phaseHigh+1.0))

	nyquist := s.SampleRate() / 2
	spectrum := make([]float64, s.bins)
	waveform := make([]float64, s.bins)
	for i := range spectrum {
		freq := float64(i) * nyquist / float64(s.bins)
		level := highLevel
		switch {
		case freq <= 250:
			level = bassLevel
		case freq <= 4000:
			level = midLevel
		}
		spectrum[i] = clamp01(level * (0.9 + 0.1*s.rng.Float64()))

		sample := bassLevel*math.Sin(float64(i)*0.05+s.t*40) +
			0.3*highLevel*(s.rng.Float64()*2-1)
		waveform[i] = clampByte(sample*100 + 128)
	}

	return Frame{Spectrum: spectrum, Waveform: waveform}
}
