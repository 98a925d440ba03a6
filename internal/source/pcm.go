package source

// DefaultWindow is the FFT window length for PCM-backed sources.
const DefaultWindow = 2048

// PCM serves frames out of a fully decoded mono sample buffer, stepping
// one window forward per Read and wrapping at the end of the material.
// WAV and MP3 file sources both reduce to this.
type PCM struct {
	samples []float64
	rate    float64
	window  int
	pos     int
	scratch []float64
}

// NewPCM wraps decoded samples in [-1,1] at the given sample rate. The
// window length is rounded up to a power of two; non-positive values use
// DefaultWindow.
func NewPCM(samples []float64, sampleRate float64, window int) *PCM {
	if window <= 0 {
		window = DefaultWindow
	}
	window = nextPow2(window)
	return &PCM{
		samples: samples,
		rate:    sampleRate,
		window:  window,
		scratch: make([]float64, window),
	}
}

// SampleRate returns the decoded material's sample rate.
func (p *PCM) SampleRate() float64 {
	return p.rate
}

// Read returns the next window as an analysis frame, looping at EOF.
func (p *PCM) Read() Frame {
	if len(p.samples) == 0 {
		return Frame{}
	}
	for i := range p.scratch {
		p.scratch[i] = p.samples[(p.pos+i)%len(p.samples)]
	}
	p.pos = (p.pos + p.window) % len(p.samples)
	return MakeFrame(p.scratch)
}
