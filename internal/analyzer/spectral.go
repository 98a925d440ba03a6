package analyzer

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Band edges in Hz. A bin belongs to exactly one band, so the three
// bin counts always sum to the buffer length.
const (
	bassCeilingHz   = 250.0
	trebleFloorHz   = 4000.0
	rolloffFraction = 0.85
)

// Spectrum holds the outputs of one spectral analysis pass.
type Spectrum struct {
	Bass     float64
	Mids     float64
	Treble   float64
	Centroid float64
	Rolloff  float64
	MFCC     [MFCCCount]float64
}

// SpectralAnalyzer converts frequency-domain magnitude buffers into band
// energies and spectral-shape statistics. It caches per-layout workspaces
// (bin center frequencies, mel filterbank) so steady-state analysis does
// not allocate.
type SpectralAnalyzer struct {
	freqs      []float64
	filterbank [][]float64
	binCount   int
	sampleRate float64
}

// NewSpectralAnalyzer returns an analyzer ready for any buffer layout.
func NewSpectralAnalyzer() *SpectralAnalyzer {
	return &SpectralAnalyzer{}
}

// Analyze computes band energies and shape statistics for one magnitude
// buffer. Magnitudes are expected normalized to [0,1] (byte scale / 255).
// Each band value is the mean magnitude of the band's bins, 0 when the
// band received no bins. With paula enabled every band value is passed
// through an 8-bit quantize + sinusoidal shaping stage.
func (a *SpectralAnalyzer) Analyze(magnitudes []float64, sampleRate float64, paula bool) Spectrum {
	if len(magnitudes) == 0 || sampleRate <= 0 {
		return Spectrum{}
	}
	a.ensureWorkspace(len(magnitudes), sampleRate)

	var bassSum, midsSum, trebleSum float64
	var bassN, midsN, trebleN int
	for i, mag := range magnitudes {
		switch freq := a.freqs[i]; {
		case freq <= bassCeilingHz:
			bassSum += mag
			bassN++
		case freq <= trebleFloorHz:
			midsSum += mag
			midsN++
		default:
			trebleSum += mag
			trebleN++
		}
	}

	sp := Spectrum{
		Bass:     bandMean(bassSum, bassN),
		Mids:     bandMean(midsSum, midsN),
		Treble:   bandMean(trebleSum, trebleN),
		Centroid: a.centroid(magnitudes),
		Rolloff:  a.rolloff(magnitudes),
	}
	sp.MFCC = a.mfcc(magnitudes)

	if paula {
		sp.Bass = paulaShape(sp.Bass)
		sp.Mids = paulaShape(sp.Mids)
		sp.Treble = paulaShape(sp.Treble)
	}
	return sp
}

func bandMean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// paulaShape quantizes to 8-bit depth and applies a sinusoidal
// nonlinearity, a stylization nod to the Amiga Paula chip.
func paulaShape(v float64) float64 {
	q := math.Floor(v*255) / 255
	return q * (1 + 0.1*math.Sin(q*math.Pi))
}

// centroid is the magnitude-weighted mean frequency.
func (a *SpectralAnalyzer) centroid(magnitudes []float64) float64 {
	total := 0.0
	for _, m := range magnitudes {
		total += m
	}
	if total <= 0 {
		return 0
	}
	return stat.Mean(a.freqs, magnitudes)
}

// rolloff is the lowest frequency below which rolloffFraction of the
// total magnitude is concentrated.
func (a *SpectralAnalyzer) rolloff(magnitudes []float64) float64 {
	total := 0.0
	for _, m := range magnitudes {
		total += m
	}
	if total <= 0 {
		return 0
	}
	target := total * rolloffFraction
	cum := 0.0
	for i, m := range magnitudes {
		cum += m
		if cum >= target {
			return a.freqs[i]
		}
	}
	return a.freqs[len(a.freqs)-1]
}

// mfcc folds the power spectrum through a 13-filter mel bank and applies
// a DCT-II to the log energies.
func (a *SpectralAnalyzer) mfcc(magnitudes []float64) [MFCCCount]float64 {
	var energies [MFCCCount]float64
	for k, filter := range a.filterbank {
		e := 0.0
		for i, w := range filter {
			if w > 0 {
				e += w * magnitudes[i] * magnitudes[i]
			}
		}
		energies[k] = math.Log(e + 1e-10)
	}

	var coeffs [MFCCCount]float64
	for k := 0; k < MFCCCount; k++ {
		sum := 0.0
		for n := 0; n < MFCCCount; n++ {
			sum += energies[n] * math.Cos(math.Pi*float64(k)*(float64(n)+0.5)/MFCCCount)
		}
		coeffs[k] = sum
	}
	return coeffs
}

func (a *SpectralAnalyzer) ensureWorkspace(binCount int, sampleRate float64) {
	if binCount == a.binCount && sampleRate == a.sampleRate {
		return
	}
	a.binCount = binCount
	a.sampleRate = sampleRate

	nyquist := sampleRate / 2
	a.freqs = make([]float64, binCount)
	for i := range a.freqs {
		a.freqs[i] = float64(i) * nyquist / float64(binCount)
	}
	a.filterbank = melFilterbank(binCount, nyquist, MFCCCount)
}

// melFilterbank builds triangular filters evenly spaced on the mel scale
// between 0 Hz and the Nyquist frequency.
func melFilterbank(binCount int, nyquist float64, filters int) [][]float64 {
	melMax := hzToMel(nyquist)
	points := make([]float64, filters+2)
	for i := range points {
		points[i] = melToHz(melMax * float64(i) / float64(filters+1))
	}

	bank := make([][]float64, filters)
	binHz := nyquist / float64(binCount)
	for k := 0; k < filters; k++ {
		lo, mid, hi := points[k], points[k+1], points[k+2]
		filter := make([]float64, binCount)
		for i := 0; i < binCount; i++ {
			f := float64(i) * binHz
			switch {
			case f <= lo || f >= hi:
				// outside the triangle
			case f <= mid:
				filter[i] = (f - lo) / math.Max(mid-lo, 1e-10)
			default:
				filter[i] = (hi - f) / math.Max(hi-mid, 1e-10)
			}
		}
		bank[k] = filter
	}
	return bank
}

func hzToMel(hz float64) float64 {
	return 2595 * math.Log10(1+hz/700)
}

func melToHz(mel float64) float64 {
	return 700 * (math.Pow(10, mel/2595) - 1)
}
