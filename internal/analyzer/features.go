package analyzer

// MFCCCount is the fixed number of mel-frequency cepstral coefficients
// carried on every Features value.
const MFCCCount = 13

// Features describes one analysis frame: spectral energy distribution,
// loudness, percussiveness, and rhythmic cues. It is a plain value with
// no identity; the engine republishes a fresh one each analysis tick.
type Features struct {
	Bass   float64 `json:"bass"`
	Mids   float64 `json:"mids"`
	Treble float64 `json:"treble"`

	RMS  float64 `json:"rms"`
	Peak float64 `json:"peak"`
	ZCR  float64 `json:"zcr"`

	BeatDetected bool    `json:"beatDetected"`
	BeatStrength float64 `json:"beatStrength"`
	BPM          float64 `json:"bpm"`

	// Brightness/sharpness statistics and cepstral coefficients are
	// published for downstream consumers but not read by the mapper.
	SpectralCentroid float64            `json:"spectralCentroid"`
	SpectralRolloff  float64            `json:"spectralRolloff"`
	MFCC             [MFCCCount]float64 `json:"mfcc"`
}

// Clamp forces every bounded field back into its declared range. The
// engine calls this once before publishing a frame.
func (f *Features) Clamp() {
	f.Bass = clamp(f.Bass, 0, 1)
	f.Mids = clamp(f.Mids, 0, 1)
	f.Treble = clamp(f.Treble, 0, 1)
	f.RMS = clamp(f.RMS, 0, 1)
	f.Peak = clamp(f.Peak, 0, 1)
	f.ZCR = clamp(f.ZCR, 0, 1)
	if f.BeatStrength < 0 {
		f.BeatStrength = 0
	}
	if f.BPM < 0 {
		f.BPM = 0
	}
	if f.SpectralCentroid < 0 {
		f.SpectralCentroid = 0
	}
	if f.SpectralRolloff < 0 {
		f.SpectralRolloff = 0
	}
}

func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
