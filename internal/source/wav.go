package source

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// LoadWAV decodes an entire WAV file to mono and wraps it in a looping
// PCM source with the given FFT window length.
func LoadWAV(path string, window int) (*PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav %s: %w", path, err)
	}
	if buf == nil || len(buf.Data) == 0 {
		return nil, fmt.Errorf("wav %s contains no samples", path)
	}

	format := buf.Format
	if format == nil {
		format = &audio.Format{NumChannels: 1, SampleRate: 44100}
	}
	channels := format.NumChannels
	if channels < 1 {
		channels = 1
	}
	bitDepth := int(dec.BitDepth)
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := float64(int64(1) << (bitDepth - 1))

	mono := make([]float64, 0, len(buf.Data)/channels)
	for i := 0; i+channels <= len(buf.Data); i += channels {
		sum := 0.0
		for ch := 0; ch < channels; ch++ {
			sum += float64(buf.Data[i+ch])
		}
		mono = append(mono, sum/float64(channels)/scale)
	}

	return NewPCM(mono, float64(format.SampleRate), window), nil
}
