package source

import (
	"fmt"
	"io"
	"os"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// LoadMP3 decodes an entire MP3 file to mono and wraps it in a looping
// PCM source. go-mp3 always emits 16-bit little-endian stereo.
func LoadMP3(path string, window int) (*PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mp3: %w", err)
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("decode mp3 %s: %w", path, err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("read mp3 %s: %w", path, err)
	}
	if len(raw) < 4 {
		return nil, fmt.Errorf("mp3 %s contains no samples", path)
	}

	mono := make([]float64, 0, len(raw)/4)
	for i := 0; i+3 < len(raw); i += 4 {
		left := int16(raw[i]) | int16(raw[i+1])<<8
		right := int16(raw[i+2]) | int16(raw[i+3])<<8
		mono = append(mono, (float64(left)+float64(right))/2/32768)
	}

	return NewPCM(mono, float64(dec.SampleRate()), window), nil
}
