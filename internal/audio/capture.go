// Package audio adapts a PortAudio input stream into the frame source
// the sync engine consumes.
package audio

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/SickDinner/Uho-sub002/internal/source"
)

const defaultWindow = 2048

// Capture wraps a PortAudio input stream behind a rolling mono buffer and
// serves the most recent window as an analysis frame on every Read.
type Capture struct {
	stream     *portaudio.Stream
	sampleRate float64
	channels   int
	device     *portaudio.DeviceInfo

	mu     sync.RWMutex
	ring   []float64
	index  int
	window []float64
}

// Config controls how a Capture is opened.
type Config struct {
	DeviceName string // substring match, empty = default input
	Window     int    // FFT window length, rounded to the ring size
	Channels   int
}

// NewCapture opens and starts an input stream on the requested device.
func NewCapture(cfg Config) (*Capture, error) {
	if cfg.Window <= 0 {
		cfg.Window = defaultWindow
	}
	if cfg.Channels <= 0 {
		cfg.Channels = 1
	}

	device, err := findDevice(cfg.DeviceName)
	if err != nil {
		return nil, err
	}

	c := &Capture{
		sampleRate: device.DefaultSampleRate,
		channels:   cfg.Channels,
		device:     device,
		ring:       make([]float64, cfg.Window),
		window:     make([]float64, cfg.Window),
	}

	stream, err := portaudio.OpenStream(portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Device:   device,
			Channels: cfg.Channels,
			Latency:  device.DefaultLowInputLatency,
		},
		SampleRate:      c.sampleRate,
		FramesPerBuffer: portaudio.FramesPerBufferUnspecified,
	}, c.process)
	if err != nil {
		return nil, fmt.Errorf("open stream: %w", err)
	}
	c.stream = stream

	if err := c.stream.Start(); err != nil {
		_ = c.stream.Close()
		return nil, fmt.Errorf("start stream: %w", err)
	}
	return c, nil
}

// SampleRate returns the stream sample rate.
func (c *Capture) SampleRate() float64 {
	return c.sampleRate
}

// DeviceName returns the name of the opened input device.
func (c *Capture) DeviceName() string {
	if c.device == nil {
		return ""
	}
	return c.device.Name
}

// Read snapshots the most recent capture window into a frame.
func (c *Capture) Read() source.Frame {
	c.mu.RLock()
	n := len(c.ring)
	copy(c.window, c.ring[c.index:])
	copy(c.window[n-c.index:], c.ring[:c.index])
	c.mu.RUnlock()

	return source.MakeFrame(c.window)
}

// Close stops and closes the underlying stream.
func (c *Capture) Close() error {
	if c.stream == nil {
		return nil
	}
	if err := c.stream.Stop(); err != nil && !isAlreadyStopped(err) {
		return err
	}
	return c.stream.Close()
}

// process is the PortAudio callback: mix to mono and append to the ring.
func (c *Capture) process(in []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	frames := len(in) / c.channels
	for f := 0; f < frames; f++ {
		sum := float32(0)
		for ch := 0; ch < c.channels; ch++ {
			sum += in[f*c.channels+ch]
		}
		c.ring[c.index] = float64(sum) / float64(c.channels)
		c.index = (c.index + 1) % len(c.ring)
	}
}

func findDevice(name string) (*portaudio.DeviceInfo, error) {
	if name == "" {
		if dev, err := portaudio.DefaultInputDevice(); err == nil && dev != nil && dev.MaxInputChannels > 0 {
			return dev, nil
		}
	}

	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("list audio devices: %w", err)
	}

	wanted := strings.ToLower(name)
	var fallback *portaudio.DeviceInfo
	for _, dev := range devices {
		if dev == nil || dev.MaxInputChannels == 0 {
			continue
		}
		if wanted != "" && strings.Contains(strings.ToLower(dev.Name), wanted) {
			return dev, nil
		}
		if fallback == nil {
			fallback = dev
		}
	}

	if wanted != "" {
		return nil, fmt.Errorf("audio device %q not found", name)
	}
	if fallback == nil {
		return nil, fmt.Errorf("no suitable audio input device found")
	}
	return fallback, nil
}

// isAlreadyStopped detects stopping a stream that is not running.
func isAlreadyStopped(err error) bool {
	return err != nil && strings.Contains(err.Error(), "PaErrorCode -9986")
}
