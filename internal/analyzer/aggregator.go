package analyzer

import "time"

// DefaultAnalysisRate is the analysis cadence in Hz when none is configured.
const DefaultAnalysisRate = 60.0

// Aggregator owns the current Features frame and throttles how often
// analysis runs relative to the host's update rate. Hosts may tick at any
// cadence; analysis fires at most once per configured interval and the
// previous frame is retained between firings.
type Aggregator struct {
	rate     float64
	interval time.Duration
	last     time.Duration
	frames   uint64
	features Features
}

// NewAggregator creates a throttle at the given analysis rate in Hz.
// Non-positive rates fall back to DefaultAnalysisRate. The first tick
// always fires.
func NewAggregator(rate float64) *Aggregator {
	if rate <= 0 {
		rate = DefaultAnalysisRate
	}
	interval := time.Duration(float64(time.Second) / rate)
	return &Aggregator{
		rate:     rate,
		interval: interval,
		last:     -interval,
	}
}

// Tick reports whether enough time has elapsed since the last analysis.
// On true it consumes the interval and increments the frame counter.
func (a *Aggregator) Tick(now time.Duration) bool {
	if now-a.last < a.interval {
		return false
	}
	a.last = now
	a.frames++
	return true
}

// Publish replaces the current frame.
func (a *Aggregator) Publish(f Features) {
	a.features = f
}

// Features returns the most recently published frame.
func (a *Aggregator) Features() Features {
	return a.features
}

// Frames returns the number of analysis passes executed so far.
func (a *Aggregator) Frames() uint64 {
	return a.frames
}

// Rate returns the configured analysis rate in Hz.
func (a *Aggregator) Rate() float64 {
	return a.rate
}
