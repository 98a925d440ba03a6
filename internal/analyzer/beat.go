package analyzer

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

const (
	beatHistorySize = 10
	beatRefractory  = 200 * time.Millisecond
	beatThreshold   = 1.3
)

// BeatDetector consumes a composite band-energy signal over time and
// emits discrete beat events with strength and a running tempo estimate.
// Timestamps are offsets from whatever epoch the caller drives with
// (the engine uses its own monotone clock); they only need to be
// strictly increasing.
type BeatDetector struct {
	history []float64

	lastBeat time.Duration
	hasBeat  bool
	interval time.Duration

	strength float64
	bpm      float64
}

// NewBeatDetector returns a detector with an empty energy history.
func NewBeatDetector() *BeatDetector {
	return &BeatDetector{
		history: make([]float64, 0, beatHistorySize),
	}
}

// Detect pushes one frame of band energies and reports whether a beat
// fired. Strength and bpm are sticky: on non-beat frames they keep their
// last computed values, so bpm reads as "last known tempo". BPM stays 0
// until at least one full inter-beat interval has been observed.
func (d *BeatDetector) Detect(now time.Duration, bass, mids, treble float64) (beat bool, strength, bpm float64) {
	energy := bass + mids + treble
	d.push(energy)

	threshold := stat.Mean(d.history, nil) * beatThreshold
	fired := energy > threshold && (!d.hasBeat || now-d.lastBeat > beatRefractory)
	if fired {
		if threshold > 0 {
			d.strength = (energy - threshold) / threshold
		} else {
			d.strength = 0
		}
		if d.hasBeat {
			current := now - d.lastBeat
			if d.interval == 0 {
				d.interval = current
			} else {
				d.interval = (d.interval + current) / 2
			}
			d.bpm = float64(time.Minute) / float64(d.interval)
		}
		d.lastBeat = now
		d.hasBeat = true
	}

	return fired, d.strength, d.bpm
}

// BPM returns the last known tempo estimate.
func (d *BeatDetector) BPM() float64 {
	return d.bpm
}

func (d *BeatDetector) push(energy float64) {
	d.history = append(d.history, energy)
	if len(d.history) > beatHistorySize {
		copy(d.history, d.history[1:])
		d.history = d.history[:len(d.history)-1]
	}
}
