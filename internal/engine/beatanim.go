package engine

import (
	"math"
	"time"
)

// explosionWindow is the leading slice of progress during which a
// particle beat response may fire its one-shot explosion.
const explosionWindow = 0.1

// beatAnimation is a short-lived transient triggered by one beat event:
// an overshoot that decays back to baseline over a fixed duration. It is
// advanced by the engine's tick and terminates itself once progress
// reaches 1, regardless of how irregular the driving ticks are.
type beatAnimation struct {
	start    time.Duration
	duration time.Duration
	strength float64
	spec     ResponseSpec
	exploded bool
}

func newBeatAnimation(now time.Duration, spec ResponseSpec, strength float64) *beatAnimation {
	return &beatAnimation{
		start:    now,
		duration: spec.duration(),
		strength: strength,
		spec:     spec,
	}
}

// advance applies the current envelope to the target and reports whether
// the transient is finished. Large gaps between ticks clamp progress to 1
// immediately; progress never extrapolates backward.
func (a *beatAnimation) advance(now time.Duration, t *target, particles ParticleEmitter) bool {
	progress := float64(now-a.start) / float64(a.duration)
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	// Overshoot-and-decay envelope: strongest at progress 0, back to
	// baseline at progress 1.
	reverse := 1 - a.spec.curve()(progress)
	drive := a.spec.Intensity * a.strength

	switch a.spec.Property {
	case PropertyScale:
		if t.scalable != nil {
			t.scalable.SetScale(t.baseline.Scale + drive*reverse)
		}
	case PropertyRotation:
		if t.rotatable != nil {
			t.rotatable.SetRotation(t.baseline.Rotation + drive*reverse*math.Pi)
		}
	case PropertyParticles:
		if particles != nil && progress < explosionWindow && !a.exploded {
			x, y := t.position()
			particles.Explode(x, y, a.strength)
			a.exploded = true
		}
	}

	if progress >= 1 {
		a.settle(t)
		return true
	}
	return false
}

// settle restores the animated property to its exact baseline value.
func (a *beatAnimation) settle(t *target) {
	switch a.spec.Property {
	case PropertyScale:
		if t.scalable != nil {
			t.scalable.SetScale(t.baseline.Scale)
		}
	case PropertyRotation:
		if t.rotatable != nil {
			t.rotatable.SetRotation(t.baseline.Rotation)
		}
	}
}
