package engine

import "math"

// orbitRadius scales the positional orbit produced by position responses.
const orbitRadius = 10.0

// applyContinuous maps one audio feature value through one response spec
// onto the target, writing baseline + delta as the property's new
// absolute value. now is the engine clock in seconds; roll supplies
// uniform randoms for the probabilistic particle trigger.
func applyContinuous(t *target, spec ResponseSpec, value float64, now float64, roll func() float64, particles ParticleEmitter) {
	if spec.Property == PropertyNone {
		return
	}

	eased := spec.curve()(value)
	drive := spec.Intensity * value

	switch spec.Property {
	case PropertyScale:
		if t.scalable != nil {
			t.scalable.SetScale(t.baseline.Scale + drive*value*eased)
		}

	case PropertyRotation:
		if t.rotatable != nil {
			t.rotatable.SetRotation(t.baseline.Rotation + drive*value*eased*math.Pi)
		}

	case PropertyPosition:
		if t.positionable != nil {
			// Shared phase gives an orbit whose radius follows the audio.
			phase := now + value*math.Pi
			x := t.baseline.X + drive*value*eased*math.Sin(phase)*orbitRadius
			y := t.baseline.Y + drive*value*eased*math.Cos(phase)*orbitRadius
			t.positionable.SetPosition(x, y)
		}

	case PropertyColor:
		if t.colorable != nil {
			hue := math.Mod(value*360, 360)
			saturation := 50 + drive*value*50
			lightness := 50 + eased*30
			t.colorable.SetColorHSL(hue, saturation, lightness)
		}

	case PropertyParticles:
		if particles == nil || value <= 0.3 || roll() >= value {
			return
		}
		if count := int(drive * value * 5); count > 0 {
			x, y := t.position()
			particles.Sparkle(x, y, count)
		}
	}
}

// position reports the object's current position, falling back to the
// baseline when the object has no position capability.
func (t *target) position() (float64, float64) {
	if t.positionable != nil {
		return t.positionable.Position()
	}
	return t.baseline.X, t.baseline.Y
}
