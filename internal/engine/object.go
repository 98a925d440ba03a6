// Package engine maps analyzed audio features onto the visual parameters
// of registered animation targets.
package engine

// Drawable objects are duck-typed through small capability interfaces:
// a target object implements whichever of these it supports and the
// engine simply skips responses the object cannot express.

// Scalable exposes a uniform scale factor.
type Scalable interface {
	Scale() float64
	SetScale(float64)
}

// Rotatable exposes a rotation in radians.
type Rotatable interface {
	Rotation() float64
	SetRotation(float64)
}

// Positionable exposes a 2D position.
type Positionable interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
}

// Colorable accepts an HSL tint (hue in degrees, saturation and
// lightness in percent).
type Colorable interface {
	SetColorHSL(h, s, l float64)
}

// Fadeable exposes an opacity in [0,1]. Only read for baseline capture;
// no built-in response writes it.
type Fadeable interface {
	Alpha() float64
	SetAlpha(float64)
}

// ParticleEmitter is the external particle-effects collaborator. Bursts
// are fire-and-forget side effects; implementations must be safe for
// concurrent calls when the engine dispatches targets in parallel.
type ParticleEmitter interface {
	// Sparkle requests a burst of count sparkle particles at a position.
	Sparkle(x, y float64, count int)
	// Explode requests a one-shot explosion of the given strength.
	Explode(x, y float64, strength float64)
}
