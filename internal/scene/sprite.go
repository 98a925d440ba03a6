// Package scene provides demo drawables and effects for driving the sync
// engine from the command-line tool: a sprite implementing every target
// capability, a particle emitter, and an optional SDL window.
package scene

import "fmt"

// Sprite is a minimal drawable: the engine animates it through its
// capability methods and a renderer reads the same state back out.
type Sprite struct {
	Name string

	scale    float64
	rotation float64
	x, y     float64
	alpha    float64

	hue, sat, light float64
	tinted          bool
}

// NewSprite places a sprite at rest: unit scale, no rotation, opaque.
func NewSprite(name string, x, y float64) *Sprite {
	return &Sprite{Name: name, scale: 1, x: x, y: y, alpha: 1}
}

func (s *Sprite) Scale() float64        { return s.scale }
func (s *Sprite) SetScale(v float64)    { s.scale = v }
func (s *Sprite) Rotation() float64     { return s.rotation }
func (s *Sprite) SetRotation(v float64) { s.rotation = v }

func (s *Sprite) Position() (float64, float64) { return s.x, s.y }
func (s *Sprite) SetPosition(x, y float64)     { s.x, s.y = x, y }

func (s *Sprite) Alpha() float64     { return s.alpha }
func (s *Sprite) SetAlpha(v float64) { s.alpha = v }

// SetColorHSL tints the sprite; hue in degrees, saturation and lightness
// in percent.
func (s *Sprite) SetColorHSL(h, sat, l float64) {
	s.hue, s.sat, s.light = h, sat, l
	s.tinted = true
}

// ColorRGB returns the sprite tint as 8-bit RGB, white when untinted.
func (s *Sprite) ColorRGB() (r, g, b uint8) {
	if !s.tinted {
		return 255, 255, 255
	}
	return hslToRGB(s.hue, s.sat, s.light)
}

// Status is a one-line summary for terminal display.
func (s *Sprite) Status() string {
	return fmt.Sprintf("%s scale=%.2f rot=%.2f pos=(%.1f,%.1f)", s.Name, s.scale, s.rotation, s.x, s.y)
}

// hslToRGB converts hue [0,360), saturation and lightness [0,100] to
// 8-bit RGB channels.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	s /= 100
	l /= 100
	if s < 0 {
		s = 0
	}
	if s > 1 {
		s = 1
	}
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}

	c := (1 - abs(2*l-1)) * s
	hp := h / 60
	for hp < 0 {
		hp += 6
	}
	for hp >= 6 {
		hp -= 6
	}
	x := c * (1 - abs(mod2(hp)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return channel(r + m), channel(g + m), channel(b + m)
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func mod2(v float64) float64 {
	for v >= 2 {
		v -= 2
	}
	return v
}
