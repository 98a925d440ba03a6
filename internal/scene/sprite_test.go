package scene

import (
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpriteDefaults(t *testing.T) {
	s := NewSprite("hero", 10, 20)
	assert.Equal(t, 1.0, s.Scale())
	assert.Equal(t, 0.0, s.Rotation())
	x, y := s.Position()
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)
	assert.Equal(t, 1.0, s.Alpha())

	r, g, b := s.ColorRGB()
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})
}

func TestSpriteTint(t *testing.T) {
	s := NewSprite("hero", 0, 0)

	s.SetColorHSL(0, 100, 50) // pure red
	r, g, b := s.ColorRGB()
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})

	s.SetColorHSL(120, 100, 50) // pure green
	r, g, b = s.ColorRGB()
	assert.Equal(t, [3]uint8{0, 255, 0}, [3]uint8{r, g, b})

	s.SetColorHSL(240, 100, 50) // pure blue
	r, g, b = s.ColorRGB()
	assert.Equal(t, [3]uint8{0, 0, 255}, [3]uint8{r, g, b})
}

func TestHSLGrays(t *testing.T) {
	r, g, b := hslToRGB(37, 0, 50)
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)

	r, g, b = hslToRGB(0, 100, 100)
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})

	r, g, b = hslToRGB(0, 100, 0)
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})
}

func TestParticlesCounts(t *testing.T) {
	p := NewParticles(log.New(discard{}, "", 0))
	p.Sparkle(1, 2, 3)
	p.Sparkle(1, 2, 2)
	p.Explode(0, 0, 0.9)

	sparkles, explosions := p.Counts()
	assert.Equal(t, 5, sparkles)
	assert.Equal(t, 1, explosions)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
