package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SickDinner/Uho-sub002/internal/easing"
)

// recordingEmitter captures burst requests for assertions.
type recordingEmitter struct {
	sparkles   []int
	explosions []float64
	lastX      float64
	lastY      float64
}

func (r *recordingEmitter) Sparkle(x, y float64, count int) {
	r.lastX, r.lastY = x, y
	r.sparkles = append(r.sparkles, count)
}

func (r *recordingEmitter) Explode(x, y float64, strength float64) {
	r.lastX, r.lastY = x, y
	r.explosions = append(r.explosions, strength)
}

func never() float64  { return 1.0 }
func always() float64 { return 0.0 }

func newTestTarget(t *testing.T, obj any, cfg SyncConfig) *target {
	t.Helper()
	r := newRegistry()
	require.NoError(t, r.add("t", obj, cfg))
	return r.targets["t"]
}

func TestMapScaleFormula(t *testing.T) {
	obj := newFakeObject()
	obj.scale = 2
	tgt := newTestTarget(t, obj, SyncConfig{})

	spec := ResponseSpec{Property: PropertyScale, Intensity: 0.5, Easing: easing.OutQuad}
	applyContinuous(tgt, spec, 0.8, 0, never, nil)

	// drive=0.5*0.8, eased=0.8*(2-0.8)=0.96, delta=0.4*0.8*0.96
	assert.InDelta(t, 2.3072, obj.scale, 1e-12)
}

func TestMapRotationFormula(t *testing.T) {
	obj := newFakeObject()
	obj.rotation = 1
	tgt := newTestTarget(t, obj, SyncConfig{})

	spec := ResponseSpec{Property: PropertyRotation, Intensity: 0.3}
	applyContinuous(tgt, spec, 0.5, 0, never, nil)

	// drive=0.15, eased=0.5 (identity default), delta=0.15*0.5*0.5*π
	assert.InDelta(t, 1+0.0375*math.Pi, obj.rotation, 1e-12)
}

func TestMapPositionOrbit(t *testing.T) {
	obj := newFakeObject()
	obj.x, obj.y = 3, 4
	tgt := newTestTarget(t, obj, SyncConfig{})

	spec := ResponseSpec{Property: PropertyPosition, Intensity: 1}
	now := 2.0
	value := 0.5
	applyContinuous(tgt, spec, value, now, never, nil)

	phase := now + value*math.Pi
	radius := 1 * value * value * value * 10 // drive*value*eased*10 with identity easing
	assert.InDelta(t, 3+radius*math.Sin(phase), obj.x, 1e-12)
	assert.InDelta(t, 4+radius*math.Cos(phase), obj.y, 1e-12)
}

func TestMapColorHSL(t *testing.T) {
	obj := newFakeObject()
	tgt := newTestTarget(t, obj, SyncConfig{})

	spec := ResponseSpec{Property: PropertyColor, Intensity: 0.9}
	applyContinuous(tgt, spec, 0.6, 0, never, nil)

	require.True(t, obj.colored)
	assert.InDelta(t, 216.0, obj.h, 1e-9)               // 0.6*360
	assert.InDelta(t, 66.2, obj.s, 1e-9)                // 50 + 0.54*0.6*50
	assert.InDelta(t, 68.0, obj.l, 1e-9)                // 50 + 0.6*30
}

func TestMapZeroValueLeavesBaselineExactly(t *testing.T) {
	obj := newFakeObject()
	obj.scale = 1.4
	obj.rotation = 0.2
	obj.x, obj.y = 7, 8
	tgt := newTestTarget(t, obj, SyncConfig{})

	// Knock the object away from baseline, then map zero audio.
	obj.SetScale(5)
	obj.SetRotation(5)
	obj.SetPosition(50, 50)

	for _, prop := range []Property{PropertyScale, PropertyRotation, PropertyPosition} {
		applyContinuous(tgt, ResponseSpec{Property: prop, Intensity: 1, Easing: easing.OutBack}, 0, 3.3, never, nil)
	}

	assert.Equal(t, 1.4, obj.scale)
	assert.Equal(t, 0.2, obj.rotation)
	assert.Equal(t, 7.0, obj.x)
	assert.Equal(t, 8.0, obj.y)
}

func TestMapParticlesGatedByValue(t *testing.T) {
	obj := newFakeObject()
	tgt := newTestTarget(t, obj, SyncConfig{})
	emitter := &recordingEmitter{}
	spec := ResponseSpec{Property: PropertyParticles, Intensity: 1}

	// Below the 0.3 gate nothing fires even with a lucky roll.
	applyContinuous(tgt, spec, 0.2, 0, always, emitter)
	assert.Empty(t, emitter.sparkles)

	// Above the gate the per-tick probability equals the value.
	applyContinuous(tgt, spec, 0.9, 0, never, emitter)
	assert.Empty(t, emitter.sparkles)

	applyContinuous(tgt, spec, 0.9, 0, always, emitter)
	require.Len(t, emitter.sparkles, 1)
	assert.Equal(t, 4, emitter.sparkles[0]) // floor(0.9*0.9*5)
}

func TestMapParticlesUseObjectPosition(t *testing.T) {
	obj := newFakeObject()
	obj.x, obj.y = 12, 34
	tgt := newTestTarget(t, obj, SyncConfig{})
	emitter := &recordingEmitter{}

	applyContinuous(tgt, ResponseSpec{Property: PropertyParticles, Intensity: 1}, 1, 0, always, emitter)
	require.Len(t, emitter.sparkles, 1)
	assert.Equal(t, 12.0, emitter.lastX)
	assert.Equal(t, 34.0, emitter.lastY)
}

func TestMapSkipsMissingCapability(t *testing.T) {
	obj := &scaleOnly{scale: 1}
	tgt := newTestTarget(t, obj, SyncConfig{})

	// No rotation/position/color capability: must not panic, must not
	// touch the scale.
	for _, prop := range []Property{PropertyRotation, PropertyPosition, PropertyColor} {
		applyContinuous(tgt, ResponseSpec{Property: prop, Intensity: 1}, 0.9, 1, always, nil)
	}
	assert.Equal(t, 1.0, obj.scale)
}
