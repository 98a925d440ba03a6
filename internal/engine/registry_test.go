package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeObject implements every capability interface.
type fakeObject struct {
	scale    float64
	rotation float64
	x, y     float64
	alpha    float64
	h, s, l  float64
	colored  bool
}

func newFakeObject() *fakeObject {
	return &fakeObject{scale: 1, alpha: 1}
}

func (o *fakeObject) Scale() float64              { return o.scale }
func (o *fakeObject) SetScale(v float64)          { o.scale = v }
func (o *fakeObject) Rotation() float64           { return o.rotation }
func (o *fakeObject) SetRotation(v float64)       { o.rotation = v }
func (o *fakeObject) Position() (float64, float64) { return o.x, o.y }
func (o *fakeObject) SetPosition(x, y float64)    { o.x, o.y = x, y }
func (o *fakeObject) Alpha() float64              { return o.alpha }
func (o *fakeObject) SetAlpha(v float64)          { o.alpha = v }
func (o *fakeObject) SetColorHSL(h, s, l float64) { o.h, o.s, o.l = h, s, l; o.colored = true }

// scaleOnly exposes just a scale.
type scaleOnly struct{ scale float64 }

func (o *scaleOnly) Scale() float64     { return o.scale }
func (o *scaleOnly) SetScale(v float64) { o.scale = v }

func TestRegistryAddNilObject(t *testing.T) {
	r := newRegistry()
	assert.Error(t, r.add("ghost", nil, SyncConfig{}))
}

func TestRegistryBaselineDefaultsForMissingCapabilities(t *testing.T) {
	r := newRegistry()
	require.NoError(t, r.add("box", &scaleOnly{scale: 2.5}, SyncConfig{}))

	got := r.targets["box"].baseline
	assert.Equal(t, BaselineValues{Scale: 2.5, Rotation: 0, X: 0, Y: 0, Alpha: 1}, got)
}

func TestRegistryCapturesFullBaselineOnce(t *testing.T) {
	obj := newFakeObject()
	obj.scale = 1.5
	obj.rotation = 0.3
	obj.x, obj.y = 10, 20
	obj.alpha = 0.8

	r := newRegistry()
	require.NoError(t, r.add("sprite", obj, SyncConfig{}))

	want := BaselineValues{Scale: 1.5, Rotation: 0.3, X: 10, Y: 20, Alpha: 0.8}
	assert.Equal(t, want, r.targets["sprite"].baseline)

	// The snapshot is a copy: the live object moving on does not change it.
	obj.SetScale(9)
	assert.Equal(t, want, r.targets["sprite"].baseline)
}

func TestRegistryReAddOverwritesWithFreshBaseline(t *testing.T) {
	obj := newFakeObject()
	r := newRegistry()
	require.NoError(t, r.add("sprite", obj, SyncConfig{}))

	obj.SetScale(3)
	require.NoError(t, r.add("sprite", obj, SyncConfig{}))

	assert.Equal(t, 1, r.len())
	assert.Len(t, r.order, 1)
	assert.Equal(t, 3.0, r.targets["sprite"].baseline.Scale)
}

func TestRegistryRemoveAbsentKeyIsNoop(t *testing.T) {
	r := newRegistry()
	require.NoError(t, r.add("a", newFakeObject(), SyncConfig{}))

	r.remove("nope")
	assert.Equal(t, 1, r.len())
	r.remove("a")
	r.remove("a")
	assert.Equal(t, 0, r.len())
}

func TestRegistrySnapshotInsertionOrder(t *testing.T) {
	r := newRegistry()
	for _, key := range []string{"c", "a", "b"} {
		require.NoError(t, r.add(key, newFakeObject(), SyncConfig{}))
	}
	r.remove("a")

	var keys []string
	for _, tgt := range r.snapshot() {
		keys = append(keys, tgt.key)
	}
	assert.Equal(t, []string{"c", "b"}, keys)
}
