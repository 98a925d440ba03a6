package engine

import "fmt"

// BaselineValues is a target object's at-rest state, captured once at
// registration. All audio-driven deltas are added to these values; the
// snapshot is never re-derived from the live object.
type BaselineValues struct {
	Scale    float64
	Rotation float64
	X        float64
	Y        float64
	Alpha    float64
}

// target pairs a drawable object with its response config, baseline, and
// any in-flight beat transient. The registry owns the pairing, never the
// object itself.
type target struct {
	key      string
	config   SyncConfig
	baseline BaselineValues

	scalable     Scalable
	rotatable    Rotatable
	positionable Positionable
	colorable    Colorable

	anim *beatAnimation
}

// registry is a keyed collection of targets with stable insertion-order
// iteration. Iteration order carries no semantic weight; targets are
// mapped independently.
type registry struct {
	targets map[string]*target
	order   []string
}

func newRegistry() *registry {
	return &registry{targets: make(map[string]*target)}
}

// add registers an object under key, capturing its baseline from its
// current state. Re-adding an existing key overwrites the target with a
// freshly captured baseline and drops any running beat transient.
func (r *registry) add(key string, obj any, cfg SyncConfig) error {
	if obj == nil {
		return fmt.Errorf("sync target %q: nil object", key)
	}

	t := &target{key: key, config: cfg}
	t.scalable, _ = obj.(Scalable)
	t.rotatable, _ = obj.(Rotatable)
	t.positionable, _ = obj.(Positionable)
	t.colorable, _ = obj.(Colorable)
	t.baseline = captureBaseline(obj)

	if _, exists := r.targets[key]; !exists {
		r.order = append(r.order, key)
	}
	r.targets[key] = t
	return nil
}

// remove drops a target; removing an absent key is a no-op. Any running
// beat transient goes with the target, so it stops being driven
// immediately.
func (r *registry) remove(key string) {
	if _, exists := r.targets[key]; !exists {
		return
	}
	delete(r.targets, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *registry) len() int {
	return len(r.targets)
}

// snapshot returns the targets in insertion order.
func (r *registry) snapshot() []*target {
	out := make([]*target, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.targets[key])
	}
	return out
}

// captureBaseline probes the object's capabilities, defaulting missing
// properties to their identity values.
func captureBaseline(obj any) BaselineValues {
	b := BaselineValues{Scale: 1, Alpha: 1}
	if s, ok := obj.(Scalable); ok {
		b.Scale = s.Scale()
	}
	if rot, ok := obj.(Rotatable); ok {
		b.Rotation = rot.Rotation()
	}
	if p, ok := obj.(Positionable); ok {
		b.X, b.Y = p.Position()
	}
	if f, ok := obj.(Fadeable); ok {
		b.Alpha = f.Alpha()
	}
	return b
}
