package engine

import (
	"sort"
	"time"

	"github.com/SickDinner/Uho-sub002/internal/easing"
)

// Property names one animatable aspect of a target object.
type Property string

const (
	PropertyNone      Property = ""
	PropertyScale     Property = "scale"
	PropertyRotation  Property = "rotation"
	PropertyPosition  Property = "position"
	PropertyColor     Property = "color"
	PropertyParticles Property = "particles"
)

// DefaultBeatDuration bounds a beat transient when a spec supplies none.
const DefaultBeatDuration = 200 * time.Millisecond

// ResponseSpec binds one audio feature to one target property with an
// intensity scalar and an easing curve. Duration only applies to the
// beat response. A nil Easing means identity.
type ResponseSpec struct {
	Property  Property
	Intensity float64
	Easing    easing.Func
	Duration  time.Duration
}

// SyncConfig is the immutable response configuration a target registers
// with: three continuous responses plus one beat transient.
type SyncConfig struct {
	Bass   ResponseSpec
	Mids   ResponseSpec
	Treble ResponseSpec
	Beat   ResponseSpec
}

// Style presets bundling property/intensity/easing combinations. These
// are plain data; callers can always build their own SyncConfig.
var presetRegistry = map[string]SyncConfig{
	"pulse": {
		Bass:   ResponseSpec{Property: PropertyScale, Intensity: 0.6, Easing: easing.OutQuad},
		Mids:   ResponseSpec{Property: PropertyRotation, Intensity: 0.25, Easing: easing.InOutSine},
		Treble: ResponseSpec{Property: PropertyScale, Intensity: 0.15, Easing: easing.Linear},
		Beat:   ResponseSpec{Property: PropertyScale, Intensity: 0.5, Easing: easing.OutCubic, Duration: DefaultBeatDuration},
	},
	"orbit": {
		Bass:   ResponseSpec{Property: PropertyPosition, Intensity: 0.8, Easing: easing.InOutQuad},
		Mids:   ResponseSpec{Property: PropertyPosition, Intensity: 0.4, Easing: easing.InOutSine},
		Treble: ResponseSpec{Property: PropertyRotation, Intensity: 0.3, Easing: easing.OutQuad},
		Beat:   ResponseSpec{Property: PropertyRotation, Intensity: 0.6, Easing: easing.OutBack, Duration: 220 * time.Millisecond},
	},
	"strobe": {
		Bass:   ResponseSpec{Property: PropertyParticles, Intensity: 1.0, Easing: easing.Linear},
		Mids:   ResponseSpec{Property: PropertyColor, Intensity: 0.9, Easing: easing.OutQuad},
		Treble: ResponseSpec{Property: PropertyColor, Intensity: 0.5, Easing: easing.InQuad},
		Beat:   ResponseSpec{Property: PropertyParticles, Intensity: 1.0, Easing: easing.Linear, Duration: 150 * time.Millisecond},
	},
}

// Preset returns the named style preset.
func Preset(name string) (SyncConfig, bool) {
	cfg, ok := presetRegistry[name]
	return cfg, ok
}

// PresetNames returns the available preset identifiers.
func PresetNames() []string {
	names := make([]string, 0, len(presetRegistry))
	for name := range presetRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// curve resolves the spec's easing, defaulting to identity.
func (r ResponseSpec) curve() easing.Func {
	if r.Easing == nil {
		return easing.Linear
	}
	return r.Easing
}

// duration resolves the beat duration, bounding it by the default.
func (r ResponseSpec) duration() time.Duration {
	if r.Duration <= 0 {
		return DefaultBeatDuration
	}
	return r.Duration
}
