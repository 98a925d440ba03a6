package easing

import (
	"math"
	"sort"
)

// Func maps a normalized progress value in [0,1] to an eased value.
// Curves are pure and safe for concurrent use.
type Func func(t float64) float64

// Linear is the identity curve and the default wherever a response
// config supplies no easing.
func Linear(t float64) float64 { return t }

func InQuad(t float64) float64 { return t * t }

func OutQuad(t float64) float64 { return t * (2 - t) }

func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func OutCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

func InOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// OutBack overshoots past 1 before settling, which reads as a punchy
// snap when used on beat transients.
func OutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

var curveRegistry = map[string]Func{
	"linear":    Linear,
	"inQuad":    InQuad,
	"outQuad":   OutQuad,
	"inOutQuad": InOutQuad,
	"outCubic":  OutCubic,
	"inOutSine": InOutSine,
	"outBack":   OutBack,
}

// Curve returns the named curve, falling back to Linear for unknown names.
func Curve(name string) Func {
	if fn, ok := curveRegistry[name]; ok {
		return fn
	}
	return Linear
}

// Names returns the available curve identifiers.
func Names() []string {
	names := make([]string, 0, len(curveRegistry))
	for name := range curveRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
