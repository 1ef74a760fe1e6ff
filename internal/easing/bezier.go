// Package easing holds the cubic-bezier curves used by tween mode and the
// named presets offered by the animation editor.
package easing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Bezier is a CSS-style cubic-bezier (x1, y1, x2, y2). The curve runs from
// (0,0) to (1,1). The array form keeps copies independent.
type Bezier [4]float64

// Default is the curve used when tween mode is requested without one.
var Default = Bezier{0.25, 0.1, 0.25, 1.0}

// X1 and friends name the components.
const (
	X1 = iota
	Y1
	X2
	Y2
)

// IsX reports whether component i is a time-axis control value.
func IsX(i int) bool {
	return i == X1 || i == X2
}

// Clamped returns b with x1 and x2 forced into [0,1]. Outside that range
// the curve is not a function of time. y values are left alone so overshoot
// curves survive.
func (b Bezier) Clamped() Bezier {
	b[X1] = clampUnit(b[X1])
	b[X2] = clampUnit(b[X2])
	return b
}

func (b Bezier) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f, %.2f)", b[X1], b[Y1], b[X2], b[Y2])
}

// ParseBezier reads "x1,y1,x2,y2", optionally wrapped in cubic-bezier(...)
// or parentheses. Values are not range checked.
func ParseBezier(s string) (Bezier, error) {
	body := strings.TrimSpace(s)
	body = strings.TrimPrefix(body, "cubic-bezier")
	body = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(body), "("), ")")
	parts := strings.Split(body, ",")
	if len(parts) != 4 {
		return Bezier{}, fmt.Errorf("bezier %q: want 4 comma-separated numbers, got %d", s, len(parts))
	}
	var b Bezier
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Bezier{}, fmt.Errorf("bezier %q: component %d is not a number", s, i+1)
		}
		b[i] = v
	}
	return b, nil
}

// Curve returns the easing function for b, clamping x first.
func (b Bezier) Curve() func(float64) float64 {
	c := b.Clamped()
	return CubicBezier(c[X1], c[Y1], c[X2], c[Y2])
}

// CubicBezier returns a cubic-bezier easing function matching CSS
// cubic-bezier(). Progress outside [0,1] is pinned to the end points.
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges in a few steps for typical curves.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Flat derivative: bisect on [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 24 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
