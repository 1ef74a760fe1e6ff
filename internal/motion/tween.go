package motion

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Curve maps linear progress in [0,1] to eased progress.
type Curve func(float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// tweenFunc adapts a Curve to gween's (t, begin, change, duration) form.
func tweenFunc(curve Curve) ease.TweenFunc {
	if curve == nil {
		curve = Linear
	}
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(curve(float64(t/d)))
	}
}

// Tween interpolates toward its target over a fixed duration. Each new
// target starts a fresh tween from the current value, so a reversal sweeps
// back from wherever the value is.
type Tween struct {
	duration time.Duration
	curve    Curve
	tween    *gween.Tween
	value    float64
	target   float64
}

// NewTween creates a tween at rest at initial.
func NewTween(initial float64, duration time.Duration, curve Curve) *Tween {
	return &Tween{
		duration: duration,
		curve:    curve,
		value:    initial,
		target:   initial,
	}
}

// Duration is the time one full redirect takes.
func (t *Tween) Duration() time.Duration { return t.duration }

func (t *Tween) SetTarget(target float64) {
	t.target = target
	if t.duration <= 0 {
		t.value = target
		t.tween = nil
		return
	}
	t.tween = gween.New(float32(t.value), float32(target), float32(t.duration.Seconds()), tweenFunc(t.curve))
}

func (t *Tween) Target() float64 { return t.target }
func (t *Tween) Value() float64  { return t.value }
func (t *Tween) Settled() bool   { return t.tween == nil }

func (t *Tween) Step(dt time.Duration) {
	if t.tween == nil || dt <= 0 {
		return
	}
	v, finished := t.tween.Update(float32(dt.Seconds()))
	if finished {
		t.value = t.target
		t.tween = nil
		return
	}
	t.value = float64(v)
}

var _ Driver = (*Tween)(nil)
