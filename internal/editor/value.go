// Package editor is the animation configuration surface: an immutable
// Value plus an Editor that turns control interactions into new Values.
package editor

import (
	"fmt"
	"math"

	"github.com/olivier-w/gooey/internal/easing"
	"github.com/olivier-w/gooey/internal/toggle"
)

// Control bounds.
const (
	MinDuration  = 0.1
	MaxDuration  = 2.0
	DurationStep = 0.05
	BezierStep   = 0.05
)

// Value is one complete animation configuration. Enabled selects tween
// mode; when it is false Duration and Bezier are kept but unused.
type Value struct {
	Enabled  bool
	Duration float64
	Bezier   easing.Bezier
}

// DefaultValue is spring mode with the tween defaults held in reserve.
func DefaultValue() Value {
	return Value{
		Enabled:  false,
		Duration: toggle.DefaultDuration,
		Bezier:   easing.Default,
	}
}

// Anim converts the value to toggle options: nil in spring mode.
func (v Value) Anim() *toggle.Anim {
	if !v.Enabled {
		return nil
	}
	b := v.Bezier
	return &toggle.Anim{Duration: v.Duration, Bezier: &b}
}

// ActivePreset is the index of the preset matching the current curve, or
// easing.NoMatch.
func (v Value) ActivePreset() int {
	return easing.MatchPreset(v.Bezier)
}

// ModeLabel names the motion model the value selects.
func (v Value) ModeLabel() string {
	if v.Enabled {
		return "Tween"
	}
	return "Spring"
}

func (v Value) String() string {
	if !v.Enabled {
		return "spring"
	}
	return fmt.Sprintf("tween %.2fs %s", v.Duration, v.Bezier)
}

// BezierBounds returns the slider range for component i: [0,1] for x,
// [-1,2] for y.
func BezierBounds(i int) (lo, hi float64) {
	if easing.IsX(i) {
		return 0, 1
	}
	return -1, 2
}

// snap clamps v into [lo,hi] and rounds it to the step grid anchored at lo.
func snap(v, lo, hi, step float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	v = math.Max(lo, math.Min(hi, v))
	n := math.Round((v - lo) / step)
	out := lo + n*step
	out = math.Round(out*1e6) / 1e6
	return math.Max(lo, math.Min(hi, out))
}
