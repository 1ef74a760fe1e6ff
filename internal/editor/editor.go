package editor

import (
	"math"

	"github.com/olivier-w/gooey/internal/easing"
)

// Control identifies one row of the editor.
type Control int

const (
	ControlMode Control = iota
	ControlDuration
	ControlPreset
	ControlX1
	ControlY1
	ControlX2
	ControlY2
)

var controlLabels = map[Control]string{
	ControlMode:     "Animation",
	ControlDuration: "Duration",
	ControlPreset:   "Easing",
	ControlX1:       "x1",
	ControlY1:       "y1",
	ControlX2:       "x2",
	ControlY2:       "y2",
}

func (c Control) String() string { return controlLabels[c] }

// BezierIndex maps a bezier slider control to its component index.
func (c Control) BezierIndex() (int, bool) {
	switch c {
	case ControlX1:
		return easing.X1, true
	case ControlY1:
		return easing.Y1, true
	case ControlX2:
		return easing.X2, true
	case ControlY2:
		return easing.Y2, true
	}
	return 0, false
}

// Controls lists the rows visible for v. Only the mode switch shows in
// spring mode.
func Controls(v Value) []Control {
	if !v.Enabled {
		return []Control{ControlMode}
	}
	return []Control{ControlMode, ControlDuration, ControlPreset, ControlX1, ControlY1, ControlX2, ControlY2}
}

// Editor holds the current Value and reports every interaction to OnChange
// with a complete replacement value.
type Editor struct {
	value    Value
	onChange func(Value)
}

// New creates an editor showing v.
func New(v Value, onChange func(Value)) *Editor {
	return &Editor{value: v, onChange: onChange}
}

// Value returns a copy of the current value.
func (e *Editor) Value() Value { return e.value }

// Reset replaces the value without notifying.
func (e *Editor) Reset(v Value) { e.value = v }

// ActivePreset reports which preset the current curve matches.
func (e *Editor) ActivePreset() int { return e.value.ActivePreset() }

// SetEnabled switches between spring and tween mode. Duration and curve are
// kept so switching back restores them.
func (e *Editor) SetEnabled(on bool) Value {
	next := e.value
	next.Enabled = on
	return e.emit(next)
}

// ToggleEnabled flips the mode switch.
func (e *Editor) ToggleEnabled() Value {
	return e.SetEnabled(!e.value.Enabled)
}

// SetDuration sets the tween duration, bounded to [MinDuration, MaxDuration]
// on a DurationStep grid.
func (e *Editor) SetDuration(secs float64) Value {
	next := e.value
	next.Duration = snap(secs, MinDuration, MaxDuration, DurationStep)
	return e.emit(next)
}

// ApplyPreset replaces the whole curve with preset i. Out-of-range indices
// leave the value unchanged and notify nothing.
func (e *Editor) ApplyPreset(i int) Value {
	p, ok := easing.PresetAt(i)
	if !ok {
		return e.value
	}
	next := e.value
	next.Bezier = p.Bezier
	return e.emit(next)
}

// CyclePreset applies the preset after the active one (the first when the
// curve matches none); dir < 0 walks backwards.
func (e *Editor) CyclePreset(dir int) Value {
	n := easing.PresetCount()
	cur := e.ActivePreset()
	var i int
	switch {
	case cur == easing.NoMatch && dir < 0:
		i = n - 1
	case cur == easing.NoMatch:
		i = 0
	case dir < 0:
		i = (cur - 1 + n) % n
	default:
		i = (cur + 1) % n
	}
	return e.ApplyPreset(i)
}

// SetBezier sets one curve component within its slider bounds.
func (e *Editor) SetBezier(i int, v float64) Value {
	if i < 0 || i >= len(e.value.Bezier) {
		return e.value
	}
	lo, hi := BezierBounds(i)
	next := e.value
	next.Bezier[i] = snap(v, lo, hi, BezierStep)
	return e.emit(next)
}

// SetCurve replaces the whole curve, clamping each component to its slider
// bounds without snapping.
func (e *Editor) SetCurve(b easing.Bezier) Value {
	next := e.value
	for i, v := range b {
		lo, hi := BezierBounds(i)
		next.Bezier[i] = math.Max(lo, math.Min(hi, v))
	}
	return e.emit(next)
}

// Nudge steps control c by one increment in direction dir (±1).
func (e *Editor) Nudge(c Control, dir int) Value {
	if dir == 0 {
		return e.value
	}
	sign := 1.0
	if dir < 0 {
		sign = -1
	}
	switch c {
	case ControlMode:
		return e.ToggleEnabled()
	case ControlDuration:
		return e.SetDuration(e.value.Duration + sign*DurationStep)
	case ControlPreset:
		return e.CyclePreset(dir)
	}
	if i, ok := c.BezierIndex(); ok {
		return e.SetBezier(i, e.value.Bezier[i]+sign*BezierStep)
	}
	return e.value
}

func (e *Editor) emit(next Value) Value {
	e.value = next
	if e.onChange != nil {
		e.onChange(next)
	}
	return next
}
