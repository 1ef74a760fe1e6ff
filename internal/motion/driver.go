// Package motion holds the per-frame value drivers behind the toggle: a
// harmonica spring, a gween tween, a keyframe sequence and the frame hub that
// steps them.
//
// Everything here is meant to be driven from a single goroutine (the
// bubbletea update loop or a headless stepping loop) and takes no locks.
package motion

import "time"

// Driver owns one time-evolving value. SetTarget may be called at any time,
// including mid-motion; implementations continue from the current value.
type Driver interface {
	SetTarget(target float64)
	Target() float64
	Value() float64
	Step(dt time.Duration)
	Settled() bool
}

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 60

// FrameInterval converts a frame rate to the duration of one frame.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
