package motion

import (
	"time"

	"github.com/tanema/gween"
)

// Sequence plays a value through keyframes, splitting the duration evenly
// between segments and easing every segment with the same curve.
type Sequence struct {
	curve    Curve
	segments []*gween.Tween
	segDur   time.Duration
	elapsed  time.Duration
	keys     []float64
	idx      int
	value    float64
}

// NewSequence creates an idle sequence resting at value.
func NewSequence(value float64, curve Curve) *Sequence {
	return &Sequence{curve: curve, value: value}
}

// Play starts a run through keys over duration. The run begins at the
// current value, not at a fixed first keyframe, so an interrupted run
// continues smoothly.
func (s *Sequence) Play(duration time.Duration, keys ...float64) {
	s.segments = s.segments[:0]
	s.keys = append(s.keys[:0], keys...)
	s.idx = 0
	s.elapsed = 0
	if len(keys) == 0 {
		return
	}
	if duration <= 0 {
		s.value = keys[len(keys)-1]
		s.segments = nil
		return
	}

	s.segDur = duration / time.Duration(len(keys))
	from := s.value
	for _, to := range keys {
		s.segments = append(s.segments, gween.New(float32(from), float32(to), float32(s.segDur.Seconds()), tweenFunc(s.curve)))
		from = to
	}
}

func (s *Sequence) Value() float64 { return s.value }

// Done reports whether no run is in progress.
func (s *Sequence) Done() bool { return s.idx >= len(s.segments) }

// Step advances the run, carrying time left over from a finished segment
// into the next one.
func (s *Sequence) Step(dt time.Duration) {
	for dt > 0 && !s.Done() {
		left := s.segDur - s.elapsed
		use := min(dt, left)
		v, finished := s.segments[s.idx].Update(float32(use.Seconds()))
		s.value = float64(v)
		s.elapsed += use
		dt -= use
		if finished || s.elapsed >= s.segDur {
			s.value = s.keys[s.idx]
			s.idx++
			s.elapsed = 0
		}
	}
}
