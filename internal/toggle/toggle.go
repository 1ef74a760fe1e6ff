// Package toggle implements the gooey switch: a two-state control whose
// main blob, trailing blobs and highlights move together under either spring
// physics or timed cubic-bezier tweens.
//
// A Toggle is not safe for concurrent use. Drive it from one goroutine:
// call Activate on input and Step once per frame (directly or through a
// motion.Frames hub), and read Frame to render.
package toggle

import (
	"fmt"
	"math"
	"time"

	"github.com/olivier-w/gooey/internal/easing"
	"github.com/olivier-w/gooey/internal/geometry"
	"github.com/olivier-w/gooey/internal/logger"
	"github.com/olivier-w/gooey/internal/motion"
)

// DefaultDuration is the tween duration used when Anim.Duration is unset.
const DefaultDuration = 0.5

// Anim selects tween mode. Zero fields fall back to DefaultDuration and
// easing.Default.
type Anim struct {
	// Duration in seconds.
	Duration float64
	Bezier   *easing.Bezier
}

func (a *Anim) duration() time.Duration {
	secs := a.Duration
	if secs <= 0 {
		secs = DefaultDuration
	}
	return time.Duration(math.Round(secs * float64(time.Second)))
}

func (a *Anim) bezier() easing.Bezier {
	if a.Bezier == nil {
		return easing.Default
	}
	return a.Bezier.Clamped()
}

// Options configures a Toggle. The zero value is an off, large, spring
// toggle with no observer.
type Options struct {
	DefaultOn bool
	OnChange  func(on bool)
	Size      geometry.Size
	// Anim switches the toggle to tween mode when non-nil.
	Anim *Anim
	// Frames, when set, steps the toggle every frame until Dispose.
	Frames *motion.Frames
	Logger *logger.Logger
}

// Toggle is one gooey switch instance.
type Toggle struct {
	on       bool
	size     geometry.Size
	layout   geometry.Layout
	anim     *Anim
	ensemble *Ensemble
	onChange func(bool)
	log      *logger.Logger
	cancel   func()
	disposed bool
}

// New creates a toggle resting at its default state.
func New(opts Options) *Toggle {
	layout := geometry.Resolve(opts.Size)
	var anim *Anim
	if opts.Anim != nil {
		a := *opts.Anim
		if a.Bezier != nil {
			b := *a.Bezier
			a.Bezier = &b
		}
		anim = &a
	}

	t := &Toggle{
		on:       opts.DefaultOn,
		size:     opts.Size,
		layout:   layout,
		anim:     anim,
		ensemble: NewEnsemble(layout, anim, layout.Target(opts.DefaultOn)),
		onChange: opts.OnChange,
		log: opts.Logger.WithFields(map[string]any{
			"size": opts.Size.String(),
		}),
	}
	if opts.Frames != nil {
		t.cancel = opts.Frames.Subscribe(t.Step)
	}
	return t
}

// On reports the current state.
func (t *Toggle) On() bool { return t.on }

// Size returns the size the toggle was built with.
func (t *Toggle) Size() geometry.Size { return t.size }

// Layout returns the resolved geometry.
func (t *Toggle) Layout() geometry.Layout { return t.layout }

// Mode returns the motion model.
func (t *Toggle) Mode() Mode { return t.ensemble.Mode() }

// Ensemble exposes the blob drivers for inspection.
func (t *Toggle) Ensemble() *Ensemble { return t.ensemble }

// Activate flips the state, redirects every blob toward the new resting
// position and notifies OnChange before returning. The notification does not
// wait for the motion to settle. A panic in OnChange is logged and dropped;
// the new state and the motion stand.
func (t *Toggle) Activate() bool {
	next := !t.on
	t.on = next
	t.ensemble.SetTarget(t.layout.Target(next))
	t.log.Debugf("toggle activated on=%t mode=%s", next, t.ensemble.Mode())
	t.notify(next)
	return next
}

func (t *Toggle) notify(on bool) {
	if t.onChange == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			t.log.Error(fmt.Errorf("%v", r), "toggle onChange panicked")
		}
	}()
	t.onChange(on)
}

// Step advances the motion by one frame. It is a no-op after Dispose.
func (t *Toggle) Step(dt time.Duration) {
	if t.disposed {
		return
	}
	t.ensemble.Step(dt)
}

// Settled reports whether all motion has come to rest.
func (t *Toggle) Settled() bool { return t.ensemble.Settled() }

// Dispose releases the frame subscription. Further Steps do nothing.
func (t *Toggle) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

// Disposed reports whether Dispose has been called.
func (t *Toggle) Disposed() bool { return t.disposed }

// BlobFrame is one blob's placement in track coordinates (origin at the
// track's top-left corner, pixels).
type BlobFrame struct {
	Spec   BlobSpec
	Offset float64
	CX, CY float64
	Radius float64
	ScaleX float64
	ScaleY float64
}

// Frame is a render snapshot of the whole toggle.
type Frame struct {
	On      bool
	Mode    Mode
	Layout  geometry.Layout
	Blobs   []BlobFrame
	Settled bool
}

// Main returns the main blob's frame.
func (f Frame) Main() BlobFrame {
	for _, b := range f.Blobs {
		if b.Spec.Role == RoleMain {
			return b
		}
	}
	return BlobFrame{}
}

// Frame places every blob for the current instant, in paint order.
func (t *Toggle) Frame() Frame {
	l := t.layout
	sx, sy := t.ensemble.Scale()
	f := Frame{
		On:      t.on,
		Mode:    t.ensemble.Mode(),
		Layout:  l,
		Blobs:   make([]BlobFrame, 0, blobCount),
		Settled: t.ensemble.Settled(),
	}
	for _, i := range paintOrder {
		spec := blobSpecs[i]
		x := t.ensemble.Position(i)
		d := l.Diameter * spec.Scale
		b := BlobFrame{
			Spec:   spec,
			Offset: x,
			CX:     l.Padding + spec.OffsetX*l.Diameter + x + d/2,
			CY:     centerY(spec, l, d),
			Radius: d / 2,
			ScaleX: 1,
			ScaleY: 1,
		}
		if spec.Role == RoleMain {
			b.ScaleX, b.ScaleY = sx, sy
		}
		f.Blobs = append(f.Blobs, b)
	}
	return f
}

func centerY(spec BlobSpec, l geometry.Layout, d float64) float64 {
	switch spec.Anchor {
	case AnchorTop:
		return spec.Inset*l.Height + d/2
	case AnchorBottom:
		return l.Height - spec.Inset*l.Height - d/2
	default:
		return l.Height / 2
	}
}
