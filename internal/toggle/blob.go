package toggle

import (
	"math"
	"time"

	"github.com/olivier-w/gooey/internal/geometry"
	"github.com/olivier-w/gooey/internal/motion"
)

// Role groups blobs by how they relate to the main blob.
type Role int

const (
	RoleMain Role = iota
	RoleTrail
	RoleHighlight
)

// Anchor is the track edge a blob's vertical inset is measured from.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTop
	AnchorBottom
)

// BlobSpec describes one tracked element: its spring coefficients, its
// duration factor in tween mode and where it sits relative to the main blob.
type BlobSpec struct {
	Name           string
	Role           Role
	Spring         motion.SpringParams
	DurationFactor float64
	// Scale is the blob diameter relative to the main blob.
	Scale float64
	// OffsetX shifts the blob's left edge right by this fraction of the main
	// diameter.
	OffsetX float64
	Anchor  Anchor
	// Inset is the distance from the anchor edge as a fraction of track height.
	Inset float64
}

// Blob indices into the ensemble. Trails run nearest to farthest: each is
// softer, heavier, slower and smaller than the one before.
const (
	Main = iota
	TrailNear
	TrailMid
	TrailFar
	HighlightUpper
	HighlightLower
	blobCount
)

var mainSpring = motion.SpringParams{Stiffness: 300, Damping: 25, Mass: 1.2}

// Highlights ride on the main blob, so they share its spring.
var blobSpecs = [blobCount]BlobSpec{
	Main:           {Name: "main", Role: RoleMain, Spring: mainSpring, DurationFactor: 1, Scale: 1},
	TrailNear:      {Name: "trail-near", Role: RoleTrail, Spring: motion.SpringParams{Stiffness: 200, Damping: 20, Mass: 1.5}, DurationFactor: 1.2, Scale: 0.75},
	TrailMid:       {Name: "trail-mid", Role: RoleTrail, Spring: motion.SpringParams{Stiffness: 150, Damping: 18, Mass: 2}, DurationFactor: 1.3, Scale: 0.6},
	TrailFar:       {Name: "trail-far", Role: RoleTrail, Spring: motion.SpringParams{Stiffness: 120, Damping: 22, Mass: 2.5}, DurationFactor: 1.4, Scale: 0.45},
	HighlightUpper: {Name: "highlight-upper", Role: RoleHighlight, Spring: mainSpring, DurationFactor: 1, Scale: 0.3, OffsetX: 0.15, Anchor: AnchorTop, Inset: 0.28},
	HighlightLower: {Name: "highlight-lower", Role: RoleHighlight, Spring: mainSpring, DurationFactor: 1, Scale: 0.25, OffsetX: 0.2, Anchor: AnchorBottom, Inset: 0.26},
}

// BlobSpecs returns the six specs in index order.
func BlobSpecs() []BlobSpec {
	out := make([]BlobSpec, blobCount)
	copy(out, blobSpecs[:])
	return out
}

// paintOrder draws the farthest trail first and the highlights last.
var paintOrder = [blobCount]int{TrailFar, TrailMid, TrailNear, Main, HighlightUpper, HighlightLower}

// Mode is the motion model an ensemble was built with.
type Mode int

const (
	ModeSpring Mode = iota
	ModeTween
)

func (m Mode) String() string {
	if m == ModeTween {
		return "tween"
	}
	return "spring"
}

const (
	peakScaleX = 1.25
	peakScaleY = 0.8
)

// SquashStretch derives the main blob's scale from its position: 1× at
// either end of travel, peaking at the midpoint. Positions outside the travel
// range clamp to the ends, so overshoot never distorts further.
func SquashStretch(pos, travel float64) (sx, sy float64) {
	if travel <= 0 {
		return 1, 1
	}
	half := travel / 2
	var t float64
	switch {
	case pos <= 0 || pos >= travel:
		t = 0
	case pos <= half:
		t = pos / half
	default:
		t = (travel - pos) / half
	}
	return (1 - t) + peakScaleX*t, (1 - t) + peakScaleY*t
}

// Ensemble owns one driver per blob. Every driver shares the same target.
type Ensemble struct {
	mode     Mode
	travel   float64
	duration time.Duration
	drivers  [blobCount]motion.Driver
	scaleX   *motion.Sequence
	scaleY   *motion.Sequence
}

// NewEnsemble builds springs when anim is nil and tweens otherwise, with
// every blob resting at initial.
func NewEnsemble(layout geometry.Layout, anim *Anim, initial float64) *Ensemble {
	e := &Ensemble{travel: layout.Travel}
	if anim == nil {
		e.mode = ModeSpring
		for i, spec := range blobSpecs {
			e.drivers[i] = motion.NewSpring(spec.Spring, initial)
		}
		return e
	}

	e.mode = ModeTween
	e.duration = anim.duration()
	curve := anim.bezier().Curve()
	for i, spec := range blobSpecs {
		e.drivers[i] = motion.NewTween(initial, scaleDuration(e.duration, spec.DurationFactor), curve)
	}
	e.scaleX = motion.NewSequence(1, curve)
	e.scaleY = motion.NewSequence(1, curve)
	return e
}

func scaleDuration(d time.Duration, factor float64) time.Duration {
	return time.Duration(math.Round(float64(d) * factor))
}

// Mode reports which motion model drives the blobs.
func (e *Ensemble) Mode() Mode { return e.mode }

// SetTarget redirects every blob. In tween mode it also restarts the main
// blob's squash-and-stretch run.
func (e *Ensemble) SetTarget(x float64) {
	for _, d := range e.drivers {
		d.SetTarget(x)
	}
	if e.mode == ModeTween {
		e.scaleX.Play(e.duration, peakScaleX, 1)
		e.scaleY.Play(e.duration, peakScaleY, 1)
	}
}

// Step advances every driver by one frame.
func (e *Ensemble) Step(dt time.Duration) {
	for _, d := range e.drivers {
		d.Step(dt)
	}
	if e.mode == ModeTween {
		e.scaleX.Step(dt)
		e.scaleY.Step(dt)
	}
}

// Settled reports whether every blob and scale run is at rest.
func (e *Ensemble) Settled() bool {
	for _, d := range e.drivers {
		if !d.Settled() {
			return false
		}
	}
	if e.mode == ModeTween {
		return e.scaleX.Done() && e.scaleY.Done()
	}
	return true
}

// Position returns the current x offset of blob i.
func (e *Ensemble) Position(i int) float64 {
	return e.drivers[i].Value()
}

// Target returns the shared target.
func (e *Ensemble) Target() float64 {
	return e.drivers[Main].Target()
}

// Scale returns the main blob's current scale, whichever model drives it.
func (e *Ensemble) Scale() (sx, sy float64) {
	if e.mode == ModeTween {
		return e.scaleX.Value(), e.scaleY.Value()
	}
	return SquashStretch(e.drivers[Main].Value(), e.travel)
}

// Durations returns each blob's tween duration in index order, or nil in
// spring mode.
func (e *Ensemble) Durations() []time.Duration {
	if e.mode != ModeTween {
		return nil
	}
	out := make([]time.Duration, blobCount)
	for i, spec := range blobSpecs {
		out[i] = scaleDuration(e.duration, spec.DurationFactor)
	}
	return out
}

// TrailDurations returns the trail tween durations from the farthest trail
// to the nearest, or nil in spring mode.
func (e *Ensemble) TrailDurations() []time.Duration {
	all := e.Durations()
	if all == nil {
		return nil
	}
	return []time.Duration{all[TrailFar], all[TrailMid], all[TrailNear]}
}
