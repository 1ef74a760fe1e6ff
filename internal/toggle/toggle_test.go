package toggle

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivier-w/gooey/internal/easing"
	"github.com/olivier-w/gooey/internal/geometry"
	"github.com/olivier-w/gooey/internal/logger"
	"github.com/olivier-w/gooey/internal/motion"
)

var frame = motion.FrameInterval(60)

func settle(t *testing.T, tg *Toggle) {
	t.Helper()
	for range 10_000 {
		if tg.Settled() {
			return
		}
		tg.Step(frame)
	}
	t.Fatal("toggle did not settle")
}

func TestActivationParity(t *testing.T) {
	for _, initial := range []bool{false, true} {
		for n := range 9 {
			tg := New(Options{DefaultOn: initial, Size: geometry.Medium})
			for range n {
				tg.Activate()
				tg.Step(frame)
			}
			assert.Equal(t, initial != (n%2 == 1), tg.On(), "initial=%t n=%d", initial, n)
		}
	}
}

func TestActivateFromOffTargetsTravel(t *testing.T) {
	tg := New(Options{Size: geometry.Medium})
	require.True(t, tg.Activate())
	assert.Equal(t, 40.0, tg.Ensemble().Target())
	settle(t, tg)
	assert.Equal(t, 40.0, tg.Ensemble().Position(Main))
}

func TestDefaultOnRestsAtTravel(t *testing.T) {
	tg := New(Options{DefaultOn: true, Size: geometry.Small})
	assert.True(t, tg.Settled())
	for i := range blobCount {
		assert.Equal(t, 32.0, tg.Ensemble().Position(i))
	}
}

func TestOnChangeFiresSynchronously(t *testing.T) {
	for _, anim := range []*Anim{nil, {Duration: 0.5}} {
		var calls []bool
		tg := New(Options{
			Size:     geometry.Medium,
			Anim:     anim,
			OnChange: func(on bool) { calls = append(calls, on) },
		})

		tg.Activate()
		require.Equal(t, []bool{true}, calls, "fires before any frame")
		tg.Step(frame)
		tg.Step(frame)
		tg.Activate()
		require.Equal(t, []bool{true, false}, calls)

		settle(t, tg)
		assert.Equal(t, []bool{true, false}, calls)
		for i := range blobCount {
			assert.Equal(t, 0.0, tg.Ensemble().Position(i), "blob %d", i)
		}
	}
}

func TestInterruptedMotionReversesWithoutJump(t *testing.T) {
	for _, anim := range []*Anim{nil, {Duration: 0.5}} {
		tg := New(Options{Size: geometry.Large, Anim: anim})
		tg.Activate()
		for range 8 {
			tg.Step(frame)
		}
		before := tg.Ensemble().Position(Main)
		require.Greater(t, before, 0.0)

		tg.Activate()
		assert.Equal(t, before, tg.Ensemble().Position(Main), "%s: redirect must not move the blob", tg.Mode())

		prev := before
		for range 400 {
			tg.Step(frame)
			cur := tg.Ensemble().Position(Main)
			assert.Less(t, math.Abs(cur-prev), 15.0, "%s: no discontinuous jump", tg.Mode())
			prev = cur
		}
		assert.Equal(t, 0.0, tg.Ensemble().Position(Main))
	}
}

func TestTrailDurations(t *testing.T) {
	tg := New(Options{Anim: &Anim{Duration: 0.5}})
	assert.Equal(t, []time.Duration{700 * time.Millisecond, 650 * time.Millisecond, 600 * time.Millisecond}, tg.Ensemble().TrailDurations())

	spring := New(Options{})
	assert.Nil(t, spring.Ensemble().TrailDurations())
}

func TestTweenDefaults(t *testing.T) {
	a := &Anim{}
	assert.Equal(t, 500*time.Millisecond, a.duration())
	assert.Equal(t, easing.Default, a.bezier())

	b := easing.Bezier{1.5, 0.2, -0.2, 1}
	a = &Anim{Bezier: &b}
	assert.Equal(t, easing.Bezier{1, 0.2, 0, 1}, a.bezier())
}

func TestTweenTrailsArriveFarthestLast(t *testing.T) {
	tg := New(Options{Size: geometry.Medium, Anim: &Anim{Duration: 0.5}})
	tg.Activate()

	arrived := map[int]int{}
	for f := 1; f < 200 && len(arrived) < blobCount; f++ {
		tg.Step(frame)
		for i := range blobCount {
			if _, ok := arrived[i]; !ok && tg.Ensemble().Position(i) == 40 {
				arrived[i] = f
			}
		}
	}
	require.Len(t, arrived, blobCount)
	assert.Less(t, arrived[Main], arrived[TrailNear])
	assert.Less(t, arrived[TrailNear], arrived[TrailMid])
	assert.Less(t, arrived[TrailMid], arrived[TrailFar])
	assert.Equal(t, arrived[Main], arrived[HighlightUpper])
}

func TestSpringTrailsLag(t *testing.T) {
	tg := New(Options{Size: geometry.Large})
	tg.Activate()
	for range 6 {
		tg.Step(frame)
	}
	e := tg.Ensemble()
	assert.Greater(t, e.Position(Main), e.Position(TrailNear))
	assert.Greater(t, e.Position(TrailNear), e.Position(TrailMid))
	assert.Greater(t, e.Position(TrailMid), e.Position(TrailFar))
	assert.Equal(t, e.Position(Main), e.Position(HighlightUpper))
}

func TestSquashStretch(t *testing.T) {
	sx, sy := SquashStretch(20, 40)
	assert.Equal(t, 1.25, sx)
	assert.Equal(t, 0.8, sy)

	for _, pos := range []float64{0, 40, -3, 44} {
		sx, sy = SquashStretch(pos, 40)
		assert.Equal(t, 1.0, sx, "pos %v", pos)
		assert.Equal(t, 1.0, sy, "pos %v", pos)
	}

	sx, sy = SquashStretch(10, 40)
	assert.InDelta(t, 1.125, sx, 1e-9)
	assert.InDelta(t, 0.9, sy, 1e-9)

	sx, sy = SquashStretch(5, 0)
	assert.Equal(t, 1.0, sx)
	assert.Equal(t, 1.0, sy)
}

func TestTweenScaleOutAndBackBothDirections(t *testing.T) {
	tg := New(Options{Size: geometry.Medium, Anim: &Anim{Duration: 0.4}})
	for range 2 {
		tg.Activate()
		peakX, minY := 1.0, 1.0
		for !tg.Settled() {
			tg.Step(frame)
			sx, sy := tg.Ensemble().Scale()
			peakX = max(peakX, sx)
			minY = min(minY, sy)
		}
		assert.InDelta(t, 1.25, peakX, 0.001)
		assert.InDelta(t, 0.8, minY, 0.001)
		sx, sy := tg.Ensemble().Scale()
		assert.Equal(t, 1.0, sx)
		assert.Equal(t, 1.0, sy)
	}
}

func TestOnChangePanicKeepsState(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	tg := New(Options{
		Size:     geometry.Medium,
		Logger:   log,
		OnChange: func(bool) { panic("observer failed") },
	})

	require.NotPanics(t, func() { tg.Activate() })
	assert.True(t, tg.On())
	assert.Equal(t, 40.0, tg.Ensemble().Target())
	assert.Contains(t, buf.String(), "observer failed")

	tg.Step(frame)
	assert.Greater(t, tg.Ensemble().Position(Main), 0.0)
}

func TestDisposeReleasesFrames(t *testing.T) {
	frames := motion.NewFrames()
	a := New(Options{Frames: frames})
	b := New(Options{Frames: frames})
	require.Equal(t, 2, frames.Len())

	a.Activate()
	frames.Step(frame)
	moved := a.Ensemble().Position(Main)
	require.Greater(t, moved, 0.0)

	a.Dispose()
	a.Dispose()
	assert.Equal(t, 1, frames.Len())
	assert.True(t, a.Disposed())

	frames.Step(frame)
	assert.Equal(t, moved, a.Ensemble().Position(Main))

	b.Dispose()
	assert.Equal(t, 0, frames.Len())
}

func TestInstancesShareNothing(t *testing.T) {
	a := New(Options{Size: geometry.Medium})
	b := New(Options{Size: geometry.Medium})
	a.Activate()
	a.Step(frame)
	assert.False(t, b.On())
	assert.Equal(t, 0.0, b.Ensemble().Position(Main))
}

func TestAnimIsCopied(t *testing.T) {
	bz := easing.Bezier{0.42, 0, 1, 1}
	anim := &Anim{Duration: 0.3, Bezier: &bz}
	tg := New(Options{Anim: anim})
	bz[0] = 0.9
	anim.Duration = 2
	assert.Equal(t, 0.42, tg.anim.Bezier[0])
	assert.Equal(t, 0.3, tg.anim.Duration)
}

func TestFramePlacement(t *testing.T) {
	tg := New(Options{Size: geometry.Medium})
	f := tg.Frame()
	require.Len(t, f.Blobs, blobCount)
	assert.Equal(t, "trail-far", f.Blobs[0].Spec.Name)

	m := f.Main()
	assert.Equal(t, 20.0, m.CX)
	assert.Equal(t, 20.0, m.CY)
	assert.Equal(t, 15.0, m.Radius)
	assert.Equal(t, 1.0, m.ScaleX)

	tg.Activate()
	settle(t, tg)
	m = tg.Frame().Main()
	assert.Equal(t, 60.0, m.CX)
	assert.True(t, tg.Frame().On)
}
