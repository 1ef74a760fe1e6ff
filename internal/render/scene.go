package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/olivier-w/gooey/internal/geometry"
	"github.com/olivier-w/gooey/internal/toggle"
)

// Theme holds the colours a scene is painted with.
type Theme struct {
	TrackOff color.RGBA
	TrackOn  color.RGBA
	Blob     color.RGBA
}

// DefaultTheme is a muted track that turns green when on, with white blobs.
func DefaultTheme() Theme {
	return Theme{
		TrackOff: color.RGBA{R: 0x3f, G: 0x3f, B: 0x46, A: 0xff},
		TrackOn:  color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff},
		Blob:     color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff},
	}
}

// ParseHex parses #rgb or #rrggbb.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Scene is one frame ready to rasterize, in track pixel coordinates.
type Scene struct {
	Layout geometry.Layout
	Field  Field
	On     bool
	Theme  Theme
}

// NewScene builds a scene from a toggle frame.
func NewScene(f toggle.Frame, th Theme) Scene {
	return Scene{
		Layout: f.Layout,
		Field:  NewField(f),
		On:     f.On,
		Theme:  th,
	}
}

// Track returns the track colour for the current state.
func (s Scene) Track() color.RGBA {
	if s.On {
		return s.Theme.TrackOn
	}
	return s.Theme.TrackOff
}

// InTrack reports whether (x, y) lies on the pill-shaped track.
func (s Scene) InTrack(x, y float64) bool {
	w, h := s.Layout.Width, s.Layout.Height
	if x < 0 || y < 0 || x > w || y > h {
		return false
	}
	r := h / 2
	cx := min(max(x, r), w-r)
	dx, dy := x-cx, y-r
	return dx*dx+dy*dy <= r*r
}

// Sample returns the colour at (x, y). Blobs are clipped to the track;
// ok is false outside it.
func (s Scene) Sample(x, y float64) (c color.RGBA, ok bool) {
	if !s.InTrack(x, y) {
		return color.RGBA{}, false
	}
	if s.Field.Inside(x, y) {
		return s.Theme.Blob, true
	}
	return s.Track(), true
}
