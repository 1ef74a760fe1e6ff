package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
)

// Snapshot defaults.
const (
	DefaultSnapshotScale = 4
	supersample          = 4
)

// Image renders s at scale output pixels per track pixel. The field is
// sampled at a higher resolution and filtered down so edges are smooth.
// Pixels outside the track are transparent.
func Image(s Scene, scale int) *image.RGBA {
	if scale <= 0 {
		scale = DefaultSnapshotScale
	}
	w := max(1, int(math.Ceil(s.Layout.Width*float64(scale))))
	h := max(1, int(math.Ceil(s.Layout.Height*float64(scale))))

	k := float64(scale * supersample)
	hi := image.NewRGBA(image.Rect(0, 0, w*supersample, h*supersample))
	b := hi.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c, ok := s.Sample((float64(x)+0.5)/k, (float64(y)+0.5)/k); ok {
				hi.SetRGBA(x, y, c)
			}
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(out, out.Bounds(), hi, b, draw.Src, nil)
	return out
}

// WritePNG encodes Image(s, scale) to w.
func WritePNG(w io.Writer, s Scene, scale int) error {
	if err := png.Encode(w, Image(s, scale)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
