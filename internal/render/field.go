// Package render turns toggle frames into pixels: a metaball field shared by
// every blob, a braille terminal canvas and PNG snapshots.
package render

import (
	"math"

	"github.com/olivier-w/gooey/internal/toggle"
)

// Threshold is the field value at which blobs become solid.
const Threshold = 1.0

type ellipse struct {
	cx, cy float64
	rx, ry float64
}

// Field is the merged blob surface for one frame. Each blob contributes
// (r/d)² with d measured in its own scaled ellipse space; points where the
// sum reaches Threshold are inside. A lone blob therefore renders as its
// exact ellipse, and neighbours fuse where their contributions overlap.
type Field struct {
	blobs []ellipse
}

// NewField collects the blobs of f.
func NewField(f toggle.Frame) Field {
	out := Field{blobs: make([]ellipse, 0, len(f.Blobs))}
	for _, b := range f.Blobs {
		rx, ry := b.Radius*b.ScaleX, b.Radius*b.ScaleY
		if rx <= 0 || ry <= 0 {
			continue
		}
		out.blobs = append(out.blobs, ellipse{cx: b.CX, cy: b.CY, rx: rx, ry: ry})
	}
	return out
}

// Len is the number of contributing blobs.
func (f Field) Len() int { return len(f.blobs) }

// Value sums the contributions at (x, y).
func (f Field) Value(x, y float64) float64 {
	var sum float64
	for _, e := range f.blobs {
		dx := (x - e.cx) / e.rx
		dy := (y - e.cy) / e.ry
		d2 := dx*dx + dy*dy
		if d2 == 0 {
			return math.Inf(1)
		}
		sum += 1 / d2
	}
	return sum
}

// Inside reports whether (x, y) is on the merged surface.
func (f Field) Inside(x, y float64) bool {
	return f.Value(x, y) >= Threshold
}
