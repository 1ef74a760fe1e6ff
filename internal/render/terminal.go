package render

import (
	"math"
	"strings"
)

// DefaultTerminalScale maps one track pixel to half a braille dot.
const DefaultTerminalScale = 0.5

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Terminal rasterizes scenes onto braille cells, 2x4 dots per cell. With
// colour the blobs are lit dots over a track-coloured background; without
// colour the track is lit and the blobs are cut out of it.
type Terminal struct {
	scale   float64
	profile colorProfile
}

// NewTerminal creates a terminal renderer using the colour profile of the
// environment (NO_COLOR, COLORTERM, TERM). Non-positive scales fall back to
// DefaultTerminalScale.
func NewTerminal(scale float64) *Terminal {
	return newTerminal(scale, currentColorProfile())
}

func newTerminal(scale float64, p colorProfile) *Terminal {
	if scale <= 0 || math.IsNaN(scale) {
		scale = DefaultTerminalScale
	}
	return &Terminal{scale: scale, profile: p}
}

// Colored reports whether output carries ANSI colour.
func (t *Terminal) Colored() bool { return t.profile != colorNone }

// Cells returns the cell grid size a scene of the given pixel size takes.
func (t *Terminal) Cells(width, height float64) (cols, rows int) {
	dotW, dotH := t.dots(width, height)
	return (dotW + 1) / 2, (dotH + 3) / 4
}

func (t *Terminal) dots(width, height float64) (int, int) {
	return max(1, int(math.Ceil(width*t.scale))), max(1, int(math.Ceil(height*t.scale)))
}

// Render draws s and returns rows joined by newlines.
func (t *Terminal) Render(s Scene) string {
	dotW, dotH := t.dots(s.Layout.Width, s.Layout.Height)
	cols, rows := (dotW+1)/2, (dotH+3)/4
	colored := t.Colored()
	state := newANSIState(t.profile)
	track := s.Track()

	lines := make([]string, rows)
	for row := range rows {
		var line strings.Builder
		for col := range cols {
			var pattern uint
			for dx := range 2 {
				for dy := range 4 {
					x, y := col*2+dx, row*4+dy
					if x >= dotW || y >= dotH {
						continue
					}
					px := (float64(x) + 0.5) / t.scale
					py := (float64(y) + 0.5) / t.scale
					inTrack := s.InTrack(px, py)
					blob := inTrack && s.Field.Inside(px, py)
					if (colored && blob) || (!colored && inTrack != blob) {
						pattern |= 1 << brailleBits[dx][dy]
					}
				}
			}

			cx := float64(col*2+1) / t.scale
			cy := float64(row*4+2) / t.scale
			if colored {
				state.set(&line, cellStyle{fg: s.Theme.Blob, bg: track, hasBg: s.InTrack(cx, cy)})
			}
			if pattern == 0 && !(colored && s.InTrack(cx, cy)) {
				line.WriteByte(' ')
				continue
			}
			line.WriteRune(rune(0x2800 + pattern))
		}
		state.reset(&line)
		lines[row] = line.String()
	}
	return strings.Join(lines, "\n")
}
