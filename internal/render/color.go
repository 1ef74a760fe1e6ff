package render

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"
	"sync"
)

type colorProfile uint8

const (
	colorNone colorProfile = iota
	colorANSI16
	colorANSI256
	colorTrueColor
)

type layer uint8

const (
	foreground layer = 38
	background layer = 48
)

var (
	profileOnce sync.Once
	profile     colorProfile
	seqCache    sync.Map
)

func currentColorProfile() colorProfile {
	profileOnce.Do(func() {
		profile = detectColorProfile(os.LookupEnv)
	})
	return profile
}

func detectColorProfile(lookup func(string) (string, bool)) colorProfile {
	if _, disabled := lookup("NO_COLOR"); disabled {
		return colorNone
	}
	get := func(k string) string {
		v, _ := lookup(k)
		return strings.ToLower(v)
	}
	term, colorTerm := get("TERM"), get("COLORTERM")
	switch {
	case strings.Contains(colorTerm, "truecolor"), strings.Contains(colorTerm, "24bit"):
		return colorTrueColor
	case strings.Contains(term, "256color"):
		return colorANSI256
	case term == "", term == "dumb":
		return colorNone
	default:
		return colorANSI16
	}
}

type cellStyle struct {
	fg    color.RGBA
	bg    color.RGBA
	hasBg bool
}

type ansiState struct {
	profile colorProfile
	current cellStyle
	active  bool
}

func newANSIState(p colorProfile) ansiState {
	return ansiState{profile: p}
}

func (s *ansiState) set(sb *strings.Builder, st cellStyle) {
	if s.profile == colorNone {
		return
	}
	if s.active && st == s.current {
		return
	}
	if s.active && s.current.hasBg && !st.hasBg {
		sb.WriteString("\x1b[0m")
	}
	sb.WriteString(colorSequence(s.profile, foreground, st.fg))
	if st.hasBg {
		sb.WriteString(colorSequence(s.profile, background, st.bg))
	}
	s.current = st
	s.active = true
}

func (s *ansiState) reset(sb *strings.Builder) {
	if s.profile == colorNone || !s.active {
		return
	}
	sb.WriteString("\x1b[0m")
	s.active = false
}

var ansi16 = []color.RGBA{
	{R: 0, G: 0, B: 0},
	{R: 205, G: 49, B: 49},
	{R: 13, G: 188, B: 121},
	{R: 229, G: 229, B: 16},
	{R: 36, G: 114, B: 200},
	{R: 188, G: 63, B: 188},
	{R: 17, G: 168, B: 205},
	{R: 229, G: 229, B: 229},
}

func colorSequence(p colorProfile, l layer, c color.RGBA) string {
	key := uint32(p)<<28 | uint32(l&0x0f)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}

	var seq string
	switch p {
	case colorTrueColor:
		seq = fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", l, c.R, c.G, c.B)
	case colorANSI256:
		r := int(c.R) * 5 / 255
		g := int(c.G) * 5 / 255
		b := int(c.B) * 5 / 255
		seq = fmt.Sprintf("\x1b[%d;5;%dm", l, 16+36*r+6*g+b)
	case colorANSI16:
		best := 0
		bestDist := math.MaxFloat64
		for i, q := range ansi16 {
			dr := float64(c.R) - float64(q.R)
			dg := float64(c.G) - float64(q.G)
			db := float64(c.B) - float64(q.B)
			if d := dr*dr + dg*dg + db*db; d < bestDist {
				bestDist = d
				best = i
			}
		}
		base := 30
		if l == background {
			base = 40
		}
		seq = fmt.Sprintf("\x1b[%dm", base+best)
	}

	seqCache.Store(key, seq)
	return seq
}
