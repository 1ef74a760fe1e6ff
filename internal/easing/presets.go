package easing

import "strings"

// Preset is a named curve offered as a one-click choice.
type Preset struct {
	Name   string
	Bezier Bezier
}

// NoMatch is returned by MatchPreset when no preset is close enough.
const NoMatch = -1

// MatchTolerance is the per-component distance under which a curve counts
// as a preset.
const MatchTolerance = 0.01

var presets = [...]Preset{
	{Name: "Ease", Bezier: Bezier{0.25, 0.1, 0.25, 1.0}},
	{Name: "Ease In", Bezier: Bezier{0.42, 0, 1, 1}},
	{Name: "Ease Out", Bezier: Bezier{0, 0, 0.58, 1}},
	{Name: "Ease In-Out", Bezier: Bezier{0.42, 0, 0.58, 1}},
	{Name: "Snappy", Bezier: Bezier{0.2, 0.8, 0.2, 1}},
	{Name: "Bounce", Bezier: Bezier{0.68, -0.55, 0.27, 1.55}},
}

// Presets returns the ordered preset table. The slice is a copy.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets[:])
	return out
}

// PresetCount is the number of presets.
func PresetCount() int { return len(presets) }

// PresetAt returns preset i and whether i is in range.
func PresetAt(i int) (Preset, bool) {
	if i < 0 || i >= len(presets) {
		return Preset{}, false
	}
	return presets[i], true
}

// PresetByName looks a preset up ignoring case, spaces and dashes.
func PresetByName(name string) (Preset, bool) {
	want := normalizeName(name)
	for _, p := range presets {
		if normalizeName(p.Name) == want {
			return p, true
		}
	}
	return Preset{}, false
}

// MatchPreset returns the index of the first preset whose components are all
// within MatchTolerance of b, or NoMatch.
func MatchPreset(b Bezier) int {
	for i, p := range presets {
		if p.Bezier.near(b, MatchTolerance) {
			return i
		}
	}
	return NoMatch
}

func (b Bezier) near(o Bezier, tol float64) bool {
	for i := range b {
		d := b[i] - o[i]
		if d < 0 {
			d = -d
		}
		if d >= tol {
			return false
		}
	}
	return true
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}
