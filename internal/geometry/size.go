package geometry

import (
	"fmt"
	"strings"
)

// Size selects one of the fixed toggle geometries.
type Size int

const (
	// Large is the zero value so an unset size resolves to lg.
	Large Size = iota
	Medium
	Small
)

// Sizes lists the selectable sizes from smallest to largest.
var Sizes = []Size{Small, Medium, Large}

// Spec is the authored geometry of a size: track width and height plus the
// diameter of the main blob, all in pixels.
type Spec struct {
	Width    float64
	Height   float64
	Diameter float64
}

var table = map[Size]Spec{
	Small:  {Width: 64, Height: 32, Diameter: 24},
	Medium: {Width: 80, Height: 40, Diameter: 30},
	Large:  {Width: 120, Height: 56, Diameter: 42},
}

// String returns the short name used in configs and flags.
func (s Size) String() string {
	switch s {
	case Small:
		return "sm"
	case Medium:
		return "md"
	case Large:
		return "lg"
	default:
		return fmt.Sprintf("Size(%d)", int(s))
	}
}

// ParseSize accepts sm/md/lg (and the long forms) case-insensitively.
func ParseSize(name string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sm", "small":
		return Small, nil
	case "md", "medium":
		return Medium, nil
	case "lg", "large", "":
		return Large, nil
	}
	return Large, fmt.Errorf("unknown size %q (want sm, md or lg)", name)
}

// Next cycles sm → md → lg → sm.
func (s Size) Next() Size {
	switch s {
	case Small:
		return Medium
	case Medium:
		return Large
	default:
		return Small
	}
}

// Prev cycles in the opposite direction of Next.
func (s Size) Prev() Size {
	switch s {
	case Large:
		return Medium
	case Medium:
		return Small
	default:
		return Large
	}
}

// Spec returns the table entry for s. Unknown sizes fall back to Large.
func (s Size) Spec() Spec {
	if spec, ok := table[s]; ok {
		return spec
	}
	return table[Large]
}

// Layout is a Spec with the values derived from it.
type Layout struct {
	Spec
	Padding float64
	Travel  float64
}

// Resolve derives padding and travel for the size.
func Resolve(s Size) Layout {
	return Derive(s.Spec())
}

// Derive computes padding and travel for an arbitrary spec. A diameter that
// does not fit inside the track height yields zero travel.
func Derive(spec Spec) Layout {
	padding := (spec.Height - spec.Diameter) / 2
	travel := spec.Width - spec.Diameter - padding*2
	if spec.Diameter >= spec.Height || travel < 0 {
		travel = 0
	}
	return Layout{Spec: spec, Padding: padding, Travel: travel}
}

// Target returns the resting position of the main blob for a state.
func (l Layout) Target(on bool) float64 {
	if on {
		return l.Travel
	}
	return 0
}
