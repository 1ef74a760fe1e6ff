package ui

import (
	"fmt"
	"strings"

	"github.com/olivier-w/gooey/internal/editor"
	"github.com/olivier-w/gooey/internal/geometry"
	"github.com/olivier-w/gooey/internal/util"
)

var sizeIdents = map[geometry.Size]string{
	geometry.Small:  "Small",
	geometry.Medium: "Medium",
	geometry.Large:  "Large",
}

// codeLine is the Go call that builds the toggle currently on screen.
func codeLine(size geometry.Size, defaultOn bool, v editor.Value) string {
	var b strings.Builder
	fmt.Fprintf(&b, "toggle.New(toggle.Options{Size: geometry.%s", sizeIdents[size])
	if defaultOn {
		b.WriteString(", DefaultOn: true")
	}
	if v.Enabled {
		fmt.Fprintf(&b, ", Anim: &toggle.Anim{Duration: %s, Bezier: &easing.Bezier{%s}}",
			util.FormatNumber(v.Duration), util.FormatList(v.Bezier[:]...))
	}
	b.WriteString("})")
	return b.String()
}
