package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const sliderWidth = 24

func newSlider() progress.Model {
	p := progress.New(
		progress.WithScaledGradient("#16A34A", "#86EFAC"),
		progress.WithoutPercentage(),
	)
	p.Width = sliderWidth
	return p
}

func renderSlider(p progress.Model, value, lo, hi float64) string {
	var ratio float64
	if hi > lo {
		ratio = (value - lo) / (hi - lo)
	}
	ratio = min(max(ratio, 0), 1)
	return p.ViewAs(ratio)
}

// renderSegmented draws options side by side with the selected one
// highlighted.
func renderSegmented(options []string, selected int) string {
	parts := make([]string, len(options))
	for i, o := range options {
		if i == selected {
			parts[i] = selectedStyle.Render(" " + o + " ")
		} else {
			parts[i] = valueStyle.Render(" " + o + " ")
		}
	}
	return strings.Join(parts, " ")
}

// labelled joins a rendered block with a label to its right, centred
// vertically.
func labelled(block, label string) string {
	return lipgloss.JoinHorizontal(lipgloss.Center, block, "  ", labelStyle.Render(label))
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
