package ui

import "github.com/olivier-w/gooey/internal/editor"

type fieldKind int

const (
	fieldSize fieldKind = iota
	fieldDefault
	fieldAnim
)

// field is one focusable configurator row.
type field struct {
	kind    fieldKind
	control editor.Control
}

func (f field) label() string {
	switch f.kind {
	case fieldSize:
		return "Size"
	case fieldDefault:
		return "Default state"
	default:
		return f.control.String()
	}
}

// fields lists the rows for v; the bezier rows only exist in tween mode.
func fields(v editor.Value) []field {
	out := []field{{kind: fieldSize}, {kind: fieldDefault}}
	for _, c := range editor.Controls(v) {
		out = append(out, field{kind: fieldAnim, control: c})
	}
	return out
}

// cycleFocus moves i by dir over n rows, wrapping at both ends.
func cycleFocus(i, dir, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i+dir)%n + n) % n
}
