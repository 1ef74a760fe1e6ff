package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/gooey/internal/easing"
	"github.com/olivier-w/gooey/internal/editor"
	"github.com/olivier-w/gooey/internal/toggle"
)

func TestPickerPresetSelectionReturnsMessage(t *testing.T) {
	m := newPicker(0, 60, 20)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected selection command")
	}

	picked, ok := cmd().(curvePickedMsg)
	if !ok {
		t.Fatalf("expected curvePickedMsg, got %T", cmd())
	}
	if picked.bezier != (easing.Bezier{0.42, 0, 1, 1}) {
		t.Fatalf("expected Ease In, got %v", picked.bezier)
	}
}

func TestPickerCustomCurve(t *testing.T) {
	m := newPicker(easing.NoMatch, 60, 20)
	m.customMode = true
	m.input.SetValue("0.3, 1.2, 0.4, 1")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected custom curve command")
	}
	picked, ok := cmd().(curvePickedMsg)
	if !ok {
		t.Fatalf("expected curvePickedMsg, got %T", cmd())
	}
	if picked.bezier != (easing.Bezier{0.3, 1.2, 0.4, 1}) {
		t.Fatalf("unexpected curve %v", picked.bezier)
	}
}

func TestPickerRejectsBadCurve(t *testing.T) {
	m := newPicker(0, 60, 20)
	m.customMode = true
	m.input.SetValue("0.3, 1.2")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("expected no command for an invalid curve")
	}
	if m.err == "" {
		t.Fatal("expected an error message")
	}
}

func TestPickerCancelReturnsMessage(t *testing.T) {
	m := newPicker(0, 60, 20)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected cancel command")
	}
	if _, ok := cmd().(pickerClosedMsg); !ok {
		t.Fatalf("expected pickerClosedMsg, got %T", cmd())
	}
}

func TestStudioAppliesPickedCurve(t *testing.T) {
	m := New(Options{})
	m = send(t, m, runes("e"))
	if !m.picking {
		t.Fatal("expected picker open")
	}
	m = send(t, m, curvePickedMsg{bezier: easing.Bezier{0.68, -0.55, 0.27, 1.55}})
	if m.picking {
		t.Fatal("expected picker closed")
	}
	v := m.editor.Value()
	if !v.Enabled || v.ActivePreset() != 5 {
		t.Fatalf("expected tween with Bounce, got %s", v)
	}
	if m.preview.Mode() != toggle.ModeTween {
		t.Fatal("expected preview rebuilt in tween mode")
	}
}

func TestStudioKeysGoToPickerWhileOpen(t *testing.T) {
	m := New(Options{Value: editor.DefaultValue()})
	m = send(t, m, runes("e"), tea.KeyMsg{Type: tea.KeySpace})
	if m.preview.On() {
		t.Fatal("space must not reach the preview while picking")
	}
	m = send(t, m, pickerClosedMsg{})
	if m.picking {
		t.Fatal("expected picker closed")
	}
}
