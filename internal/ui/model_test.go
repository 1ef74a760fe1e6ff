package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/gooey/internal/easing"
	"github.com/olivier-w/gooey/internal/editor"
	"github.com/olivier-w/gooey/internal/geometry"
	"github.com/olivier-w/gooey/internal/toggle"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("expected Model, got %T", next)
		}
	}
	return m
}

func frames(n int, interval time.Duration) []tea.Msg {
	start := time.Unix(0, 0)
	out := make([]tea.Msg, n)
	for i := range out {
		out[i] = frameMsg(start.Add(time.Duration(i+1) * interval))
	}
	return out
}

func TestNewBuildsPreviewAndUseCases(t *testing.T) {
	m := New(Options{Size: geometry.Medium, Value: editor.DefaultValue()})
	if got := m.frames.Len(); got != 5 {
		t.Fatalf("expected 5 subscribed toggles, got %d", got)
	}
	if m.preview.Size() != geometry.Medium {
		t.Fatalf("expected medium preview, got %s", m.preview.Size())
	}
	for i, uc := range m.useCases {
		if uc.toggle.On() != (i%2 == 1) {
			t.Fatalf("use case %d: expected on=%t", i, i%2 == 1)
		}
		if uc.toggle.Size() != geometry.Small {
			t.Fatalf("use case %d: expected small toggle", i)
		}
	}
}

func TestSpaceActivatesPreviewAndFramesMoveIt(t *testing.T) {
	m := New(Options{Size: geometry.Medium})
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.preview.On() {
		t.Fatal("expected preview on after space")
	}
	if m.status != "preview on" {
		t.Fatalf("unexpected status %q", m.status)
	}

	m = send(t, m, frames(10, m.interval)...)
	if x := m.preview.Ensemble().Position(toggle.Main); x <= 0 {
		t.Fatalf("expected main blob to move, got %v", x)
	}
}

func TestFrameDeltaIsClamped(t *testing.T) {
	m := New(Options{Size: geometry.Medium, Value: editor.Value{Enabled: true, Duration: 0.5, Bezier: easing.Bezier{0, 0, 1, 1}}})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	start := time.Unix(100, 0)
	m = send(t, m, frameMsg(start), frameMsg(start.Add(time.Hour)))
	if m.preview.Settled() {
		t.Fatal("a stalled frame must not finish the tween in one step")
	}
}

func TestUseCaseKeysReportThroughOnChange(t *testing.T) {
	m := New(Options{})
	m = send(t, m, runes("1"), runes("2"))
	if !m.useCases[0].on {
		t.Fatal("expected Dark mode on")
	}
	if m.useCases[1].on {
		t.Fatal("expected Notifications off")
	}
	if m.status != "Notifications off" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestEnablingTweenRebuildsAndDisposes(t *testing.T) {
	m := New(Options{Size: geometry.Medium})
	old := m.preview
	oldCase := m.useCases[0].toggle

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyRight})
	if !m.editor.Value().Enabled {
		t.Fatal("expected tween mode enabled")
	}
	if !old.Disposed() || !oldCase.Disposed() {
		t.Fatal("expected previous toggles disposed")
	}
	if m.preview.Mode() != toggle.ModeTween {
		t.Fatalf("expected tween preview, got %s", m.preview.Mode())
	}
	if got := m.frames.Len(); got != 5 {
		t.Fatalf("expected 5 live subscriptions, got %d", got)
	}
}

func TestUseCaseStateSurvivesRebuild(t *testing.T) {
	m := New(Options{})
	m = send(t, m, runes("1"), runes("p"))
	if !m.useCases[0].toggle.On() {
		t.Fatal("expected Dark mode to stay on after rebuild")
	}
}

func TestSizeAndDefaultRows(t *testing.T) {
	m := New(Options{Size: geometry.Large})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.preview.Size() != geometry.Small {
		t.Fatalf("expected lg → sm wrap, got %s", m.preview.Size())
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyRight})
	if !m.preview.On() || !m.preview.Settled() {
		t.Fatal("expected preview recreated resting on")
	}
}

func TestFocusFollowsRowSet(t *testing.T) {
	m := New(Options{Value: editor.Value{Enabled: true, Duration: 0.5, Bezier: easing.Default}})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != 8 {
		t.Fatalf("expected focus on y2 row, got %d", m.focus)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.editor.Value().Enabled {
		t.Fatal("expected spring mode")
	}
	if m.focus != 2 {
		t.Fatalf("expected focus on animation row, got %d", m.focus)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 0 {
		t.Fatalf("expected focus to wrap, got %d", m.focus)
	}
}

func TestPresetKeyCycles(t *testing.T) {
	m := New(Options{Value: editor.Value{Enabled: true, Duration: 0.5, Bezier: easing.Default}})
	m = send(t, m, runes("p"))
	if got := m.editor.ActivePreset(); got != 1 {
		t.Fatalf("expected Ease In, got %d", got)
	}
}

func TestViewShowsConfiguration(t *testing.T) {
	m := New(Options{Value: editor.Value{Enabled: true, Duration: 0.5, Bezier: easing.Default}})
	view := m.View()
	for _, want := range []string{"Gooey Switch", "Dark mode", "Analytics", "Duration", "Ease", "toggle.New("} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q", want)
		}
	}
}

func TestQuitDisposesEverything(t *testing.T) {
	m := New(Options{})
	next, cmd := m.Update(runes("q"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.frames.Len() != 0 {
		t.Fatalf("expected no subscriptions, got %d", m.frames.Len())
	}
	if m.View() != "" {
		t.Fatal("expected empty view after quit")
	}
}

func TestCodeLine(t *testing.T) {
	got := codeLine(geometry.Small, false, editor.DefaultValue())
	if got != "toggle.New(toggle.Options{Size: geometry.Small})" {
		t.Fatalf("unexpected code line %q", got)
	}

	v := editor.Value{Enabled: true, Duration: 0.75, Bezier: easing.Bezier{0.68, -0.55, 0.27, 1.55}}
	got = codeLine(geometry.Large, true, v)
	want := "toggle.New(toggle.Options{Size: geometry.Large, DefaultOn: true, Anim: &toggle.Anim{Duration: 0.75, Bezier: &easing.Bezier{0.68, -0.55, 0.27, 1.55}}})"
	if got != want {
		t.Fatalf("code line\n got %q\nwant %q", got, want)
	}
}

func TestCycleFocus(t *testing.T) {
	if got := cycleFocus(0, -1, 3); got != 2 {
		t.Fatalf("expected wrap to 2, got %d", got)
	}
	if got := cycleFocus(2, 1, 3); got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
	if got := cycleFocus(5, 1, 0); got != 0 {
		t.Fatalf("expected 0 for empty rows, got %d", got)
	}
}
