package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/gooey/internal/easing"
	"github.com/olivier-w/gooey/internal/editor"
	"github.com/olivier-w/gooey/internal/geometry"
	"github.com/olivier-w/gooey/internal/logger"
	"github.com/olivier-w/gooey/internal/motion"
	"github.com/olivier-w/gooey/internal/render"
	"github.com/olivier-w/gooey/internal/toggle"
	"github.com/olivier-w/gooey/internal/util"
)

// useCaseLabels are the small demo toggles; every other one starts on.
var useCaseLabels = []string{"Dark mode", "Notifications", "Auto-save", "Analytics"}

// Options seeds the studio.
type Options struct {
	Size      geometry.Size
	DefaultOn bool
	Value     editor.Value
	FPS       int
	Theme     render.Theme
	Logger    *logger.Logger
	// Terminal renders the preview. Nil uses the environment's colour
	// profile at the default scale.
	Terminal *render.Terminal
}

type useCase struct {
	label  string
	on     bool
	toggle *toggle.Toggle
}

// Model is the Bubbletea model for the gooey studio.
type Model struct {
	frames    *motion.Frames
	preview   *toggle.Toggle
	useCases  []*useCase
	editor    *editor.Editor
	size      geometry.Size
	defaultOn bool
	focus     int
	picking   bool
	picker    pickerModel

	term     *render.Terminal
	small    *render.Terminal
	theme    render.Theme
	keys     keyMap
	help     help.Model
	slider   progress.Model
	log      *logger.Logger
	interval time.Duration
	last     time.Time
	width    int
	height   int
	quitting bool
	status   string
}

// New creates the studio with its preview and use-case toggles built.
func New(opts Options) Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = motion.DefaultFPS
	}
	term := opts.Terminal
	if term == nil {
		term = render.NewTerminal(render.DefaultTerminalScale)
	}
	theme := opts.Theme
	if theme == (render.Theme{}) {
		theme = render.DefaultTheme()
	}
	log := opts.Logger.WithFields(map[string]any{"component": "studio"})

	m := Model{
		frames:    motion.NewFrames(),
		size:      opts.Size,
		defaultOn: opts.DefaultOn,
		term:      term,
		small:     render.NewTerminal(render.DefaultTerminalScale / 2),
		theme:     theme,
		keys:      newKeyMap(),
		help:      help.New(),
		slider:    newSlider(),
		log:       log,
		interval:  motion.FrameInterval(fps),
	}
	value := opts.Value
	if value == (editor.Value{}) {
		value = editor.DefaultValue()
	}
	m.editor = editor.New(value, func(v editor.Value) {
		log.Debugf("animation changed: %s", v)
	})
	for i, label := range useCaseLabels {
		m.useCases = append(m.useCases, &useCase{label: label, on: i%2 == 1})
	}
	m.rebuildPreview()
	m.rebuildUseCases()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.interval), tea.SetWindowTitle("gooey studio"))
}

func (m *Model) rebuildPreview() {
	if m.preview != nil {
		m.preview.Dispose()
	}
	log := m.log
	m.preview = toggle.New(toggle.Options{
		DefaultOn: m.defaultOn,
		Size:      m.size,
		Anim:      m.editor.Value().Anim(),
		Frames:    m.frames,
		Logger:    log,
		OnChange: func(on bool) {
			log.Debugf("preview switched %s", onOff(on))
		},
	})
}

func (m *Model) rebuildUseCases() {
	anim := m.editor.Value().Anim()
	for _, uc := range m.useCases {
		if uc.toggle != nil {
			uc.toggle.Dispose()
		}
		uc.toggle = toggle.New(toggle.Options{
			DefaultOn: uc.on,
			Size:      geometry.Small,
			Anim:      anim,
			Frames:    m.frames,
			Logger:    m.log,
			OnChange:  func(on bool) { uc.on = on },
		})
	}
}

func (m *Model) apply(v editor.Value) {
	m.rebuildPreview()
	m.rebuildUseCases()
	if n := len(fields(v)); m.focus >= n {
		m.focus = n - 1
	}
	m.log.Info("animation " + v.String())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.picking {
		switch msg.(type) {
		case frameMsg, curvePickedMsg, pickerClosedMsg, tea.WindowSizeMsg:
		default:
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		return next, cmd

	case frameMsg:
		now := time.Time(msg)
		dt := m.interval
		if !m.last.IsZero() {
			dt = min(max(now.Sub(m.last), 0), 4*m.interval)
		}
		m.last = now
		m.frames.Step(dt)
		return m, frameCmd(m.interval)

	case curvePickedMsg:
		m.picking = false
		v := m.editor.SetCurve(msg.bezier)
		if !v.Enabled {
			v = m.editor.SetEnabled(true)
		}
		m.apply(v)
		return m, nil

	case pickerClosedMsg:
		m.picking = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		var cmd tea.Cmd
		if m.picking {
			m.picker, cmd = m.picker.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.dispose()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Activate):
		m.status = "preview " + onOff(m.preview.Activate())

	case key.Matches(msg, m.keys.UseCase):
		i := int(msg.String()[0] - '1')
		if i >= 0 && i < len(m.useCases) {
			uc := m.useCases[i]
			uc.toggle.Activate()
			m.status = fmt.Sprintf("%s %s", uc.label, onOff(uc.on))
		}

	case key.Matches(msg, m.keys.Next):
		m.focus = cycleFocus(m.focus, 1, len(fields(m.editor.Value())))

	case key.Matches(msg, m.keys.Prev):
		m.focus = cycleFocus(m.focus, -1, len(fields(m.editor.Value())))

	case key.Matches(msg, m.keys.Left):
		m.adjust(-1)

	case key.Matches(msg, m.keys.Right):
		m.adjust(1)

	case key.Matches(msg, m.keys.Preset):
		m.apply(m.editor.CyclePreset(1))

	case key.Matches(msg, m.keys.Pick):
		m.picking = true
		m.picker = newPicker(m.editor.ActivePreset(), m.width, m.height)
	}
	return m, nil
}

func (m *Model) adjust(dir int) {
	rows := fields(m.editor.Value())
	if m.focus >= len(rows) {
		return
	}
	f := rows[m.focus]
	switch f.kind {
	case fieldSize:
		if dir > 0 {
			m.size = m.size.Next()
		} else {
			m.size = m.size.Prev()
		}
		m.rebuildPreview()
	case fieldDefault:
		m.defaultOn = dir > 0
		m.rebuildPreview()
	case fieldAnim:
		m.apply(m.editor.Nudge(f.control, dir))
	}
}

func (m *Model) dispose() {
	m.preview.Dispose()
	for _, uc := range m.useCases {
		uc.toggle.Dispose()
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.picking {
		return m.picker.View()
	}

	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render("gooey") + "  " + titleStyle.Render("Gooey Switch") + "\n")

	preview := m.term.Render(render.NewScene(m.preview.Frame(), m.theme))
	b.WriteString(indent(previewStyle.Render(preview), "  ") + "\n")

	cases := make([]string, len(m.useCases))
	for i, uc := range m.useCases {
		block := m.small.Render(render.NewScene(uc.toggle.Frame(), m.theme))
		cases[i] = labelled(block, fmt.Sprintf("%d %s", i+1, uc.label))
	}
	b.WriteString(indent(lipgloss.JoinHorizontal(lipgloss.Center, joinGap(cases, "    ")...), "  ") + "\n\n")

	v := m.editor.Value()
	for i, f := range fields(v) {
		marker := "  "
		label := labelStyle.Render(fmt.Sprintf("%-14s", f.label()))
		if i == m.focus {
			marker = focusStyle.Render("› ")
			label = focusStyle.Render(fmt.Sprintf("%-14s", f.label()))
		}
		b.WriteString("  " + marker + label + m.fieldValue(f, v) + "\n")
	}

	b.WriteString("\n  " + codeStyle.Render(codeLine(m.size, m.defaultOn, v)) + "\n")
	if m.status != "" {
		b.WriteString("  " + statusStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n  " + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m Model) fieldValue(f field, v editor.Value) string {
	switch f.kind {
	case fieldSize:
		names := make([]string, len(geometry.Sizes))
		for i, s := range geometry.Sizes {
			names[i] = s.String()
		}
		return renderSegmented(names, indexOfSize(m.size))
	case fieldDefault:
		sel := 0
		if m.defaultOn {
			sel = 1
		}
		return renderSegmented([]string{"off", "on"}, sel)
	}

	switch f.control {
	case editor.ControlMode:
		sel := 0
		if v.Enabled {
			sel = 1
		}
		return renderSegmented([]string{"Spring", "Tween"}, sel)
	case editor.ControlDuration:
		return renderSlider(m.slider, v.Duration, editor.MinDuration, editor.MaxDuration) +
			"  " + valueStyle.Render(util.FormatSeconds(v.Duration))
	case editor.ControlPreset:
		name := "Custom"
		if p, ok := easing.PresetAt(v.ActivePreset()); ok {
			name = p.Name
		}
		return valueStyle.Render(name) + "  " + helpStyle.Render(util.FormatList(v.Bezier[:]...))
	}
	if i, ok := f.control.BezierIndex(); ok {
		lo, hi := editor.BezierBounds(i)
		return renderSlider(m.slider, v.Bezier[i], lo, hi) +
			"  " + valueStyle.Render(fmt.Sprintf("%.2f", v.Bezier[i]))
	}
	return ""
}

func indexOfSize(s geometry.Size) int {
	for i, c := range geometry.Sizes {
		if c == s {
			return i
		}
	}
	return 0
}

func joinGap(blocks []string, gap string) []string {
	out := make([]string, 0, len(blocks)*2)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, b)
	}
	return out
}

func indent(block, prefix string) string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
