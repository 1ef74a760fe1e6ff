package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/gooey/internal/easing"
	"github.com/olivier-w/gooey/internal/util"
)

type presetItem struct {
	preset easing.Preset
}

func (i presetItem) Title() string { return i.preset.Name }
func (i presetItem) Description() string {
	return "cubic-bezier(" + util.FormatList(i.preset.Bezier[:]...) + ")"
}
func (i presetItem) FilterValue() string { return i.preset.Name }

type customItem struct{}

func (i customItem) Title() string       { return "Custom curve..." }
func (i customItem) Description() string { return "enter x1, y1, x2, y2" }
func (i customItem) FilterValue() string { return "custom" }

// curvePickedMsg carries the curve chosen in the picker.
type curvePickedMsg struct {
	bezier easing.Bezier
}

// pickerClosedMsg is sent when the picker is dismissed without a choice.
type pickerClosedMsg struct{}

// pickerModel lists the easing presets and accepts a typed curve.
type pickerModel struct {
	list       list.Model
	input      textinput.Model
	customMode bool
	err        string
}

// newPicker builds the picker with the active preset selected.
func newPicker(active int, width, height int) pickerModel {
	items := make([]list.Item, 0, easing.PresetCount()+1)
	for _, p := range easing.Presets() {
		items = append(items, presetItem{preset: p})
	}
	items = append(items, customItem{})

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#22C55E"})
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#22C55E"})

	if width <= 0 {
		width = 60
	}
	if height <= 0 {
		height = 20
	}
	l := list.New(items, delegate, width, height)
	l.Title = "Easing"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = headerStyle
	if active != easing.NoMatch {
		l.Select(active)
	}

	ti := textinput.New()
	ti.Placeholder = "0.25, 0.1, 0.25, 1"
	ti.CharLimit = 64
	ti.Width = 40

	return pickerModel{list: l, input: ti}
}

func (m pickerModel) Update(msg tea.Msg) (pickerModel, tea.Cmd) {
	if m.customMode {
		return m.updateCustomInput(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			switch item := m.list.SelectedItem().(type) {
			case customItem:
				m.customMode = true
				m.input.Focus()
				return m, textinput.Blink
			case presetItem:
				b := item.preset.Bezier
				return m, func() tea.Msg { return curvePickedMsg{bezier: b} }
			}
		case "q", "esc":
			return m, func() tea.Msg { return pickerClosedMsg{} }
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) updateCustomInput(msg tea.Msg) (pickerModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			b, err := easing.ParseBezier(strings.TrimSpace(m.input.Value()))
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			return m, func() tea.Msg { return curvePickedMsg{bezier: b} }
		case "esc":
			m.customMode = false
			m.err = ""
			m.input.Reset()
			m.input.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.customMode {
		s := "\n"
		s += "  " + headerStyle.Render("gooey") + "\n"
		s += "\n"
		s += "  " + statusStyle.Render("Bezier x1, y1, x2, y2:") + "\n"
		s += "  " + m.input.View() + "\n"
		if m.err != "" {
			s += "  " + helpStyle.Render(m.err) + "\n"
		}
		s += "\n"
		s += "  " + helpStyle.Render("enter apply  esc back") + "\n"
		return s
	}
	return m.list.View()
}
