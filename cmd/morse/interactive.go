package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/morse/config"
	"github.com/wippyai/morse/transcoder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	tr       *transcoder.Transcoder
	result   string
	strategy string
	input    textinput.Model
	mode     mode
	strict   bool
}

func newInteractiveModel(tr *transcoder.Transcoder, cfg *config.Config) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	m := &interactiveModel{
		tr:       tr,
		input:    ti,
		strategy: cfg.Strategy.String(),
		strict:   cfg.Strict,
	}
	m.setMode(modeEncode)
	return m
}

func (m *interactiveModel) setMode(md mode) {
	m.mode = md
	if md == modeEncode {
		m.input.Placeholder = "plaintext"
	} else {
		m.input.Placeholder = "... --- ..."
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			// Feed the current output back in so the user can check the round trip.
			next := modeDecode
			if m.mode == modeDecode {
				next = modeEncode
			}
			if m.err == nil && m.result != "" {
				m.input.SetValue(m.result)
				m.input.CursorEnd()
			}
			m.setMode(next)
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// refresh re-transcodes the whole input line.
func (m *interactiveModel) refresh() {
	m.result, m.err = transcode(m.tr, m.mode, m.strict, m.input.Value())
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Morse"))
	b.WriteString(" ")
	b.WriteString(modeStyle.Render(fmt.Sprintf("%s (strategy %s)", m.mode, m.strategy)))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	} else {
		b.WriteString(resultStyle.Render(m.result))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab switch direction • esc quit"))

	return b.String()
}

func runInteractive(tr *transcoder.Transcoder, cfg *config.Config) error {
	p := tea.NewProgram(newInteractiveModel(tr, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
