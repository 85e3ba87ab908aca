package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/idna"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedModeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type convMode int

const (
	modeToASCII convMode = iota
	modeToUnicode
)

func (m convMode) String() string {
	if m == modeToUnicode {
		return "ToUnicode"
	}
	return "ToASCII"
}

type interactiveModel struct {
	input textinput.Model
	mode  convMode
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "mañana.com"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60
	return &interactiveModel{input: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			if m.mode == modeToASCII {
				m.mode = modeToUnicode
			} else {
				m.mode = modeToASCII
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	s := titleStyle.Render("idna converter") + "\n\n"

	for _, mode := range []convMode{modeToASCII, modeToUnicode} {
		style := modeStyle
		if mode == m.mode {
			style = selectedModeStyle
		}
		s += style.Render(" "+mode.String()+" ") + " "
	}
	s += "\n\n" + m.input.View() + "\n\n"

	if value := m.input.Value(); value != "" {
		out, err := convertLive(value, m.mode)
		if err != nil {
			s += errorStyle.Render(err.Error()) + "\n"
		} else {
			s += resultStyle.Render(out) + "\n"
		}
	}

	s += "\n" + helpStyle.Render("tab: switch mode • esc: quit") + "\n"
	return s
}

func convertLive(value string, mode convMode) (string, error) {
	if mode == modeToUnicode {
		return idna.ToUnicode(value)
	}
	return idna.ToASCII(value)
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive mode: %w", err)
	}
	return nil
}
