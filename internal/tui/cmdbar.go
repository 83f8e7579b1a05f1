package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CmdBarModel manages the command input bar
type CmdBarModel struct {
	input   textinput.Model
	focused bool
	message string
	isError bool
	styles  *styles
}

// NewCmdBarModel creates a new command bar
func NewCmdBarModel(st *styles) *CmdBarModel {
	ti := textinput.New()
	ti.Placeholder = "add Build 5"
	ti.CharLimit = 256
	return &CmdBarModel{
		input:  ti,
		styles: st,
	}
}

// Focused reports whether the bar is taking keystrokes.
func (m *CmdBarModel) Focused() bool {
	return m.focused
}

// Focus focuses the command bar
func (m *CmdBarModel) Focus() tea.Cmd {
	m.focused = true
	m.message = ""
	return m.input.Focus()
}

// Blur unfocuses the command bar
func (m *CmdBarModel) Blur() {
	m.focused = false
	m.input.Blur()
	m.input.SetValue("")
}

// Submit returns the current input and blurs
func (m *CmdBarModel) Submit() string {
	val := m.input.Value()
	m.Blur()
	return val
}

// SetResult shows the outcome of the last command.
func (m *CmdBarModel) SetResult(msg string, isError bool) {
	m.message = msg
	m.isError = isError
}

// Update handles messages
func (m *CmdBarModel) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// View renders the command bar
func (m *CmdBarModel) View() string {
	if m.focused {
		return m.styles.cmdBar.Render(m.styles.prompt.Render(": ") + m.input.View())
	}
	if m.message != "" {
		style := m.styles.success
		if m.isError {
			style = m.styles.err
		}
		return m.styles.cmdBar.Render(style.Render(m.message))
	}
	return m.styles.cmdBar.Render("Press : to enter command (add, sub, edit, editsub, rm, rmsub, help)")
}

// styles bundles every style the TUI uses, so color can be switched off in
// one place.
type styles struct {
	title   lipgloss.Style
	panel   lipgloss.Style
	help    lipgloss.Style
	cmdBar  lipgloss.Style
	prompt  lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
	source  lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(color bool) *styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &styles{
			title:   plain.Bold(true),
			panel:   plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
			help:    plain,
			cmdBar:  plain,
			prompt:  plain,
			success: plain,
			err:     plain,
			source:  plain,
			muted:   plain,
		}
	}
	return &styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Padding(0, 1),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6B7280")).
			Padding(0, 1),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Italic(true),
		cmdBar: lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1),
		prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		source:  lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}
