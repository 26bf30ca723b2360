// Package ui provides the interactive Bubble Tea surfaces of the
// decint CLI.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// historyLimit bounds how many past evaluations stay on screen.
const historyLimit = 50

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// Entry is one evaluated expression in the REPL history.
type Entry struct {
	Input  string
	Output string
	IsErr  bool
}

// EvalFunc evaluates one expression and renders its result.
type EvalFunc func(src string) (string, error)

type replModel struct {
	input   textinput.Model
	eval    EvalFunc
	history []Entry
	width   int
	done    bool
}

// NewReplModel returns a Bubble Tea model for the interactive
// calculator loop.
func NewReplModel(eval EvalFunc) tea.Model {
	in := textinput.New()
	in.Prompt = "> "
	in.PromptStyle = promptStyle
	in.Placeholder = "expression, e.g. 2^64 - 1"
	in.Focus()
	return &replModel{input: in, eval: eval, width: 80}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			src := strings.TrimSpace(m.input.Value())
			if src == "" {
				return m, nil
			}
			if src == "exit" || src == "quit" {
				m.done = true
				return m, tea.Quit
			}
			m.push(src)
			m.input.Reset()
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.input.Width = msg.Width - 4
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) push(src string) {
	out, err := m.eval(src)
	entry := Entry{Input: src, Output: out}
	if err != nil {
		entry.Output = err.Error()
		entry.IsErr = true
	}
	m.history = append(m.history, entry)
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
}

func (m *replModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("decint"))
	b.WriteString(hintStyle.Render("  arbitrary-precision calculator (esc to quit)"))
	b.WriteString("\n\n")

	for _, e := range m.history {
		b.WriteString(promptStyle.Render("> "))
		b.WriteString(truncate(e.Input, m.width-2))
		b.WriteString("\n")
		style := resultStyle
		if e.IsErr {
			style = errorStyle
		}
		b.WriteString(style.Render(truncate(e.Output, m.width)))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

// truncate clips a line to the terminal width, accounting for wide
// runes.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
