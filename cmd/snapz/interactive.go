package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/csnappy"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateInput modelState = iota
	stateResult
)

type report struct {
	source       string
	uncompressed int
	compressed   int
	validates    bool
	roundTrip    bool
	err          error
}

type interactiveModel struct {
	input  textinput.Model
	report *report
	state  modelState
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "file path or literal text"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	return &interactiveModel{input: ti, state: stateInput}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

type reportMsg struct {
	report *report
}

func inspect(value string) tea.Cmd {
	return func() tea.Msg {
		r := &report{source: value}

		data := []byte(value)
		if fileData, err := os.ReadFile(value); err == nil {
			data = fileData
			r.source = fmt.Sprintf("file %s", value)
		} else {
			r.source = fmt.Sprintf("text (%d bytes)", len(data))
		}

		compressed := csnappy.Compress(data)
		r.uncompressed = len(data)
		r.compressed = compressed.Len()
		r.validates = csnappy.Validate(compressed.Bytes())

		back, err := csnappy.Uncompress(compressed.Bytes())
		if err != nil {
			r.err = err
			return reportMsg{report: r}
		}
		r.roundTrip = string(back.Bytes()) == string(data)
		return reportMsg{report: r}
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateInput && msg.String() == "q" {
				break // let "q" be typed as input
			}
			return m, tea.Quit

		case "enter":
			if m.state == stateInput && m.input.Value() != "" {
				return m, inspect(m.input.Value())
			}
			if m.state == stateResult {
				m.state = stateInput
				m.report = nil
				m.input.SetValue("")
				m.input.Focus()
			}

		case "esc":
			if m.state == stateResult {
				m.state = stateInput
				m.report = nil
				m.input.Focus()
			}
		}

	case reportMsg:
		m.report = msg.report
		m.state = stateResult
	}

	if m.state == stateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("snapz"))
	b.WriteString(" snappy compression inspector\n\n")

	switch m.state {
	case stateInput:
		b.WriteString("Enter a file path or text to inspect:\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter inspect • ctrl+c quit"))

	case stateResult:
		r := m.report
		b.WriteString(labelStyle.Render("Source:       "))
		b.WriteString(r.source)
		b.WriteString("\n")

		if r.err != nil {
			var msg string
			if errors.Is(r.err, csnappy.ErrCorrupt) {
				msg = "compressed output failed to decompress"
			} else {
				msg = r.err.Error()
			}
			b.WriteString(errorStyle.Render("Error: " + msg))
		} else {
			ratio := 0.0
			if r.uncompressed > 0 {
				ratio = float64(r.compressed) / float64(r.uncompressed) * 100
			}
			fmt.Fprintf(&b, "%s %d bytes\n", labelStyle.Render("Uncompressed:"), r.uncompressed)
			fmt.Fprintf(&b, "%s %d bytes\n", labelStyle.Render("Compressed:  "), r.compressed)
			fmt.Fprintf(&b, "%s %.2f%%\n", labelStyle.Render("Ratio:       "), ratio)
			b.WriteString(labelStyle.Render("Validates:   "))
			b.WriteString(renderBool(r.validates))
			b.WriteString("\n")
			b.WriteString(labelStyle.Render("Round trip:  "))
			b.WriteString(renderBool(r.roundTrip))
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter new input • esc back • q quit"))
	}

	return b.String()
}

func renderBool(v bool) string {
	if v {
		return okStyle.Render("yes")
	}
	return errorStyle.Render("no")
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
