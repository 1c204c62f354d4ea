package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField struct {
	label  string
	secret bool
	limit  int
}

// formModel is a vertical list of labelled text inputs with tab focus.
type formModel struct {
	title      string
	submit     string
	labels     []string
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormModel(title, submit string, fields ...formField) formModel {
	m := formModel{title: title, submit: submit}
	for _, f := range fields {
		in := textinput.New()
		in.Placeholder = strings.ToLower(f.label)
		in.Width = 50
		in.CharLimit = f.limit
		if f.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		m.labels = append(m.labels, f.label)
		m.inputs = append(m.inputs, in)
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

func newLoginForm() formModel {
	return newFormModel("LOG IN", "Log in",
		formField{label: "Username", limit: 64},
		formField{label: "Password", secret: true, limit: 256},
	)
}

func newSignupForm() formModel {
	return newFormModel("SIGN UP", "Create account",
		formField{label: "Username", limit: 64},
		formField{label: "Password", secret: true, limit: 256},
	)
}

func newPlanForm() formModel {
	return newFormModel("NEW STUDY PLAN", "Generate",
		formField{label: "Career goal", limit: 200},
		formField{label: "Yearly goal", limit: 200},
	)
}

func (m formModel) value(i int) string {
	return m.inputs[i].Value()
}

func (m *formModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *formModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) View() string {
	width := 0
	for _, l := range m.labels {
		width = max(width, len(l))
	}

	var b strings.Builder
	for i, in := range m.inputs {
		b.WriteString(m.labels[i])
		b.WriteString(strings.Repeat(" ", width-len(m.labels[i])))
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	b.WriteString("\n[")
	b.WriteString(m.submit)
	if m.submitting {
		b.WriteString("...")
	}
	b.WriteString("]")

	return renderPage(m.title, b.String(), "esc: back │ tab: next field │ enter: submit")
}
