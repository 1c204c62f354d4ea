package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

const (
	chatPlaceholder = "..."
	chatHistory     = 12
)

type chatLine struct {
	fromUser bool
	text     string
}

type chatModel struct {
	lines   []chatLine
	input   textinput.Model
	waiting bool
}

func newChatModel() chatModel {
	in := textinput.New()
	in.Placeholder = "ask the mentor anything"
	in.Width = 60
	in.Focus()
	return chatModel{input: in}
}

// send appends the user's message and the bot placeholder that the reply
// replaces later.
func (m *chatModel) send(text string) {
	m.lines = append(m.lines, chatLine{fromUser: true, text: text}, chatLine{text: chatPlaceholder})
	m.input.SetValue("")
	m.waiting = true
}

func (m *chatModel) receive(reply string) {
	m.waiting = false
	if n := len(m.lines); n > 0 && !m.lines[n-1].fromUser {
		m.lines[n-1].text = reply
		return
	}
	m.lines = append(m.lines, chatLine{text: reply})
}

func (m chatModel) View() string {
	var b strings.Builder

	lines := m.lines
	if len(lines) > chatHistory {
		lines = lines[len(lines)-chatHistory:]
	}
	for _, l := range lines {
		if l.fromUser {
			b.WriteString(userLineStyle.Render("You: "))
		} else {
			b.WriteString(botLineStyle.Render("StudyMate: "))
		}
		b.WriteString(l.text)
		b.WriteString("\n")
	}
	if len(lines) > 0 {
		b.WriteString("\n")
	}
	b.WriteString("> ")
	b.WriteString(m.input.View())

	return renderPage("CHAT", b.String(), "enter: send │ esc: back")
}
