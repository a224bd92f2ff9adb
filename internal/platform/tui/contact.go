package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termfolio/internal/content"
)

// Contact form fields, in focus order.
const (
	fieldName = iota
	fieldEmail
	fieldMessage
	fieldCount
)

// ContactForm is the name/email/message form of the contact section.
type ContactForm struct {
	inputs []textinput.Model
	focus  int
}

// NewContactForm creates an empty, unfocused form.
func NewContactForm() ContactForm {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 200
		inputs[i] = in
	}
	inputs[fieldName].Placeholder = "Your name"
	inputs[fieldEmail].Placeholder = "you@example.com"
	inputs[fieldMessage].Placeholder = "Your message"
	inputs[fieldMessage].CharLimit = 2000

	return ContactForm{inputs: inputs}
}

// Focus puts the cursor in the first field.
func (f *ContactForm) Focus() tea.Cmd {
	f.focus = fieldName
	return f.focusCurrent()
}

// Blur removes the cursor from every field.
func (f *ContactForm) Blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// Focused reports whether any field has the cursor.
func (f ContactForm) Focused() bool {
	for _, in := range f.inputs {
		if in.Focused() {
			return true
		}
	}
	return false
}

// Next moves focus to the following field, wrapping around.
func (f *ContactForm) Next() tea.Cmd {
	f.focus = (f.focus + 1) % fieldCount
	return f.focusCurrent()
}

// Prev moves focus to the previous field, wrapping around.
func (f *ContactForm) Prev() tea.Cmd {
	f.focus = (f.focus + fieldCount - 1) % fieldCount
	return f.focusCurrent()
}

// OnLastField reports whether the message field has focus.
func (f ContactForm) OnLastField() bool {
	return f.focus == fieldMessage
}

func (f *ContactForm) focusCurrent() tea.Cmd {
	f.Blur()
	return f.inputs[f.focus].Focus()
}

// Update forwards a message to the focused field.
func (f ContactForm) Update(msg tea.Msg) (ContactForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// Message returns the form's content as a validated message.
func (f ContactForm) Message() (content.Message, error) {
	msg := content.Message{
		Name:  strings.TrimSpace(f.inputs[fieldName].Value()),
		Email: strings.TrimSpace(f.inputs[fieldEmail].Value()),
		Body:  strings.TrimSpace(f.inputs[fieldMessage].Value()),
	}
	if err := msg.Validate(); err != nil {
		return content.Message{}, err
	}
	return msg, nil
}

// Reset clears every field.
func (f *ContactForm) Reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.focus = fieldName
}

// SetValues fills the form. Used by tests and prefilled sessions.
func (f *ContactForm) SetValues(name, email, body string) {
	f.inputs[fieldName].SetValue(name)
	f.inputs[fieldEmail].SetValue(email)
	f.inputs[fieldMessage].SetValue(body)
}

// View renders the labelled fields.
func (f ContactForm) View() string {
	labels := [fieldCount]string{"Name", "Email", "Message"}
	var b strings.Builder
	for i, in := range f.inputs {
		marker := "  "
		if in.Focused() {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(labelStyle.Render(labels[i] + ":"))
		b.WriteString(" ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	return b.String()
}
