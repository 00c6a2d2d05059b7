package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formFocus int

const (
	focusTitle formFocus = iota
	focusBody
	focusSubmit
	focusCancel
)

// postForm is the two-field post form shared by the create and edit
// modals. Title and Body are both required on submit.
type postForm struct {
	title   textinput.Model
	body    textarea.Model
	focus   formFocus
	errText string
}

func newPostForm() postForm {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.Width = 48

	body := textarea.New()
	body.Placeholder = "Body"
	body.CharLimit = 0
	body.SetWidth(48)
	body.SetHeight(6)
	body.ShowLineNumbers = false

	return postForm{title: title, body: body}
}

func (f *postForm) setValues(title, body string) {
	f.title.SetValue(title)
	f.body.SetValue(body)
	f.errText = ""
}

func (f *postForm) reset() {
	f.title.SetValue("")
	f.body.SetValue("")
	f.errText = ""
	f.blur()
}

func (f *postForm) focusFirst() {
	f.focus = focusTitle
	f.applyFocus()
}

func (f *postForm) blur() {
	f.title.Blur()
	f.body.Blur()
}

func (f *postForm) cycle(delta int) {
	const n = 4
	f.focus = formFocus((int(f.focus) + delta + n) % n)
	f.applyFocus()
}

func (f *postForm) applyFocus() {
	f.title.Blur()
	f.body.Blur()
	switch f.focus {
	case focusTitle:
		f.title.Focus()
	case focusBody:
		f.body.Focus()
	}
}

func (f postForm) values() (title, body string) {
	return strings.TrimSpace(f.title.Value()), strings.TrimSpace(f.body.Value())
}

// validate reports the first missing required field, or "".
func (f postForm) validate() string {
	title, body := f.values()
	if title == "" {
		return "Title is required"
	}
	if body == "" {
		return "Body is required"
	}
	return ""
}

func (f *postForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
	case focusBody:
		f.body, cmd = f.body.Update(msg)
	}
	return cmd
}

func (f postForm) view(submitLabel string, busy bool, spin string) string {
	save := buttonStyle.Render(submitLabel)
	cancel := buttonStyle.Render("Cancel")
	if f.focus == focusSubmit {
		if busy {
			save = buttonActiveStyle.Render(spin + submitLabel)
		} else {
			save = buttonActiveStyle.Render(submitLabel)
		}
	} else if busy {
		save = buttonStyle.Render(spin + submitLabel)
	}
	if f.focus == focusCancel {
		cancel = buttonActiveStyle.Render("Cancel")
	}

	controls := lipgloss.JoinHorizontal(lipgloss.Top, save, " ", cancel)

	parts := []string{
		fieldLabelStyle.Render("Title"),
		f.title.View(),
		"",
		fieldLabelStyle.Render("Body"),
		f.body.View(),
		"",
		controls,
	}
	if f.errText != "" {
		parts = append(parts, "", errorTextStyle.Render(f.errText))
	}
	parts = append(parts, "", helpStyle.Render("tab: focus  ctrl+s: submit  esc: cancel"))
	return strings.Join(parts, "\n")
}
