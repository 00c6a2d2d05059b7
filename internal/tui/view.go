package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))

	fieldLabelStyle = lipgloss.NewStyle().Bold(true)
	errorTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("235"))
	buttonActiveStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(lipgloss.Color("235")).
				Background(lipgloss.Color("62")).
				Bold(true)

	statusSuccessStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(lipgloss.Color("235")).
				Background(lipgloss.Color("42"))
	statusErrorStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("124"))
	statusEmptyStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("255"))
)

func postColumns(width int) []table.Column {
	idW := 6
	rest := width - idW - 6
	if rest < 20 {
		rest = 20
	}
	titleW := rest * 2 / 5
	bodyW := rest - titleW
	return []table.Column{
		{Title: "ID", Width: idW},
		{Title: "Title", Width: titleW},
		{Title: "Body", Width: bodyW},
	}
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}

func (m *Model) resizeTable() {
	w := m.width
	if w < 40 {
		w = 40
	}
	h := m.height - 8
	if h < 5 {
		h = 5
	}
	m.table.SetColumns(postColumns(w))
	m.table.SetWidth(w)
	m.table.SetHeight(h)
}

func (m Model) View() string {
	header := titleStyle.Render("Posts")
	if m.loading {
		header += "  " + m.spin.View() + helpStyle.Render("loading")
	}

	body := m.table.View()
	if m.posts.Len() == 0 && !m.loading {
		body = helpStyle.Render("No posts.")
	}

	main := strings.Join([]string{
		header,
		"",
		body,
		"",
		m.statusBar(),
		helpStyle.Render(m.footerText()),
	}, "\n")

	if m.modal == modalNone {
		return main
	}

	h := m.height
	if h <= 0 {
		h = strings.Count(main, "\n") + 1
	}
	w := m.width
	if w <= 0 {
		w = 80
	}
	return overlayCenter(dimBackground(main), m.renderModal(), w, h)
}

func (m Model) footerText() string {
	switch m.modal {
	case modalConfirmDelete:
		return "delete: y/enter: confirm  n/esc: cancel"
	case modalCreate, modalEdit:
		return "tab: focus  ctrl+s: submit  esc: cancel"
	}
	return "n: new  e/enter: edit  d: delete  arrows/jk: navigate  q: quit"
}

func (m Model) statusBar() string {
	w := m.width
	if w <= 0 {
		w = 80
	}
	switch m.status {
	case statusSuccess:
		return statusSuccessStyle.Width(w).Render(m.statusText)
	case statusError:
		return statusErrorStyle.Width(w).Render(m.statusTitle + ": " + m.statusText)
	default:
		return statusEmptyStyle.Width(w).Render(" ")
	}
}

func (m Model) renderModal() string {
	spin := ""
	if m.loading {
		spin = m.spin.View() + " "
	}
	switch m.modal {
	case modalCreate:
		return renderModalBox(m.width, "New Post", m.createForm.view("Add Post", m.loading, spin))
	case modalEdit:
		return renderModalBox(m.width, "Edit Post", m.editForm.view("Save", false, ""))
	case modalConfirmDelete:
		body := fmt.Sprintf("Delete post %d?", m.deleteID)
		if p, ok := m.posts.Get(m.deleteID); ok && strings.TrimSpace(p.Title) != "" {
			body = fmt.Sprintf("Delete %q?", p.Title)
		}
		body += "\n\n" + helpStyle.Render("enter/y: delete   esc/n: cancel")
		return renderModalBox(m.width, "Confirm", body)
	default:
		return ""
	}
}
