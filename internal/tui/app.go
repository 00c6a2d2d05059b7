// Package tui renders the post manager screen: a posts table, a create
// form, an edit modal, and a delete confirmation, all driven by one
// Bubble Tea update loop. Network calls run as commands; the list is
// only mutated here, on message receipt, after a call has succeeded.
package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ButyrinIA/postboard/internal/api"
	"github.com/ButyrinIA/postboard/internal/manager"
	"github.com/ButyrinIA/postboard/internal/models"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalCreate
	modalEdit
	modalConfirmDelete
)

type opKind int

const (
	opFetch opKind = iota
	opCreate
	opUpdate
	opDelete
)

// Fixed error notification titles, one per operation kind.
func (op opKind) errorTitle() string {
	switch op {
	case opFetch:
		return "Error Fetching Data"
	case opCreate:
		return "Error Adding Post"
	case opUpdate:
		return "Error Updating Post"
	default:
		return "Error Deleting Post"
	}
}

type statusKind int

const (
	statusNone statusKind = iota
	statusSuccess
	statusError
)

type (
	postsLoadedMsg struct{ posts []models.Post }
	postCreatedMsg struct{ post models.Post }
	postUpdatedMsg struct{ post models.Post }
	postDeletedMsg struct{ id int }
	opFailedMsg    struct {
		op  opKind
		err error
	}
	statusExpireMsg struct{ seq int }
)

const successToastFor = 3 * time.Second

type Model struct {
	client api.Client
	posts  *manager.PostManager
	userID int

	width  int
	height int

	table   table.Model
	spin    spinner.Model
	loading bool

	modal      modalKind
	createForm postForm
	editForm   postForm
	editing    *models.Post
	deleteID   int

	status      statusKind
	statusTitle string
	statusText  string
	statusSeq   int
}

func New(client api.Client, userID int) Model {
	t := table.New(
		table.WithColumns(postColumns(80)),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	t.SetStyles(tableStyles())

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle))

	return Model{
		client:     client,
		posts:      manager.New(),
		userID:     userID,
		table:      t,
		spin:       sp,
		createForm: newPostForm(),
		editForm:   newPostForm(),
		loading:    true, // the initial fetch starts immediately
	}
}

// Init issues the one-time list request.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetchPosts())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTable()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case statusExpireMsg:
		if msg.seq == m.statusSeq && m.status == statusSuccess {
			m.status = statusNone
			m.statusTitle = ""
			m.statusText = ""
		}
		return m, nil

	case postsLoadedMsg:
		m.loading = false
		m.posts.Replace(msg.posts)
		m.refreshRows()
		return m, nil

	case postCreatedMsg:
		m.loading = false
		_ = m.posts.Append(msg.post)
		m.refreshRows()
		m.modal = modalNone
		m.createForm.reset()
		return m.showSuccess("Post added successfully")

	case postUpdatedMsg:
		_ = m.posts.Update(msg.post)
		m.refreshRows()
		m.modal = modalNone
		m.editing = nil
		m.editForm.reset()
		return m.showSuccess("Post updated successfully")

	case postDeletedMsg:
		m.loading = false
		_ = m.posts.Remove(msg.id)
		m.refreshRows()
		return m.showSuccess("Post deleted successfully")

	case opFailedMsg:
		// Update deliberately does not track loading; everything else does.
		if msg.op != opUpdate {
			m.loading = false
		}
		// The create form keeps its values and the edit modal stays open,
		// so the user can retry. The list is never touched on failure.
		return m.showError(msg.op.errorTitle(), msg.err.Error())

	case tea.KeyMsg:
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		return m.updateTable(msg)
	}

	return m, nil
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "n":
		// A previously failed create keeps its values for retry.
		m.modal = modalCreate
		m.createForm.focusFirst()
		return m, nil

	case "e", "enter":
		if p, ok := m.selectedPost(); ok {
			edit := p
			m.editing = &edit
			m.editForm.setValues(p.Title, p.Body)
			m.editForm.focusFirst()
			m.modal = modalEdit
		}
		return m, nil

	case "d":
		if p, ok := m.selectedPost(); ok {
			m.deleteID = p.ID
			m.modal = modalConfirmDelete
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal == modalConfirmDelete {
		switch msg.String() {
		case "esc", "n":
			m.modal = modalNone
			m.deleteID = 0
			return m, nil
		case "enter", "y":
			id := m.deleteID
			m.modal = modalNone
			m.deleteID = 0
			m.loading = true
			return m, tea.Batch(m.spin.Tick, m.deletePost(id))
		}
		return m, nil
	}

	form := m.activeForm()
	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil

	case "tab":
		form.cycle(1)
		return m, nil

	case "shift+tab":
		form.cycle(-1)
		return m, nil

	case "ctrl+s":
		return m.submitForm()

	case "enter":
		switch form.focus {
		case focusTitle:
			form.cycle(1)
			return m, nil
		case focusSubmit:
			return m.submitForm()
		case focusCancel:
			m.closeForm()
			return m, nil
		}
		// Enter inside the body textarea inserts a newline.
	}

	cmd := form.update(msg)
	return m, cmd
}

// activeForm is the form behind the open modal: the create form and the
// edit modal hold their values independently.
func (m *Model) activeForm() *postForm {
	if m.modal == modalEdit {
		return &m.editForm
	}
	return &m.createForm
}

func (m *Model) closeForm() {
	m.activeForm().blur()
	if m.modal == modalEdit {
		m.editing = nil
	}
	// Closing the create form does not clear it; a retry keeps the data.
	m.modal = modalNone
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	form := m.activeForm()
	title, body := form.values()
	if errText := form.validate(); errText != "" {
		form.errText = errText
		return m, nil
	}
	form.errText = ""

	if m.modal == modalEdit {
		if m.editing == nil {
			return m, nil
		}
		// Merge: id and userId come from the post under edit.
		merged := *m.editing
		merged.Title = title
		merged.Body = body
		// Loading is not toggled for updates.
		return m, m.updatePost(merged)
	}

	post := models.Post{
		UserID: m.userID,
		ID:     m.posts.NextID(),
		Title:  title,
		Body:   body,
	}
	m.loading = true
	return m, tea.Batch(m.spin.Tick, m.createPost(post))
}

func (m Model) showSuccess(text string) (tea.Model, tea.Cmd) {
	m.status = statusSuccess
	m.statusTitle = ""
	m.statusText = text
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(successToastFor, func(time.Time) tea.Msg { return statusExpireMsg{seq: seq} })
}

func (m Model) showError(title, text string) (tea.Model, tea.Cmd) {
	m.status = statusError
	m.statusTitle = title
	m.statusText = text
	m.statusSeq++
	return m, nil
}

func (m Model) selectedPost() (models.Post, bool) {
	posts := m.posts.Posts()
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(posts) {
		return models.Post{}, false
	}
	return posts[idx], true
}

func (m *Model) refreshRows() {
	posts := m.posts.Posts()
	rows := make([]table.Row, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, table.Row{strconv.Itoa(p.ID), p.Title, p.Body})
	}
	m.table.SetRows(rows)
	if cur := m.table.Cursor(); cur >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m Model) fetchPosts() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		posts, err := client.ListPosts(context.Background())
		if err != nil {
			return opFailedMsg{op: opFetch, err: err}
		}
		return postsLoadedMsg{posts: posts}
	}
}

func (m Model) createPost(post models.Post) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		// The echoed resource is ignored: the synthetic id stands.
		if _, err := client.CreatePost(context.Background(), post); err != nil {
			return opFailedMsg{op: opCreate, err: err}
		}
		return postCreatedMsg{post: post}
	}
}

func (m Model) updatePost(post models.Post) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if _, err := client.UpdatePost(context.Background(), post); err != nil {
			return opFailedMsg{op: opUpdate, err: err}
		}
		return postUpdatedMsg{post: post}
	}
}

func (m Model) deletePost(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.DeletePost(context.Background(), id); err != nil {
			return opFailedMsg{op: opDelete, err: err}
		}
		return postDeletedMsg{id: id}
	}
}
