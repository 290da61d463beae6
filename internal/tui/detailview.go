package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todoview/internal/api"
	"github.com/idilsaglam/todoview/internal/fetch"
	"github.com/idilsaglam/todoview/internal/model"
)

// DetailModel owns one single-item fetch, keyed by an externally supplied
// id. Its state is independent of the list's; the two views never share a
// state container.
type DetailModel struct {
	svc   api.Service
	log   *log.Logger
	id    int
	state fetch.State[model.Todo]
	spin  spinner.Model
}

func NewDetailModel(svc api.Service, logger *log.Logger) DetailModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle
	return DetailModel{svc: svc, log: logger, spin: sp}
}

func (m DetailModel) Init() tea.Cmd {
	return m.spin.Tick
}

// SetID points the view at a new todo and starts fetching it, replacing
// whatever was displayed before. A response still in flight for a previous
// id carries an older sequence number and is dropped on arrival.
func (m DetailModel) SetID(id int) (DetailModel, tea.Cmd) {
	m.id = id
	seq := m.state.Start()
	svc := m.svc
	m.log.Debug("fetching todo", "id", id, "seq", seq)
	load := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		todo, err := svc.Todo(ctx, id)
		return todoLoadedMsg{seq: seq, todo: todo, err: err}
	}
	return m, tea.Batch(load, m.spin.Tick)
}

// ID returns the id the view is currently keyed by.
func (m DetailModel) ID() int { return m.id }

func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case todoLoadedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrNotFound) {
				// The fetch itself worked; the item just isn't there.
				// A zero-ID todo in the success phase renders as the
				// explicit not-found message.
				m.state.Succeed(msg.seq, model.Todo{})
				return m, nil
			}
			if m.state.Fail(msg.seq, msg.err.Error()) {
				m.log.Error("todo fetch failed", "id", m.id, "seq", msg.seq, "err", msg.err)
			}
			return m, nil
		}
		m.state.Succeed(msg.seq, msg.todo)
		return m, nil
	}
	return m, nil
}

func (m DetailModel) View() string {
	switch m.state.Phase() {
	case fetch.Idle, fetch.Loading:
		return fmt.Sprintf("%s Loading todo #%d…", m.spin.View(), m.id)
	case fetch.Error:
		return errorStyle.Render("✖ " + m.state.Err())
	}

	t := m.state.Data()
	if t.ID == 0 {
		return mutedStyle.Render(fmt.Sprintf("Todo #%d not found.", m.id))
	}

	box := mutedStyle.Render(boxUnchecked)
	status := pendingStyle.Render("• Not completed")
	if t.Completed {
		box = successStyle.Render(boxChecked)
		status = successStyle.Render("✔ Completed")
	}

	return fmt.Sprintf("%s\n\n%s %s\n\n%s\n\n%s",
		titleStyle.Render(fmt.Sprintf("Todo #%d", t.ID)),
		box, t.Title,
		status,
		helpStyle.Render("esc back • q quit"),
	)
}
