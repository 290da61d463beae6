package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todoview/internal/api"
)

const requestTimeout = 15 * time.Second

// viewState defines which of the two views is on screen.
type viewState int

const (
	viewList viewState = iota
	viewDetail
)

// Model is the root bubbletea model. It hosts the list and detail views and
// wires selection between them: the list emits a SelectTodoMsg with an id,
// the root hands that id to the detail view. The views themselves never talk
// to each other and each owns its own fetch state.
type Model struct {
	state   viewState
	list    ListModel
	detail  DetailModel
	startID int // open the detail view directly when > 0
}

func New(svc api.Service, logger *log.Logger) Model {
	return Model{
		list:   NewListModel(svc, logger),
		detail: NewDetailModel(svc, logger),
	}
}

// WithInitialTodo makes the program open on the detail view for id.
func (m Model) WithInitialTodo(id int) Model {
	m.startID = id
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.list.Init(), m.detail.Init()}
	if m.startID > 0 {
		id := m.startID
		cmds = append(cmds, func() tea.Msg { return SelectTodoMsg{ID: id} })
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.state == viewDetail {
				m.state = viewList
				return m, nil
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		var lcmd, dcmd tea.Cmd
		m.list, lcmd = m.list.Update(msg)
		m.detail, dcmd = m.detail.Update(msg)
		return m, tea.Batch(lcmd, dcmd)

	case SelectTodoMsg:
		m.state = viewDetail
		var cmd tea.Cmd
		m.detail, cmd = m.detail.SetID(msg.ID)
		return m, cmd

	// Fetch outcomes always go to the view that started the fetch, even if
	// the user has meanwhile navigated away from it.
	case reloadTodosMsg, todosLoadedMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	case todoLoadedMsg:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.state {
	case viewDetail:
		m.detail, cmd = m.detail.Update(msg)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var content string
	switch m.state {
	case viewDetail:
		content = m.detail.View()
	default:
		content = m.list.View()
	}
	return panelStyle.Render(content)
}
