package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todoview/internal/api"
	"github.com/idilsaglam/todoview/internal/fetch"
	"github.com/idilsaglam/todoview/internal/model"
)

// todoItem adapts a model.Todo to bubbles/list.Item.
type todoItem struct {
	todo model.Todo
}

func (i todoItem) TitleText() string {
	box := boxUnchecked
	if i.todo.Completed {
		box = boxChecked
	}
	return fmt.Sprintf("%s %s", box, i.todo.Title)
}

// Implement list.Item interface. FilterValue doubles as the stable per-item
// identifier used by test automation.
func (i todoItem) Title() string       { return i.TitleText() }
func (i todoItem) Description() string { return "" }
func (i todoItem) FilterValue() string { return i.todo.TestID() }

// Custom delegate to control how items render (single line)
type todoDelegate struct{}

func (d todoDelegate) Height() int                               { return 1 }
func (d todoDelegate) Spacing() int                              { return 0 }
func (d todoDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d todoDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(todoItem)

	id := mutedStyle.Render(fmt.Sprintf("#%-3d", it.todo.ID))
	boxStyled := mutedStyle.Render(boxUnchecked)
	textStyled := it.todo.Title
	if it.todo.Completed {
		boxStyled = successStyle.Render(boxChecked)
		textStyled = doneStyle.Render(it.todo.Title)
	}

	line := fmt.Sprintf("%s %s %s", id, boxStyled, textStyled)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// ListModel owns the collection fetch, the active three-way filter, and
// selection. It never resolves a selected todo itself; it emits a
// SelectTodoMsg and leaves the rest to whoever hosts it.
type ListModel struct {
	svc    api.Service
	log    *log.Logger
	state  fetch.State[[]model.Todo]
	filter model.Filter
	list   list.Model
	spin   spinner.Model
}

func NewListModel(svc api.Service, logger *log.Logger) ListModel {
	l := list.New([]list.Item{}, todoDelegate{}, 0, 0)
	l.Title = titleStyle.Render("Todos")
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	// The three-way filter below replaces bubbles' fuzzy filtering.
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("todo", "todos")

	// Extend help with filter / refresh / open bindings
	filterBind := key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1/2/3", "filter"))
	refreshBind := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh"))
	openBind := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{filterBind, refreshBind, openBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{filterBind, refreshBind, openBind} }

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	return ListModel{
		svc:    svc,
		log:    logger,
		filter: model.FilterAll,
		list:   l,
		spin:   sp,
	}
}

func (m ListModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, func() tea.Msg { return reloadTodosMsg{} })
}

// startLoad begins a fresh collection fetch. The returned command resolves
// into a todosLoadedMsg tagged with this fetch's sequence number.
func (m ListModel) startLoad() (ListModel, tea.Cmd) {
	seq := m.state.Start()
	svc := m.svc
	m.log.Debug("fetching todos", "seq", seq)
	load := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		todos, err := svc.Todos(ctx)
		return todosLoadedMsg{seq: seq, todos: todos, err: err}
	}
	// Re-kick the spinner: its tick chain stops whenever the view was
	// off screen or idle.
	return m, tea.Batch(load, m.spin.Tick)
}

// setFilter switches the active filter and recomputes the visible items from
// the last fully fetched collection. No network involved: switching filters
// is always a pure local recomputation, and it always starts from the full
// collection so filters never compound.
func (m ListModel) setFilter(f model.Filter) ListModel {
	if f != m.filter {
		m.log.Debug("filter active", "control", f.ControlID())
	}
	m.filter = f
	visible := model.Apply(f, m.state.Data())
	items := make([]list.Item, 0, len(visible))
	for _, t := range visible {
		items = append(items, todoItem{todo: t})
	}
	m.list.SetItems(items)

	done, open := stats(m.state.Data())
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), open,
	)
	return m
}

func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width-4, msg.Height-8
		if w < 20 {
			w = 20
		}
		if h < 5 {
			h = 5
		}
		m.list.SetSize(w, h)
		return m, nil

	case reloadTodosMsg:
		return m.startLoad()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case todosLoadedMsg:
		if msg.err != nil {
			if m.state.Fail(msg.seq, msg.err.Error()) {
				m.log.Error("todos fetch failed", "seq", msg.seq, "err", msg.err)
			}
			return m, nil
		}
		if m.state.Succeed(msg.seq, msg.todos) {
			m.log.Debug("todos fetched", "seq", msg.seq, "count", len(msg.todos))
			m = m.setFilter(m.filter)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "1", "a":
			return m.setFilter(model.FilterAll), nil
		case "2", "o":
			return m.setFilter(model.FilterOpen), nil
		case "3", "c":
			return m.setFilter(model.FilterCompleted), nil
		case "r":
			return m.startLoad()
		case "enter":
			if m.state.Phase() != fetch.Success {
				return m, nil
			}
			if it, ok := m.list.SelectedItem().(todoItem); ok {
				id := it.todo.ID
				return m, func() tea.Msg { return SelectTodoMsg{ID: id} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m ListModel) View() string {
	switch m.state.Phase() {
	case fetch.Idle, fetch.Loading:
		return fmt.Sprintf("%s Loading todos…", m.spin.View())
	case fetch.Error:
		return errorStyle.Render("✖ " + m.state.Err())
	}
	return m.filterBar() + "\n\n" + m.list.View()
}

// filterBar renders the three filter controls with the active one
// highlighted.
func (m ListModel) filterBar() string {
	parts := make([]string, 0, 3)
	for _, f := range model.Filters() {
		style := filterStyle
		if f == m.filter {
			style = activeFilterStyle
		}
		parts = append(parts, style.Render(f.String()))
	}
	return strings.Join(parts, " ")
}

// Filter returns the active filter.
func (m ListModel) Filter() model.Filter { return m.filter }

// small list stats used for the header
func stats(todos []model.Todo) (done, open int) {
	for _, t := range todos {
		if t.Completed {
			done++
		} else {
			open++
		}
	}
	return
}
