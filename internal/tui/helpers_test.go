package tui

import (
	"context"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todoview/internal/api"
	"github.com/idilsaglam/todoview/internal/model"
)

// fakeService implements api.Service in memory so commands resolve
// synchronously inside tests.
type fakeService struct {
	mu         sync.Mutex
	todos      []model.Todo
	todosErr   error
	itemErr    error
	todosCalls int
	todoCalls  int
}

func (f *fakeService) Todos(ctx context.Context) ([]model.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.todosCalls++
	if f.todosErr != nil {
		return nil, f.todosErr
	}
	return f.todos, nil
}

func (f *fakeService) Todo(ctx context.Context, id int) (model.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.todoCalls++
	if f.itemErr != nil {
		return model.Todo{}, f.itemErr
	}
	for _, t := range f.todos {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Todo{}, api.ErrNotFound
}

func (f *fakeService) collectionCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.todosCalls
}

func sampleTodos() []model.Todo {
	return []model.Todo{
		{ID: 1, Title: "Buy milk", Completed: false},
		{ID: 2, Title: "Ship release", Completed: true},
		{ID: 3, Title: "Water plants", Completed: false},
	}
}

func testLogger() *log.Logger { return log.New(io.Discard) }

// runCmd executes a command tree and returns every message it produces,
// flattening batches. Commands from fakes resolve without blocking.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, runCmd(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

// deliverListLoads feeds the fetch outcomes produced by cmd back into the
// list model, skipping spinner ticks.
func deliverListLoads(m ListModel, cmd tea.Cmd) ListModel {
	for _, msg := range runCmd(cmd) {
		if lm, ok := msg.(todosLoadedMsg); ok {
			m, _ = m.Update(lm)
		}
	}
	return m
}

// deliverDetailLoads does the same for the detail model.
func deliverDetailLoads(m DetailModel, cmd tea.Cmd) DetailModel {
	for _, msg := range runCmd(cmd) {
		if dm, ok := msg.(todoLoadedMsg); ok {
			m, _ = m.Update(dm)
		}
	}
	return m
}

func newTestList(svc api.Service) ListModel {
	m := NewListModel(svc, testLogger())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return m
}

// loadedList returns a list model whose collection fetch has resolved.
func loadedList(svc *fakeService) ListModel {
	m := newTestList(svc)
	m, cmd := m.Update(reloadTodosMsg{})
	return deliverListLoads(m, cmd)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
