package tui

import "github.com/idilsaglam/todoview/internal/model"

// Async tea.Cmd functions produce these; Update handles them. Fetch results
// carry the sequence number of the request that produced them so a response
// from a superseded request is dropped instead of overwriting newer state.

// reloadTodosMsg asks the list to (re)fetch the whole collection.
type reloadTodosMsg struct{}

// todosLoadedMsg delivers the outcome of one collection fetch.
type todosLoadedMsg struct {
	seq   uint64
	todos []model.Todo
	err   error
}

// todoLoadedMsg delivers the outcome of one single-item fetch.
type todoLoadedMsg struct {
	seq  uint64
	todo model.Todo
	err  error
}

// SelectTodoMsg is emitted when a list item is activated. The list only
// reports the id; resolving it into a todo is the consumer's job.
type SelectTodoMsg struct {
	ID int
}
