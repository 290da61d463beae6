// Package model holds the domain types shared by the API client and the UI.
package model

import "strconv"

// Todo is a single entry from the remote collection.
// Read-only on this side; nothing is ever written back to the service.
type Todo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TestID is the stable per-item hook consumed by UI automation.
func (t Todo) TestID() string { return "todo: " + strconv.Itoa(t.ID) }

// Filter names a predicate over a fetched collection.
type Filter int

const (
	FilterAll Filter = iota
	FilterOpen
	FilterCompleted
)

func (f Filter) String() string {
	switch f {
	case FilterOpen:
		return "Open"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// ControlID is the stable hook for the filter control in the UI.
func (f Filter) ControlID() string {
	switch f {
	case FilterOpen:
		return "filter-open"
	case FilterCompleted:
		return "filter-completed"
	default:
		return "filter-all"
	}
}

// Match reports whether the todo passes the filter.
func (f Filter) Match(t Todo) bool {
	switch f {
	case FilterOpen:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Apply derives the visible subsequence for f. It always works from the full
// collection and preserves its order; the input is never mutated.
func Apply(f Filter, todos []Todo) []Todo {
	if f == FilterAll {
		return todos
	}
	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Filters lists the selectable filters in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterOpen, FilterCompleted}
}
