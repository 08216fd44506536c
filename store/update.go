package store

import (
	"net/url"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Update is the reducer: it computes the next state from the current state
// and one message. It is total — messages that reference unknown ids, or
// that arrive with no selection, are no-ops rather than errors — and it is
// the single writer of State.Todos.
func Update(s State, msg Msg) State {
	switch msg := msg.(type) {
	case UrlChanged:
		s.Filter = FilterFromURL(msg.URL)

	case NewTodoTitleChanged:
		s.NewTodoTitle = msg.Title

	case CreateTodo:
		title := strings.TrimSpace(s.NewTodoTitle)
		if title == "" {
			return s
		}
		id := NewID()
		s.Todos[id] = Todo{ID: id, Title: title}
		s.NewTodoTitle = ""

	case ToggleTodo:
		if t, ok := s.Todos[msg.ID]; ok {
			t.Completed = !t.Completed
			s.Todos[msg.ID] = t
		}

	case RemoveTodo:
		s = remove(s, msg.ID)

	case CheckOrUncheckAll:
		// First click completes everything unless everything was already
		// complete; only then does it un-complete everything.
		completed := !s.AllCompleted()
		for id, t := range s.Todos {
			t.Completed = completed
			s.Todos[id] = t
		}

	case ClearCompleted:
		for id, t := range s.Todos {
			if t.Completed {
				s = remove(s, id)
			}
		}

	case SelectTodo:
		if msg.ID == nil {
			s.Selected = nil
		} else if t, ok := s.Todos[*msg.ID]; ok {
			s.Selected = &Selection{ID: t.ID, Title: t.Title}
		}

	case SelectedTodoTitleChanged:
		if s.Selected != nil {
			s.Selected = &Selection{ID: s.Selected.ID, Title: msg.Title}
		}

	case SaveSelectedTodo:
		if s.Selected == nil {
			return s
		}
		sel := *s.Selected
		s.Selected = nil
		title := strings.TrimSpace(sel.Title)
		if title == "" {
			// Committing an empty title deletes the todo.
			return remove(s, sel.ID)
		}
		if t, ok := s.Todos[sel.ID]; ok {
			t.Title = title
			s.Todos[sel.ID] = t
		}
	}
	return s
}

// remove deletes the todo with the given id and clears the selection if it
// pointed at that todo, so the selection never dangles.
func remove(s State, id ulid.ULID) State {
	delete(s.Todos, id)
	if s.Selected != nil && s.Selected.ID == id {
		s.Selected = nil
	}
	return s
}

// FilterFromURL derives the display filter from a browser URL. The filter
// lives in the trailing path segment, either of the URL path itself or of a
// "#/..." hash fragment as used by the filter links. Anything unrecognized,
// including unparsable URLs, means All.
func FilterFromURL(rawURL string) Filter {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		path = u.Path
		if u.Fragment != "" {
			path = u.Fragment
		}
	}
	switch strings.Trim(path, "/") {
	case "active":
		return Active
	case "completed":
		return Completed
	default:
		return All
	}
}
