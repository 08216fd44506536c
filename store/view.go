package store

// Derived view model: read-only projections of State for rendering. These
// are recomputed on every render and never stored back into State.

// matches reports whether the todo passes the filter.
func (f Filter) matches(t Todo) bool {
	switch f {
	case Active:
		return !t.Completed
	case Completed:
		return t.Completed
	default:
		return true
	}
}

// VisibleTodos returns the todos that pass the current filter, oldest first.
func (s State) VisibleTodos() []Todo {
	var visible []Todo
	for _, t := range s.ordered() {
		if s.Filter.matches(t) {
			visible = append(visible, t)
		}
	}
	return visible
}

// TotalCount returns the number of todos regardless of filter.
func (s State) TotalCount() int {
	return len(s.Todos)
}

// ActiveCount returns the number of todos not yet completed.
func (s State) ActiveCount() int {
	count := 0
	for _, t := range s.Todos {
		if !t.Completed {
			count++
		}
	}
	return count
}

// CompletedCount returns the number of completed todos.
func (s State) CompletedCount() int {
	return len(s.Todos) - s.ActiveCount()
}

// AllCompleted reports whether there is at least one todo and every todo is
// completed. It drives the toggle-all checkbox.
func (s State) AllCompleted() bool {
	return len(s.Todos) > 0 && s.ActiveCount() == 0
}

// HasCompleted reports whether any todo is completed. It drives the
// visibility of the clear-completed button.
func (s State) HasCompleted() bool {
	return s.CompletedCount() > 0
}

// ItemsLeftText returns the footer label following the active count.
func (s State) ItemsLeftText() string {
	if s.ActiveCount() == 1 {
		return " item left"
	}
	return " items left"
}
