package store

import "github.com/oklog/ulid/v2"

// Msg is the closed set of events the reducer reacts to. The unexported
// marker method keeps the set sealed to this package so Update's type switch
// covers every variant.
type Msg interface {
	isMsg()
}

// UrlChanged reports a browser location change. The reducer derives the
// Filter from the URL's path segment and changes nothing else.
type UrlChanged struct {
	URL string
}

// NewTodoTitleChanged carries the current text of the new-todo input,
// verbatim. Trimming is deferred to CreateTodo.
type NewTodoTitleChanged struct {
	Title string
}

// CreateTodo asks the reducer to turn the new-todo draft into a todo.
type CreateTodo struct{}

// ToggleTodo flips the completed flag of the todo with the given id.
type ToggleTodo struct {
	ID ulid.ULID
}

// RemoveTodo deletes the todo with the given id.
type RemoveTodo struct {
	ID ulid.ULID
}

// CheckOrUncheckAll completes every todo, unless every todo is already
// completed, in which case it un-completes every todo.
type CheckOrUncheckAll struct{}

// ClearCompleted removes every completed todo.
type ClearCompleted struct{}

// SelectTodo opens the todo with the given id for title editing. A nil ID
// clears the selection.
type SelectTodo struct {
	ID *ulid.ULID
}

// SelectedTodoTitleChanged carries the current text of the edit input for
// the selected todo.
type SelectedTodoTitleChanged struct {
	Title string
}

// SaveSelectedTodo commits the selection's draft title to its todo and
// clears the selection. An empty trimmed draft removes the todo instead.
type SaveSelectedTodo struct{}

func (UrlChanged) isMsg()               {}
func (NewTodoTitleChanged) isMsg()      {}
func (CreateTodo) isMsg()               {}
func (ToggleTodo) isMsg()               {}
func (RemoveTodo) isMsg()               {}
func (CheckOrUncheckAll) isMsg()        {}
func (ClearCompleted) isMsg()           {}
func (SelectTodo) isMsg()               {}
func (SelectedTodoTitleChanged) isMsg() {}
func (SaveSelectedTodo) isMsg()         {}
