// Package store implements the state of the todo list application and the
// reducer that advances it. The store follows the Elm architecture: a State
// value, a closed set of messages, and a pure Update function. It knows
// nothing about rendering; the view layer reads State through the derived
// accessors in view.go and dispatches messages back through Update.
package store

import (
	"crypto/rand"
	"sort"

	"github.com/oklog/ulid/v2"
)

// Todo is a single task. Todos are owned by State.Todos and are only
// created, mutated and removed by Update.
type Todo struct {
	ID        ulid.ULID
	Title     string
	Completed bool
}

// Selection is the todo currently open for title editing, if any. Title is
// the edit draft; it starts as a copy of the todo's committed title and is
// only written back on SaveSelectedTodo.
type Selection struct {
	ID    ulid.ULID
	Title string
}

// Filter is the active display lens over the todo collection. It only
// affects which todos VisibleTodos surfaces, never the data itself.
type Filter int

const (
	All Filter = iota
	Active
	Completed
)

// Filters lists the filters in display order for the filter bar.
var Filters = []Filter{All, Active, Completed}

func (f Filter) String() string {
	switch f {
	case Active:
		return "Active"
	case Completed:
		return "Completed"
	default:
		return "All"
	}
}

// State is the whole application state. Todos maps id to todo; iteration
// order is by id, which ULIDs make creation order. The map has exactly one
// writer, Update, so transitions are never observed half-applied.
type State struct {
	Todos        map[ulid.ULID]Todo
	NewTodoTitle string
	Selected     *Selection
	Filter       Filter
}

// NewState returns an empty application state.
func NewState() State {
	return State{Todos: map[ulid.ULID]Todo{}}
}

// entropy feeds NewID. Monotonic entropy keeps ids created within the same
// millisecond in creation order. Update is the only caller at runtime and is
// single-threaded, matching the concurrency contract of the store.
var entropy = ulid.Monotonic(rand.Reader, 0)

// NewID returns a fresh ULID. ULIDs are unique and sort by creation time, so
// the newest todo always sorts last without a separate position field.
func NewID() ulid.ULID {
	return ulid.MustNew(ulid.Now(), entropy)
}

// ordered returns the todos sorted by id, oldest first.
func (s State) ordered() []Todo {
	todos := make([]Todo, 0, len(s.Todos))
	for _, t := range s.Todos {
		todos = append(todos, t)
	}
	sort.Slice(todos, func(i, j int) bool {
		return todos[i].ID.Compare(todos[j].ID) < 0
	})
	return todos
}

// DemoState returns a state pre-populated with fixture todos. Not used in
// production; it exists for demos and tests that want a non-empty list.
func DemoState() State {
	s := NewState()
	a, b := NewID(), NewID()
	s.Todos[a] = Todo{ID: a, Title: "I'm todo A"}
	s.Todos[b] = Todo{ID: b, Title: "I'm todo B", Completed: true}
	s.NewTodoTitle = "I'm a new todo title"
	s.Selected = &Selection{ID: b, Title: "I'm better todo B"}
	return s
}
