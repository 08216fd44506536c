package store

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// add dispatches the two messages that create a todo and returns the new
// todo's id.
func add(t *testing.T, s State, title string) (State, ulid.ULID) {
	t.Helper()
	s = Update(s, NewTodoTitleChanged{Title: title})
	s = Update(s, CreateTodo{})
	todos := s.ordered()
	require.NotEmpty(t, todos)
	return s, todos[len(todos)-1].ID
}

func TestCreateTodo(t *testing.T) {
	s := NewState()
	s = Update(s, NewTodoTitleChanged{Title: "Buy milk"})
	s = Update(s, CreateTodo{})

	require.Len(t, s.Todos, 1)
	for _, todo := range s.Todos {
		assert.Equal(t, "Buy milk", todo.Title)
		assert.False(t, todo.Completed)
	}
	assert.Equal(t, "", s.NewTodoTitle, "draft should be cleared on create")
}

func TestCreateTodoTrimsTitle(t *testing.T) {
	s := NewState()
	s = Update(s, NewTodoTitleChanged{Title: "  Buy milk  "})
	s = Update(s, CreateTodo{})

	require.Len(t, s.Todos, 1)
	for _, todo := range s.Todos {
		assert.Equal(t, "Buy milk", todo.Title)
	}
}

func TestCreateTodoWhitespaceOnlyIsNoop(t *testing.T) {
	s := NewState()
	s = Update(s, NewTodoTitleChanged{Title: "   "})
	s = Update(s, CreateTodo{})

	assert.Empty(t, s.Todos)
	assert.Equal(t, "   ", s.NewTodoTitle, "draft is kept verbatim on a no-op create")
}

func TestCreateTodoOrdersNewestLast(t *testing.T) {
	s := NewState()
	s, _ = add(t, s, "first")
	s, _ = add(t, s, "second")
	s, _ = add(t, s, "third")

	var titles []string
	for _, todo := range s.VisibleTodos() {
		titles = append(titles, todo.Title)
	}
	assert.Equal(t, []string{"first", "second", "third"}, titles)
}

func TestToggleTodo(t *testing.T) {
	s := NewState()
	s, id := add(t, s, "a")

	s = Update(s, ToggleTodo{ID: id})
	assert.True(t, s.Todos[id].Completed)

	s = Update(s, ToggleTodo{ID: id})
	assert.False(t, s.Todos[id].Completed)
}

func TestToggleUnknownIDIsNoop(t *testing.T) {
	s := NewState()
	s, _ = add(t, s, "a")

	s = Update(s, ToggleTodo{ID: NewID()})
	assert.Equal(t, 1, s.TotalCount())
	assert.Equal(t, 1, s.ActiveCount())
}

func TestRemoveTodo(t *testing.T) {
	s := NewState()
	s, id := add(t, s, "a")
	s, other := add(t, s, "b")

	s = Update(s, RemoveTodo{ID: id})
	require.Len(t, s.Todos, 1)
	assert.Contains(t, s.Todos, other)

	// Removing an unknown id changes nothing.
	s = Update(s, RemoveTodo{ID: id})
	assert.Len(t, s.Todos, 1)
}

func TestRemoveSelectedTodoClearsSelection(t *testing.T) {
	s := NewState()
	s, id := add(t, s, "a")
	s = Update(s, SelectTodo{ID: &id})
	require.NotNil(t, s.Selected)

	s = Update(s, RemoveTodo{ID: id})
	assert.Nil(t, s.Selected, "selection must never dangle")
}

func TestCheckOrUncheckAllCompletesWhenAnyActive(t *testing.T) {
	s := NewState()
	s, _ = add(t, s, "a")
	s, id := add(t, s, "b")
	s = Update(s, ToggleTodo{ID: id})

	s = Update(s, CheckOrUncheckAll{})
	for _, todo := range s.Todos {
		assert.True(t, todo.Completed)
	}
}

func TestCheckOrUncheckAllUnchecksWhenAllCompleted(t *testing.T) {
	s := NewState()
	s, _ = add(t, s, "a")
	s, _ = add(t, s, "b")
	s = Update(s, CheckOrUncheckAll{})
	require.True(t, s.AllCompleted())

	s = Update(s, CheckOrUncheckAll{})
	for _, todo := range s.Todos {
		assert.False(t, todo.Completed)
	}
}

func TestClearCompleted(t *testing.T) {
	s := NewState()
	s, done := add(t, s, "done")
	s, open := add(t, s, "open")
	s = Update(s, ToggleTodo{ID: done})

	s = Update(s, ClearCompleted{})
	require.Len(t, s.Todos, 1)
	assert.Contains(t, s.Todos, open)
}

func TestClearCompletedClearsSelectionOfRemovedTodo(t *testing.T) {
	s := NewState()
	s, done := add(t, s, "done")
	s = Update(s, ToggleTodo{ID: done})
	s = Update(s, SelectTodo{ID: &done})
	require.NotNil(t, s.Selected)

	s = Update(s, ClearCompleted{})
	assert.Empty(t, s.Todos)
	assert.Nil(t, s.Selected)
}

func TestSelectTodoCopiesCommittedTitle(t *testing.T) {
	s := NewState()
	s, id := add(t, s, "original")

	s = Update(s, SelectTodo{ID: &id})
	require.NotNil(t, s.Selected)
	assert.Equal(t, id, s.Selected.ID)
	assert.Equal(t, "original", s.Selected.Title)
}

func TestSelectUnknownTodoIsNoop(t *testing.T) {
	s := NewState()
	s, id := add(t, s, "a")
	s = Update(s, SelectTodo{ID: &id})

	unknown := NewID()
	s = Update(s, SelectTodo{ID: &unknown})
	require.NotNil(t, s.Selected, "existing selection is kept")
	assert.Equal(t, id, s.Selected.ID)
}

func TestSelectNoneIsIdempotent(t *testing.T) {
	s := NewState()
	s, id := add(t, s, "a")
	s = Update(s, SelectTodo{ID: &id})

	once := Update(s, SelectTodo{ID: nil})
	twice := Update(once, SelectTodo{ID: nil})
	assert.Nil(t, once.Selected)
	assert.Equal(t, once, twice)
}

func TestEditDraftDoesNotTouchCommittedTitle(t *testing.T) {
	s := NewState()
	s, id := add(t, s, "original")
	s = Update(s, SelectTodo{ID: &id})

	s = Update(s, SelectedTodoTitleChanged{Title: "draft"})
	assert.Equal(t, "draft", s.Selected.Title)
	assert.Equal(t, "original", s.Todos[id].Title)
}

func TestEditDraftWithoutSelectionIsNoop(t *testing.T) {
	s := NewState()
	s, _ = add(t, s, "a")

	s = Update(s, SelectedTodoTitleChanged{Title: "draft"})
	assert.Nil(t, s.Selected)
}

func TestSaveSelectedTodo(t *testing.T) {
	s := NewState()
	s, id := add(t, s, "original")
	s = Update(s, SelectTodo{ID: &id})
	s = Update(s, SelectedTodoTitleChanged{Title: "  updated  "})

	s = Update(s, SaveSelectedTodo{})
	assert.Equal(t, "updated", s.Todos[id].Title)
	assert.Nil(t, s.Selected)
}

func TestSaveWithoutEditRoundTrips(t *testing.T) {
	s := NewState()
	s, id := add(t, s, "original")

	s = Update(s, SelectTodo{ID: &id})
	s = Update(s, SaveSelectedTodo{})
	assert.Equal(t, "original", s.Todos[id].Title)
	assert.Nil(t, s.Selected)
}

func TestSaveEmptyDraftRemovesTodo(t *testing.T) {
	s := NewState()
	s, id := add(t, s, "doomed")
	s = Update(s, SelectTodo{ID: &id})
	s = Update(s, SelectedTodoTitleChanged{Title: ""})

	s = Update(s, SaveSelectedTodo{})
	assert.NotContains(t, s.Todos, id)
	assert.Nil(t, s.Selected)
}

func TestSaveWithoutSelectionIsNoop(t *testing.T) {
	s := NewState()
	s, id := add(t, s, "a")

	s = Update(s, SaveSelectedTodo{})
	assert.Equal(t, "a", s.Todos[id].Title)
	assert.Nil(t, s.Selected)
}

func TestUrlChangedSetsFilter(t *testing.T) {
	tests := []struct {
		url  string
		want Filter
	}{
		{"https://example.com/#/active", Active},
		{"https://example.com/#/completed", Completed},
		{"https://example.com/#/", All},
		{"https://example.com/", All},
		{"/active", Active},
		{"/completed", Completed},
		{"#/active", Active},
		{"/nonsense", All},
		{"", All},
		{"://not a url", All},
	}
	for _, tt := range tests {
		s := Update(NewState(), UrlChanged{URL: tt.url})
		assert.Equal(t, tt.want, s.Filter, "url %q", tt.url)
	}
}

func TestUrlChangedOnlyTouchesFilter(t *testing.T) {
	s := NewState()
	s, id := add(t, s, "a")
	s = Update(s, SelectTodo{ID: &id})
	s = Update(s, NewTodoTitleChanged{Title: "draft"})

	s = Update(s, UrlChanged{URL: "#/completed"})
	assert.Equal(t, Completed, s.Filter)
	assert.Len(t, s.Todos, 1)
	assert.Equal(t, "draft", s.NewTodoTitle)
	require.NotNil(t, s.Selected)
	assert.Equal(t, id, s.Selected.ID)
}

// TestInvariantsUnderMessageSequence drives the reducer through a long mixed
// sequence and checks after every step that the selection references an
// existing todo and that the counts add up.
func TestInvariantsUnderMessageSequence(t *testing.T) {
	s := NewState()
	s, a := add(t, s, "a")
	s, b := add(t, s, "b")
	s, c := add(t, s, "c")
	unknown := NewID()

	msgs := []Msg{
		SelectTodo{ID: &b},
		SelectedTodoTitleChanged{Title: "b2"},
		ToggleTodo{ID: a},
		UrlChanged{URL: "#/active"},
		SaveSelectedTodo{},
		SelectTodo{ID: &a},
		RemoveTodo{ID: a},
		SelectTodo{ID: &unknown},
		CheckOrUncheckAll{},
		SelectTodo{ID: &c},
		ClearCompleted{},
		SelectedTodoTitleChanged{Title: ""},
		SaveSelectedTodo{},
		CheckOrUncheckAll{},
		CreateTodo{},
		NewTodoTitleChanged{Title: "d"},
		CreateTodo{},
	}
	for i, msg := range msgs {
		s = Update(s, msg)
		if s.Selected != nil {
			assert.Contains(t, s.Todos, s.Selected.ID, "dangling selection after msg %d (%T)", i, msg)
		}
		assert.Equal(t, s.TotalCount(), s.ActiveCount()+s.CompletedCount(), "counts after msg %d (%T)", i, msg)
	}
}
