package components

import (
	"strings"
	"testing"

	"github.com/octoberswimmer/masc"

	"todomvc/store"
)

// threeTodosOneDone builds a state with three todos, the first completed.
func threeTodosOneDone() store.State {
	s := store.NewState()
	for _, title := range []string{"done", "open one", "open two"} {
		s = store.Update(s, store.NewTodoTitleChanged{Title: title})
		s = store.Update(s, store.CreateTodo{})
	}
	first := s.VisibleTodos()[0]
	return store.Update(s, store.ToggleTodo{ID: first.ID})
}

func TestFooterCountRendersPlural(t *testing.T) {
	page := &PageView{State: threeTodosOneDone()}

	out := masc.RenderString(page)
	if !strings.Contains(out, "<strong>2</strong> items left") {
		t.Errorf("expected plural footer count, got:\n%s", out)
	}
	for _, label := range []string{"All", "Active", "Completed"} {
		if !strings.Contains(out, label) {
			t.Errorf("expected filter label %q, got:\n%s", label, out)
		}
	}
	if !strings.Contains(out, "Clear completed") {
		t.Errorf("expected clear-completed button, got:\n%s", out)
	}
}

func TestFooterCountRendersSingular(t *testing.T) {
	s := store.NewState()
	s = store.Update(s, store.NewTodoTitleChanged{Title: "only"})
	s = store.Update(s, store.CreateTodo{})
	page := &PageView{State: s}

	out := masc.RenderString(page)
	if !strings.Contains(out, "<strong>1</strong> item left") {
		t.Errorf("expected singular footer count, got:\n%s", out)
	}
	if strings.Contains(out, "Clear completed") {
		t.Errorf("clear-completed should be hidden with no completed todos, got:\n%s", out)
	}
}
