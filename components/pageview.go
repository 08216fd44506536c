package components

import (
	"strconv"

	"github.com/octoberswimmer/masc"
	"github.com/octoberswimmer/masc/elem"
	"github.com/octoberswimmer/masc/event"
	"github.com/octoberswimmer/masc/prop"
	"github.com/octoberswimmer/masc/style"

	"todomvc/store"
)

// PageView is a masc.Component which represents the entire page. It owns the
// application state and feeds every store message through the reducer; the
// rendered tree is derived from the state on every update.
type PageView struct {
	masc.Core

	State store.State
}

func (p *PageView) Init() masc.Cmd {
	masc.AddStylesheet("https://rawgit.com/tastejs/todomvc-common/master/base.css")
	masc.AddStylesheet("https://rawgit.com/tastejs/todomvc-app-css/master/index.css")
	return nil
}

func (p *PageView) Update(msg masc.Msg) (masc.Model, masc.Cmd) {
	if m, ok := msg.(store.Msg); ok {
		p.State = store.Update(p.State, m)
	}
	return p, nil
}

func (p *PageView) onNewTodoTitleInput(send func(masc.Msg)) func(*masc.Event) {
	return func(event *masc.Event) {
		send(store.NewTodoTitleChanged{Title: event.Target.Get("value").String()})
	}
}

func (p *PageView) onCreate(send func(masc.Msg)) func(*masc.Event) {
	return func(event *masc.Event) {
		send(store.CreateTodo{})
	}
}

func (p *PageView) onToggleAll(send func(masc.Msg)) func(*masc.Event) {
	return func(event *masc.Event) {
		send(store.CheckOrUncheckAll{})
	}
}

func (p *PageView) onClearCompleted(send func(masc.Msg)) func(*masc.Event) {
	return func(event *masc.Event) {
		send(store.ClearCompleted{})
	}
}

// Render implements the masc.Component interface.
func (p *PageView) Render(send func(masc.Msg)) masc.ComponentOrHTML {
	return elem.Div(
		elem.Section(
			masc.Markup(
				masc.Class("todoapp"),
			),

			p.renderHeader(send),
			masc.If(p.State.TotalCount() > 0,
				p.renderTodoList(send),
				p.renderFooter(send),
			),
		),

		p.renderInfo(),
	)
}

func (p *PageView) renderHeader(send func(masc.Msg)) *masc.HTML {
	return elem.Header(
		masc.Markup(
			masc.Class("header"),
		),

		elem.Heading1(
			masc.Text("todos"),
		),
		elem.Form(
			masc.Markup(
				style.Margin(style.Px(0)),
				event.Submit(p.onCreate(send)).PreventDefault(),
			),

			elem.Input(
				masc.Markup(
					masc.Class("new-todo"),
					prop.Placeholder("What needs to be done?"),
					prop.Autofocus(true),
					prop.Value(p.State.NewTodoTitle),
					event.Input(p.onNewTodoTitleInput(send)),
				),
			),
		),
	)
}

func (p *PageView) renderTodoList(send func(masc.Msg)) *masc.HTML {
	var items masc.List
	for _, todo := range p.State.VisibleTodos() {
		iv := &ItemView{
			ID:        todo.ID,
			Title:     todo.Title,
			Completed: todo.Completed,
		}
		if sel := p.State.Selected; sel != nil && sel.ID == todo.ID {
			iv.Editing = true
			iv.EditTitle = sel.Title
		}
		items = append(items, iv)
	}

	return elem.Section(
		masc.Markup(
			masc.Class("main"),
		),

		elem.Input(
			masc.Markup(
				masc.Class("toggle-all"),
				prop.ID("toggle-all"),
				prop.Type(prop.TypeCheckbox),
				prop.Checked(p.State.AllCompleted()),
				event.Change(p.onToggleAll(send)),
			),
		),
		elem.Label(
			masc.Markup(
				prop.For("toggle-all"),
			),
			masc.Text("Mark all as complete"),
		),

		elem.UnorderedList(
			masc.Markup(
				masc.Class("todo-list"),
			),
			items,
		),
	)
}

func (p *PageView) renderFooter(send func(masc.Msg)) *masc.HTML {
	var filters masc.List
	for _, f := range store.Filters {
		filters = append(filters, &FilterButton{
			Label:  f.String(),
			Href:   filterHref(f),
			Active: p.State.Filter == f,
		})
		filters = append(filters, masc.Text(" "))
	}

	return elem.Footer(
		masc.Markup(
			masc.Class("footer"),
		),

		elem.Span(
			masc.Markup(
				masc.Class("todo-count"),
			),

			elem.Strong(
				masc.Text(strconv.Itoa(p.State.ActiveCount())),
			),
			masc.Text(p.State.ItemsLeftText()),
		),

		elem.UnorderedList(
			masc.Markup(
				masc.Class("filters"),
			),
			filters,
		),

		masc.If(p.State.HasCompleted(),
			elem.Button(
				masc.Markup(
					masc.Class("clear-completed"),
					event.Click(p.onClearCompleted(send)),
				),
				masc.Text("Clear completed"),
			),
		),
	)
}

func (p *PageView) renderInfo() *masc.HTML {
	return elem.Footer(
		masc.Markup(
			masc.Class("info"),
		),

		elem.Paragraph(
			masc.Text("Double-click to edit a todo"),
		),
		elem.Paragraph(
			masc.Text("Part of "),
			elem.Anchor(
				masc.Markup(
					prop.Href("http://todomvc.com"),
				),
				masc.Text("TodoMVC"),
			),
		),
	)
}

func (p *PageView) Copy() masc.Component {
	cpy := *p
	return &cpy
}
