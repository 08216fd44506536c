package components

import (
	"github.com/octoberswimmer/masc"
	"github.com/octoberswimmer/masc/elem"
	"github.com/octoberswimmer/masc/event"
	"github.com/octoberswimmer/masc/prop"
	"github.com/octoberswimmer/masc/style"
	"github.com/oklog/ulid/v2"

	"todomvc/store"
)

// ItemView is a masc.Component which represents a single item in the todo
// list. At most one item is in edit mode at a time; Editing and EditTitle
// mirror the store's selection.
type ItemView struct {
	masc.Core

	ID        ulid.ULID `masc:"prop"`
	Title     string    `masc:"prop"`
	Completed bool      `masc:"prop"`

	Editing   bool   `masc:"prop"`
	EditTitle string `masc:"prop"`
}

// Key implements the masc.Keyer interface.
func (p *ItemView) Key() interface{} {
	return p.ID.String()
}

func (p *ItemView) onDestroy(send func(masc.Msg)) func(*masc.Event) {
	return func(event *masc.Event) {
		send(store.RemoveTodo{ID: p.ID})
	}
}

func (p *ItemView) onToggleCompleted(send func(masc.Msg)) func(*masc.Event) {
	return func(event *masc.Event) {
		send(store.ToggleTodo{ID: p.ID})
	}
}

func (p *ItemView) onStartEdit(send func(masc.Msg)) func(*masc.Event) {
	return func(event *masc.Event) {
		id := p.ID
		send(store.SelectTodo{ID: &id})
	}
}

func (p *ItemView) onEditInput(send func(masc.Msg)) func(*masc.Event) {
	return func(event *masc.Event) {
		send(store.SelectedTodoTitleChanged{Title: event.Target.Get("value").String()})
	}
}

func (p *ItemView) onStopEdit(send func(masc.Msg)) func(*masc.Event) {
	return func(event *masc.Event) {
		send(store.SaveSelectedTodo{})
	}
}

// Render implements the masc.Component interface.
func (p *ItemView) Render(send func(masc.Msg)) masc.ComponentOrHTML {
	return elem.ListItem(
		masc.Markup(
			masc.ClassMap{
				"completed": p.Completed,
				"editing":   p.Editing,
			},
		),

		elem.Div(
			masc.Markup(
				masc.Class("view"),
			),

			elem.Input(
				masc.Markup(
					masc.Class("toggle"),
					prop.Type(prop.TypeCheckbox),
					prop.Checked(p.Completed),
					event.Change(p.onToggleCompleted(send)),
				),
			),
			elem.Label(
				masc.Markup(
					event.DoubleClick(p.onStartEdit(send)),
				),
				masc.Text(p.Title),
			),
			elem.Button(
				masc.Markup(
					masc.Class("destroy"),
					event.Click(p.onDestroy(send)),
				),
			),
		),
		masc.If(p.Editing,
			elem.Form(
				masc.Markup(
					style.Margin(style.Px(0)),
					event.Submit(p.onStopEdit(send)).PreventDefault(),
				),
				elem.Input(
					masc.Markup(
						masc.Class("edit"),
						prop.Autofocus(true),
						prop.Value(p.EditTitle),
						event.Input(p.onEditInput(send)),
					),
				),
			),
		),
	)
}

func (p *ItemView) Copy() masc.Component {
	cpy := *p
	return &cpy
}
