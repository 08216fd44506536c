package components

import (
	"github.com/octoberswimmer/masc"
	"github.com/octoberswimmer/masc/elem"
	"github.com/octoberswimmer/masc/event"
	"github.com/octoberswimmer/masc/prop"

	"todomvc/store"
)

// FilterButton is a masc.Component which allows the user to select a display
// filter. Clicking dispatches the link's URL as a route change, so filtering
// behaves the same whether it comes from a click or from the browser
// location.
type FilterButton struct {
	masc.Core

	Label  string `masc:"prop"`
	Href   string `masc:"prop"`
	Active bool
}

// filterHref returns the hash link for a filter.
func filterHref(f store.Filter) string {
	switch f {
	case store.Active:
		return "#/active"
	case store.Completed:
		return "#/completed"
	default:
		return "#/"
	}
}

func (b *FilterButton) onClick(send func(masc.Msg)) func(*masc.Event) {
	return func(event *masc.Event) {
		send(store.UrlChanged{URL: b.Href})
	}
}

// Render implements the masc.Component interface.
func (b *FilterButton) Render(send func(masc.Msg)) masc.ComponentOrHTML {
	return elem.ListItem(
		elem.Anchor(
			masc.Markup(
				masc.MarkupIf(b.Active, masc.Class("selected")),
				prop.Href(b.Href),
				event.Click(b.onClick(send)).PreventDefault(),
			),

			masc.Text(b.Label),
		),
	)
}

func (b *FilterButton) Copy() masc.Component {
	cpy := *b
	return &cpy
}
