package main

import (
	"github.com/octoberswimmer/masc"
	"github.com/octoberswimmer/masc/elem"

	"todomvc/components"
	"todomvc/store"
)

func main() {
	masc.SetTitle("TodoMVC")

	body := &Body{
		todo: &components.PageView{State: store.NewState()},
	}
	pgm := masc.NewProgram(body)
	go watchLocation(pgm)

	if _, err := pgm.Run(); err != nil {
		panic(err)
	}
}

// Body wraps the page so the program renders into <body>.
type Body struct {
	masc.Core
	todo *components.PageView
}

func (b *Body) Init() masc.Cmd {
	return b.todo.Init()
}

func (b *Body) Update(msg masc.Msg) (masc.Model, masc.Cmd) {
	p, cmd := b.todo.Update(msg)
	b.todo = p.(*components.PageView)
	return b, cmd
}

func (b *Body) Render(send func(masc.Msg)) masc.ComponentOrHTML {
	return elem.Body(
		b.todo,
	)
}
