//go:build js
// +build js

package main

import (
	"syscall/js"

	"github.com/octoberswimmer/masc"

	"todomvc/store"
)

// watchLocation dispatches the current browser location as a route change,
// then keeps dispatching on every hashchange so the filter follows the
// location, including back/forward navigation.
func watchLocation(p *masc.Program) {
	href := func() string {
		return js.Global().Get("location").Get("href").String()
	}
	p.Send(store.UrlChanged{URL: href()})
	js.Global().Call("addEventListener", "hashchange", js.FuncOf(func(js.Value, []js.Value) interface{} {
		p.Send(store.UrlChanged{URL: href()})
		return nil
	}))
}
