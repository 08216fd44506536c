//go:build !js
// +build !js

package main

import "github.com/octoberswimmer/masc"

// watchLocation is a stub under native builds; there is no browser location
// to watch. The js implementation subscribes to hashchange.
func watchLocation(p *masc.Program) {}
