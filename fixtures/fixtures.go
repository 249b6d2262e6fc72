// Package fixtures embeds the event and season data the site renders.
package fixtures

import _ "embed"

//go:embed event.json
var Event []byte

//go:embed season.json
var Season []byte
