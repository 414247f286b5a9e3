// Package data bundles the default restaurant dataset.
package data

import _ "embed"

// Restaurants is the bundled dataset document.
//
//go:embed restaurants.json
var Restaurants []byte

// Name identifies the bundled dataset as a load source.
const Name = "embedded:restaurants.json"
