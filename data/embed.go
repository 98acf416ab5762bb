// Package data embeds the shared conversion corpus.
package data

import _ "embed"

//go:embed golden/words.json
var GoldenWords []byte
