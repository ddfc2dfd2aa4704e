// Package web embeds the single-page prediction form.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
