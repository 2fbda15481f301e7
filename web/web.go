// Package web holds the embedded browser upload page.
package web

import (
	"embed"
)

//go:embed index.html
var content embed.FS

// Index returns the upload page HTML.
func Index() ([]byte, error) {
	return content.ReadFile("index.html")
}
