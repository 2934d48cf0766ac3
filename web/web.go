// Package web holds the checkout pages and their static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates static
var FS embed.FS

// Templates parses every page under templates/, named by file name.
func Templates() (*template.Template, error) {
	return template.ParseFS(FS, "templates/*.html")
}

// Static returns the static/ tree rooted at its own directory.
func Static() (fs.FS, error) {
	return fs.Sub(FS, "static")
}
