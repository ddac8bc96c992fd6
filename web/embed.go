// Package web carries the HTML views compiled into the binary, so the server
// ships as a single artifact with no template directory to deploy.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templates embed.FS

// Engine returns the view engine over the embedded templates. Views are
// addressed by file name without extension ("index", "login", "admin").
func Engine() *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		// The subtree is fixed at build time; a failure here is a packaging
		// bug, not a runtime condition.
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
