// Package web renders the server-side HTML pages of the public card.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"tarjeta/internal/errors"

	"github.com/gofiber/template/html/v2"
	"github.com/labstack/echo/v4"
)

// Page template names.
const (
	PageHome     = "home"
	PageCard     = "card"
	PageViewer   = "viewer"
	PageNotFound = "not_found"
	PageError    = "error"
)

//go:embed templates
var templatesFS embed.FS

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	engine *html.Engine
}

// NewRenderer parses every embedded template up front.
func NewRenderer() (*Renderer, error) {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("safeURL", safeURL)

	if err := engine.Load(); err != nil {
		return nil, errors.Wrap(err, "load templates")
	}

	return &Renderer{engine: engine}, nil
}

// Render executes the named page.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return errors.WithStack(r.engine.Render(w, name, data))
}

var allowedSchemes = []string{"http://", "https://", "mailto:", "tel:", "data:image/", "data:application/pdf", "/"}

// safeURL lets the contact schemes the card produces through html/template's
// URL filter and blanks anything else.
func safeURL(raw string) template.URL {
	lower := strings.ToLower(strings.TrimSpace(raw))
	for _, prefix := range allowedSchemes {
		if strings.HasPrefix(lower, prefix) {
			return template.URL(strings.TrimSpace(raw)) //nolint:gosec // scheme allow-listed above
		}
	}

	return template.URL("#")
}
