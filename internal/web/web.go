// Package web renders the directory's HTML pages from embedded templates.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"slices"
	"strings"

	"fyyur/internal/forms"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*.css
var staticFS embed.FS

// Page names accepted by Renderer.Render.
const (
	PageHome          = "home.html"
	PageVenues        = "venues.html"
	PageVenue         = "show_venue.html"
	PageSearchVenues  = "search_venues.html"
	PageNewVenue      = "new_venue.html"
	PageEditVenue     = "edit_venue.html"
	PageArtists       = "artists.html"
	PageArtist        = "show_artist.html"
	PageSearchArtists = "search_artists.html"
	PageNewArtist     = "new_artist.html"
	PageEditArtist    = "edit_artist.html"
	PageShows         = "shows.html"
	PageNewShow       = "new_show.html"
	PageNotFound      = "404.html"
	PageServerError   = "500.html"
)

// View is the value every page template receives.
type View struct {
	Flash string
	Data  any
}

// Renderer holds one parsed template set per page, each sharing the layout.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"join":         strings.Join,
	"has":          func(list []string, v string) bool { return slices.Contains(list, v) },
	"genreChoices": func() []string { return forms.GenreChoices },
	"stateChoices": func() []string { return forms.StateChoices },
	"dict":         dict,
}

// dict builds a map from alternating keys and values so a template can pass
// several values to a nested template.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// NewRenderer parses the layout together with each page template.
func NewRenderer() (*Renderer, error) {
	names, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, path := range names {
		name := strings.TrimPrefix(path, "templates/")
		if name == "layout.html" || name == "form_fields.html" {
			continue
		}
		tmpl, err := template.New("layout.html").Funcs(funcs).
			ParseFS(templatesFS, "templates/layout.html", "templates/form_fields.html", path)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render executes page into w. Output is buffered so a failing template
// writes nothing.
func (r *Renderer) Render(w io.Writer, page string, view View) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", view); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded stylesheets under the static/ prefix.
func Static() http.Handler {
	return http.FileServer(http.FS(staticFS))
}
