package views

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/a-h/templ"
)

//go:embed templates
var files embed.FS

// Site is shared by every page.
type Site struct {
	Name    string
	BaseURL string
	Year    int
}

// Meta describes one page for the document head.
type Meta struct {
	Title       string
	Description string
	// Path is the canonical path, e.g. "/templates".
	Path string
}

// Page is the data passed to full-page templates.
type Page struct {
	Site Site
	Meta Meta
	Data any
}

// Canonical returns the absolute URL of the page.
func (p Page) Canonical() string {
	return strings.TrimSuffix(p.Site.BaseURL, "/") + p.Meta.Path
}

// FullTitle is the <title> text.
func (p Page) FullTitle() string {
	if p.Meta.Title == "" {
		return p.Site.Name
	}
	return p.Meta.Title + " | " + p.Site.Name
}

// Renderer holds the parsed templates. Each page gets its own clone of the
// layout and partials so pages can define "content" independently.
type Renderer struct {
	base  *template.Template
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("January 2, 2006")
	},
	"isoDate": func(t time.Time) string {
		return t.Format("2006-01-02")
	},
	// safeHTML marks already sanitized markup.
	"safeHTML": func(s string) template.HTML {
		return template.HTML(s) //nolint:gosec
	},
	"join": strings.Join,
	"add":  func(a, b int) int { return a + b },
	"sub":  func(a, b int) int { return a - b },
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	return NewFromFS(files)
}

// NewFromFS parses templates/layout.html, templates/partials/*.html and every
// templates/pages/*.html from fsys.
func NewFromFS(fsys fs.FS) (*Renderer, error) {
	base, err := template.New("").Funcs(funcs).ParseFS(fsys, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("views: parse layout: %w", err)
	}

	names, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("views: list pages: %w", err)
	}

	r := &Renderer{base: base, pages: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("views: clone layout: %w", err)
		}
		page, err := clone.ParseFS(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("views: parse %s: %w", name, err)
		}
		r.pages[strings.TrimSuffix(path.Base(name), ".html")] = page
	}
	return r, nil
}

// MustNew is like New but panics on error.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Page renders the layout around page name.
func (r *Renderer) Page(name string, data Page) templ.Component {
	t, ok := r.pages[name]
	if !ok {
		return failed(fmt.Errorf("%w: page %q", ErrUnknownView, name))
	}
	return templ.FromGoHTML(t.Lookup("layout"), data)
}

// Partial renders the named fragment.
func (r *Renderer) Partial(name string, data any) templ.Component {
	t := r.base.Lookup(name)
	if t == nil {
		return failed(fmt.Errorf("%w: partial %q", ErrUnknownView, name))
	}
	return templ.FromGoHTML(t, data)
}

// HasPage reports whether a page template exists.
func (r *Renderer) HasPage(name string) bool {
	_, ok := r.pages[name]
	return ok
}

func failed(err error) templ.Component {
	return templ.ComponentFunc(func(context.Context, io.Writer) error {
		return err
	})
}
