package handlers

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/resignly"
	"github.com/dmitrymomot/resignly/views"
)

// Views renders pages with the shared site data.
type Views struct {
	Renderer *views.Renderer
	Site     views.Site
}

func (v Views) page(name string, meta views.Meta, data any) templ.Component {
	return v.Renderer.Page(name, views.Page{Site: v.Site, Meta: meta, Data: data})
}

func (v Views) partial(name string, data any) templ.Component {
	return v.Renderer.Partial(name, data)
}

func (v Views) render(c resignly.Context, code int, name string, meta views.Meta, data any) error {
	return c.Render(code, v.page(name, meta, data))
}
