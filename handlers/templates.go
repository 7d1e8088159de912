package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrymomot/resignly"
	"github.com/dmitrymomot/resignly/pkg/cache"
	"github.com/dmitrymomot/resignly/pkg/catalog"
	"github.com/dmitrymomot/resignly/pkg/export"
	"github.com/dmitrymomot/resignly/pkg/letter"
	"github.com/dmitrymomot/resignly/views"
)

// Templates serves the catalog and the generator page of each template.
type Templates struct {
	views    Views
	previews *cache.Loader[string]
	opts     []letter.Option
}

// NewTemplates creates the catalog handler. previews caches the rendered
// default letter of each template per day and may be nil.
func NewTemplates(v Views, previews *cache.Loader[string], opts ...letter.Option) *Templates {
	return &Templates{views: v, previews: previews, opts: opts}
}

// Routes implements resignly.Handler.
func (h *Templates) Routes(r resignly.Router) {
	r.Route("/templates", func(r resignly.Router) {
		r.GET("/", h.list)
		r.GET("/{id}", h.show)
	})
}

func (h *Templates) list(c resignly.Context) error {
	q := strings.TrimSpace(c.Query("q"))
	category, err := catalog.ParseCategory(c.Query("category"))
	if err != nil {
		category = catalog.CategoryAll
	}

	grid := views.Grid{
		Templates:  catalog.Filter(category, q),
		Categories: catalog.Categories(),
		Category:   string(category),
		Query:      q,
	}

	return c.RenderPartial(http.StatusOK,
		h.views.page("templates", views.Meta{
			Title:       "Resignation Letter Templates",
			Description: "Free resignation letter templates for every situation.",
			Path:        "/templates",
		}, grid),
		h.views.partial("template_grid", grid),
	)
}

func (h *Templates) show(c resignly.Context) error {
	tpl, err := catalog.Get(c.Param("id"))
	if err != nil {
		return err
	}

	data := letter.NewData(h.opts...)
	text, err := h.preview(c, tpl, data)
	if err != nil {
		return err
	}

	return h.views.render(c, http.StatusOK, "generator", views.Meta{
		Title:       tpl.Name,
		Description: tpl.Description,
		Path:        "/templates/" + tpl.ID,
	}, views.Generator{
		Template:      tpl,
		Form:          letterForm(tpl.ID, data, nil, h.opts...),
		Preview:       views.Preview{Text: text, Stats: letter.StatsOf(text)},
		Formats:       export.Formats(),
		PrivacyNotice: letter.PrivacyNotice,
	})
}

// preview renders the default letter. It only depends on the template and
// today's date, so it is cached under both.
func (h *Templates) preview(ctx context.Context, tpl catalog.Template, data letter.Data) (string, error) {
	render := func(context.Context) (string, error) {
		return letter.Render(tpl.Body, data, h.opts...), nil
	}
	if h.previews == nil {
		return render(ctx)
	}
	return h.previews.Load(ctx, "preview:"+tpl.ID+":"+data.ResignationDate, render)
}
