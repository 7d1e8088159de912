package handlers

import (
	"net/http"

	"github.com/dmitrymomot/resignly"
	"github.com/dmitrymomot/resignly/pkg/blog"
	"github.com/dmitrymomot/resignly/pkg/catalog"
	"github.com/dmitrymomot/resignly/views"
)

// homePosts is the number of posts teased on the home page.
const homePosts = 3

// Pages serves the home page, the legal pages and the sitemap.
type Pages struct {
	views Views
	posts *blog.Store
	faq   []views.FAQ
}

// NewPages creates the page handler. posts may be nil.
func NewPages(v Views, posts *blog.Store, faq []views.FAQ) *Pages {
	return &Pages{views: v, posts: posts, faq: faq}
}

// Routes implements resignly.Handler.
func (h *Pages) Routes(r resignly.Router) {
	r.GET("/", h.home)
	r.GET("/privacy-policy", h.static("privacy", views.Meta{
		Title:       "Privacy Policy",
		Description: "How we handle the information you enter into the resignation letter generator.",
		Path:        "/privacy-policy",
	}))
	r.GET("/terms-of-use", h.static("terms", views.Meta{
		Title:       "Terms of Use",
		Description: "The terms that apply when using the resignation letter generator.",
		Path:        "/terms-of-use",
	}))
	r.GET("/sitemap.xml", h.sitemap)
}

func (h *Pages) home(c resignly.Context) error {
	data := views.Home{
		Grid: views.Grid{Templates: catalog.All(), Categories: catalog.Categories()},
		FAQ:  h.faq,
	}
	if h.posts != nil {
		data.Posts = latest(h.posts, homePosts)
	}

	return h.views.render(c, http.StatusOK, "home", views.Meta{
		Description: "Create a professional resignation letter in minutes. Free templates, instant PDF, Word and text downloads.",
		Path:        "/",
	}, data)
}

func (h *Pages) static(name string, meta views.Meta) resignly.HandlerFunc {
	return func(c resignly.Context) error {
		return h.views.render(c, http.StatusOK, name, meta, nil)
	}
}

// latest returns the featured posts first, topped up with the newest ones.
func latest(store *blog.Store, n int) []blog.Post {
	out := make([]blog.Post, 0, n)
	seen := make(map[string]bool, n)
	for _, list := range [][]blog.Post{store.Featured(), store.All()} {
		for _, p := range list {
			if len(out) == n {
				return out
			}
			if !seen[p.Slug] {
				seen[p.Slug] = true
				out = append(out, p)
			}
		}
	}
	return out
}
