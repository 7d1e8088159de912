package handlers

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/resignly"
	"github.com/dmitrymomot/resignly/pkg/blog"
	"github.com/dmitrymomot/resignly/views"
)

// Blog listing defaults.
const (
	DefaultPostsPerPage = 9
	relatedPosts        = 3
)

// Blog serves the post index and the post pages.
type Blog struct {
	views   Views
	store   *blog.Store
	perPage int
}

// NewBlog creates the blog handler. perPage falls back to
// DefaultPostsPerPage when not positive.
func NewBlog(v Views, store *blog.Store, perPage int) *Blog {
	if perPage <= 0 {
		perPage = DefaultPostsPerPage
	}
	return &Blog{views: v, store: store, perPage: perPage}
}

// Routes implements resignly.Handler.
func (h *Blog) Routes(r resignly.Router) {
	r.Route("/blog", func(r resignly.Router) {
		r.GET("/", h.list)
		r.GET("/{slug}", h.show)
	})
}

func (h *Blog) list(c resignly.Context) error {
	category := strings.TrimSpace(c.Query("category"))
	tag := strings.TrimSpace(c.Query("tag"))

	var posts []blog.Post
	switch {
	case category != "":
		posts = h.store.ByCategory(category)
	case tag != "":
		posts = h.store.ByTag(tag)
	default:
		posts = h.store.All()
	}

	pages := (len(posts) + h.perPage - 1) / h.perPage
	page := min(max(resignly.QueryDefault(c, "page", 1), 1), max(pages, 1))
	start := (page - 1) * h.perPage
	end := min(start+h.perPage, len(posts))

	return h.views.render(c, http.StatusOK, "blog", views.Meta{
		Title:       "Blog",
		Description: "Career advice, resignation tips and guides for leaving your job on good terms.",
		Path:        "/blog",
	}, views.BlogList{
		Posts:      posts[start:end],
		Categories: h.store.Categories(),
		Tags:       h.store.Tags(),
		Category:   category,
		Tag:        tag,
		Page:       page,
		Pages:      pages,
	})
}

func (h *Blog) show(c resignly.Context) error {
	post, err := h.store.Get(c.Param("slug"))
	if err != nil {
		return err
	}

	html, err := h.store.HTML(c, post)
	if err != nil {
		return err
	}

	return h.views.render(c, http.StatusOK, "blog_post", views.Meta{
		Title:       post.Title,
		Description: post.Description,
		Path:        "/blog/" + post.Slug,
	}, views.BlogPost{
		Post:    post,
		HTML:    html,
		Related: h.store.Related(post, relatedPosts),
	})
}
