package blog

import (
	"context"
	"encoding/hex"
	"fmt"
	"hash/fnv"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/resignly/pkg/cache"
	"github.com/dmitrymomot/resignly/pkg/content"
	"github.com/dmitrymomot/resignly/pkg/logger"
)

const (
	defaultHTMLTTL     = time.Hour
	defaultHTMLEntries = 256
)

// Store holds the loaded posts, newest first.
type Store struct {
	source   content.Source
	renderer *Renderer
	html     *cache.Loader[string]
	logger   *slog.Logger
	now      func() time.Time

	snap atomic.Pointer[snapshot]
}

type snapshot struct {
	posts    []Post
	bySlug   map[string]int
	loadedAt time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithHTMLCache stores rendered post HTML in c for ttl.
func WithHTMLCache(c cache.Cache[string], ttl time.Duration) StoreOption {
	return func(s *Store) {
		if c != nil {
			s.html = cache.NewLoader(c, ttl)
		}
	}
}

// WithLogger sets the store logger.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger.Component(l, "blog")
	}
}

// WithClock sets the time used as the date of undated posts.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRenderer replaces the markdown renderer.
func WithRenderer(r *Renderer) StoreOption {
	return func(s *Store) {
		if r != nil {
			s.renderer = r
		}
	}
}

// NewStore returns an empty store reading from src. Call Load before use.
func NewStore(src content.Source, opts ...StoreOption) *Store {
	s := &Store{
		source:   src,
		renderer: NewRenderer(),
		logger:   logger.NewNope(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.html == nil {
		s.html = cache.NewLoader[string](
			cache.NewMemory[string](cache.WithMaxEntries(defaultHTMLEntries)),
			defaultHTMLTTL,
		)
	}
	return s
}

// Load reads every post from the source and replaces the current set. On
// error the previous set stays in place.
func (s *Store) Load(ctx context.Context) error {
	files, err := s.source.Files(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "blog load failed", slog.Any("error", err))
		return fmt.Errorf("blog: load: %w", err)
	}

	now := s.now()
	posts := make([]Post, 0, len(files))
	bySlug := make(map[string]int, len(files))
	for _, f := range files {
		p, err := Parse(f, now)
		if err != nil {
			s.logger.ErrorContext(ctx, "blog load failed", slog.Any("error", err))
			return fmt.Errorf("blog: load: %w", err)
		}
		if _, dup := bySlug[p.Slug]; dup {
			err := fmt.Errorf("%w: %s", ErrDuplicateSlug, p.Slug)
			s.logger.ErrorContext(ctx, "blog load failed", slog.Any("error", err))
			return fmt.Errorf("blog: load: %w", err)
		}
		bySlug[p.Slug] = len(posts)
		posts = append(posts, p)
	}

	sort.SliceStable(posts, func(i, j int) bool { return posts[i].Date.After(posts[j].Date) })
	for i, p := range posts {
		bySlug[p.Slug] = i
	}

	s.snap.Store(&snapshot{posts: posts, bySlug: bySlug, loadedAt: now})
	s.logger.InfoContext(ctx, "blog loaded", slog.Int("posts", len(posts)))
	return nil
}

// LoadedAt returns the time of the last successful Load.
func (s *Store) LoadedAt() time.Time {
	if snap := s.snap.Load(); snap != nil {
		return snap.loadedAt
	}
	return time.Time{}
}

// Healthcheck fails until the first successful Load.
func (s *Store) Healthcheck(context.Context) error {
	if s.snap.Load() == nil {
		return ErrNotLoaded
	}
	return nil
}

func (s *Store) posts() []Post {
	if snap := s.snap.Load(); snap != nil {
		return snap.posts
	}
	return nil
}

// All returns every post, newest first.
func (s *Store) All() []Post {
	return slices.Clone(s.posts())
}

// Get returns the post with slug.
func (s *Store) Get(slug string) (Post, error) {
	snap := s.snap.Load()
	if snap == nil {
		return Post{}, ErrPostNotFound
	}
	i, ok := snap.bySlug[slug]
	if !ok {
		return Post{}, ErrPostNotFound
	}
	return snap.posts[i], nil
}

// Featured returns the featured posts.
func (s *Store) Featured() []Post {
	return s.filter(func(p Post) bool { return p.Featured })
}

// ByCategory returns the posts in category, ignoring case.
func (s *Store) ByCategory(category string) []Post {
	return s.filter(func(p Post) bool { return strings.EqualFold(p.Category, category) })
}

// ByTag returns the posts tagged with tag, ignoring case.
func (s *Store) ByTag(tag string) []Post {
	return s.filter(func(p Post) bool { return p.HasTag(tag) })
}

func (s *Store) filter(keep func(Post) bool) []Post {
	var out []Post
	for _, p := range s.posts() {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (s *Store) Categories() []string {
	var out []string
	for _, p := range s.posts() {
		if !slices.Contains(out, p.Category) {
			out = append(out, p.Category)
		}
	}
	return out
}

// Tags returns the distinct tags in first-seen order.
func (s *Store) Tags() []string {
	var out []string
	for _, p := range s.posts() {
		for _, t := range p.Tags {
			if !slices.Contains(out, t) {
				out = append(out, t)
			}
		}
	}
	return out
}

// Related returns up to n other posts ranked by relevance to post. A shared
// category scores 3, each shared tag 2 and the same author 1. Ties keep the
// newest-first order.
func (s *Store) Related(post Post, n int) []Post {
	type scored struct {
		post  Post
		score int
	}

	var candidates []scored
	for _, p := range s.posts() {
		if p.Slug == post.Slug {
			continue
		}
		score := 0
		if p.Category == post.Category {
			score += 3
		}
		for _, t := range p.Tags {
			if slices.Contains(post.Tags, t) {
				score += 2
			}
		}
		if p.Author == post.Author {
			score++
		}
		candidates = append(candidates, scored{post: p, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })
	if n >= 0 && len(candidates) > n {
		candidates = candidates[:n]
	}

	out := make([]Post, len(candidates))
	for i, c := range candidates {
		out[i] = c.post
	}
	return out
}

// HTML returns the rendered body of post.
func (s *Store) HTML(ctx context.Context, post Post) (string, error) {
	return s.html.Load(ctx, htmlKey(post), func(context.Context) (string, error) {
		return s.renderer.Render(post.Content)
	})
}

// htmlKey changes whenever the body changes, so reloaded posts never hit a
// stale entry.
func htmlKey(p Post) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(p.Content))
	return "blog:" + p.Slug + ":" + hex.EncodeToString(h.Sum(nil))
}
