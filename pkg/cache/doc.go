// Package cache keeps rendered HTML fragments between requests.
//
// Rendering a blog post runs goldmark and bluemonday, and rendering a
// template preview runs the letter renderer over sample data. Both results
// only change when their source changes, so the server keeps them in a
// Cache: Memory for a single instance, or Redis when REDIS_URL is set and
// several instances should share the work.
//
// Loader wraps a cache and fills misses through singleflight, so a burst of
// requests for a cold post renders it once:
//
//	posts := cache.NewLoader[string](cache.NewMemory[string](cache.WithMaxEntries(500)), time.Hour)
//	html, err := posts.Load(ctx, "post:"+slug, func(ctx context.Context) (string, error) {
//		return render(slug)
//	})
package cache
