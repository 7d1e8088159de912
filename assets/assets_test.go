package assets_test

import (
	"context"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resignly/assets"
	"github.com/dmitrymomot/resignly/pkg/blog"
	"github.com/dmitrymomot/resignly/pkg/content"
)

func TestStatic(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"app.js", "app.css"} {
		data, err := fs.ReadFile(assets.Static(), name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}

func TestFAQ(t *testing.T) {
	t.Parallel()

	items, err := assets.FAQ()
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.NotEmpty(t, item.Question)
		assert.NotEmpty(t, item.Answer)
	}
}

func TestBlogPostsParse(t *testing.T) {
	t.Parallel()

	store := blog.NewStore(content.NewFS(assets.Blog(), assets.BlogDir))
	require.NoError(t, store.Load(context.Background()))

	posts := store.All()
	require.Len(t, posts, 3)
	for _, p := range posts {
		assert.NotEmpty(t, p.Title, p.Slug)
		assert.NotEqual(t, "Anonymous", p.Author, p.Slug)
		assert.False(t, p.Date.IsZero(), p.Slug)
		assert.True(t, p.Date.Before(time.Now()), p.Slug)
	}
	assert.NotEmpty(t, store.Featured())
}
