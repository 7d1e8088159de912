package blog_test

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resignly/pkg/blog"
	"github.com/dmitrymomot/resignly/pkg/content"
	"github.com/dmitrymomot/resignly/pkg/logger"
)

func TestNewRefresher_InvalidSchedule(t *testing.T) {
	t.Parallel()

	_, err := blog.NewRefresher(blog.NewStore(content.NewFS(fstest.MapFS{}, ".")), "not a schedule", nil)
	require.ErrorIs(t, err, blog.ErrInvalidSchedule)
}

func TestRefresher_Next(t *testing.T) {
	t.Parallel()

	r, err := blog.NewRefresher(blog.NewStore(content.NewFS(fstest.MapFS{}, ".")), blog.DefaultSchedule, logger.NewNope())
	require.NoError(t, err)

	from := time.Date(2025, 1, 1, 10, 7, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 1, 1, 10, 15, 0, 0, time.UTC), r.Next(from))

	every, err := blog.NewRefresher(blog.NewStore(content.NewFS(fstest.MapFS{}, ".")), "@every 10m", nil)
	require.NoError(t, err)
	assert.Equal(t, from.Add(10*time.Minute), every.Next(from))
}

func TestRefresher_Refresh(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"posts/first.md": {Data: []byte("First")}}
	store := blog.NewStore(content.NewFS(fsys, "posts"))
	r, err := blog.NewRefresher(store, "@hourly", nil)
	require.NoError(t, err)

	require.NoError(t, r.Refresh(context.Background()))
	assert.Len(t, store.All(), 1)

	fsys["posts/second.md"] = &fstest.MapFile{Data: []byte("Second")}
	require.NoError(t, r.Refresh(context.Background()))
	assert.Len(t, store.All(), 2)
}

func TestRefresher_StartShutdown(t *testing.T) {
	t.Parallel()

	r, err := blog.NewRefresher(blog.NewStore(content.NewFS(fstest.MapFS{}, ".")), "@hourly", nil)
	require.NoError(t, err)

	require.NoError(t, r.Start(context.Background()))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, r.Shutdown(ctx))
}
