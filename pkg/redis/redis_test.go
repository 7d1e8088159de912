package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		assert.False(t, Config{URL: "  "}.Enabled())
		_, err := Options(Config{})
		require.ErrorIs(t, err, ErrEmptyConnectionURL)
	})

	t.Run("bad scheme", func(t *testing.T) {
		t.Parallel()
		for _, u := range []string{"http://localhost:6379", "localhost:6379", "postgres://x"} {
			_, err := Options(Config{URL: u})
			require.ErrorIs(t, err, ErrFailedToParseURL, u)
		}
	})

	t.Run("applies settings", func(t *testing.T) {
		t.Parallel()
		opts, err := Options(Config{
			URL:         "redis://:secret@localhost:6380/2",
			PoolSize:    7,
			DialTimeout: time.Second,
			Timeout:     2 * time.Second,
		})
		require.NoError(t, err)
		assert.Equal(t, "localhost:6380", opts.Addr)
		assert.Equal(t, "secret", opts.Password)
		assert.Equal(t, 2, opts.DB)
		assert.Equal(t, 7, opts.PoolSize)
		assert.Equal(t, time.Second, opts.DialTimeout)
		assert.Equal(t, 2*time.Second, opts.ReadTimeout)
		assert.Equal(t, 2*time.Second, opts.WriteTimeout)
	})
}

func TestOpenInvalidConfig(t *testing.T) {
	t.Parallel()

	client, err := Open(context.Background(), Config{})
	require.ErrorIs(t, err, ErrEmptyConnectionURL)
	assert.Nil(t, client)
}

func TestHealthcheckNilClient(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Healthcheck(nil)(context.Background()), ErrHealthcheckFailed)
}

type closer struct {
	err    error
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

func TestShutdown(t *testing.T) {
	t.Parallel()

	c := &closer{}
	require.NoError(t, Shutdown(c)(context.Background()))
	assert.True(t, c.closed)

	boom := errors.New("boom")
	require.ErrorIs(t, Shutdown(&closer{err: boom})(context.Background()), boom)
}

func TestWait(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, wait(ctx, time.Hour), context.Canceled)
	require.NoError(t, wait(context.Background(), time.Millisecond))
}
