package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resignly/pkg/binder"
)

type letterForm struct {
	Name    string   `form:"employeeName"`
	Reason  string   `form:"reason"`
	Agree   bool     `form:"agree"`
	Tags    []string `form:"tag"`
	Count   int      `form:"count"`
	Skipped string   `form:"-"`
	hidden  string
}

func postForm(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
	return r
}

func TestForm(t *testing.T) {
	t.Parallel()

	r := postForm(url.Values{
		"employeeName": {"John\x00 Doe"},
		"reason":       {"Line one\r\nLine two"},
		"agree":        {"on"},
		"tag":          {"a", "b"},
		"count":        {"3"},
		"Skipped":      {"x"},
	})

	var f letterForm
	require.NoError(t, binder.Form()(r, &f))
	assert.Equal(t, "John Doe", f.Name)
	assert.Equal(t, "Line one\nLine two", f.Reason)
	assert.True(t, f.Agree)
	assert.Equal(t, []string{"a", "b"}, f.Tags)
	assert.Equal(t, 3, f.Count)
	assert.Empty(t, f.Skipped)
	assert.Empty(t, f.hidden)
}

func TestFormErrors(t *testing.T) {
	t.Parallel()

	t.Run("content type", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
		r.Header.Set("Content-Type", "application/json")
		require.ErrorIs(t, binder.Form()(r, &letterForm{}), binder.ErrUnsupportedMediaType)
	})

	t.Run("bad int", func(t *testing.T) {
		t.Parallel()
		err := binder.Form()(postForm(url.Values{"count": {"many"}}), &letterForm{})
		require.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})

	t.Run("target", func(t *testing.T) {
		t.Parallel()
		var f letterForm
		require.ErrorIs(t, binder.Form()(postForm(url.Values{}), f), binder.ErrInvalidTarget)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	type filter struct {
		Category string `query:"category"`
		Search   string `query:"q"`
		Page     int
	}

	r := httptest.NewRequest(http.MethodGet, "/templates?category=career&q=thank+you&page=2", nil)
	var f filter
	require.NoError(t, binder.Query()(r, &f))
	assert.Equal(t, filter{Category: "career", Search: "thank you", Page: 2}, f)
}
