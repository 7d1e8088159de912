package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resignly/pkg/sanitizer"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"script", `<p>Hello</p><script>alert('xss')</script>`, "Hello"},
		{"tags", `<p>Hello <strong>world</strong></p>`, "Hello world"},
		{"event handler", `<img src="x" onerror="alert('xss')">`, ""},
		{"javascript url", `<a href="javascript:alert('xss')">click</a>`, "click"},
		{"ampersand", "Smith & Sons", "Smith & Sons"},
		{"apostrophe", "O'Brien", "O'Brien"},
		{"newlines", "line one\nline two", "line one\nline two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.StripHTML(tt.in))
		})
	}
}

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<p>Hello</p>", sanitizer.SanitizeHTML(`<p>Hello</p><script>alert(1)</script>`))
	assert.Equal(t, `<p><strong>Bold</strong> and <em>italic</em></p>`,
		sanitizer.SanitizeHTML(`<p><strong>Bold</strong> and <em>italic</em></p>`))
	assert.Equal(t, `<a href="https://example.com" rel="nofollow">link</a>`,
		sanitizer.SanitizeHTML(`<a href="https://example.com">link</a>`))
}

func TestSanitizeArticle(t *testing.T) {
	t.Parallel()

	out := sanitizer.SanitizeArticle(`<h2>Giving notice</h2><p onclick="x()">Two weeks.</p><script>bad()</script>`)
	assert.Contains(t, out, "<h2>Giving notice</h2>")
	assert.Contains(t, out, "<p>Two weeks.</p>")
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "onclick")
}

func TestSanitizeHTMLCustomNilPolicy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<b>x</b>", sanitizer.SanitizeHTMLCustom("<b>x</b>", nil))
}

func TestSanitizeStruct(t *testing.T) {
	t.Parallel()

	type inner struct {
		Note string `sanitize:"trim"`
	}
	type form struct {
		Name    string `sanitize:"text,trim"`
		Email   string `sanitize:"email"`
		Subject string `sanitize:"single_line"`
		Raw     string
		Skip    string `sanitize:"-"`
		Inner   inner
		Ptr     *inner
	}

	f := form{
		Name:    "  <b>Jane</b>\x07 ",
		Email:   " Jane@Example.COM ",
		Subject: "Hello\n  there",
		Raw:     " <b>raw</b> ",
		Skip:    " <i>skip</i> ",
		Inner:   inner{Note: "  note "},
		Ptr:     &inner{Note: " ptr "},
	}
	require.NoError(t, sanitizer.SanitizeStruct(&f))

	assert.Equal(t, "Jane", f.Name)
	assert.Equal(t, "jane@example.com", f.Email)
	assert.Equal(t, "Hello there", f.Subject)
	assert.Equal(t, " <b>raw</b> ", f.Raw)
	assert.Equal(t, " <i>skip</i> ", f.Skip)
	assert.Equal(t, "note", f.Inner.Note)
	assert.Equal(t, "ptr", f.Ptr.Note)

	require.ErrorIs(t, sanitizer.SanitizeStruct(f), sanitizer.ErrInvalidTarget)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	sanitizer.Register("shout", func(s string) string { return s + "!" })
	type form struct {
		V string `sanitize:"trim,shout"`
	}
	f := form{V: " hi "}
	require.NoError(t, sanitizer.SanitizeStruct(&f))
	assert.Equal(t, "hi!", f.V)
}
