package views_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resignly/pkg/blog"
	"github.com/dmitrymomot/resignly/pkg/catalog"
	"github.com/dmitrymomot/resignly/pkg/export"
	"github.com/dmitrymomot/resignly/pkg/letter"
	"github.com/dmitrymomot/resignly/views"
)

var site = views.Site{Name: "Resignly", BaseURL: "https://resignly.test/", Year: 2025}

func TestPage_Meta(t *testing.T) {
	t.Parallel()

	p := views.Page{Site: site, Meta: views.Meta{Title: "Templates", Path: "/templates"}}
	assert.Equal(t, "https://resignly.test/templates", p.Canonical())
	assert.Equal(t, "Templates | Resignly", p.FullTitle())

	p.Meta.Title = ""
	assert.Equal(t, "Resignly", p.FullTitle())
}

func TestRenderer_Pages(t *testing.T) {
	t.Parallel()

	r, err := views.New()
	require.NoError(t, err)

	for _, name := range []string{"home", "templates", "generator", "blog", "blog_post", "contact", "privacy", "terms", "error"} {
		assert.True(t, r.HasPage(name), name)
	}
	assert.False(t, r.HasPage("missing"))

	tpl, err := catalog.Get("standard-resignation")
	require.NoError(t, err)

	t.Run("home", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := r.Page("home", views.Page{
			Site: site,
			Meta: views.Meta{Path: "/"},
			Data: views.Home{
				Grid: views.Grid{Templates: catalog.All(), Categories: catalog.Categories()},
				FAQ:  []views.FAQ{{Question: "Is it free?", Answer: "Yes."}},
			},
		}).Render(context.Background(), &buf)
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "<title>Resignly</title>")
		assert.Contains(t, out, `href="https://resignly.test/"`)
		assert.Contains(t, out, `id="template-grid"`)
		assert.Contains(t, out, "/templates/standard-resignation")
		assert.Contains(t, out, "Is it free?")
		assert.Contains(t, out, "Standard Resignation")
	})

	t.Run("generator", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := r.Page("generator", views.Page{
			Site: site,
			Meta: views.Meta{Title: tpl.Name, Path: "/templates/" + tpl.ID},
			Data: views.Generator{
				Template: tpl,
				Form: views.LetterForm{
					TemplateID: tpl.ID,
					Fields: []views.FormField{
						{Name: letter.FieldEmployeeName, Label: "Your full name", Type: "text", Value: "Jane <Doe>", Required: true, Error: "Name is required"},
						{Name: letter.FieldCustomMessage, Label: "Personal message", Type: "textarea"},
					},
				},
				Preview:       views.Preview{Text: "Dear Sam,", Stats: letter.StatsOf("Dear Sam,")},
				Formats:       export.Formats(),
				PrivacyNotice: letter.PrivacyNotice,
			},
		}).Render(context.Background(), &buf)
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, `name="templateId" value="standard-resignation"`)
		assert.Contains(t, out, "Jane &lt;Doe&gt;")
		assert.Contains(t, out, `id="error-employeeName"`)
		assert.Contains(t, out, "Name is required")
		assert.Contains(t, out, "<textarea")
		assert.Contains(t, out, `data-export-url="/letter/export/pdf"`)
		assert.Contains(t, out, `data-export-url="/letter/export/copy"`)
		assert.Contains(t, out, "Dear Sam,")
	})

	t.Run("blog post", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		post := blog.Post{Slug: "how-to-resign", Title: "How to resign", Author: "Ann", Category: "Guides", ReadTime: "2 min read", Date: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), Tags: []string{"tips"}}
		err := r.Page("blog_post", views.Page{
			Site: site,
			Data: views.BlogPost{Post: post, HTML: "<p><strong>Be kind</strong></p>"},
		}).Render(context.Background(), &buf)
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "<p><strong>Be kind</strong></p>")
		assert.Contains(t, out, "February 3, 2025")
		assert.Contains(t, out, `datetime="2025-02-03"`)
		assert.Contains(t, out, "#tips")
	})

	t.Run("blog pagination", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := r.Page("blog", views.Page{
			Site: site,
			Data: views.BlogList{Page: 2, Pages: 3, Category: "Guides"},
		}).Render(context.Background(), &buf)
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "Page 2 of 3")
		assert.Contains(t, out, `rel="prev"`)
		assert.Contains(t, out, `rel="next"`)
		assert.Contains(t, out, "No posts found.")
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := r.Page("error", views.Page{
			Site: site,
			Data: views.Error{Code: 404, Title: "Not Found", Message: "Template not found", RequestID: "req-1"},
		}).Render(context.Background(), &buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Template not found")
		assert.Contains(t, buf.String(), "req-1")
	})
}

func TestRenderer_Partials(t *testing.T) {
	t.Parallel()

	r := views.MustNew()

	tests := []struct {
		name     string
		data     any
		contains []string
	}{
		{
			name:     "letter_preview",
			data:     views.Preview{Text: "Hello", Stats: letter.Stats{Words: 1, Characters: 5, ReadingTime: 1}},
			contains: []string{`id="letter-preview"`, "Hello", `id="letter-stats"`, "1 min"},
		},
		{
			name:     "field_error",
			data:     views.FieldError{Name: letter.FieldCompanyName, Error: "Company name is required", OOB: true},
			contains: []string{`id="error-companyName"`, `hx-swap-oob="true"`, "Company name is required"},
		},
		{
			name:     "validation_summary",
			data:     views.Validation{Errors: []string{"Employee name is required"}},
			contains: []string{`id="validation-summary"`, "<li>Employee name is required</li>"},
		},
		{
			name:     "validation_summary",
			data:     views.Validation{Valid: true},
			contains: []string{"ready to export"},
		},
		{
			name:     "contact_form",
			data:     views.Contact{Sent: true, Reference: "abc"},
			contains: []string{"Reference: abc"},
		},
		{
			name:     "contact_form",
			data:     views.Contact{Errors: map[string]string{"email": "Email is required"}},
			contains: []string{"Email is required", `hx-post="/contact"`},
		},
		{
			name:     "error_toast",
			data:     views.Error{Title: "Conflict", Message: "Export already in progress"},
			contains: []string{`hx-swap-oob="beforeend:#toasts"`, "Export already in progress"},
		},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		require.NoError(t, r.Partial(tt.name, tt.data).Render(context.Background(), &buf), tt.name)
		for _, want := range tt.contains {
			assert.Contains(t, buf.String(), want, tt.name)
		}
	}
}

func TestRenderer_UnknownView(t *testing.T) {
	t.Parallel()

	r := views.MustNew()
	var buf bytes.Buffer
	require.ErrorIs(t, r.Page("missing", views.Page{}).Render(context.Background(), &buf), views.ErrUnknownView)
	require.ErrorIs(t, r.Partial("missing", nil).Render(context.Background(), &buf), views.ErrUnknownView)
}
