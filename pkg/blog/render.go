package blog

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/dmitrymomot/resignly/pkg/sanitizer"
)

// Renderer converts post markdown to sanitized HTML.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer returns a renderer with GitHub flavored markdown and
// generated heading ids.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Typographer),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render returns the HTML of markdown. Raw HTML in the source is dropped by
// goldmark and the output is passed through the article policy.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("blog: render markdown: %w", err)
	}
	return sanitizer.SanitizeArticle(buf.String()), nil
}
