// Package assets embeds the static files, the bundled blog posts and the FAQ
// shown on the home page.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/resignly/views"
)

// BlogDir is the directory of the bundled posts inside Blog.
const BlogDir = "blog"

//go:embed static
var static embed.FS

//go:embed blog/*.md
var blog embed.FS

//go:embed faq.yaml
var faq []byte

// Static returns the files served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Blog returns the bundled blog posts under BlogDir.
func Blog() fs.FS {
	return blog
}

// FAQ parses the bundled questions.
func FAQ() ([]views.FAQ, error) {
	var items []views.FAQ
	if err := yaml.Unmarshal(faq, &items); err != nil {
		return nil, fmt.Errorf("assets: parse faq: %w", err)
	}
	return items, nil
}
