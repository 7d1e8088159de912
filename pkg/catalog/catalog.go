package catalog

import (
	"slices"
	"strings"
)

// Template is an immutable letter template.
type Template struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Body        string   `json:"template"`
	Preview     string   `json:"preview"`
}

// All returns every template in catalog order.
func All() []Template {
	return slices.Clone(templates)
}

// Get returns the template with the given id.
func Get(id string) (Template, error) {
	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, ErrTemplateNotFound
}

// ByCategory returns the templates of category c. CategoryAll returns every
// template.
func ByCategory(c Category) []Template {
	if c == CategoryAll {
		return All()
	}
	var out []Template
	for _, t := range templates {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// Search returns templates whose name, description or category contains q,
// ignoring case. An empty query matches everything.
func Search(q string) []Template {
	term := strings.ToLower(strings.TrimSpace(q))
	if term == "" {
		return All()
	}
	var out []Template
	for _, t := range templates {
		if strings.Contains(strings.ToLower(t.Name), term) ||
			strings.Contains(strings.ToLower(t.Description), term) ||
			strings.Contains(strings.ToLower(string(t.Category)), term) {
			out = append(out, t)
		}
	}
	return out
}

// Filter combines ByCategory and Search: a template must match both.
func Filter(c Category, q string) []Template {
	matches := Search(q)
	if c == CategoryAll {
		return matches
	}
	out := matches[:0]
	for _, t := range matches {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// IDs returns the ids of every template in catalog order.
func IDs() []string {
	ids := make([]string, len(templates))
	for i, t := range templates {
		ids[i] = t.ID
	}
	return ids
}
