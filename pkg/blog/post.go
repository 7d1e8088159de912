package blog

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/resignly/pkg/content"
	"github.com/dmitrymomot/resignly/pkg/slug"
)

// Defaults applied to missing front matter fields.
const (
	DefaultTitle    = "Untitled"
	DefaultAuthor   = "Anonymous"
	DefaultCategory = "General"

	WordsPerMinute = 200
)

// Post is a parsed blog post.
type Post struct {
	Slug        string
	Title       string
	Description string
	Date        time.Time
	Author      string
	ReadTime    string
	Tags        []string
	Category    string
	Featured    bool
	Image       string
	// Content is the markdown body.
	Content string
}

type frontMatter struct {
	Slug        string   `yaml:"slug"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags"`
	Category    string   `yaml:"category"`
	Featured    bool     `yaml:"featured"`
	Image       string   `yaml:"image"`
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"January 2, 2006",
}

// Parse builds a post from f. now is used when the front matter has no date.
func Parse(f content.File, now time.Time) (Post, error) {
	meta, body, err := splitFrontMatter(f.Data)
	if err != nil {
		return Post{}, fmt.Errorf("%s: %w", f.Name, err)
	}

	var fm frontMatter
	if len(bytes.TrimSpace(meta)) > 0 {
		if err := yaml.Unmarshal(meta, &fm); err != nil {
			return Post{}, fmt.Errorf("%w: %s: %v", ErrInvalidFrontMatter, f.Name, err)
		}
	}

	date := now
	if s := strings.TrimSpace(fm.Date); s != "" {
		date, err = parseDate(s)
		if err != nil {
			return Post{}, fmt.Errorf("%w: %s: date %q", ErrInvalidFrontMatter, f.Name, s)
		}
	}

	p := Post{
		Slug:        slug.Make(orDefault(fm.Slug, f.Slug())),
		Title:       orDefault(fm.Title, DefaultTitle),
		Description: strings.TrimSpace(fm.Description),
		Date:        date,
		Author:      orDefault(fm.Author, DefaultAuthor),
		Tags:        cleanTags(fm.Tags),
		Category:    orDefault(fm.Category, DefaultCategory),
		Featured:    fm.Featured,
		Image:       strings.TrimSpace(fm.Image),
		Content:     string(body),
	}
	if p.Slug == "" {
		return Post{}, fmt.Errorf("%w: %s: empty slug", ErrInvalidFrontMatter, f.Name)
	}
	p.ReadTime = ReadTime(p.Content)

	return p, nil
}

// ReadTime formats the reading time of markdown as "N min read".
func ReadTime(markdown string) string {
	words := len(strings.Fields(markdown))
	minutes := max((words+WordsPerMinute-1)/WordsPerMinute, 1)
	return fmt.Sprintf("%d min read", minutes)
}

// HasTag reports whether the post carries tag, ignoring case.
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// splitFrontMatter separates the YAML block delimited by "---" lines from
// the body. Content without an opening delimiter is all body.
func splitFrontMatter(data []byte) (meta, body []byte, err error) {
	delim := []byte("---")
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	if !bytes.HasPrefix(data, delim) {
		return nil, data, nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(data, delim), "\r\n")
	end := closingDelimiter(rest)
	if end == -1 {
		return nil, nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontMatter)
	}

	meta = rest[:end]
	body = rest[end+len(delim):]
	switch {
	case bytes.HasPrefix(body, []byte("\r\n")):
		body = body[2:]
	case bytes.HasPrefix(body, []byte("\n")):
		body = body[1:]
	}
	return meta, body, nil
}

// closingDelimiter finds a "---" at the start of a line.
func closingDelimiter(b []byte) int {
	if bytes.HasPrefix(b, []byte("---")) {
		return 0
	}
	if i := bytes.Index(b, []byte("\n---")); i >= 0 {
		return i + 1
	}
	return -1
}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
