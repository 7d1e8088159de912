package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Template is a parsed email template: YAML metadata and a markdown body.
type Template struct {
	Metadata map[string]any
	Body     string
}

// ParseTemplate splits content into front matter and body. Content that
// does not start with "---" has no metadata.
func ParseTemplate(content []byte) (*Template, error) {
	delim := []byte("---")
	if !bytes.HasPrefix(content, delim) {
		return &Template{Metadata: map[string]any{}, Body: string(content)}, nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, delim), "\r\n")
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	end := bytes.Index(rest, delim)
	if end == -1 {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	body := rest[end+len(delim):]
	body = bytes.TrimPrefix(body, []byte("\r"))
	body = bytes.TrimPrefix(body, []byte("\n"))

	meta := map[string]any{}
	if raw := bytes.TrimSpace(rest[:end]); len(raw) > 0 {
		if err := yaml.Unmarshal(raw, &meta); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return &Template{Metadata: meta, Body: string(body)}, nil
}

// Subject returns the "Subject" metadata value, or "" when absent.
func (t *Template) Subject() string {
	s, _ := t.Metadata["Subject"].(string)
	return s
}
