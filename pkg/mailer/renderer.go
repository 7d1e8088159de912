package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
)

//go:embed templates
var embedded embed.FS

// Templates returns the built-in templates: contact.md and layouts/base.html.
func Templates() fs.FS {
	sub, _ := fs.Sub(embedded, "templates")
	return sub
}

// Renderer turns markdown templates with front matter into HTML wrapped in
// a layout. Parsed templates and layouts are cached; rendered output is not.
type Renderer struct {
	fs          fs.FS
	md          goldmark.Markdown
	templateDir string
	layoutDir   string

	mu        sync.RWMutex
	templates map[string]*parsedTemplate
	layouts   map[string]*template.Template
}

type parsedTemplate struct {
	metadata map[string]any
	body     *texttemplate.Template
}

// RendererConfig sets where templates and layouts live in the file system.
type RendererConfig struct {
	TemplateDir string // default "."
	LayoutDir   string // default "layouts"
}

// RenderResult is a rendered template.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	// Text is the executed markdown, used as the plain text part.
	Text string
}

// NewRenderer reads templates from fsys with the default directories.
func NewRenderer(fsys fs.FS) *Renderer {
	return NewRendererWithConfig(fsys, RendererConfig{})
}

// NewRendererWithConfig reads templates from fsys using cfg.
func NewRendererWithConfig(fsys fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}
	return &Renderer{
		fs:          fsys,
		md:          goldmark.New(goldmark.WithExtensions(ButtonExtension())),
		templateDir: cfg.TemplateDir,
		layoutDir:   cfg.LayoutDir,
		templates:   make(map[string]*parsedTemplate),
		layouts:     make(map[string]*template.Template),
	}
}

// templateFuncs are available in markdown templates.
var templateFuncs = texttemplate.FuncMap{
	// quote prefixes every line with "> " so user text renders as a
	// blockquote and cannot start its own markdown blocks.
	"quote": func(s string) string {
		lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
		for i, l := range lines {
			lines[i] = "> " + l
		}
		return strings.Join(lines, "\n")
	},
}

// Render executes name with data and wraps the result in layout.
func (r *Renderer) Render(layout, name string, data any) (*RenderResult, error) {
	tpl, err := r.template(name)
	if err != nil {
		return nil, err
	}

	var md bytes.Buffer
	if err := tpl.body.Execute(&md, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	var body bytes.Buffer
	if err := r.md.Convert(md.Bytes(), &body); err != nil {
		return nil, fmt.Errorf("%w: %s: markdown: %v", ErrRenderFailed, name, err)
	}

	lt, err := r.layout(layout)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	err = lt.Execute(&out, map[string]any{
		"Content":  template.HTML(body.String()),
		"Metadata": tpl.metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: layout %s: %v", ErrRenderFailed, layout, err)
	}

	return &RenderResult{HTML: out.String(), Text: md.String(), Metadata: tpl.metadata}, nil
}

func (r *Renderer) template(name string) (*parsedTemplate, error) {
	r.mu.RLock()
	cached, ok := r.templates[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.templates[name]; ok {
		return cached, nil
	}

	raw, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}
	parsed, err := ParseTemplate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}
	body, err := texttemplate.New(name).Funcs(templateFuncs).Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	cached = &parsedTemplate{metadata: parsed.Metadata, body: body}
	r.templates[name] = cached
	return cached, nil
}

func (r *Renderer) layout(name string) (*template.Template, error) {
	r.mu.RLock()
	cached, ok := r.layouts[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.layouts[name]; ok {
		return cached, nil
	}

	raw, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}
	lt, err := template.New(name).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: layout %s: %v", ErrRenderFailed, name, err)
	}

	r.layouts[name] = lt
	return lt, nil
}
