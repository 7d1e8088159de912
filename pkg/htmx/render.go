package htmx

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Renderable is anything that writes HTML, such as a templ.Component.
type Renderable interface {
	Render(ctx context.Context, w io.Writer) error
}

// Config collects response headers and out-of-band fragments for one
// htmx response.
type Config struct {
	OOBComponents []Renderable
	Retarget      string
	Reswap        SwapStrategy
	PushURL       string
	ReplaceURL    string
	Refresh       bool

	triggers          []trigger
	triggersAfterSwap []trigger
}

type trigger struct {
	name   string
	detail any
}

// RenderOption configures a Config.
type RenderOption func(*Config)

// NewConfig applies opts to an empty Config.
func NewConfig(opts ...RenderOption) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ApplyHeaders writes the configured headers to w. Triggers without detail
// are sent as a comma-separated list; once any trigger has a detail the
// header becomes a JSON object.
func (c *Config) ApplyHeaders(w http.ResponseWriter) {
	if c == nil {
		return
	}
	h := w.Header()

	if c.Retarget != "" {
		h.Set(HeaderHXRetarget, c.Retarget)
	}
	if c.Reswap != "" {
		h.Set(HeaderHXReswap, string(c.Reswap))
	}
	if c.PushURL != "" {
		h.Set(HeaderHXPushURL, c.PushURL)
	}
	if c.ReplaceURL != "" {
		h.Set(HeaderHXReplaceURL, c.ReplaceURL)
	}
	if v := encodeTriggers(c.triggers); v != "" {
		h.Set(HeaderHXTrigger, v)
	}
	if v := encodeTriggers(c.triggersAfterSwap); v != "" {
		h.Set(HeaderHXTriggerAfterSwap, v)
	}
	if c.Refresh {
		h.Set(HeaderHXRefresh, "true")
	}
}

func encodeTriggers(ts []trigger) string {
	if len(ts) == 0 {
		return ""
	}

	plain := true
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.name
		if t.detail != nil {
			plain = false
		}
	}
	if plain {
		return strings.Join(names, ", ")
	}

	obj := make(map[string]any, len(ts))
	for _, t := range ts {
		if t.detail == nil {
			obj[t.name] = true
			continue
		}
		obj[t.name] = t.detail
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return strings.Join(names, ", ")
	}
	return string(b)
}

// WithOOB appends out-of-band fragments rendered after the main component.
func WithOOB(components ...Renderable) RenderOption {
	return func(c *Config) {
		c.OOBComponents = append(c.OOBComponents, components...)
	}
}

// WithRetarget sets HX-Retarget.
func WithRetarget(selector string) RenderOption {
	return func(c *Config) {
		c.Retarget = selector
	}
}

// WithReswap sets HX-Reswap.
func WithReswap(strategy SwapStrategy) RenderOption {
	return func(c *Config) {
		c.Reswap = strategy
	}
}

// WithPushURL sets HX-Push-Url.
func WithPushURL(url string) RenderOption {
	return func(c *Config) {
		c.PushURL = url
	}
}

// WithReplaceURL sets HX-Replace-Url.
func WithReplaceURL(url string) RenderOption {
	return func(c *Config) {
		c.ReplaceURL = url
	}
}

// WithTrigger fires events on the client as soon as the response arrives.
func WithTrigger(events ...string) RenderOption {
	return func(c *Config) {
		for _, e := range events {
			c.triggers = append(c.triggers, trigger{name: e})
		}
	}
}

// WithTriggerDetail fires event with detail as its event.detail.
func WithTriggerDetail(event string, detail any) RenderOption {
	return func(c *Config) {
		c.triggers = append(c.triggers, trigger{name: event, detail: detail})
	}
}

// WithTriggerAfterSwap fires events after the new content is swapped in.
func WithTriggerAfterSwap(events ...string) RenderOption {
	return func(c *Config) {
		for _, e := range events {
			c.triggersAfterSwap = append(c.triggersAfterSwap, trigger{name: e})
		}
	}
}

// WithRefresh makes the client reload the page.
func WithRefresh() RenderOption {
	return func(c *Config) {
		c.Refresh = true
	}
}
