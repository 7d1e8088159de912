package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/resignly"
	"github.com/dmitrymomot/resignly/pkg/catalog"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

func (h *Pages) sitemap(c resignly.Context) error {
	base := strings.TrimSuffix(h.views.Site.BaseURL, "/")
	set := urlset{XMLNS: sitemapNS}

	add := func(path, freq string, priority float64, mod time.Time) {
		u := sitemapURL{Loc: base + path, ChangeFreq: freq, Priority: priority}
		if !mod.IsZero() {
			u.LastMod = mod.Format(time.DateOnly)
		}
		set.URLs = append(set.URLs, u)
	}

	add("/", "weekly", 1.0, time.Time{})
	add("/templates", "weekly", 0.9, time.Time{})
	for _, id := range catalog.IDs() {
		add("/templates/"+id, "monthly", 0.8, time.Time{})
	}
	add("/blog", "weekly", 0.7, time.Time{})
	if h.posts != nil {
		for _, p := range h.posts.All() {
			add("/blog/"+p.Slug, "monthly", 0.6, p.Date)
		}
	}
	add("/contact", "yearly", 0.3, time.Time{})
	add("/privacy-policy", "yearly", 0.2, time.Time{})
	add("/terms-of-use", "yearly", 0.2, time.Time{})

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}
