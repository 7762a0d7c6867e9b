// Package etree renders XML site artifacts from slug index entries.
package etree

import (
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/pgrzesik/permalink"
)

// sitemapNamespace is the sitemaps.org urlset namespace.
const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapWriter renders a sitemap.xml urlset from slug index entries.
// Slugs are treated as opaque URL fragments; the writer never inspects
// or rewrites them.
type SitemapWriter struct {
	baseURL string
}

// NewSitemapWriter creates a SitemapWriter for the given site base URL.
// A trailing slash on the base URL is ignored.
func NewSitemapWriter(baseURL string) *SitemapWriter {
	return &SitemapWriter{baseURL: strings.TrimRight(baseURL, "/")}
}

// WriteSitemap writes one <url> element per entry. An empty slug maps
// to the site root.
func (w *SitemapWriter) WriteSitemap(out io.Writer, entries []*permalink.Entry) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNamespace)

	for _, e := range entries {
		u := urlset.CreateElement("url")

		loc := u.CreateElement("loc")
		if e.Slug == "" {
			loc.SetText(w.baseURL + "/")
		} else {
			loc.SetText(w.baseURL + "/" + e.Slug)
		}

		if !e.ScannedAt.IsZero() {
			u.CreateElement("lastmod").SetText(e.ScannedAt.UTC().Format("2006-01-02"))
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(out)
	return err
}
