// internal/builder/feed.go
package builder

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"

	"inkpress/internal/config"
	"inkpress/internal/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// writeRSS emits an RSS 2.0 feed of the visible posts, newest first.
func writeRSS(path string, site config.SiteConfig, posts []*content.Post) error {
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		postURL := site.URLFor("posts", p.Meta.Slug) + "/"
		items = append(items, rssItem{
			Title:       p.Meta.Title,
			Link:        postURL,
			Description: p.Meta.Description,
			PubDate:     p.Meta.PubDatetime.Format(time.RFC1123Z),
			GUID:        postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       site.Title,
			Link:        site.URLFor(),
			Description: site.Description,
			Items:       items,
		},
	}
	return writeXML(path, feed)
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// writeSitemap emits a sitemap covering the home page and every visible
// post, with the effective date as lastmod.
func writeSitemap(path string, site config.SiteConfig, posts []*content.Post) error {
	urls := []sitemapURL{
		{Loc: site.URLFor() + "/"},
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     site.URLFor("posts", p.Meta.Slug) + "/",
			LastMod: p.Effective().Format("2006-01-02"),
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	return writeXML(path, sitemap)
}

func writeXML(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(f)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
