// internal/builder/builder.go
package builder

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"inkpress/internal/config"
	"inkpress/internal/content"
	"inkpress/internal/util"
)

// BuildSite loads the content collection, applies the visibility filter,
// and renders the whole site into outputDir: one page per post, the
// paginated home and listing pages, tag pages, the archives page, the
// RSS feed, and the sitemap. It returns the number of pages written.
func BuildSite(outputDir, contentDir, staticDir, templateDir string, site config.SiteConfig, opts BuildOptions) (int, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, err
	}

	if opts.CleanDestination {
		fmt.Println("Cleaning destination directory...")
		entries, err := os.ReadDir(outputDir)
		if err != nil {
			return 0, err
		}
		for _, entry := range entries {
			if err := os.RemoveAll(filepath.Join(outputDir, entry.Name())); err != nil {
				return 0, err
			}
		}
	}

	tmpl, err := LoadTemplates(templateDir, site.Template)
	if err != nil {
		return 0, err
	}

	posts, err := content.Load(contentDir, site.Author)
	if err != nil {
		return 0, err
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var visible []*content.Post
	if opts.IncludeDrafts {
		visible = content.Order(posts)
	} else {
		visible = content.Visible(posts, now, site.ScheduledPostMargin.Std())
	}

	views := make([]*PostView, len(visible))
	viewOf := make(map[*content.Post]*PostView, len(visible))
	for i, p := range visible {
		v, err := newPostView(p, contentDir, site, opts)
		if err != nil {
			return 0, err
		}
		views[i] = v
		viewOf[p] = v
	}

	pagesWritten := 0
	emit := func(t *template.Template, relPath string, data PageData) error {
		data.Site = site
		data.BaseHref = util.ComputeBaseHref(relPath)
		if err := renderPage(t, filepath.Join(outputDir, relPath), data); err != nil {
			return fmt.Errorf("failed to render %s: %w", relPath, err)
		}
		pagesWritten++
		return nil
	}

	// Post pages.
	for _, v := range views {
		data := PageData{
			Title:       v.Title,
			Description: v.Description,
			Canonical:   v.Canonical,
			Post:        v,
		}
		if err := emit(tmpl.Post, filepath.Join("posts", v.Slug, "index.html"), data); err != nil {
			return 0, err
		}
	}

	// Home page: featured posts plus the most recent non-featured ones.
	featured := make([]*PostView, 0)
	recent := make([]*PostView, 0, site.PostsPerIndex)
	for _, v := range views {
		if v.Featured {
			featured = append(featured, v)
		} else if len(recent) < site.PostsPerIndex {
			recent = append(recent, v)
		}
	}
	home := PageData{
		Title:       site.Title,
		Description: site.Description,
		Canonical:   site.URLFor() + "/",
		Posts:       recent,
		Featured:    featured,
	}
	if err := emit(tmpl.Home, "index.html", home); err != nil {
		return 0, err
	}

	// Listing pages, paginated. Page 1 lives at posts/, page n at
	// posts/n/, so pagination links survive rebuilds unchanged as long
	// as the ordering does.
	pages := content.Paginate(visible, site.PostsPerPage)
	for i, page := range pages {
		pageViews := make([]*PostView, len(page))
		for j, p := range page {
			pageViews[j] = viewOf[p]
		}
		data := PageData{
			Title:      "Posts",
			Posts:      pageViews,
			Page:       i + 1,
			TotalPages: len(pages),
		}
		relPath := filepath.Join("posts", "index.html")
		if i > 0 {
			relPath = filepath.Join("posts", strconv.Itoa(i+1), "index.html")
			data.PrevHref = listHref(i)
		}
		if i+1 < len(pages) {
			data.NextHref = listHref(i + 2)
		}
		if err := emit(tmpl.List, relPath, data); err != nil {
			return 0, err
		}
	}

	// Tag pages.
	for _, tag := range content.Tags(visible) {
		tagged := content.ByTag(visible, tag)
		tagViews := make([]*PostView, len(tagged))
		for j, p := range tagged {
			tagViews[j] = viewOf[p]
		}
		data := PageData{
			Title: "Tag: " + tag,
			Tag:   tag,
			Posts: tagViews,
		}
		relPath := filepath.Join("tags", content.Slugify(tag), "index.html")
		if err := emit(tmpl.Tag, relPath, data); err != nil {
			return 0, err
		}
	}

	// Archives page, grouped by publish year.
	if site.ShowArchives {
		var years []YearView
		for _, g := range content.ByYear(visible) {
			yv := YearView{Year: g.Year, Posts: make([]*PostView, len(g.Posts))}
			for j, p := range g.Posts {
				yv.Posts[j] = viewOf[p]
			}
			years = append(years, yv)
		}
		data := PageData{Title: "Archives", Years: years}
		if err := emit(tmpl.Archives, filepath.Join("archives", "index.html"), data); err != nil {
			return 0, err
		}
	}

	if err := writeRSS(filepath.Join(outputDir, "rss.xml"), site, visible); err != nil {
		return 0, err
	}
	if err := writeSitemap(filepath.Join(outputDir, "sitemap.xml"), site, visible); err != nil {
		return 0, err
	}

	if err := copyStaticAssets(staticDir, outputDir); err != nil {
		return 0, err
	}
	return pagesWritten, nil
}

func listHref(page int) string {
	if page <= 1 {
		return "posts/"
	}
	return "posts/" + strconv.Itoa(page) + "/"
}

// newPostView renders a post body and assembles the fields templates
// need.
func newPostView(p *content.Post, contentDir string, site config.SiteConfig, opts BuildOptions) (*PostView, error) {
	htmlOut, err := renderMarkdown(p.Body, opts.Unsafe)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Path, err)
	}

	tags := make([]TagView, len(p.Meta.Tags))
	for i, t := range p.Meta.Tags {
		tags[i] = TagView{Name: t, Href: "tags/" + content.Slugify(t) + "/"}
	}

	canonical := p.Meta.CanonicalURL
	if canonical == "" {
		canonical = site.URLFor("posts", p.Meta.Slug) + "/"
	}
	ogImage := p.Meta.OGImage
	if ogImage == "" {
		ogImage = site.OGImage
	}

	v := &PostView{
		Title:          p.Meta.Title,
		Description:    p.Meta.Description,
		Author:         p.Meta.Author,
		Slug:           p.Meta.Slug,
		Href:           "posts/" + p.Meta.Slug + "/",
		Tags:           tags,
		Featured:       p.Meta.Featured,
		WorkInProgress: p.Meta.WorkInProgress,
		Published:      p.Meta.PubDatetime,
		Modified:       p.Meta.ModDatetime,
		Canonical:      canonical,
		OGImage:        ogImage,
		Content:        template.HTML(htmlOut),
	}

	if site.EditPost.Enabled && site.EditPost.URL != "" && !p.Meta.HideEditPost {
		rel, err := filepath.Rel(contentDir, p.Path)
		if err == nil {
			v.EditHref = strings.TrimRight(site.EditPost.URL, "/") + "/" + filepath.ToSlash(rel)
		}
	}
	return v, nil
}

// renderPage executes the page-kind template and writes the output file.
// "main" is the name defined by the theme's layout.
func renderPage(tmpl *template.Template, outPath string, data PageData) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}
	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer outFile.Close()
	return tmpl.ExecuteTemplate(outFile, "main", data)
}

// copyStaticAssets copies files from the static directory into the
// output directory, preserving layout.
func copyStaticAssets(staticDir, outputDir string) error {
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		return nil
	}
	// Extensions considered static assets; extend as themes need.
	allowedExts := map[string]bool{
		".css": true, ".js": true, ".txt": true, ".svg": true, ".ico": true,
		".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
		".woff": true, ".woff2": true,
	}
	return filepath.Walk(staticDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !allowedExts[filepath.Ext(info.Name())] {
			return nil
		}

		rel, err := filepath.Rel(staticDir, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(outputDir, rel)
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		dst, err := os.Create(dest)
		if err != nil {
			return err
		}
		defer dst.Close()
		_, err = io.Copy(dst, src)
		return err
	})
}
