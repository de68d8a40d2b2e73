// internal/scaffold/scaffold.go
package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"inkpress/internal/config"
	"inkpress/internal/content"
)

// CreateSite scaffolds a working site: configuration, the default
// theme, an archetype for new posts, and one sample post.
func CreateSite(name string) error {
	fmt.Println("Scaffolding new site in:", name)
	mkdir := func(path string) error { return os.MkdirAll(filepath.Join(name, path), 0755) }
	writeFile := func(path, content string) error {
		return os.WriteFile(filepath.Join(name, path), []byte(content), 0644)
	}

	dirs := []string{"content", "static/css", "templates/simple", "archetypes"}
	for _, dir := range dirs {
		if err := mkdir(dir); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	files := map[string]string{
		"site.yaml":                      siteYamlContent,
		"archetypes/post.md":             archetypePostContent,
		"content/hello-world.md":         samplePostContent,
		"static/css/style.css":           styleCSSContent,
		"templates/simple/layout.html":   layoutHTMLContent,
		"templates/simple/header.html":   headerHTMLContent,
		"templates/simple/footer.html":   footerHTMLContent,
		"templates/simple/home.html":     homeHTMLContent,
		"templates/simple/list.html":     listHTMLContent,
		"templates/simple/post.html":     postHTMLContent,
		"templates/simple/tag.html":      tagHTMLContent,
		"templates/simple/archives.html": archivesHTMLContent,
	}
	for path, body := range files {
		if err := writeFile(path, body); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}
	}

	fmt.Println("Site scaffolded. You can now:")
	fmt.Println("  cd", name)
	fmt.Println("  inkpress gen")
	fmt.Println("  inkpress serve")
	return nil
}

// CreatePost instantiates the post archetype with the given title and
// writes it into the content directory. New posts start as drafts.
func CreatePost(root, title, configPath string) error {
	site, err := config.Load(filepath.Join(root, configPath))
	if err != nil {
		return err
	}

	slug := content.Slugify(title)
	if slug == "" {
		return fmt.Errorf("title %q produces an empty slug", title)
	}

	path := filepath.Join(root, "content", slug+".md")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("content file already exists: %s", path)
	}

	archetypePath := filepath.Join(root, "archetypes", "post.md")
	tmplBytes, err := os.ReadFile(archetypePath)
	if err != nil {
		return fmt.Errorf("could not read archetype file %s: %w", archetypePath, err)
	}

	tmpl, err := template.New("archetype").Parse(string(tmplBytes))
	if err != nil {
		return fmt.Errorf("failed to parse archetype file %s: %w", archetypePath, err)
	}

	data := struct {
		Title  string
		Author string
		Slug   string
		Date   string
	}{
		Title:  title,
		Author: site.Author,
		Slug:   slug,
		Date:   time.Now().Format(time.RFC3339),
	}

	var output bytes.Buffer
	if err := tmpl.Execute(&output, data); err != nil {
		return fmt.Errorf("failed to execute archetype template: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, output.Bytes(), 0644); err != nil {
		return err
	}

	fmt.Println("Created:", path)
	return nil
}

// Default file contents for a fresh site.

const siteYamlContent = `website: https://example.com
author: Your Name
title: My Blog
description: A blog built with inkpress.
lang: en
timezone: UTC
template: simple
lightAndDarkMode: true
postsPerIndex: 4
postsPerPage: 4
scheduledPostMargin: 15m
showArchives: true
showBackButton: true
editPost:
  enabled: false
  text: Suggest changes
  url: https://github.com/example/blog/edit/main/content
dynamicOgImage: false
`

const archetypePostContent = `---
title: {{.Title}}
description: A new post.
author: {{.Author}}
pubDatetime: {{.Date}}
slug: {{.Slug}}
featured: false
draft: true
tags:
  - others
---

Write your post here.
`

const samplePostContent = `---
title: Hello, world
description: The first post on this site.
pubDatetime: 2024-01-15T09:00:00Z
slug: hello-world
featured: true
tags:
  - meta
---

Welcome to your new site. Edit ` + "`content/hello-world.md`" + ` or create a
new post with ` + "`inkpress new post \"My title\"`" + `.
`

const styleCSSContent = `body {
  max-width: 48rem;
  margin: 0 auto;
  padding: 1rem;
  font-family: system-ui, sans-serif;
  line-height: 1.6;
}
body[data-theme="auto"] {
  color-scheme: light dark;
}
header nav a { margin-right: 1rem; }
ul.post-list { list-style: none; padding: 0; }
ul.post-list li { margin-bottom: 1.5rem; }
ul.tags { list-style: none; padding: 0; }
ul.tags li { display: inline; margin-right: 0.5rem; }
.wip { color: #b35900; }
.pagination a { margin-right: 1rem; }
`

const layoutHTMLContent = `{{define "main"}}<!DOCTYPE html>
<html lang="{{.Site.Lang}}">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} | {{.Site.Title}}</title>
  <meta name="description" content="{{.Description}}">
  {{if .Canonical}}<link rel="canonical" href="{{.Canonical}}">{{end}}
  <link rel="alternate" type="application/rss+xml" href="{{.BaseHref}}rss.xml">
  <link rel="stylesheet" href="{{.BaseHref}}css/style.css">
</head>
<body{{if .Site.LightAndDarkMode}} data-theme="auto"{{end}}>
{{template "header" .}}
<main>
{{template "content" .}}
</main>
{{template "footer" .}}
</body>
</html>
{{end}}
`

const headerHTMLContent = `{{define "header"}}
<header>
  <a class="site-title" href="{{.BaseHref}}">{{.Site.Title}}</a>
  <nav>
    <a href="{{.BaseHref}}posts/">Posts</a>
    {{if .Site.ShowArchives}}<a href="{{.BaseHref}}archives/">Archives</a>{{end}}
  </nav>
</header>
{{end}}
`

const footerHTMLContent = `{{define "footer"}}
<footer>
  <p>&copy; {{.Site.Author}} &middot; <a href="{{.BaseHref}}rss.xml">RSS</a></p>
</footer>
{{end}}
`

const homeHTMLContent = `{{define "content"}}
<section>
  <h1>{{.Site.Title}}</h1>
  <p>{{.Site.Description}}</p>
</section>
{{if .Featured}}
<section>
  <h2>Featured</h2>
  <ul class="post-list">
    {{range .Featured}}
    <li>
      <a href="{{$.BaseHref}}{{.Href}}">{{.Title}}</a>
      <time datetime="{{.Published.Format "2006-01-02"}}">{{.Published.Format "Jan 2, 2006"}}</time>
      <p>{{.Description}}</p>
    </li>
    {{end}}
  </ul>
</section>
{{end}}
{{if .Posts}}
<section>
  <h2>Recent posts</h2>
  <ul class="post-list">
    {{range .Posts}}
    <li>
      <a href="{{$.BaseHref}}{{.Href}}">{{.Title}}</a>
      <time datetime="{{.Published.Format "2006-01-02"}}">{{.Published.Format "Jan 2, 2006"}}</time>
      {{if .WorkInProgress}}<span class="wip">WIP</span>{{end}}
      <p>{{.Description}}</p>
    </li>
    {{end}}
  </ul>
  <p><a href="{{.BaseHref}}posts/">All posts &rarr;</a></p>
</section>
{{end}}
{{end}}
`

const listHTMLContent = `{{define "content"}}
<h1>Posts{{if gt .TotalPages 1}} &mdash; page {{.Page}} of {{.TotalPages}}{{end}}</h1>
<ul class="post-list">
  {{range .Posts}}
  <li>
    <a href="{{$.BaseHref}}{{.Href}}">{{.Title}}</a>
    <time datetime="{{.Published.Format "2006-01-02"}}">{{.Published.Format "Jan 2, 2006"}}</time>
    {{if .WorkInProgress}}<span class="wip">WIP</span>{{end}}
    <p>{{.Description}}</p>
  </li>
  {{end}}
</ul>
<nav class="pagination">
  {{if .PrevHref}}<a href="{{.BaseHref}}{{.PrevHref}}">&larr; Newer</a>{{end}}
  {{if .NextHref}}<a href="{{.BaseHref}}{{.NextHref}}">Older &rarr;</a>{{end}}
</nav>
{{end}}
`

const postHTMLContent = `{{define "content"}}
<article>
  {{if .Site.ShowBackButton}}<a class="back" href="{{.BaseHref}}posts/">&larr; Back to posts</a>{{end}}
  <h1>{{.Post.Title}}</h1>
  <p class="meta">
    {{.Post.Author}} &middot;
    <time datetime="{{.Post.Published.Format "2006-01-02"}}">{{.Post.Published.Format "Jan 2, 2006"}}</time>
    {{with .Post.Modified}}&middot; updated {{.Format "Jan 2, 2006"}}{{end}}
  </p>
  {{if .Post.WorkInProgress}}<p class="wip">This post is a work in progress.</p>{{end}}
  {{.Post.Content}}
  {{if .Post.Tags}}
  <ul class="tags">
    {{range .Post.Tags}}<li><a href="{{$.BaseHref}}{{.Href}}">#{{.Name}}</a></li>{{end}}
  </ul>
  {{end}}
  {{if .Post.EditHref}}<p><a href="{{.Post.EditHref}}">{{.Site.EditPost.Text}}</a></p>{{end}}
</article>
{{end}}
`

const tagHTMLContent = `{{define "content"}}
<h1>#{{.Tag}}</h1>
<ul class="post-list">
  {{range .Posts}}
  <li>
    <a href="{{$.BaseHref}}{{.Href}}">{{.Title}}</a>
    <time datetime="{{.Published.Format "2006-01-02"}}">{{.Published.Format "Jan 2, 2006"}}</time>
  </li>
  {{end}}
</ul>
{{end}}
`

const archivesHTMLContent = `{{define "content"}}
<h1>Archives</h1>
{{range .Years}}
<section>
  <h2>{{.Year}}</h2>
  <ul>
    {{range .Posts}}
    <li><time datetime="{{.Published.Format "2006-01-02"}}">{{.Published.Format "Jan 2"}}</time> <a href="{{$.BaseHref}}{{.Href}}">{{.Title}}</a></li>
    {{end}}
  </ul>
</section>
{{end}}
{{end}}
`
