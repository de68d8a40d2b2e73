// internal/builder/templates.go
package builder

import (
	"fmt"
	"html/template"
	"path/filepath"
)

// Templates holds one parsed template set per page kind. Every set
// shares the theme's layout, header, and footer; the kind file defines
// the "content" block the layout invokes.
type Templates struct {
	Home     *template.Template
	List     *template.Template
	Post     *template.Template
	Tag      *template.Template
	Archives *template.Template
}

// LoadTemplates parses the theme directory. A theme must provide
// layout.html, header.html, footer.html, and one file per page kind
// (home, list, post, tag, archives).
func LoadTemplates(templateDir, name string) (*Templates, error) {
	dir := filepath.Join(templateDir, name)

	base, err := template.ParseFiles(
		filepath.Join(dir, "layout.html"),
		filepath.Join(dir, "header.html"),
		filepath.Join(dir, "footer.html"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme %q: %w", name, err)
	}

	load := func(kind string) (*template.Template, error) {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		t, err = t.ParseFiles(filepath.Join(dir, kind+".html"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse theme %q page %s: %w", name, kind, err)
		}
		return t, nil
	}

	tmpl := &Templates{}
	for kind, dst := range map[string]**template.Template{
		"home":     &tmpl.Home,
		"list":     &tmpl.List,
		"post":     &tmpl.Post,
		"tag":      &tmpl.Tag,
		"archives": &tmpl.Archives,
	} {
		if *dst, err = load(kind); err != nil {
			return nil, err
		}
	}
	return tmpl, nil
}
