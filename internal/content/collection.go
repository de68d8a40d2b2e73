// internal/content/collection.go
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Load walks dir for Markdown files, parses each one, and enforces the
// slug-uniqueness invariant across the whole collection. Any parse
// failure or duplicate slug aborts the load; the collection is either
// complete and consistent or absent.
func Load(dir, siteAuthor string) ([]*Post, error) {
	var posts []*Post
	seen := make(map[string]string)

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(info.Name()) != ".md" {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if !utf8.Valid(raw) {
			return fmt.Errorf("content file is not valid UTF-8: %s", path)
		}

		base := strings.TrimSuffix(info.Name(), filepath.Ext(info.Name()))
		post, err := ParsePost(path, raw, base, siteAuthor)
		if err != nil {
			return err
		}

		if first, ok := seen[post.Meta.Slug]; ok {
			return &DuplicateSlugError{Slug: post.Meta.Slug, First: first, Second: path}
		}
		seen[post.Meta.Slug] = path

		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}
