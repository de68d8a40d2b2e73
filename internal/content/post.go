// internal/content/post.go
package content

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Metadata is the typed frontmatter record for one post. Decoding is
// strict: unknown keys and missing required fields both fail the parse,
// so a typo in a content file stops the build instead of publishing a
// half-described post.
type Metadata struct {
	Title          string     `yaml:"title"`
	Description    string     `yaml:"description"`
	Author         string     `yaml:"author"`
	PubDatetime    time.Time  `yaml:"pubDatetime"`
	ModDatetime    *time.Time `yaml:"modDatetime"`
	Slug           string     `yaml:"slug"`
	Featured       bool       `yaml:"featured"`
	Draft          bool       `yaml:"draft"`
	WorkInProgress bool       `yaml:"workInProgress"`
	Tags           []string   `yaml:"tags"`
	OGImage        string     `yaml:"ogImage"`
	CanonicalURL   string     `yaml:"canonicalURL"`
	HideEditPost   bool       `yaml:"hideEditPost"`
}

// Post pairs a content file's metadata with its Markdown body. The body
// is opaque here; rendering it is the builder's job.
type Post struct {
	Meta Metadata
	Body []byte
	Path string
}

// Effective returns the date used for ordering and "last updated"
// display: modDatetime when set, pubDatetime otherwise.
func (p *Post) Effective() time.Time {
	if p.Meta.ModDatetime != nil {
		return *p.Meta.ModDatetime
	}
	return p.Meta.PubDatetime
}

// FrontmatterError marks a content file whose metadata block failed to
// parse or validate. The whole build aborts on it; silently dropping a
// post is a worse failure mode than refusing to publish.
type FrontmatterError struct {
	Path string
	Err  error
}

func (e *FrontmatterError) Error() string {
	return fmt.Sprintf("%s: bad frontmatter: %v", e.Path, e.Err)
}

func (e *FrontmatterError) Unwrap() error { return e.Err }

// DuplicateSlugError reports two posts that would render to the same
// URL. Routing would be ambiguous, so the build aborts.
type DuplicateSlugError struct {
	Slug   string
	First  string
	Second string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("duplicate slug %q: %s and %s", e.Slug, e.First, e.Second)
}

var frontmatterDelim = []byte("---")

// ParsePost splits a raw content file into frontmatter and body and
// decodes the frontmatter into Metadata. The site author fills in when
// the post names none, and a missing slug is derived from fallbackSlug
// (normally the file name without extension).
func ParsePost(path string, raw []byte, fallbackSlug, siteAuthor string) (*Post, error) {
	parts := bytes.SplitN(raw, frontmatterDelim, 3)
	if len(parts) < 3 || len(bytes.TrimSpace(parts[0])) != 0 {
		return nil, &FrontmatterError{Path: path, Err: errors.New("missing frontmatter block")}
	}

	meta := Metadata{}
	dec := yaml.NewDecoder(bytes.NewReader(parts[1]))
	dec.KnownFields(true)
	if err := dec.Decode(&meta); err != nil {
		return nil, &FrontmatterError{Path: path, Err: err}
	}

	if meta.Title == "" {
		return nil, &FrontmatterError{Path: path, Err: errors.New("title is required")}
	}
	if meta.Description == "" {
		return nil, &FrontmatterError{Path: path, Err: errors.New("description is required")}
	}
	if meta.PubDatetime.IsZero() {
		return nil, &FrontmatterError{Path: path, Err: errors.New("pubDatetime is required")}
	}

	if meta.Author == "" {
		meta.Author = siteAuthor
	}
	if meta.Slug == "" {
		meta.Slug = Slugify(fallbackSlug)
	}
	if meta.Slug == "" {
		return nil, &FrontmatterError{Path: path, Err: errors.New("slug is empty after normalization")}
	}
	meta.Tags = dedupe(meta.Tags)

	return &Post{Meta: meta, Body: parts[2], Path: path}, nil
}

var (
	slugStrip    = regexp.MustCompile(`[^\w- ]+`)
	slugCollapse = regexp.MustCompile(`-+`)
)

// Slugify turns a title or file name into a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugStrip.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, " ", "-")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// dedupe removes repeated tags while keeping declaration order, which is
// also the display order.
func dedupe(tags []string) []string {
	if len(tags) == 0 {
		return tags
	}
	seen := make(map[string]bool, len(tags))
	out := tags[:0]
	for _, t := range tags {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
