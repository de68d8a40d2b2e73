// internal/builder/models.go
package builder

import (
	"html/template"
	"time"

	"inkpress/internal/config"
)

// BuildOptions tune a single run of BuildSite.
type BuildOptions struct {
	CleanDestination bool
	Unsafe           bool
	// IncludeDrafts also lifts the scheduled-post cutoff; the dev
	// server sets it so authors can preview unpublished work.
	IncludeDrafts bool
	// Now overrides the clock for visibility decisions. Zero means
	// time.Now().
	Now time.Time
}

// TagView is one tag link as a template sees it.
type TagView struct {
	Name string
	Href string
}

// PostView is one post prepared for templates: rendered HTML plus the
// fields themes list and link on.
type PostView struct {
	Title          string
	Description    string
	Author         string
	Slug           string
	Href           string
	Tags           []TagView
	Featured       bool
	WorkInProgress bool
	Published      time.Time
	Modified       *time.Time
	Canonical      string
	OGImage        string
	Content        template.HTML
	EditHref       string
}

// Effective mirrors the ordering date: Modified when set, Published
// otherwise.
func (v *PostView) Effective() time.Time {
	if v.Modified != nil {
		return *v.Modified
	}
	return v.Published
}

// YearView is one archives bucket.
type YearView struct {
	Year  int
	Posts []*PostView
}

// PageData is handed to every template execution. Hrefs inside are
// site-root-relative; templates prefix them with BaseHref.
type PageData struct {
	Site        config.SiteConfig
	Title       string
	Description string
	BaseHref    string
	Canonical   string

	Post     *PostView   // post pages
	Posts    []*PostView // listing pages and the home page
	Featured []*PostView // home page only
	Tag      string      // tag pages
	Years    []YearView  // archives page

	Page       int
	TotalPages int
	PrevHref   string
	NextHref   string
}
