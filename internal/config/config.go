// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so site.yaml can spell durations either
// way: a bare integer is taken as a millisecond count, a string goes
// through time.ParseDuration ("15m", "1h30m").
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	switch value.Tag {
	case "!!int":
		var ms int64
		if err := value.Decode(&ms); err != nil {
			return err
		}
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	case "!!str":
		parsed, err := time.ParseDuration(value.Value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value.Value, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("duration must be a string or a millisecond integer, got %s", value.Tag)
	}
}

// Std returns the wrapped value as a plain time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// EditPost controls the "suggest changes" link on post pages. URL is the
// base of the content repository; the post's source path gets appended.
type EditPost struct {
	Enabled bool   `yaml:"enabled"`
	Text    string `yaml:"text"`
	URL     string `yaml:"url" validate:"omitempty,url"`
}

// SiteConfig holds the site-wide settings from site.yaml.
// It is constructed exactly once per build, by Load, and is treated as
// read-only everywhere else.
type SiteConfig struct {
	Website     string `yaml:"website" validate:"required"`
	Author      string `yaml:"author"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Lang        string `yaml:"lang"`
	Timezone    string `yaml:"timezone"`
	Template    string `yaml:"template"`

	LightAndDarkMode bool `yaml:"lightAndDarkMode"`

	PostsPerIndex int `yaml:"postsPerIndex" validate:"gt=0"`
	PostsPerPage  int `yaml:"postsPerPage" validate:"gt=0"`

	// A future-dated post becomes visible once "now" is within this
	// margin of its publish time, absorbing build and deploy latency.
	ScheduledPostMargin Duration `yaml:"scheduledPostMargin"`

	ShowArchives   bool `yaml:"showArchives"`
	ShowBackButton bool `yaml:"showBackButton"`

	EditPost EditPost `yaml:"editPost"`

	OGImage        string `yaml:"ogImage"`
	DynamicOGImage bool   `yaml:"dynamicOgImage"`
}

// ConfigError reports a site.yaml field that failed validation. A
// misconfigured site must not publish, so callers abort the build on it.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their yaml key, not the Go struct name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func defaults() SiteConfig {
	return SiteConfig{
		Lang:          "en",
		Template:      "simple",
		PostsPerIndex: 4,
		PostsPerPage:  4,
	}
}

// Load reads, parses, and validates the site configuration file.
func Load(path string) (SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("could not read config file at %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse is Load without the file read; tests use it directly.
func Parse(data []byte) (SiteConfig, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("could not parse site config: %w", err)
	}
	if err := cfg.check(); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

func (c *SiteConfig) check() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return &ConfigError{Field: f.Field(), Reason: reasonFor(f)}
		}
		return &ConfigError{Field: "site.yaml", Reason: err.Error()}
	}
	u, err := url.Parse(c.Website)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return &ConfigError{Field: "website", Reason: fmt.Sprintf("%q is not an absolute URL", c.Website)}
	}
	if c.ScheduledPostMargin < 0 {
		return &ConfigError{Field: "scheduledPostMargin", Reason: "must not be negative"}
	}
	return nil
}

func reasonFor(f validator.FieldError) string {
	switch f.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + f.Param()
	case "url":
		return "must be a well-formed URL"
	}
	return fmt.Sprintf("fails the %q constraint", f.Tag())
}

// URLFor joins path segments onto the site's canonical base URL.
func (c SiteConfig) URLFor(parts ...string) string {
	out := strings.TrimRight(c.Website, "/")
	for _, p := range parts {
		p = strings.Trim(p, "/")
		if p != "" {
			out += "/" + p
		}
	}
	return out
}
