// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `website: https://example.com/
author: Ada
title: Ada's Blog
description: Notes on computing.
lightAndDarkMode: true
postsPerIndex: 3
postsPerPage: 5
scheduledPostMargin: 15m
showArchives: true
showBackButton: false
editPost:
  enabled: true
  text: Suggest changes
  url: https://github.com/ada/blog/edit/main/content
dynamicOgImage: true
`

func TestParseValidConfig(t *testing.T) {
	cfg, err := Parse([]byte(validYAML))
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/", cfg.Website)
	assert.Equal(t, "Ada", cfg.Author)
	assert.Equal(t, "Ada's Blog", cfg.Title)
	assert.Equal(t, "Notes on computing.", cfg.Description)
	assert.True(t, cfg.LightAndDarkMode)
	assert.Equal(t, 3, cfg.PostsPerIndex)
	assert.Equal(t, 5, cfg.PostsPerPage)
	assert.Equal(t, 15*time.Minute, cfg.ScheduledPostMargin.Std())
	assert.True(t, cfg.ShowArchives)
	assert.False(t, cfg.ShowBackButton)
	assert.True(t, cfg.EditPost.Enabled)
	assert.Equal(t, "Suggest changes", cfg.EditPost.Text)
	assert.True(t, cfg.DynamicOGImage)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("website: https://example.com\n"))
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, "simple", cfg.Template)
	assert.Equal(t, 4, cfg.PostsPerIndex)
	assert.Equal(t, 4, cfg.PostsPerPage)
	assert.Equal(t, time.Duration(0), cfg.ScheduledPostMargin.Std())
}

func TestParseMarginMilliseconds(t *testing.T) {
	cfg, err := Parse([]byte("website: https://example.com\nscheduledPostMargin: 900000\n"))
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.ScheduledPostMargin.Std())
}

func TestParseRejectsInvalidFields(t *testing.T) {
	cases := []struct {
		name  string
		yaml  string
		field string
	}{
		{"missing website", "title: x\n", "website"},
		{"relative website", "website: /blog\n", "website"},
		{"not a url", "website: not a url\n", "website"},
		{"zero postsPerPage", "website: https://example.com\npostsPerPage: 0\n", "postsPerPage"},
		{"negative postsPerIndex", "website: https://example.com\npostsPerIndex: -1\n", "postsPerIndex"},
		{"negative margin", "website: https://example.com\nscheduledPostMargin: -5m\n", "scheduledPostMargin"},
		{"bad edit url", "website: https://example.com\neditPost:\n  url: notaurl\n", "url"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tc.field, cerr.Field)
		})
	}
}

func TestParseRejectsMalformedDuration(t *testing.T) {
	_, err := Parse([]byte("website: https://example.com\nscheduledPostMargin: [1, 2]\n"))
	require.Error(t, err)

	_, err = Parse([]byte("website: https://example.com\nscheduledPostMargin: soon\n"))
	require.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada", cfg.Author)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestURLFor(t *testing.T) {
	cfg := SiteConfig{Website: "https://example.com/"}
	assert.Equal(t, "https://example.com", cfg.URLFor())
	assert.Equal(t, "https://example.com/posts/hello", cfg.URLFor("posts", "hello"))
	assert.Equal(t, "https://example.com/posts", cfg.URLFor("posts/"))
}
