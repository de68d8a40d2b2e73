// internal/scaffold/scaffold_test.go
package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpress/internal/config"
	"inkpress/internal/content"
)

func TestCreateSite(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, CreateSite(root))

	site, err := config.Load(filepath.Join(root, "site.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "simple", site.Template)
	assert.Equal(t, 4, site.PostsPerPage)

	raw, err := os.ReadFile(filepath.Join(root, "content", "hello-world.md"))
	require.NoError(t, err)
	post, err := content.ParsePost("hello-world.md", raw, "hello-world", site.Author)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world", post.Meta.Title)
	assert.True(t, post.Meta.Featured)

	for _, tmpl := range []string{"layout", "header", "footer", "home", "list", "post", "tag", "archives"} {
		_, err := os.Stat(filepath.Join(root, "templates", "simple", tmpl+".html"))
		assert.NoError(t, err, "theme file %s.html should exist", tmpl)
	}
}

func TestCreatePost(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, CreateSite(root))

	require.NoError(t, CreatePost(root, "My First Post", "site.yaml"))

	raw, err := os.ReadFile(filepath.Join(root, "content", "my-first-post.md"))
	require.NoError(t, err)
	post, err := content.ParsePost("my-first-post.md", raw, "my-first-post", "")
	require.NoError(t, err)

	assert.Equal(t, "My First Post", post.Meta.Title)
	assert.Equal(t, "my-first-post", post.Meta.Slug)
	assert.Equal(t, "Your Name", post.Meta.Author, "archetype inherits the site author")
	assert.True(t, post.Meta.Draft, "new posts start as drafts")
	assert.False(t, post.Meta.PubDatetime.IsZero())

	// Refuses to clobber an existing post.
	require.Error(t, CreatePost(root, "My First Post", "site.yaml"))

	// A title with no usable characters has no slug to write to.
	require.Error(t, CreatePost(root, "!!!", "site.yaml"))
}
