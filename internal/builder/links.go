// internal/builder/links.go
package builder

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"inkpress/internal/content"
)

// postLinkTransformer rewrites relative links between content files so
// authors can cross-reference posts by their Markdown file name.
// "other-post.md" becomes "../other-post/", matching the directory-style
// URLs the builder emits for post pages.
type postLinkTransformer struct{}

func newPostLinkTransformer() parser.ASTTransformer {
	return &postLinkTransformer{}
}

func (t *postLinkTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}

		dest := link.Destination
		if !bytes.HasSuffix(dest, []byte(".md")) {
			return ast.WalkContinue, nil
		}
		// Absolute URLs and site-rooted paths are left alone.
		if bytes.Contains(dest, []byte("://")) || bytes.HasPrefix(dest, []byte("/")) {
			return ast.WalkContinue, nil
		}

		name := string(bytes.TrimSuffix(dest, []byte(".md")))
		link.Destination = []byte("../" + content.Slugify(name) + "/")
		return ast.WalkContinue, nil
	})
}
