// internal/builder/render.go
package builder

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

var (
	markdownRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(newPostLinkTransformer(), 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	htmlSanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown converts a post body to HTML. The output is run
// through the sanitizer unless the build was started with -unsafe.
func renderMarkdown(body []byte, unsafe bool) (string, error) {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	if unsafe {
		return buf.String(), nil
	}
	return string(htmlSanitizer.SanitizeBytes(buf.Bytes())), nil
}
