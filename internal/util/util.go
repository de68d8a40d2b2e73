package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ComputeBaseHref calculates the relative path to the site root so that
// asset and navigation links work for pages at any depth. A page at
// posts/a/index.html gets a BaseHref of "../../".
func ComputeBaseHref(relPath string) string {
	dir := filepath.Dir(relPath)
	if dir == "." {
		return ""
	}
	depth := strings.Count(dir, string(os.PathSeparator)) + 1
	return strings.Repeat("../", depth)
}
