// Package formatter reindents markup and stylesheet text heuristically. It
// never parses or validates the input grammar: whatever goes in, some
// reformatted text comes out.
package formatter

import (
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

var (
	markupExts     = []string{".html", ".htm"}
	stylesheetExts = []string{".css"}
)

// File reformats text according to the extension of path, case-insensitive.
// Unrecognized extensions only get tab expansion.
func File(path, text string) string {
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case slices.Contains(markupExts, ext):
		return Markup(text)
	case slices.Contains(stylesheetExts, ext):
		return Stylesheet(text)
	default:
		return expandTabs(text)
	}
}

// normalize unifies line endings and expands horizontal tabs to two spaces.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return expandTabs(text)
}

func expandTabs(text string) string {
	return strings.ReplaceAll(text, "\t", "  ")
}
