package formatter

import "strings"

const indentUnit = "  "

// lineWriter accumulates output lines at a tracked indentation depth and
// assembles the final text.
type lineWriter struct {
	lines []string
	depth int
}

func (w *lineWriter) indent(delta int) {
	w.depth += delta

	// Unbalanced input must not push the depth negative.
	if w.depth < 0 {
		w.depth = 0
	}
}

func (w *lineWriter) writeLine(content string) {
	w.lines = append(w.lines, strings.Repeat(indentUnit, w.depth)+content)
}

func (w *lineWriter) writeBlank() {
	w.lines = append(w.lines, "")
}

// String joins the collected lines, drops trailing blank lines and ends the
// text with exactly one newline.
func (w *lineWriter) String() string {
	return strings.TrimRight(strings.Join(w.lines, "\n"), " \t\n") + "\n"
}
