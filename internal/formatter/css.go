package formatter

import "strings"

// Stylesheet reindents block-structured stylesheet text by brace depth.
// Blank lines are dropped. Never fails on malformed input.
func Stylesheet(text string) string {
	var out lineWriter

	for _, raw := range strings.Split(normalize(text), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "}") {
			out.indent(-1)
		}

		out.writeLine(line)

		// One-line rules like "a { color: red; }" don't end in "{", so they
		// leave the depth untouched.
		if strings.HasSuffix(line, "{") {
			out.indent(1)
		}
	}

	return out.String()
}
