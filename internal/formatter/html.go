package formatter

import (
	"strings"

	"github.com/fmtkit/retab/internal/lexer"
)

// Markup reindents HTML-like text: one structural token per line, nested
// elements stepped in by one indent unit per level. Interiors of opaque
// elements (script, style) are kept as raw blocks. Malformed input is never
// an error; the output is best-effort.
func Markup(text string) string {
	m := machine{
		tokens: lexer.New([]byte(normalize(text))).Collect(),
	}

	return m.run()
}

// machine replays a token stream through a depth counter, emitting one
// output line per structural unit.
type machine struct {
	tokens []lexer.Token
	index  int

	out lineWriter
}

func (m *machine) take() *lexer.Token {
	if m.index >= len(m.tokens) {
		return &m.tokens[len(m.tokens)-1] // Last token is EOF
	}

	tk := &m.tokens[m.index]
	m.index++

	return tk
}

func (m *machine) run() string {
	for {
		tk := m.take()
		if tk.Type == lexer.TokenEOF {
			break
		}

		m.replay(tk)
	}

	return m.out.String()
}

func (m *machine) replay(tk *lexer.Token) {
	trimmed := strings.TrimSpace(tk.Contents)
	if trimmed == "" {
		return
	}

	switch tk.Type {
	case lexer.TokenComment, lexer.TokenDoctype:
		m.out.writeLine(trimmed)

	case lexer.TokenCloseTag:
		m.out.indent(-1)
		m.out.writeLine(trimmed)

	case lexer.TokenOpenTag:
		if _, opaque := opaqueElements[tk.Name]; opaque {
			m.opaqueBlock(tk, trimmed)
			return
		}

		m.out.writeLine(trimmed)

		if tk.SelfClosing {
			return
		}
		if _, void := voidElements[tk.Name]; void {
			return
		}

		m.out.indent(1)

	case lexer.TokenText:
		for _, line := range strings.Split(tk.Contents, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				m.out.writeLine(line)
			}
		}
	}
}

// opaqueBlock emits an opaque element: the opening tag, its interior shifted
// one level in but otherwise untouched, then the matching closing tag. If
// the stream ends before a matching closing tag is found, the region is
// dropped silently.
func (m *machine) opaqueBlock(open *lexer.Token, trimmed string) {
	m.out.writeLine(trimmed)
	m.out.indent(1)

	var inner strings.Builder

	for {
		tk := m.take()
		if tk.Type == lexer.TokenEOF {
			return
		}

		if tk.Type == lexer.TokenCloseTag && tk.Name == open.Name {
			m.rawBlock(inner.String())

			m.out.indent(-1)
			m.out.writeLine(strings.TrimSpace(tk.Contents))
			return
		}

		inner.WriteString(tk.Contents)
	}
}

// rawBlock emits the interior of an opaque element: every non-blank line
// keeps its relative indentation and is shifted to the current depth, blank
// lines are kept as true empty lines. The line breaks that separate the
// interior from the enclosing tags are not part of the block.
func (m *machine) rawBlock(text string) {
	lines := strings.Split(text, "\n")

	if len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	for _, line := range dedent(lines) {
		if strings.TrimSpace(line) == "" {
			m.out.writeBlank()
		} else {
			m.out.writeLine(strings.TrimRight(line, " \t"))
		}
	}
}

// dedent strips the longest common leading-space run from all non-blank
// lines, so that re-applying the block indent is stable across runs.
func dedent(lines []string) []string {
	margin := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		lead := len(line) - len(strings.TrimLeft(line, " "))
		if margin < 0 || lead < margin {
			margin = lead
		}
	}

	if margin <= 0 {
		return lines
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = line
		} else {
			out[i] = line[margin:]
		}
	}

	return out
}
