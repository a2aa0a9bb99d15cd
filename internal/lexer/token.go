package lexer

import "fmt"

type TokenType int

const (
	TokenText TokenType = iota
	TokenComment
	TokenDoctype
	TokenOpenTag
	TokenCloseTag

	TokenEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "Text"
	case TokenComment:
		return "Comment"
	case TokenDoctype:
		return "Doctype"
	case TokenOpenTag:
		return "Opening tag"
	case TokenCloseTag:
		return "Closing tag"
	case TokenEOF:
		return "EOF"
	}

	return "<unknown>"
}

type Token struct {
	Type  TokenType
	Start Location

	// Contents is the raw source text of the token, brackets included for
	// tag tokens.
	Contents string

	// Name is the lowercased element name, set only on tag tokens.
	Name string

	// SelfClosing is set on opening tags whose text ends with "/>".
	SelfClosing bool
}

type Location struct {
	// 0-based
	Line, Column int
}

func (l *Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line+1, l.Column+1)
}
