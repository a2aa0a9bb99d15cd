package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const debugPrint = false

type stateFunc func() stateFunc

type state struct {
	str      []rune
	strStart Location

	byteIndex int
	line, col int
}

// Lexer splits markup text into a flat stream of structural tokens using
// bracket matching only. It is not grammar-aware: a ">" inside an attribute
// value terminates the tag token early, which is accepted behavior.
type Lexer struct {
	src []byte

	tokens chan Token

	state
}

// New starts tokenizing src in the background. Tokens are consumed through
// Next or Collect; the stream always ends with a TokenEOF.
//
// Tokenization never fails: any input, however malformed, yields some
// token stream.
func New(src []byte) *Lexer {
	tks := make(chan Token, 1)

	lexer := &Lexer{
		tokens: tks,
		src:    src,
	}

	go func() {
		defer close(tks)

		state := lexer.lexText
		for state != nil {
			state = state()
		}

		tks <- Token{
			Type:  TokenEOF,
			Start: Location{Line: lexer.line, Column: lexer.col},
		}
	}()

	return lexer
}

func (l *Lexer) Next() (*Token, bool) {
	t, ok := <-l.tokens
	if !ok {
		return nil, false
	}

	return &t, true
}

func (l *Lexer) Collect() []Token {
	tks := []Token{}

	for t := range l.tokens {
		tks = append(tks, t)

		if t.Type == TokenEOF {
			break
		}
	}

	return tks
}

func (l *Lexer) take() (r rune, eof bool) {
	if l.byteIndex >= len(l.src) {
		return 0, true
	}

	if l.src[l.byteIndex] == '\r' {
		l.byteIndex++
	}

	r, size := utf8.DecodeRune(l.src[l.byteIndex:])

	l.str = append(l.str, r)

	l.col++
	l.byteIndex += size

	if r == '\n' {
		l.line++
		l.col = 0
	}

	if debugPrint {
		fmt.Printf("take %q\n", r)
	}

	return r, false
}

func (l *Lexer) peek() (r rune, eof bool) {
	if l.byteIndex >= len(l.src) {
		return 0, true
	}

	idx := l.byteIndex
	if l.src[idx] == '\r' {
		idx++
	}

	r, _ = utf8.DecodeRune(l.src[idx:])
	return
}

func (l *Lexer) takeMany(n int) (eof bool) {
	for i := 0; i < n; i++ {
		_, eof = l.take()
		if eof {
			return true
		}
	}

	return false
}

// aheadIs reports whether the unconsumed input starts with s, comparing
// ASCII case-insensitively.
func (l *Lexer) aheadIs(s string) bool {
	if l.byteIndex+len(s) > len(l.src) {
		return false
	}

	return strings.EqualFold(string(l.src[l.byteIndex:l.byteIndex+len(s)]), s)
}

func (l *Lexer) emit(typ TokenType) {
	l.tokens <- Token{
		Type:     typ,
		Start:    l.strStart,
		Contents: string(l.str),
	}

	l.discard()
}

func (l *Lexer) emitTag(typ TokenType) {
	contents := string(l.str)

	l.tokens <- Token{
		Type:        typ,
		Start:       l.strStart,
		Contents:    contents,
		Name:        tagName(contents),
		SelfClosing: typ == TokenOpenTag && strings.HasSuffix(contents, "/>"),
	}

	l.discard()
}

func (l *Lexer) discard() {
	l.strStart = Location{
		Line:   l.line,
		Column: l.col,
	}
	l.str = l.str[:0]
}

func (l *Lexer) isEmpty() bool {
	return len(l.str) == 0
}

func (l *Lexer) lexText() stateFunc {
	for {
		r, eof := l.peek()
		if eof {
			if !l.isEmpty() {
				l.emit(TokenText)
			}
			return nil
		}

		if r == '<' {
			if !l.isEmpty() {
				l.emit(TokenText)
			}
			return l.lexAngle
		}

		l.take()
	}
}

func (l *Lexer) lexAngle() stateFunc {
	switch {
	case l.aheadIs("<!--"):
		return l.lexComment
	case l.aheadIs("<!doctype"):
		return l.lexDoctype
	default:
		return l.lexTag
	}
}

func (l *Lexer) lexComment() stateFunc {
	l.takeMany(len("<!--"))

	for {
		if l.aheadIs("-->") {
			l.takeMany(len("-->"))
			l.emit(TokenComment)
			return l.lexText
		}

		if _, eof := l.take(); eof {
			// Unterminated comment, emit what we have.
			l.emit(TokenComment)
			return nil
		}
	}
}

func (l *Lexer) lexDoctype() stateFunc {
	for {
		r, eof := l.take()
		if eof {
			l.emit(TokenDoctype)
			return nil
		}

		if r == '>' {
			l.emit(TokenDoctype)
			return l.lexText
		}
	}
}

func (l *Lexer) lexTag() stateFunc {
	l.take() // '<'

	for {
		r, eof := l.take()
		if eof {
			// No closing bracket before the end of input: what looked like
			// a tag turned out to be loose text.
			l.emit(TokenText)
			return nil
		}

		if r == '>' {
			if len(l.str) > 1 && l.str[1] == '/' {
				l.emitTag(TokenCloseTag)
			} else {
				l.emitTag(TokenOpenTag)
			}
			return l.lexText
		}
	}
}

// tagName extracts the element name from raw tag text: the first run of name
// characters after "<" or "</", lowercased.
func tagName(tag string) string {
	i := 1 // past '<'

	for i < len(tag) && isWhitespace(rune(tag[i])) {
		i++
	}
	if i < len(tag) && tag[i] == '/' {
		i++
		for i < len(tag) && isWhitespace(rune(tag[i])) {
			i++
		}
	}

	start := i
	for i < len(tag) && isNameRune(rune(tag[i])) {
		i++
	}

	return strings.ToLower(tag[start:i])
}

func isNameRune(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == ':' || r == '-'
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}
