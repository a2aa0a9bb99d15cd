package lexer

import "testing"

func assert[T comparable](t *testing.T, expected, got T, msg string) {
	t.Helper()

	if got != expected {
		t.Fatalf("%s: expected %v, got %v", msg, expected, got)
	}
}

func TestLexer(t *testing.T) {
	type testCase struct {
		name string
		src  string
		want []Token
	}

	cases := []testCase{
		{
			name: "nested tags with text",
			src:  "<div><p>Hi</p></div>",
			want: []Token{
				{Type: TokenOpenTag, Contents: "<div>", Name: "div"},
				{Type: TokenOpenTag, Contents: "<p>", Name: "p"},
				{Type: TokenText, Contents: "Hi"},
				{Type: TokenCloseTag, Contents: "</p>", Name: "p"},
				{Type: TokenCloseTag, Contents: "</div>", Name: "div"},
			},
		},
		{
			name: "comment",
			src:  "<!-- a <b> inside --><p>",
			want: []Token{
				{Type: TokenComment, Contents: "<!-- a <b> inside -->"},
				{Type: TokenOpenTag, Contents: "<p>", Name: "p"},
			},
		},
		{
			name: "doctype is case-insensitive",
			src:  "<!doctype HTML>",
			want: []Token{
				{Type: TokenDoctype, Contents: "<!doctype HTML>"},
			},
		},
		{
			name: "uppercase tag name is lowercased",
			src:  "<DIV></DIV>",
			want: []Token{
				{Type: TokenOpenTag, Contents: "<DIV>", Name: "div"},
				{Type: TokenCloseTag, Contents: "</DIV>", Name: "div"},
			},
		},
		{
			name: "self-closing suffix",
			src:  `<br/><img src="x">`,
			want: []Token{
				{Type: TokenOpenTag, Contents: "<br/>", Name: "br", SelfClosing: true},
				{Type: TokenOpenTag, Contents: `<img src="x">`, Name: "img"},
			},
		},
		{
			name: "tag with attributes",
			src:  `<a href="y" class="z">link</a>`,
			want: []Token{
				{Type: TokenOpenTag, Contents: `<a href="y" class="z">`, Name: "a"},
				{Type: TokenText, Contents: "link"},
				{Type: TokenCloseTag, Contents: "</a>", Name: "a"},
			},
		},
		{
			name: "closing tag with inner whitespace",
			src:  "</ div >",
			want: []Token{
				{Type: TokenCloseTag, Contents: "</ div >", Name: "div"},
			},
		},
		{
			name: "bracket inside attribute mis-terminates the tag",
			src:  `<div title="a>b">`,
			want: []Token{
				{Type: TokenOpenTag, Contents: `<div title="a>`, Name: "div"},
				{Type: TokenText, Contents: `b">`},
			},
		},
		{
			name: "unterminated tag falls back to text",
			src:  "<div",
			want: []Token{
				{Type: TokenText, Contents: "<div"},
			},
		},
		{
			name: "unterminated comment",
			src:  "<!-- never closed",
			want: []Token{
				{Type: TokenComment, Contents: "<!-- never closed"},
			},
		},
		{
			name: "empty input",
			src:  "",
			want: []Token{},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tks := New([]byte(tc.src)).Collect()

			assert(t, len(tc.want)+1, len(tks), "token count")
			assert(t, TokenEOF, tks[len(tks)-1].Type, "last token type")

			for i, want := range tc.want {
				got := tks[i]
				assert(t, want.Type, got.Type, "token type")
				assert(t, want.Contents, got.Contents, "token contents")
				assert(t, want.Name, got.Name, "tag name")
				assert(t, want.SelfClosing, got.SelfClosing, "self closing")
			}
		})
	}
}

func TestLexerLocations(t *testing.T) {
	tks := New([]byte("ab\n<p>x")).Collect()

	assert(t, 4, len(tks), "token count")

	assert(t, TokenText, tks[0].Type, "first token type")
	assert(t, 0, tks[0].Start.Line, "first token line")
	assert(t, 0, tks[0].Start.Column, "first token column")

	assert(t, TokenOpenTag, tks[1].Type, "second token type")
	assert(t, 1, tks[1].Start.Line, "second token line")
	assert(t, 0, tks[1].Start.Column, "second token column")

	assert(t, TokenText, tks[2].Type, "third token type")
	assert(t, 1, tks[2].Start.Line, "third token line")
	assert(t, 3, tks[2].Start.Column, "third token column")
}

func TestLexerNext(t *testing.T) {
	l := New([]byte("<p>"))

	tk, ok := l.Next()
	assert(t, true, ok, "first next ok")
	assert(t, TokenOpenTag, tk.Type, "first token type")

	tk, ok = l.Next()
	assert(t, true, ok, "second next ok")
	assert(t, TokenEOF, tk.Type, "second token type")

	_, ok = l.Next()
	assert(t, false, ok, "next after EOF")
}
