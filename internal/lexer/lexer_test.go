package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	kind   TokenKind
	lexeme string
}

func items(tokens []Token) []item {
	ret := make([]item, len(tokens))
	for i, tok := range tokens {
		ret[i] = item{tok.Kind, tok.Lexeme}
	}
	return ret
}

func TestScan(t *testing.T) {
	testCases := []struct {
		input string
		items []item
	}{
		{
			input: "",
			items: []item{
				{EOF, ""},
			},
		},
		{
			input: "(){},.-+;*/",
			items: []item{
				{LEFT_PAREN, "("},
				{RIGHT_PAREN, ")"},
				{LEFT_BRACE, "{"},
				{RIGHT_BRACE, "}"},
				{COMMA, ","},
				{DOT, "."},
				{MINUS, "-"},
				{PLUS, "+"},
				{SEMICOLON, ";"},
				{STAR, "*"},
				{SLASH, "/"},
				{EOF, ""},
			},
		},
		{
			input: "! != = == < <= > >=",
			items: []item{
				{BANG, "!"},
				{BANG_EQUAL, "!="},
				{EQUAL, "="},
				{EQUAL_EQUAL, "=="},
				{LESS, "<"},
				{LESS_EQUAL, "<="},
				{GREATER, ">"},
				{GREATER_EQUAL, ">="},
				{EOF, ""},
			},
		},
		{
			input: "!==",
			items: []item{
				{BANG_EQUAL, "!="},
				{EQUAL, "="},
				{EOF, ""},
			},
		},
		{
			input: "1 + 2 // the rest is ignored != \"",
			items: []item{
				{NUMBER, "1"},
				{PLUS, "+"},
				{NUMBER, "2"},
				{EOF, ""},
			},
		},
		{
			input: "and class else false for fun if nil or print return super this true var while",
			items: []item{
				{AND, "and"},
				{CLASS, "class"},
				{ELSE, "else"},
				{FALSE, "false"},
				{FOR, "for"},
				{FUN, "fun"},
				{IF, "if"},
				{NIL, "nil"},
				{OR, "or"},
				{PRINT, "print"},
				{RETURN, "return"},
				{SUPER, "super"},
				{THIS, "this"},
				{TRUE, "true"},
				{VAR, "var"},
				{WHILE, "while"},
				{EOF, ""},
			},
		},
		{
			input: "_foo bar2 orchid classy",
			items: []item{
				{IDENTIFIER, "_foo"},
				{IDENTIFIER, "bar2"},
				{IDENTIFIER, "orchid"},
				{IDENTIFIER, "classy"},
				{EOF, ""},
			},
		},
		{
			input: "12. .5 1.2.3",
			items: []item{
				{NUMBER, "12"},
				{DOT, "."},
				{DOT, "."},
				{NUMBER, "5"},
				{NUMBER, "1.2"},
				{DOT, "."},
				{NUMBER, "3"},
				{EOF, ""},
			},
		},
		{
			input: `"stuff goes here"+""`,
			items: []item{
				{STRING, `"stuff goes here"`},
				{PLUS, "+"},
				{STRING, `""`},
				{EOF, ""},
			},
		},
	}
	for _, tc := range testCases {
		tokens, errs := Scan(tc.input)
		assert.Empty(t, errs, tc.input)
		assert.Equal(t, tc.items, items(tokens), tc.input)
	}
}

func TestScan_MaximalMunch(t *testing.T) {
	tokens, errs := Scan("!=")
	require.Empty(t, errs)
	require.Len(t, tokens, 2)
	assert.Equal(t, BANG_EQUAL, tokens[0].Kind)
	assert.Equal(t, EOF, tokens[1].Kind)
}

func TestScan_NumberLiteral(t *testing.T) {
	tokens, errs := Scan("123.123")
	require.Empty(t, errs)
	require.Len(t, tokens, 2)
	assert.Equal(t, Token{Kind: NUMBER, Lexeme: "123.123", Literal: 123.123, Line: 1}, tokens[0])

	tokens, _ = Scan("7")
	assert.Equal(t, float64(7), tokens[0].Literal)
}

func TestScan_StringLiteral(t *testing.T) {
	tokens, errs := Scan("\"one\ntwo\" x")
	require.Empty(t, errs)
	require.Len(t, tokens, 3)

	str := tokens[0]
	assert.Equal(t, STRING, str.Kind)
	assert.Equal(t, "\"one\ntwo\"", str.Lexeme)
	assert.Equal(t, "one\ntwo", str.Literal)
	assert.Equal(t, 1, str.Line)

	// The line counter saw the newline inside the string.
	assert.Equal(t, IDENTIFIER, tokens[1].Kind)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Nil(t, tokens[1].Literal)
}

func TestScan_Lines(t *testing.T) {
	tokens, errs := Scan("1\n2 // comment\n\n3\r\n")
	require.Empty(t, errs)

	lines := make([]int, len(tokens))
	for i, tok := range tokens {
		lines[i] = tok.Line
	}
	assert.Equal(t, []int{1, 2, 4, 5}, lines)
}

func TestScan_UnterminatedString(t *testing.T) {
	tokens, errs := Scan("1 + \"abc\ndef")

	assert.Equal(t, []item{{NUMBER, "1"}, {PLUS, "+"}, {EOF, ""}}, items(tokens))
	require.Len(t, errs, 1)
	assert.Equal(t, "Unterminated string.", errs[0].GetMessage())
	assert.Equal(t, 2, errs[0].GetLine())
	assert.Equal(t, "[line 2] Error: Unterminated string.", errs[0].Error())
}

func TestScan_UnexpectedCharacters(t *testing.T) {
	tokens, errs := Scan("1 @ 2\n# é")

	assert.Equal(t, []item{{NUMBER, "1"}, {NUMBER, "2"}, {EOF, ""}}, items(tokens))
	require.Len(t, errs, 3)
	assert.Equal(t, "Unexpected character: @", errs[0].GetMessage())
	assert.Equal(t, 1, errs[0].GetLine())
	assert.Equal(t, "Unexpected character: #", errs[1].GetMessage())
	assert.Equal(t, 2, errs[1].GetLine())
	assert.Equal(t, "Unexpected character: é", errs[2].GetMessage())
}

func TestScan_AlwaysEndsWithOneEOF(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"\"",
		"// only a comment",
		"/",
		"@@@",
		"(((",
		"1.",
		"\xff\xfe",
		"nil and \"unterminated",
	}
	for _, input := range inputs {
		tokens, _ := Scan(input)
		require.NotEmpty(t, tokens, input)

		eofs := 0
		for _, tok := range tokens {
			if tok.Kind == EOF {
				eofs++
			}
		}
		assert.Equal(t, 1, eofs, input)

		last := tokens[len(tokens)-1]
		assert.Equal(t, EOF, last.Kind, input)
		assert.Empty(t, last.Lexeme, input)
		assert.Nil(t, last.Literal, input)
	}
}

func TestLexer_TokenizeIsRepeatable(t *testing.T) {
	l := NewLexer([]byte("1 <= 2\n3"), nil)
	first := l.Tokenize()
	second := l.Tokenize()
	assert.Equal(t, first, second)
	assert.Equal(t, 2, second[len(second)-1].Line)
}

func TestLexer_NilHandler(t *testing.T) {
	l := NewLexer([]byte("1 @ \"open"), nil)

	var tokens []Token
	require.NotPanics(t, func() { tokens = l.Tokenize() })
	assert.Equal(t, []item{{NUMBER, "1"}, {EOF, ""}}, items(tokens))
}

func TestToken_String(t *testing.T) {
	tokens, _ := Scan(`( 12.5 "hi" name nil`)

	rendered := make([]string, len(tokens))
	for i := range tokens {
		rendered[i] = tokens[i].String()
	}
	assert.Equal(t, []string{"LEFT_PAREN", "NUMBER(12.5)", `STRING("hi")`, "IDENTIFIER(name)", "NIL", "EOF"}, rendered)
}

func TestTokenScanner(t *testing.T) {
	tokens, _ := Scan("1 + 2")
	s := NewTokenScanner(tokens)

	assert.Nil(t, s.Previous())
	assert.Same(t, &tokens[0], s.Peek())
	assert.Same(t, &tokens[0], s.Advance())
	assert.Same(t, &tokens[1], s.Advance())
	assert.Same(t, &tokens[2], s.Advance())
	assert.True(t, s.IsAtEnd())

	// Stuck at EOF.
	assert.Same(t, &tokens[2], s.Advance())
	assert.Equal(t, EOF, s.Peek().Kind)

	s.Reset()
	assert.False(t, s.IsAtEnd())
	assert.Same(t, &tokens[0], s.Peek())
}

func TestTokenScanner_AppendsMissingEOF(t *testing.T) {
	s := NewTokenScanner([]Token{{Kind: NUMBER, Lexeme: "1", Literal: 1.0, Line: 3}})
	s.Advance()
	require.True(t, s.IsAtEnd())
	assert.Equal(t, 3, s.Peek().Line)

	s = NewTokenScanner(nil)
	assert.True(t, s.IsAtEnd())
	assert.Equal(t, 1, s.Peek().Line)
}
