package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/kievzenit/ylox/internal/compiler_errors"
)

type LexicalError struct {
	Line    int
	Message string
}

func newUnexpectedError(line int, unexpected rune) *LexicalError {
	return &LexicalError{
		Line:    line,
		Message: fmt.Sprintf("Unexpected character: %s", string(unexpected)),
	}
}

func newUnterminatedStringError(line int) *LexicalError {
	return &LexicalError{
		Line:    line,
		Message: "Unterminated string.",
	}
}

func (e *LexicalError) GetMessage() string { return e.Message }
func (e *LexicalError) GetLine() int       { return e.Line }

func (e *LexicalError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// Lexer turns source text into tokens in a single left-to-right pass. It
// never stops at an error: every problem goes to the error handler and
// scanning carries on with the next character.
type Lexer struct {
	buf []byte

	start, pos int

	line, startLine int

	tokens []Token

	eh compiler_errors.ErrorHandler
}

// NewLexer uses a fresh collecting handler when eh is nil.
func NewLexer(buf []byte, eh compiler_errors.ErrorHandler) *Lexer {
	if eh == nil {
		eh = compiler_errors.NewErrorHandler()
	}

	return &Lexer{
		buf: buf,

		line: 1,

		eh: eh,
	}
}

// Scan tokenizes source with a fresh error handler and returns whatever it
// collected alongside the tokens.
func Scan(source string) ([]Token, compiler_errors.Errors) {
	eh := compiler_errors.NewErrorHandler()
	tokens := NewLexer([]byte(source), eh).Tokenize()
	return tokens, eh.Errors()
}

// Tokenize scans the whole buffer. The result always ends with exactly one
// EOF token. Calling it again rescans from the beginning.
func (l *Lexer) Tokenize() []Token {
	l.start = 0
	l.pos = 0
	l.line = 1
	l.tokens = make([]Token, 0)

	for l.hasChars() {
		l.start = l.pos
		l.startLine = l.line
		l.scanToken()
	}

	l.tokens = append(l.tokens, Token{
		Kind: EOF,
		Line: l.line,
	})

	return l.tokens
}

func (l *Lexer) scanToken() {
	c := l.advance()

	switch {
	case isSkippable(c):
		break

	case c == '\n':
		l.line++

	case isDigit(c):
		l.processNumber()

	case isIdentifierStart(c):
		l.processIdentifier()

	case c == '"':
		l.processStringLiteral()

	case isPunctuation(c):
		l.processPunctuation(c)

	default:
		l.processUnexpected()
	}
}

func isIdentifierStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentifierPart(c byte) bool {
	return isIdentifierStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isPunctuation(c byte) bool {
	switch c {
	case '(', ')', '{', '}', ',', '.', '-', '+', ';', '*', '/', '!', '=', '<', '>':
		return true
	}
	return false
}

func isSkippable(c byte) bool {
	switch c {
	case ' ', '\t', '\r':
		return true
	}

	return false
}

func (l *Lexer) processIdentifier() {
	for isIdentifierPart(l.peek()) {
		l.advance()
	}

	identifier := string(l.buf[l.start:l.pos])
	if kind, ok := keywords[identifier]; ok {
		l.addToken(kind)
		return
	}

	l.addToken(IDENTIFIER)
}

func (l *Lexer) processNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()

		for isDigit(l.peek()) {
			l.advance()
		}
	}

	// Only digits and one inner dot reach here, so the sole possible error is
	// ErrRange, for which ParseFloat already returns the saturated ±Inf.
	value, _ := strconv.ParseFloat(string(l.buf[l.start:l.pos]), 64)
	l.addLiteralToken(NUMBER, value)
}

func (l *Lexer) processStringLiteral() {
	for l.hasChars() && l.peek() != '"' {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if !l.hasChars() {
		l.eh.AddError(newUnterminatedStringError(l.line))
		return
	}

	// closing quote
	l.advance()

	value := string(l.buf[l.start+1 : l.pos-1])
	l.addLiteralToken(STRING, value)
}

func (l *Lexer) processOneLineComment() {
	for l.hasChars() && l.peek() != '\n' {
		l.advance()
	}
}

func (l *Lexer) processSlash() {
	if l.match('/') {
		l.processOneLineComment()
		return
	}

	l.addToken(SLASH)
}

func (l *Lexer) processExclamationMark() {
	if l.match('=') {
		l.addToken(BANG_EQUAL)
		return
	}

	l.addToken(BANG)
}

func (l *Lexer) processEquals() {
	if l.match('=') {
		l.addToken(EQUAL_EQUAL)
		return
	}

	l.addToken(EQUAL)
}

func (l *Lexer) processGreaterThan() {
	if l.match('=') {
		l.addToken(GREATER_EQUAL)
		return
	}

	l.addToken(GREATER)
}

func (l *Lexer) processLessThan() {
	if l.match('=') {
		l.addToken(LESS_EQUAL)
		return
	}

	l.addToken(LESS)
}

func (l *Lexer) processPunctuation(c byte) {
	switch c {
	case '(':
		l.addToken(LEFT_PAREN)
	case ')':
		l.addToken(RIGHT_PAREN)
	case '{':
		l.addToken(LEFT_BRACE)
	case '}':
		l.addToken(RIGHT_BRACE)
	case ',':
		l.addToken(COMMA)
	case '.':
		l.addToken(DOT)
	case '-':
		l.addToken(MINUS)
	case '+':
		l.addToken(PLUS)
	case ';':
		l.addToken(SEMICOLON)
	case '*':
		l.addToken(STAR)
	case '/':
		l.processSlash()
	case '!':
		l.processExclamationMark()
	case '=':
		l.processEquals()
	case '>':
		l.processGreaterThan()
	case '<':
		l.processLessThan()
	default:
		panic("unreachable")
	}
}

// processUnexpected reports the whole UTF-8 sequence starting at the
// offending byte and skips past it.
func (l *Lexer) processUnexpected() {
	r, size := utf8.DecodeRune(l.buf[l.start:])
	l.pos = l.start + size

	l.eh.AddError(newUnexpectedError(l.line, r))
}

func (l *Lexer) addToken(kind TokenKind) {
	l.addLiteralToken(kind, nil)
}

func (l *Lexer) addLiteralToken(kind TokenKind, literal any) {
	l.tokens = append(l.tokens, Token{
		Kind:    kind,
		Lexeme:  string(l.buf[l.start:l.pos]),
		Literal: literal,
		Line:    l.startLine,
	})
}

func (l *Lexer) match(expected byte) bool {
	if !l.hasChars() || l.buf[l.pos] != expected {
		return false
	}

	l.pos++
	return true
}

func (l *Lexer) peek() byte {
	if !l.hasChars() {
		return 0
	}
	return l.buf[l.pos]
}

func (l *Lexer) peekNext() byte {
	if l.pos+1 >= len(l.buf) {
		return 0
	}
	return l.buf[l.pos+1]
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.buf)
}

func (l *Lexer) advance() byte {
	l.pos++
	return l.buf[l.pos-1]
}
