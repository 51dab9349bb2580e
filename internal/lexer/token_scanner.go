package lexer

// TokenScanner is the parser's cursor over a scanned token sequence. Once
// the cursor reaches EOF it stays there.
type TokenScanner interface {
	Peek() *Token
	Previous() *Token
	Advance() *Token
	IsAtEnd() bool
	Reset()
}

type SimpleTokenScanner struct {
	tokens []Token

	pos int
}

// NewTokenScanner wraps tokens without copying them, so the pointers it
// hands out refer to the caller's slice. A sequence that does not end in EOF
// is copied and terminated with one.
func NewTokenScanner(tokens []Token) TokenScanner {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}

		terminated := make([]Token, len(tokens), len(tokens)+1)
		copy(terminated, tokens)
		tokens = append(terminated, Token{Kind: EOF, Line: line})
	}

	return &SimpleTokenScanner{
		tokens: tokens,
	}
}

func (s *SimpleTokenScanner) Peek() *Token {
	return &s.tokens[s.pos]
}

func (s *SimpleTokenScanner) Previous() *Token {
	if s.pos == 0 {
		return nil
	}
	return &s.tokens[s.pos-1]
}

func (s *SimpleTokenScanner) Advance() *Token {
	if !s.IsAtEnd() {
		s.pos++
	}

	return s.Previous()
}

func (s *SimpleTokenScanner) IsAtEnd() bool {
	return s.tokens[s.pos].Kind == EOF
}

func (s *SimpleTokenScanner) Reset() {
	s.pos = 0
}
