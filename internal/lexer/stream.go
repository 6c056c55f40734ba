package lexer

import "github.com/funvibe/rlang/internal/token"

// TokenStream buffers tokens from a Lexer so the parser can look ahead.
type TokenStream struct {
	lexer *Lexer
	buf   []token.Token
	done  bool
}

func NewTokenStream(l *Lexer) *TokenStream {
	return &TokenStream{lexer: l}
}

// Next returns the next token. After the end of input it keeps returning EOF.
func (s *TokenStream) Next() token.Token {
	tok := s.Peek(0)
	if len(s.buf) > 1 || tok.Type != token.EOF {
		s.buf = s.buf[1:]
	}
	return tok
}

// Peek returns the token n positions ahead without consuming anything.
func (s *TokenStream) Peek(n int) token.Token {
	for len(s.buf) <= n {
		if s.done {
			return s.buf[len(s.buf)-1]
		}
		tok := s.lexer.NextToken()
		s.buf = append(s.buf, tok)
		if tok.Type == token.EOF {
			s.done = true
		}
	}
	return s.buf[n]
}
