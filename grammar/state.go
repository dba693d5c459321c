package grammar

import "github.com/napalu/comandante/lexer"

// State is the analyzer's cursor over the token stream of one line
type State interface {
	Current() lexer.Token // Get the current token
	Index() int           // Get the 1-based index of the current token
	Advance() error       // Pull the next token from the lexer
}

// TokenState pulls tokens from a lexer one at a time. Once End is reached the
// cursor stays on it; a lexical error is returned by every later Advance.
type TokenState struct {
	lex *lexer.Lexer
	cur lexer.Token
	idx int
	err error
}

// NewState creates a State positioned on the first token of line
func NewState(line string) (*TokenState, error) {
	s := &TokenState{lex: lexer.New(line)}

	return s, s.Advance()
}

// Current returns the token under the cursor
func (s *TokenState) Current() lexer.Token {
	return s.cur
}

// Index returns the 1-based position of the current token
func (s *TokenState) Index() int {
	return s.idx
}

// Advance moves to the next token
func (s *TokenState) Advance() error {
	if s.err != nil {
		return s.err
	}
	if s.idx > 0 && s.cur.Kind == lexer.End {
		return nil
	}

	tok, err := s.lex.Next()
	if err != nil {
		s.err = err
		return err
	}
	s.cur = tok
	s.idx++

	return nil
}
