// Package lexer turns a command line into a pull-based stream of tokens.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ef-ds/deque"
	"github.com/napalu/comandante/errs"
)

// Lexer scans one input line. A single scan may produce several tokens (an option
// prefix and its names, or both halves of a quoted argument) which are queued and
// handed out one per call to Next.
type Lexer struct {
	line    string
	pos     int
	pending *deque.Deque
	err     error
}

// New creates a Lexer for line
func New(line string) *Lexer {
	return &Lexer{
		line:    line,
		pending: deque.New(),
	}
}

// Next returns the next token. Once the input is exhausted it keeps returning an
// End token. Errors are sticky: tokens queued before the error was found are
// returned first, every later call returns the error.
func (l *Lexer) Next() (Token, error) {
	if tok, ok := l.pop(); ok {
		return tok, nil
	}
	if l.err != nil {
		return Token{}, l.err
	}

	l.skipBlanks()
	if l.pos >= len(l.line) {
		return Token{Kind: End, Offset: len(l.line)}, nil
	}

	l.err = l.scan()
	if tok, ok := l.pop(); ok {
		return tok, nil
	}

	return Token{}, l.err
}

// Tokenize scans the whole line. The End token is not included. On error the
// tokens scanned so far are returned together with the error.
func Tokenize(line string) ([]Token, error) {
	l := New(line)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return tokens, err
		}
		if tok.Kind == End {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) pop() (Token, bool) {
	v, ok := l.pending.PopFront()
	if !ok {
		return Token{}, false
	}

	return v.(Token), true
}

func (l *Lexer) push(kind Kind, text string, offset int) {
	l.pending.PushBack(Token{Kind: kind, Text: text, Offset: offset})
}

func (l *Lexer) scan() error {
	r, size := utf8.DecodeRuneInString(l.line[l.pos:])
	switch {
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		start := l.pos
		l.push(Word, l.readSimple(), start)
	case r == '-':
		return l.scanOption()
	case r == '\'':
		return l.scanQuoted()
	case r == '|':
		l.push(Prefix, Pipe, l.pos)
		l.pos += size
	case r == '&':
		l.push(Prefix, Chain, l.pos)
		l.pos += size
	default:
		return &errs.LexicalError{Char: r, Offset: l.pos}
	}

	return nil
}

func (l *Lexer) scanOption() error {
	start := l.pos
	prefix := ShortPrefix
	l.pos++
	if l.pos < len(l.line) && l.line[l.pos] == '-' {
		prefix = LongPrefix
		l.pos++
	}

	nameStart := l.pos
	name := l.readSimple()
	if name == "" {
		return &errs.LexicalError{Char: '-', Offset: start, Prefix: prefix}
	}

	l.push(Prefix, prefix, start)
	if prefix == LongPrefix {
		l.push(Option, name, nameStart)
		return nil
	}

	for i, r := range name {
		l.push(Option, string(r), nameStart+i)
	}

	return nil
}

func (l *Lexer) scanQuoted() error {
	start := l.pos
	l.push(Prefix, Quote, start)
	l.pos++

	var sb strings.Builder
	for l.pos < len(l.line) {
		c := l.line[l.pos]
		switch {
		case c == '\\' && l.pos+1 < len(l.line):
			_, size := utf8.DecodeRuneInString(l.line[l.pos+1:])
			sb.WriteString(l.line[l.pos+1 : l.pos+1+size])
			l.pos += 1 + size
		case c == '\'':
			l.push(Argument, sb.String(), start+1)
			l.push(Prefix, Quote, l.pos)
			l.pos++
			if l.pos < len(l.line) && !isBlank(l.line[l.pos]) {
				r, _ := utf8.DecodeRuneInString(l.line[l.pos:])
				return &errs.LexicalError{Char: r, Offset: l.pos}
			}
			return nil
		default:
			sb.WriteByte(c)
			l.pos++
		}
	}

	l.push(Argument, sb.String(), start+1)

	return &errs.LexicalError{Char: '\'', Offset: start, Unterminated: true}
}

// readSimple reads up to the next blank or the end of the line
func (l *Lexer) readSimple() string {
	start := l.pos
	for l.pos < len(l.line) && !isBlank(l.line[l.pos]) {
		l.pos++
	}

	return l.line[start:l.pos]
}

func (l *Lexer) skipBlanks() {
	for l.pos < len(l.line) && isBlank(l.line[l.pos]) {
		l.pos++
	}
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
