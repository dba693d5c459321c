package lexer

import "fmt"

// Kind classifies a Token
type Kind int

const (
	// End marks exhausted input
	End Kind = iota
	// Word is a bare alphanumeric token which is either a literal or an argument value.
	// Only the grammar analyzer can tell which.
	Word
	// Option is an option name following a "-" or "--" prefix
	Option
	// Prefix is one of the fixed identifiers "-", "--", "'", "|" and "&"
	Prefix
	// Argument is the decoded content of a quoted argument
	Argument
)

const (
	ShortPrefix = "-"
	LongPrefix  = "--"
	Quote       = "'"
	Pipe        = "|"
	Chain       = "&"
)

func (k Kind) String() string {
	switch k {
	case End:
		return "end"
	case Word:
		return "word"
	case Option:
		return "option"
	case Prefix:
		return "prefix"
	case Argument:
		return "argument"
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Token is one lexical unit of an input line. Offset is the byte offset of the
// token's first character.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
}

// Is reports whether the token has the given kind and text
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

// IsOperator reports whether the token is a pipe or chain prefix
func (t Token) IsOperator() bool {
	return t.Kind == Prefix && (t.Text == Pipe || t.Text == Chain)
}

func (t Token) String() string {
	if t.Kind == End {
		return "<end>"
	}

	return t.Text
}
