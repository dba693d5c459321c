// Package completion suggests the literals and options that may follow the text
// typed so far, for use as a readline auto-completer.
package completion

import (
	"strings"

	"github.com/abiosoft/readline"
	"github.com/napalu/comandante/lexer"
	"github.com/napalu/comandante/registry"
)

var _ readline.AutoCompleter = (*Completer)(nil)

// Completer completes command lines against a registry
type Completer struct {
	reg *registry.Registry
}

func New(reg *registry.Registry) *Completer {
	return &Completer{reg: reg}
}

// Do implements readline.AutoCompleter. It returns the missing suffix of every
// candidate and the length of the word being completed.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	if pos > len(line) {
		pos = len(line)
	}

	partial, candidates := c.complete(string(line[:pos]))
	offset := len([]rune(partial))
	suffixes := make([][]rune, 0, len(candidates))
	for _, candidate := range candidates {
		suffixes = append(suffixes, []rune(strings.TrimPrefix(candidate, partial)+" "))
	}

	return suffixes, offset
}

// Candidates returns the complete words which may replace the last word of text
func (c *Completer) Candidates(text string) []string {
	_, candidates := c.complete(text)

	return candidates
}

func (c *Completer) complete(text string) (string, []string) {
	partial := text
	if i := strings.LastIndexAny(text, " \t"); i >= 0 {
		partial = text[i+1:]
	}
	if strings.HasPrefix(partial, lexer.Quote) {
		return partial, nil
	}

	tokens, err := lexer.Tokenize(text[:len(text)-len(partial)])
	if err != nil {
		return partial, nil
	}

	prevMain := c.scope(tokens)

	aliases := strings.HasPrefix(partial, lexer.ShortPrefix) && !strings.HasPrefix(partial, lexer.LongPrefix)
	var candidates []string
	for _, child := range c.reg.Children(prevMain) {
		var words []string
		switch child.Kind() {
		case registry.Literal:
			words = append(words, child.Name())
		case registry.Option:
			words = append(words, lexer.LongPrefix+child.Name())
			if aliases && child.SubName() != "" {
				words = append(words, lexer.ShortPrefix+child.SubName())
			}
		}
		for _, w := range words {
			if strings.HasPrefix(w, partial) {
				candidates = append(candidates, w)
			}
		}
	}

	return partial, candidates
}

// scope replays tokens over the registry and returns the literal the cursor has
// reached. Options and argument values do not move it.
func (c *Completer) scope(tokens []lexer.Token) *registry.Item {
	prevMain := registry.Root
	for _, tok := range tokens {
		switch {
		case tok.IsOperator():
			prevMain = registry.Root
		case tok.Kind == lexer.Word:
			if item, ok := c.reg.Resolve(tok.Text, prevMain); ok && item.Kind() == registry.Literal {
				prevMain = item
			}
		}
	}

	return prevMain
}
