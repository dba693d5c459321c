// Package grammar resolves token streams against the registry and turns them
// into execution plans.
//
// The accepted language is
//
//	S  -> C N
//	N  -> T C N | C N | ε
//	C  -> M M* Y*
//	M  -> literal | argument (not at root)
//	Y  -> O Y | A Y | ε
//	T  -> '|' | '&'
//	O  -> '--' OPT | '-' OPT+
//	A  -> "'" A1 "'" | word (not at root)
//
// Literals and bare arguments look alike; a word is a literal when one is
// registered under the current command and an argument otherwise.
package grammar

import (
	"errors"

	"github.com/google/uuid"
	"github.com/napalu/comandante/errs"
	"github.com/napalu/comandante/executor"
	"github.com/napalu/comandante/lexer"
	"github.com/napalu/comandante/registry"
)

const (
	wantLiteral    = "literal"
	wantMain       = "literal or argument"
	wantOption     = "option"
	wantOptionName = "option name"
	wantArgument   = "argument"
	wantQuote      = "closing quote"
	wantCommand    = "command"
)

// Analyzer builds plans from input lines. It only reads the registry and may
// be shared once registration is complete.
type Analyzer struct {
	reg *registry.Registry
}

func NewAnalyzer(reg *registry.Registry) *Analyzer {
	return &Analyzer{reg: reg}
}

// Analyze parses line into a Plan. Nothing in the plan has been executed; on
// error no plan is returned. A blank line yields an empty plan.
func (a *Analyzer) Analyze(line string) (*Plan, error) {
	state, err := NewState(line)
	if err != nil {
		return nil, err
	}

	an := &analysis{
		reg:      a.reg,
		state:    state,
		plan:     newPlan(line),
		prevItem: registry.Root,
		prevMain: registry.Root,
	}
	if state.Current().Kind == lexer.End {
		return an.plan, nil
	}
	if err := an.sentence(); err != nil {
		return nil, err
	}

	return an.plan, nil
}

// analysis is the cursor state for one line. prevItem is the item matched last,
// prevMain the literal options and literals are resolved under.
type analysis struct {
	reg   *registry.Registry
	state State
	plan  *Plan

	prevItem *registry.Item
	prevMain *registry.Item
	args     executor.Arguments

	// lastEmitted is the latest entry of the current operator segment,
	// pipeSource the entry waiting for the first emission after a '|'
	lastEmitted *AnalyzedExecutor
	pipeSource  *AnalyzedExecutor
}

func (an *analysis) tok() lexer.Token {
	return an.state.Current()
}

func (an *analysis) advance() error {
	return an.state.Advance()
}

// S -> C N. A failure inside a command only becomes the line's error when the
// next command cannot start; until then it is carried as the cause.
func (an *analysis) sentence() error {
	cause, err := an.command(nil)
	if err != nil {
		return err
	}

	for an.tok().Kind != lexer.End {
		if an.tok().IsOperator() {
			if err := an.operator(); err != nil {
				return err
			}
			cause = nil
		}
		if cause, err = an.command(cause); err != nil {
			return err
		}
	}
	an.emit()

	return nil
}

// C -> M M* Y*. Returns the failure that ended the repetitions.
func (an *analysis) command(cause error) (error, error) {
	if err := an.main(cause); err != nil {
		return nil, err
	}

	cause = nil
	for an.tok().Kind != lexer.End {
		err := an.main(cause)
		if err == nil {
			continue
		}
		if isFatal(err) {
			return nil, err
		}
		cause = err
		break
	}

	for an.tok().Kind != lexer.End {
		err := an.option(cause)
		if err == nil {
			cause = nil
			continue
		}
		if isFatal(err) {
			return nil, err
		}
		cause = err

		err = an.argument(cause)
		if err == nil {
			cause = nil
			continue
		}
		if isFatal(err) {
			return nil, err
		}
		cause = err
		break
	}

	return cause, nil
}

// M resolves a word as a literal under the current command, else as an argument
func (an *analysis) main(cause error) error {
	tok := an.tok()
	if tok.Kind != lexer.Word {
		if an.prevItem.IsRoot() {
			return an.mismatch(cause, wantLiteral)
		}
		return an.mismatch(cause, wantMain)
	}

	if item, ok := an.reg.Resolve(tok.Text, an.prevMain); ok && item.Kind() == registry.Literal {
		an.moveTo(item)
		an.prevMain = item
		return an.advance()
	}
	if !an.prevItem.IsRoot() {
		return an.bind(tok)
	}

	return an.notFound(tok, registry.Root)
}

// T emits the command before the operator and resets the cursor to the root
func (an *analysis) operator() error {
	tok := an.tok()
	an.emit()

	an.pipeSource = nil
	if tok.Text == lexer.Pipe {
		if an.lastEmitted == nil {
			return &errs.SyntaxError{Index: an.state.Index(), Token: tok.String(), Want: wantCommand, Err: errs.ErrPipeSource}
		}
		an.pipeSource = an.lastEmitted
	}

	an.lastEmitted = nil
	an.prevItem = registry.Root
	an.prevMain = registry.Root
	an.args = executor.Arguments{}

	return an.advance()
}

// O -> '--' OPT | '-' OPT+
func (an *analysis) option(cause error) error {
	tok := an.tok()
	if tok.Kind != lexer.Prefix || (tok.Text != lexer.LongPrefix && tok.Text != lexer.ShortPrefix) {
		return an.mismatch(cause, wantOption)
	}

	alias := tok.Text == lexer.ShortPrefix
	if err := an.advance(); err != nil {
		return err
	}
	if err := an.optionName(cause, alias); err != nil {
		return err
	}
	for alias && an.tok().Kind == lexer.Option {
		if err := an.optionName(cause, alias); err != nil {
			return err
		}
	}

	return nil
}

func (an *analysis) optionName(cause error, alias bool) error {
	tok := an.tok()
	if tok.Kind != lexer.Option {
		return an.mismatch(cause, wantOptionName)
	}

	var (
		item *registry.Item
		ok   bool
	)
	if alias {
		item, ok = an.reg.ResolveAlias(tok.Text, an.prevMain)
	} else {
		item, ok = an.reg.Resolve(tok.Text, an.prevMain)
		ok = ok && item.Kind() == registry.Option
	}
	if !ok {
		return an.notFound(tok, an.prevMain)
	}
	an.moveTo(item)

	return an.advance()
}

// A -> "'" A1 "'" | word
func (an *analysis) argument(cause error) error {
	tok := an.tok()
	switch {
	case tok.Is(lexer.Prefix, lexer.Quote):
		if err := an.advance(); err != nil {
			return err
		}
		if an.tok().Kind != lexer.Argument {
			return an.mismatch(cause, wantArgument)
		}
		if err := an.bind(an.tok()); err != nil {
			return err
		}
		if !an.tok().Is(lexer.Prefix, lexer.Quote) {
			return an.mismatch(cause, wantQuote)
		}
		return an.advance()
	case tok.Kind == lexer.Word && !an.prevItem.IsRoot():
		return an.bind(tok)
	}

	return an.mismatch(cause, wantArgument)
}

// A1 binds tok to the argument slot following the current item
func (an *analysis) bind(tok lexer.Token) error {
	item, ok := an.reg.Resolve(registry.ArgumentName, an.prevItem)
	if !ok || item.Kind() != registry.Argument {
		return an.notFound(tok, an.prevItem)
	}

	an.moveTo(item)
	an.args = an.args.Append(executor.Value{
		Param: item.SubName(),
		Type:  item.ValueType(),
		Text:  tok.Text,
	})

	return an.advance()
}

// moveTo emits the executor of the item being left
func (an *analysis) moveTo(item *registry.Item) {
	an.emit()
	an.prevItem = item
}

// emit appends the executor bound to prevItem, if any, with the arguments
// accumulated since the last emission
func (an *analysis) emit() {
	ex, ok := an.reg.FindExecutor(an.prevItem)
	if !ok {
		return
	}

	entry := &AnalyzedExecutor{
		ID:        uuid.New(),
		Executor:  ex,
		Item:      an.prevItem,
		Path:      an.reg.Path(an.prevItem),
		Arguments: an.args,
	}
	if an.pipeSource != nil {
		an.plan.takeLast(an.pipeSource)
		entry.PipeSource = an.pipeSource
		an.pipeSource = nil
	}

	an.plan.push(entry)
	an.lastEmitted = entry
	an.args = executor.Arguments{}
}

// mismatch reports a token of the wrong kind, deferring to the earlier failure if there is one
func (an *analysis) mismatch(cause error, want string) error {
	if cause != nil {
		return cause
	}

	return &errs.SyntaxError{Index: an.state.Index(), Token: an.tok().String(), Want: want}
}

func (an *analysis) notFound(tok lexer.Token, scope *registry.Item) error {
	suggestions := an.reg.Suggest(scope, tok.Text)
	if len(suggestions) == 0 && scope != an.prevMain {
		suggestions = an.reg.SuggestExcluding(an.prevMain, tok.Text, an.consumed(scope)...)
	}

	return &errs.NotFoundError{Index: an.state.Index(), Token: tok.Text, Suggestions: suggestions}
}

// consumed returns the argument slots filled between prevMain and scope
func (an *analysis) consumed(scope *registry.Item) []*registry.Item {
	var items []*registry.Item
	for cur := scope; cur != nil && cur != an.prevMain && !cur.IsRoot(); {
		if cur.Kind() == registry.Argument {
			items = append(items, cur)
		}
		next, ok := an.reg.Item(cur.PrevSerialID())
		if !ok {
			break
		}
		cur = next
	}

	return items
}

func isFatal(err error) bool {
	var lexErr *errs.LexicalError

	return errors.As(err, &lexErr)
}
