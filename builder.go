package comandante

import (
	"strings"
	"unicode/utf8"

	"github.com/napalu/comandante/argtype"
	"github.com/napalu/comandante/errs"
	"github.com/napalu/comandante/executor"
	"github.com/napalu/comandante/registry"
)

// CommandBuilder registers one command chain. Each call extends the chain from
// the item added last; the first failing call is kept and every later call is a no-op.
//
//	err := engine.Register().
//		Literal("app").
//		Option("font", "f").
//		Argument("font_main", argtype.String).
//		Argument("font_next", argtype.String).
//		Executor(setFont, "set the main and the fallback font")
type CommandBuilder struct {
	reg       *registry.Registry
	converter NameConversionFunc
	prevItem  *registry.Item
	prevMain  *registry.Item
	err       error
}

func newCommandBuilder(reg *registry.Registry, converter NameConversionFunc) *CommandBuilder {
	return &CommandBuilder{
		reg:       reg,
		converter: converter,
		prevItem:  registry.Root,
		prevMain:  registry.Root,
	}
}

// Literal appends a command word. Literals may only follow the root or another literal.
func (b *CommandBuilder) Literal(name string) *CommandBuilder {
	if b.err != nil {
		return b
	}

	name = b.convert(name)
	if name == "" {
		b.err = errs.ErrBuild.Wrap(errs.ErrEmptyName)
		return b
	}
	if !b.prevItem.IsRoot() && b.prevItem.Kind() != registry.Literal {
		b.err = errs.ErrBuild.Wrap(errs.ErrLiteralOrder.WithArgs(name))
		return b
	}

	item, err := b.reg.Register(registry.Literal, b.prevItem, name, "")
	if err != nil {
		b.err = err
		return b
	}
	b.prevItem = item
	b.prevMain = item

	return b
}

// Option appends an option of the last literal, written `--name` or, when a single
// character alias is given, `-alias`
func (b *CommandBuilder) Option(name string, alias ...string) *CommandBuilder {
	if b.err != nil {
		return b
	}

	name = b.convert(name)
	if name == "" {
		b.err = errs.ErrBuild.Wrap(errs.ErrEmptyName)
		return b
	}
	if b.prevMain.IsRoot() {
		b.err = errs.ErrBuild.Wrap(errs.ErrOptionAtRoot.WithArgs(name))
		return b
	}

	var short string
	if len(alias) > 0 {
		short = alias[0]
		if short != "" && utf8.RuneCountInString(short) != 1 {
			b.err = errs.ErrBuild.Wrap(errs.ErrInvalidAlias.WithArgs(short))
			return b
		}
	}

	item, err := b.reg.Register(registry.Option, b.prevMain, name, short)
	if err != nil {
		b.err = err
		return b
	}
	b.prevItem = item

	return b
}

// Argument appends a typed argument slot. Consecutive arguments form a chain
// whose values are collected in order; a nil valueType means argtype.String.
func (b *CommandBuilder) Argument(param string, valueType argtype.Type) *CommandBuilder {
	if b.err != nil {
		return b
	}

	if param == "" {
		b.err = errs.ErrBuild.Wrap(errs.ErrEmptyName)
		return b
	}
	if b.prevItem.IsRoot() {
		b.err = errs.ErrBuild.Wrap(errs.ErrArgumentAtRoot.WithArgs(param))
		return b
	}

	item, err := b.reg.RegisterArgument(b.prevItem, param, valueType)
	if err != nil {
		b.err = err
		return b
	}
	b.prevItem = item

	return b
}

// Executor binds handler to the last item of the chain and ends the registration.
// When an executor is already bound to that item the existing one is kept.
func (b *CommandBuilder) Executor(handler executor.Handler, usage ...string) error {
	if b.err != nil {
		return b.err
	}
	if b.prevItem.IsRoot() {
		b.err = errs.ErrBuild.Wrap(errs.ErrExecutorAtRoot)
		return b.err
	}

	b.reg.BindExecutor(b.prevItem, executor.New(handler, strings.Join(usage, " ")))

	return nil
}

// Err returns the first error recorded by the builder
func (b *CommandBuilder) Err() error {
	return b.err
}

func (b *CommandBuilder) convert(name string) string {
	if b.converter == nil {
		return name
	}

	return b.converter(name)
}
