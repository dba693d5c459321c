package errs

import (
	"strings"

	"github.com/napalu/comandante/i18n"
)

// Analysis errors
var (
	ErrLexical           = i18n.NewError(ErrLexicalKey)
	ErrUnterminatedQuote = i18n.NewError(ErrUnterminatedQuoteKey)
	ErrMissingOptionName = i18n.NewError(ErrMissingOptionNameKey)
	ErrSyntax            = i18n.NewError(ErrSyntaxKey)
	ErrNotFound          = i18n.NewError(ErrNotFoundKey)
	ErrSuggestion        = i18n.NewError(ErrSuggestionKey)
	ErrPipeSource        = i18n.NewError(ErrPipeSourceKey)
)

// Execution errors
var (
	ErrExecution        = i18n.NewError(ErrExecutionKey)
	ErrHandlerPanic     = i18n.NewError(ErrHandlerPanicKey)
	ErrNoExecutable     = i18n.NewError(ErrNoExecutableKey)
	ErrPipeSourceFailed = i18n.NewError(ErrPipeSourceFailedKey)
)

// Registration errors
var (
	ErrBuild          = i18n.NewError(ErrBuildKey)
	ErrEmptyName      = i18n.NewError(ErrEmptyNameKey)
	ErrLiteralOrder   = i18n.NewError(ErrLiteralOrderKey)
	ErrArgumentAtRoot = i18n.NewError(ErrArgumentAtRootKey)
	ErrExecutorAtRoot = i18n.NewError(ErrExecutorAtRootKey)
	ErrOptionAtRoot   = i18n.NewError(ErrOptionAtRootKey)
	ErrInvalidAlias   = i18n.NewError(ErrInvalidAliasKey)
	ErrKindClash      = i18n.NewError(ErrKindClashKey)
)

// Input queue errors
var (
	ErrProduce        = i18n.NewError(ErrProduceKey)
	ErrStopped        = i18n.NewError(ErrStoppedKey)
	ErrAlreadyRunning = i18n.NewError(ErrAlreadyRunningKey)
)

// Argument and definition errors
var (
	ErrParseValue        = i18n.NewError(ErrParseValueKey)
	ErrArgumentNotBound  = i18n.NewError(ErrArgumentNotBoundKey)
	ErrUnknownType       = i18n.NewError(ErrUnknownTypeKey)
	ErrUnknownHandler    = i18n.NewError(ErrUnknownHandlerKey)
	ErrInvalidDefinition = i18n.NewError(ErrInvalidDefinitionKey)
)

// LexicalError reports a character the lexer cannot place, an option prefix with
// no name or a quote left open at end of input.
type LexicalError struct {
	Char         rune
	Offset       int
	Prefix       string
	Unterminated bool
}

func (e *LexicalError) Error() string {
	switch {
	case e.Unterminated:
		return ErrUnterminatedQuote.WithArgs(e.Offset).Error()
	case e.Prefix != "":
		return ErrMissingOptionName.WithArgs(e.Prefix, e.Offset).Error()
	default:
		return ErrLexical.WithArgs(string(e.Char), e.Offset).Error()
	}
}

func (e *LexicalError) Unwrap() error {
	return ErrLexical
}

// SyntaxError reports a token of the wrong kind. Index is 1-based. Err optionally
// narrows down the reason, e.g. ErrPipeSource.
type SyntaxError struct {
	Index int
	Token string
	Want  string
	Err   error
}

func (e *SyntaxError) Error() string {
	msg := ErrSyntax.WithArgs(e.Token, e.Index, e.Want).Error()
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}

	return msg
}

func (e *SyntaxError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSyntax}
	}

	return []error{ErrSyntax, e.Err}
}

// NotFoundError reports a word which matches no registered item. Suggestions
// lists the items reachable from the place the lookup failed.
type NotFoundError struct {
	Index       int
	Token       string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := ErrNotFound.WithArgs(e.Token, e.Index).Error()
	if len(e.Suggestions) == 0 {
		return msg
	}

	return msg + "; " + ErrSuggestion.WithArgs(strings.Join(e.Suggestions, ", ")).Error()
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ExecutionError wraps a failure raised by the handler bound to Command
type ExecutionError struct {
	Command string
	Err     error
}

func (e *ExecutionError) Error() string {
	msg := ErrExecution.WithArgs(e.Command).Error()
	if e.Err == nil {
		return msg
	}

	return msg + ": " + e.Err.Error()
}

func (e *ExecutionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrExecution}
	}

	return []error{ErrExecution, e.Err}
}
