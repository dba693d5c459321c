package errs

const (
	ErrLexicalKey           = "comandante.error.lexical"
	ErrUnterminatedQuoteKey = "comandante.error.unterminated_quote"
	ErrMissingOptionNameKey = "comandante.error.missing_option_name"
	ErrSyntaxKey            = "comandante.error.syntax"
	ErrNotFoundKey          = "comandante.error.not_found"
	ErrSuggestionKey        = "comandante.error.suggestion"
	ErrExecutionKey         = "comandante.error.execution"
	ErrHandlerPanicKey      = "comandante.error.handler_panic"
	ErrNoExecutableKey      = "comandante.error.no_executable"
	ErrPipeSourceKey        = "comandante.error.pipe_source"
	ErrPipeSourceFailedKey  = "comandante.error.pipe_source_failed"
	ErrBuildKey             = "comandante.error.build"
	ErrEmptyNameKey         = "comandante.error.empty_name"
	ErrLiteralOrderKey      = "comandante.error.literal_order"
	ErrArgumentAtRootKey    = "comandante.error.argument_at_root"
	ErrExecutorAtRootKey    = "comandante.error.executor_at_root"
	ErrOptionAtRootKey      = "comandante.error.option_at_root"
	ErrInvalidAliasKey      = "comandante.error.invalid_alias"
	ErrKindClashKey         = "comandante.error.kind_clash"
	ErrProduceKey           = "comandante.error.produce"
	ErrStoppedKey           = "comandante.error.stopped"
	ErrAlreadyRunningKey    = "comandante.error.already_running"
	ErrParseValueKey        = "comandante.error.parse_value"
	ErrArgumentNotBoundKey  = "comandante.error.argument_not_bound"
	ErrUnknownTypeKey       = "comandante.error.unknown_type"
	ErrUnknownHandlerKey    = "comandante.error.unknown_handler"
	ErrInvalidDefinitionKey = "comandante.error.invalid_definition"
)
