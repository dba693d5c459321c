package comandante

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/napalu/comandante/i18n"
	"golang.org/x/text/language"
)

// NewEngineWith allows initialization of Engine using option functions. The caller should always test for error on
// return because Engine will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	engine, err := NewEngineWith(
//		WithQueueCapacity(32),
//		WithNameConverter(ToKebabCase),
//		WithVersion("2.1.0"),
//		WithLogger(log.NewWithOptions(os.Stderr, log.Options{Prefix: "comandante"})))
func NewEngineWith(configs ...ConfigureEngineFunc) (*Engine, error) {
	engine := newEngine()

	var err error
	for _, config := range configs {
		config(engine, &err)
		if err != nil {
			return nil, err
		}
	}

	if err = engine.setup(); err != nil {
		return nil, err
	}

	return engine, nil
}

// WithLogger sets the logger used by the dispatcher and the input worker
func WithLogger(logger *log.Logger) ConfigureEngineFunc {
	return func(engine *Engine, err *error) {
		if logger != nil {
			engine.logger = logger
		}
	}
}

// WithOutput sets the writer command results are written to
func WithOutput(w io.Writer) ConfigureEngineFunc {
	return func(engine *Engine, err *error) {
		if w != nil {
			engine.output = w
		}
	}
}

// WithQueueCapacity sets how many lines the input queue buffers before Submit blocks
func WithQueueCapacity(capacity int) ConfigureEngineFunc {
	return func(engine *Engine, err *error) {
		engine.capacity = capacity
	}
}

// WithNameConverter converts literal and option names passed to the command builder
func WithNameConverter(converter NameConversionFunc) ConfigureEngineFunc {
	return func(engine *Engine, err *error) {
		engine.nameConverter = converter
	}
}

// WithBuiltins enables or disables the built-in comandante commands. They are enabled by default.
func WithBuiltins(enabled bool) ConfigureEngineFunc {
	return func(engine *Engine, err *error) {
		engine.builtins = enabled
	}
}

func WithVersion(version string) ConfigureEngineFunc {
	return func(engine *Engine, err *error) {
		engine.version = version
	}
}

func WithAuthor(author string) ConfigureEngineFunc {
	return func(engine *Engine, err *error) {
		engine.author = author
	}
}

// WithDoc sets the documentation link reported by `comandante --doc`
func WithDoc(doc string) ConfigureEngineFunc {
	return func(engine *Engine, err *error) {
		engine.doc = doc
	}
}

// WithPrettyPrintConfig sets the tree layout used by PrintCommands
func WithPrettyPrintConfig(config *PrettyPrintConfig) ConfigureEngineFunc {
	return func(engine *Engine, err *error) {
		if config != nil {
			engine.prettyPrint = config
		}
	}
}

// WithLanguage selects the language error and built-in messages are rendered in.
// It sets the process-wide i18n.Default() bundle.
func WithLanguage(lang language.Tag) ConfigureEngineFunc {
	return func(engine *Engine, err *error) {
		*err = i18n.Default().SetDefaultLanguage(lang)
	}
}
