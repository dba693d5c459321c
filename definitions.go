package comandante

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/iancoleman/strcase"
	"github.com/napalu/comandante/dispatch"
	"github.com/napalu/comandante/input"
	"github.com/napalu/comandante/registry"
)

// PrettyPrintConfig is used to print the registered command grammar as a tree in PrintCommandsUsing and PrintCommands
type PrettyPrintConfig struct {
	// NewCommandPrefix precedes the start of a new top-level command
	NewCommandPrefix string
	// DefaultPrefix precedes items which have items following them
	DefaultPrefix string
	// TerminalPrefix precedes terminal items, i.e. items nothing else follows
	TerminalPrefix string
	// OuterLevelBindPrefix is used for indentation. The indentation is repeated for each level under the
	// command root. Top-level literals are at level 0.
	OuterLevelBindPrefix string
}

// ConfigureEngineFunc is used when defining Engine options
type ConfigureEngineFunc func(engine *Engine, err *error)

// NameConversionFunc converts a registered literal or option name
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "my-command-name"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a string to snake case "my_command_name"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToScreamingSnake converts a string to screaming snake case "MY_COMMAND_NAME"
	ToScreamingSnake = func(s string) string {
		return strcase.ToScreamingSnake(s)
	}

	// ToLowerCamel converts a string to lower camel case "myCommandName"
	ToLowerCamel = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToLowerCase converts a string to lower case "mycommandname"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}
)

const (
	// DefaultVersion is reported by the built-in version command unless WithVersion is used
	DefaultVersion = "1.0.0"
	DefaultAuthor  = "comandante authors"
	DefaultDoc     = "https://github.com/napalu/comandante"
)

// Engine ties the registry, the grammar analyzer, the dispatcher and the input
// queue together. Commands are registered first; lines are then either dispatched
// synchronously with Dispatch or queued with Submit for the background worker.
type Engine struct {
	reg        *registry.Registry
	dispatcher *dispatch.Dispatcher
	handler    *input.Handler
	worker     *input.Worker

	// dispatchMu serializes Dispatch and the worker; it also guards output
	dispatchMu sync.Mutex
	logger     *log.Logger
	output     io.Writer

	capacity      int
	nameConverter NameConversionFunc
	builtins      bool
	prettyPrint   *PrettyPrintConfig

	version string
	author  string
	doc     string
}
