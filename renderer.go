package comandante

import (
	"fmt"
	"io"
	"strings"

	"github.com/napalu/comandante/registry"
)

// PrintCommands writes the registered command grammar to writer as a tree using the
// engine's PrettyPrintConfig
func (e *Engine) PrintCommands(writer io.Writer) {
	e.PrintCommandsUsing(writer, e.prettyPrint)
}

// PrintCommandsUsing writes the registered command grammar to writer using config.
// Every item is printed on its own line, followed by the usage of the executor bound
// to it, if any.
// PrettyPrintConfig.NewCommandPrefix precedes top-level literals
// PrettyPrintConfig.DefaultPrefix precedes items which are followed by other items
// PrettyPrintConfig.TerminalPrefix precedes items nothing follows
// PrettyPrintConfig.OuterLevelBindPrefix is repeated once per level under the top-level literal
func (e *Engine) PrintCommandsUsing(writer io.Writer, config *PrettyPrintConfig) {
	for _, top := range e.reg.Children(registry.Root) {
		ok := e.visit(top, 0, func(item *registry.Item, level int, terminal bool) bool {
			start := config.DefaultPrefix
			switch {
			case level == 0:
				start = config.NewCommandPrefix
			case terminal:
				start = config.TerminalPrefix
			}

			line := fmt.Sprintf("%s%s %s", start, strings.Repeat(config.OuterLevelBindPrefix, level), item.Describe())
			if ex, found := e.reg.FindExecutor(item); found && ex.Usage() != "" {
				line += fmt.Sprintf(" %q", ex.Usage())
			}
			_, err := writer.Write([]byte(line + "\n"))
			return err == nil
		})
		if !ok {
			return
		}
	}
}

// visit walks item and everything registered after it depth first
func (e *Engine) visit(item *registry.Item, level int, visitor func(item *registry.Item, level int, terminal bool) bool) bool {
	children := e.reg.Children(item)
	if !visitor(item, level, len(children) == 0) {
		return false
	}
	for _, child := range children {
		if !e.visit(child, level+1, visitor) {
			return false
		}
	}

	return true
}
