package comandante

import (
	"sort"
	"strings"

	"github.com/napalu/comandante/argtype"
	"github.com/napalu/comandante/executor"
	"github.com/napalu/comandante/i18n"
	"github.com/napalu/comandante/internal/messages"
)

const (
	builtinLiteral = "comandante"
	builtinList    = "list"
)

type builtin struct {
	literals []string
	option   string
	alias    string
	limit    bool
	usage    string
	handler  executor.Handler
}

func (e *Engine) registerBuiltins() error {
	msg := i18n.Default()
	builtins := []builtin{
		{
			literals: []string{builtinLiteral}, option: "version", alias: "v",
			usage: msg.T(messages.MsgUsageVersionKey),
			handler: func(executor.Arguments, any) (any, error) {
				return msg.T(messages.MsgVersionKey, e.version), nil
			},
		},
		{
			literals: []string{builtinLiteral}, option: "author", alias: "a",
			usage: msg.T(messages.MsgUsageAuthorKey),
			handler: func(executor.Arguments, any) (any, error) {
				return msg.T(messages.MsgAuthorKey, e.author), nil
			},
		},
		{
			literals: []string{builtinLiteral}, option: "doc", alias: "d",
			usage: msg.T(messages.MsgUsageDocKey),
			handler: func(executor.Arguments, any) (any, error) {
				return msg.T(messages.MsgDocKey, e.doc), nil
			},
		},
		{
			literals: []string{builtinLiteral}, option: "info", alias: "i",
			usage: msg.T(messages.MsgUsageInfoKey),
			handler: func(executor.Arguments, any) (any, error) {
				return msg.T(messages.MsgInfoKey, e.version, e.author, e.doc), nil
			},
		},
		{
			literals: []string{builtinLiteral, builtinList}, option: "command", alias: "c",
			usage: msg.T(messages.MsgUsageListCommandKey),
			handler: func(executor.Arguments, any) (any, error) {
				var sb strings.Builder
				sb.WriteString(msg.T(messages.MsgCommandsKey))
				sb.WriteString("\n")
				e.PrintCommands(&sb)
				return strings.TrimRight(sb.String(), "\n"), nil
			},
		},
		{
			literals: []string{builtinLiteral, builtinList}, option: "usage", alias: "u",
			usage: msg.T(messages.MsgUsageListUsageKey),
			handler: func(executor.Arguments, any) (any, error) {
				counts := e.usageCounts()
				return e.renderUsage(counts, counts), nil
			},
		},
		{
			literals: []string{builtinLiteral, builtinList}, option: "desc", limit: true,
			usage: msg.T(messages.MsgUsageListDescKey),
			handler: func(args executor.Arguments, _ any) (any, error) {
				return e.sortedUsage(args, func(a, b int64) bool { return a > b })
			},
		},
		{
			literals: []string{builtinLiteral, builtinList}, option: "asc", limit: true,
			usage: msg.T(messages.MsgUsageListAscKey),
			handler: func(args executor.Arguments, _ any) (any, error) {
				return e.sortedUsage(args, func(a, b int64) bool { return a < b })
			},
		},
	}

	for _, b := range builtins {
		cb := newCommandBuilder(e.reg, nil)
		for _, literal := range b.literals {
			cb.Literal(literal)
		}
		cb.Option(b.option, b.alias)
		if b.limit {
			cb.Argument("limit", argtype.Int)
		}
		if err := cb.Executor(b.handler, b.usage); err != nil {
			return err
		}
	}

	return nil
}

type usageCount struct {
	path  string
	count int64
}

func (e *Engine) usageCounts() []usageCount {
	bindings := e.reg.Executors()
	counts := make([]usageCount, 0, len(bindings))
	for _, b := range bindings {
		counts = append(counts, usageCount{path: b.Path, count: b.Executor.Count()})
	}

	return counts
}

// sortedUsage orders the invocation counts with less and keeps the first `limit`
// of them. A limit of zero or less keeps every count.
func (e *Engine) sortedUsage(args executor.Arguments, less func(a, b int64) bool) (any, error) {
	v, err := args.Parse("limit")
	if err != nil {
		return nil, err
	}
	limit := v.(int)

	all := e.usageCounts()
	sort.SliceStable(all, func(i, j int) bool {
		return less(all[i].count, all[j].count)
	})
	shown := all
	if limit > 0 && limit < len(all) {
		shown = all[:limit]
	}

	return e.renderUsage(all, shown), nil
}

// renderUsage lists shown, or reports that nothing has run yet when no count in
// all is positive
func (e *Engine) renderUsage(all, shown []usageCount) string {
	msg := i18n.Default()
	invoked := false
	for _, c := range all {
		if c.count > 0 {
			invoked = true
			break
		}
	}
	if !invoked {
		return msg.T(messages.MsgNoUsageKey)
	}

	lines := make([]string, 0, len(shown)+1)
	lines = append(lines, msg.T(messages.MsgUsageHeaderKey))
	for _, c := range shown {
		lines = append(lines, msg.T(messages.MsgUsageEntryKey, c.path, c.count))
	}

	return strings.Join(lines, "\n")
}
