package definition

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/napalu/comandante"
	"github.com/napalu/comandante/argtype"
	"github.com/napalu/comandante/errs"
	"github.com/napalu/comandante/executor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demo = `
commands:
  - chain:
      - literal: app
      - option: color
        alias: c
      - argument: color
        type: string
    handler: echo
    usage: set app color
  - chain:
      - literal: app
      - option: font
        alias: f
      - argument: font_main
      - argument: font_next
    handler: echo
  - chain:
      - literal: app
      - literal: echo
      - argument: text
    handler: echo
    usage: echo text
  - chain:
      - literal: grep
      - argument: pattern
    handler: grep
  - chain:
      - literal: sleep
      - argument: for
        type: duration
    handler: echo
`

func echo(args executor.Arguments, _ any) (any, error) {
	return strings.Join(args.Values(), " "), nil
}

func grep(args executor.Arguments, piped any) (any, error) {
	pattern, _ := args.Lookup("pattern")
	if s, ok := piped.(string); ok && strings.Contains(s, pattern) {
		return s, nil
	}
	return nil, nil
}

var handlers = Handlers{"echo": echo, "grep": grep}

func newEngine(t *testing.T) *comandante.Engine {
	t.Helper()
	engine, err := comandante.NewEngineWith(comandante.WithBuiltins(false))
	require.NoError(t, err)
	return engine
}

func fluent(t *testing.T) *comandante.Engine {
	t.Helper()
	engine := newEngine(t)
	require.NoError(t, engine.Register().Literal("app").Option("color", "c").Argument("color", argtype.String).Executor(echo, "set app color"))
	require.NoError(t, engine.Register().Literal("app").Option("font", "f").Argument("font_main", nil).Argument("font_next", nil).Executor(echo))
	require.NoError(t, engine.Register().Literal("app").Literal("echo").Argument("text", nil).Executor(echo, "echo text"))
	require.NoError(t, engine.Register().Literal("grep").Argument("pattern", nil).Executor(grep))
	require.NoError(t, engine.Register().Literal("sleep").Argument("for", argtype.Duration).Executor(echo))
	return engine
}

func TestApply_SamePlanAsFluentRegistration(t *testing.T) {
	f, err := Load(strings.NewReader(demo))
	require.NoError(t, err)
	require.Len(t, f.Commands, 5)

	declared := newEngine(t)
	require.NoError(t, f.Apply(declared, handlers))
	registered := fluent(t)

	lines := []string{
		"app --color 'red' --font 'Soft' 'Hard'",
		"app -c red -f a b",
		"app echo 'hello world' | grep hello",
		"app echo hello & app echo world",
		"sleep 5s",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			want, err := registered.Analyze(line)
			require.NoError(t, err)
			got, err := declared.Analyze(line)
			require.NoError(t, err)

			require.Equal(t, want.Len(), got.Len())
			for i, entry := range got.Entries() {
				assert.Equal(t, want.Entries()[i].Path, entry.Path)
				assert.Equal(t, want.Entries()[i].Arguments.Values(), entry.Arguments.Values())
				assert.Equal(t, want.Entries()[i].Executor.Usage(), entry.Executor.Usage())
				assert.Equal(t, want.Entries()[i].PipeSource == nil, entry.PipeSource == nil)
			}
		})
	}

	var tree, wantTree strings.Builder
	declared.PrintCommands(&tree)
	registered.PrintCommands(&wantTree)
	assert.Equal(t, wantTree.String(), tree.String())
}

func TestApply_Errors(t *testing.T) {
	t.Run("unknown handler", func(t *testing.T) {
		f, err := Load(strings.NewReader("commands:\n  - chain:\n      - literal: app\n    handler: nope\n"))
		require.NoError(t, err)
		engine := newEngine(t)
		err = f.Apply(engine, handlers)
		assert.ErrorIs(t, err, errs.ErrUnknownHandler)
		assert.Empty(t, engine.Commands())
	})

	t.Run("unknown type", func(t *testing.T) {
		doc := "commands:\n  - chain:\n      - literal: app\n      - argument: x\n        type: color\n    handler: echo\n"
		f, err := Load(strings.NewReader(doc))
		require.NoError(t, err)
		engine := newEngine(t)
		err = f.Apply(engine, handlers)
		assert.ErrorIs(t, err, errs.ErrUnknownType)
		assert.Empty(t, engine.Commands())
	})

	t.Run("build error", func(t *testing.T) {
		doc := "commands:\n  - chain:\n      - argument: x\n    handler: echo\n"
		f, err := Load(strings.NewReader(doc))
		require.NoError(t, err)
		err = f.Apply(newEngine(t), handlers)
		assert.ErrorIs(t, err, errs.ErrBuild)
		assert.ErrorIs(t, err, errs.ErrArgumentAtRoot)
	})
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty", doc: ""},
		{name: "no commands", doc: "commands: []\n"},
		{name: "missing handler", doc: "commands:\n  - chain:\n      - literal: app\n"},
		{name: "empty chain", doc: "commands:\n  - chain: []\n    handler: echo\n"},
		{name: "empty step", doc: "commands:\n  - chain:\n      - alias: a\n    handler: echo\n"},
		{name: "two kinds in one step", doc: "commands:\n  - chain:\n      - literal: app\n        option: color\n    handler: echo\n"},
		{name: "long alias", doc: "commands:\n  - chain:\n      - literal: app\n      - option: color\n        alias: co\n    handler: echo\n"},
		{name: "alias without option", doc: "commands:\n  - chain:\n      - literal: app\n        alias: a\n    handler: echo\n"},
		{name: "type without argument", doc: "commands:\n  - chain:\n      - literal: app\n        type: int\n    handler: echo\n"},
		{name: "unknown field", doc: "commands:\n  - chain:\n      - literal: app\n    handler: echo\n    usages: typo\n"},
		{name: "malformed", doc: "commands: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, errs.ErrInvalidDefinition)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.yaml")
	require.NoError(t, os.WriteFile(path, []byte(demo), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "app", f.Commands[0].Chain[0].Literal)
	assert.Equal(t, "c", f.Commands[0].Chain[1].Alias)
	assert.Equal(t, "string", f.Commands[0].Chain[2].Type)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
