package dispatch

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/napalu/comandante/argtype"
	"github.com/napalu/comandante/errs"
	"github.com/napalu/comandante/executor"
	"github.com/napalu/comandante/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	args  []string
	piped any
}

type recorder struct {
	reg   *registry.Registry
	calls map[string][]call
	execs map[string]*executor.Executor
}

func (r *recorder) handler(name string, fn func(args executor.Arguments, piped any) (any, error)) *executor.Executor {
	ex := executor.New(func(args executor.Arguments, piped any) (any, error) {
		r.calls[name] = append(r.calls[name], call{args: args.Values(), piped: piped})
		return fn(args, piped)
	}, name)
	r.execs[name] = ex

	return ex
}

func newRecorder(t *testing.T) *recorder {
	r := &recorder{
		reg:   registry.New(),
		calls: map[string][]call{},
		execs: map[string]*executor.Executor{},
	}
	reg := r.reg
	must := func(item *registry.Item, err error) *registry.Item {
		t.Helper()
		require.NoError(t, err)
		return item
	}

	app := must(reg.Register(registry.Literal, registry.Root, "app", ""))
	color := must(reg.Register(registry.Option, app, "color", "c"))
	reg.BindExecutor(must(reg.RegisterArgument(color, "color", argtype.String)), r.handler("color", func(args executor.Arguments, _ any) (any, error) {
		return "color=" + strings.Join(args.Values(), ","), nil
	}))
	font := must(reg.Register(registry.Option, app, "font", "f"))
	fontMain := must(reg.RegisterArgument(font, "font_main", argtype.String))
	reg.BindExecutor(must(reg.RegisterArgument(fontMain, "font_next", argtype.String)), r.handler("font", func(args executor.Arguments, _ any) (any, error) {
		return "font=" + strings.Join(args.Values(), "/"), nil
	}))

	echo := must(reg.Register(registry.Literal, app, "echo", ""))
	reg.BindExecutor(must(reg.RegisterArgument(echo, "text", argtype.String)), r.handler("echo", func(args executor.Arguments, _ any) (any, error) {
		text, _ := args.Lookup("text")
		return text, nil
	}))

	fail := must(reg.Register(registry.Literal, app, "fail", ""))
	reg.BindExecutor(fail, r.handler("fail", func(executor.Arguments, any) (any, error) {
		return nil, errors.New("boom")
	}))

	grep := must(reg.Register(registry.Literal, registry.Root, "grep", ""))
	reg.BindExecutor(must(reg.RegisterArgument(grep, "pattern", argtype.String)), r.handler("grep", func(args executor.Arguments, piped any) (any, error) {
		pattern, _ := args.Lookup("pattern")
		in, _ := piped.(string)
		return strings.Contains(in, pattern), nil
	}))

	return r
}

func TestDispatchBindsArgument(t *testing.T) {
	r := newRecorder(t)
	results, err := New(r.reg).Dispatch("app echo hello")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "hello", results[0].Value)
	assert.Equal(t, []call{{args: []string{"hello"}}}, r.calls["echo"])
}

func TestDispatchOptionsCountOnce(t *testing.T) {
	r := newRecorder(t)
	results, err := New(r.reg).Dispatch("app --color 'red' --font 'Soft' 'Hard'")
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "color=red", results[0].Value)
	assert.Equal(t, "font=Soft/Hard", results[1].Value)
	assert.Equal(t, []string{"red"}, r.calls["color"][0].args)
	assert.Equal(t, []string{"Soft", "Hard"}, r.calls["font"][0].args)
	assert.Equal(t, int64(1), r.execs["color"].Count())
	assert.Equal(t, int64(1), r.execs["font"].Count())
}

func TestDispatchPipe(t *testing.T) {
	r := newRecorder(t)
	results, err := New(r.reg).Dispatch("app echo 'hello world' | grep hello")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, true, results[0].Value)
	assert.Equal(t, "grep", results[0].Entry.Executor.Usage())
	require.Len(t, r.calls["grep"], 1)
	assert.Equal(t, "hello world", r.calls["grep"][0].piped)
	assert.Equal(t, int64(1), r.execs["echo"].Count())
}

func TestDispatchChain(t *testing.T) {
	r := newRecorder(t)
	results, err := New(r.reg).Dispatch("app echo hello & app echo world")
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "hello", results[0].Value)
	assert.Equal(t, "world", results[1].Value)
	assert.Nil(t, r.calls["echo"][0].piped)
	assert.Nil(t, r.calls["echo"][1].piped)
	assert.Equal(t, int64(2), r.execs["echo"].Count())
}

func TestChainContinuesAfterFailure(t *testing.T) {
	r := newRecorder(t)
	results, err := New(r.reg).Dispatch("app fail & app echo after")
	require.Error(t, err)

	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, "after", results[1].Value)

	assert.True(t, errors.Is(err, errs.ErrExecution))
	var execErr *errs.ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, "app fail", execErr.Command)
	assert.Equal(t, int64(0), r.execs["fail"].Count())
}

func TestFailedPipeSourceSkipsDependent(t *testing.T) {
	r := newRecorder(t)
	results, err := New(r.reg).Dispatch("app fail | grep x")
	require.Error(t, err)

	require.Len(t, results, 1)
	assert.True(t, errors.Is(err, errs.ErrPipeSourceFailed))
	assert.True(t, errors.Is(err, errs.ErrExecution))
	assert.Empty(t, r.calls["grep"])
}

func TestAnalysisErrorRunsNothing(t *testing.T) {
	r := newRecorder(t)
	results, err := New(r.reg).Dispatch("app echo hello & app echo 'hello")
	assert.Nil(t, results)
	assert.True(t, errors.Is(err, errs.ErrLexical))
	assert.Empty(t, r.calls)

	_, err = New(r.reg).Dispatch("app unknown")
	assert.True(t, errors.Is(err, errs.ErrNotFound))
	assert.Empty(t, r.calls)
}

func TestEmptyPlan(t *testing.T) {
	r := newRecorder(t)
	_, err := New(r.reg).Dispatch("  ")
	assert.True(t, errors.Is(err, errs.ErrNoExecutable))

	_, err = New(r.reg).Execute(nil)
	assert.True(t, errors.Is(err, errs.ErrNoExecutable))
}

func TestDispatchLogsPlanID(t *testing.T) {
	r := newRecorder(t)
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	d := New(r.reg, WithLogger(logger))

	plan, err := d.Analyze("app echo hi")
	require.NoError(t, err)
	_, err = d.Execute(plan)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), plan.ID.String())
	assert.Contains(t, buf.String(), "dispatch")
}
