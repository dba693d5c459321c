package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/napalu/comandante"
	"github.com/napalu/comandante/definition"
	"github.com/napalu/comandante/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDemoEngine(t *testing.T, out *bytes.Buffer) *comandante.Engine {
	t.Helper()
	engine, err := comandante.NewEngineWith(comandante.WithOutput(out))
	require.NoError(t, err)

	defs, err := definition.Load(bytes.NewReader(demoDefinitions))
	require.NoError(t, err)
	require.NoError(t, defs.Apply(engine, handlers()))

	return engine
}

func TestDemoCommands(t *testing.T) {
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })

	tests := []struct {
		line string
		want string
	}{
		{line: "echo 'hello world'", want: "hello world\n"},
		{line: "echo -u 'hi there'", want: "HI THERE\n"},
		{line: "echo 'hello world' | grep world | upper", want: "HELLO WORLD\n"},
		{line: "echo 'hello world' | grep bye | upper", want: "\n"},
		{line: "sum 1,2,3", want: "6\n"},
		{line: "time --at 2024-01-02T03:04:05Z", want: "2024-01-02T03:04:05Z\n"},
		{line: "time -i 90m", want: "2024-01-02T04:34:05Z\n"},
		{line: "echo 'a' & echo 'b'", want: "a\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			var out bytes.Buffer
			engine := newDemoEngine(t, &out)
			_, err := engine.Dispatch(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestDemoCommandErrors(t *testing.T) {
	var out bytes.Buffer
	engine := newDemoEngine(t, &out)

	_, err := engine.Dispatch("sum 1,two")
	assert.ErrorIs(t, err, errs.ErrParseValue)

	_, err = engine.Dispatch("time --in soon")
	assert.ErrorIs(t, err, errs.ErrParseValue)

	_, err = engine.Dispatch("ech 'x'")
	var notFound *errs.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Suggestions, "echo")
	assert.Empty(t, out.String())
}

func TestBatch(t *testing.T) {
	var out bytes.Buffer
	engine := newDemoEngine(t, &out)

	input := "echo 'a'\n\n  bogus line\necho 'b'\nexit\necho 'c'\n"
	require.NoError(t, batch(engine, strings.NewReader(input)))
	assert.Equal(t, "a\nb\n", out.String())
}
