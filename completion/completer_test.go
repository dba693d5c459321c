package completion

import (
	"testing"

	"github.com/napalu/comandante/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// app --color/-c <color>, app --verbose/-v, app echo <text>, app echo time, grep <pattern>
func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()

	app, err := reg.Register(registry.Literal, registry.Root, "app", "")
	require.NoError(t, err)
	color, err := reg.Register(registry.Option, app, "color", "c")
	require.NoError(t, err)
	_, err = reg.RegisterArgument(color, "color", nil)
	require.NoError(t, err)
	_, err = reg.Register(registry.Option, app, "verbose", "v")
	require.NoError(t, err)
	echo, err := reg.Register(registry.Literal, app, "echo", "")
	require.NoError(t, err)
	_, err = reg.RegisterArgument(echo, "text", nil)
	require.NoError(t, err)
	_, err = reg.Register(registry.Literal, echo, "time", "")
	require.NoError(t, err)
	grep, err := reg.Register(registry.Literal, registry.Root, "grep", "")
	require.NoError(t, err)
	_, err = reg.RegisterArgument(grep, "pattern", nil)
	require.NoError(t, err)

	return reg
}

func TestCompleter_Candidates(t *testing.T) {
	c := New(newRegistry(t))

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty line", text: "", want: []string{"app", "grep"}},
		{name: "top-level prefix", text: "a", want: []string{"app"}},
		{name: "after literal", text: "app ", want: []string{"--color", "--verbose", "echo"}},
		{name: "long option prefix", text: "app --v", want: []string{"--verbose"}},
		{name: "short prefix offers aliases", text: "app -", want: []string{"--color", "-c", "--verbose", "-v"}},
		{name: "after option value", text: "app --color red e", want: []string{"echo"}},
		{name: "nested literal", text: "app echo t", want: []string{"time"}},
		{name: "after pipe", text: "app echo hi | g", want: []string{"grep"}},
		{name: "after chain", text: "app echo hi & ", want: []string{"app", "grep"}},
		{name: "after quoted value", text: "app --color 'dark red' --", want: []string{"--color", "--verbose"}},
		{name: "no match", text: "app x", want: nil},
		{name: "inside quote", text: "app echo 'hel", want: nil},
		{name: "inside quote with blanks", text: "app echo 'hello wor", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Candidates(tt.text))
		})
	}
}

func TestCompleter_Do(t *testing.T) {
	c := New(newRegistry(t))

	line := []rune("app --co")
	suffixes, length := c.Do(line, len(line))
	assert.Equal(t, 4, length)
	assert.Equal(t, [][]rune{[]rune("lor ")}, suffixes)

	line = []rune("app ec grep")
	suffixes, length = c.Do(line, 6)
	assert.Equal(t, 2, length)
	assert.Equal(t, [][]rune{[]rune("ho ")}, suffixes)

	suffixes, length = c.Do(line, 100)
	assert.Equal(t, 4, length)
	assert.Empty(t, suffixes)
}
