package main

import (
	"bytes"
	"testing"

	"github.com/0xalexb/dotaccess"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderValue(t *testing.T) {
	t.Parallel()

	value := dotaccess.NewMap()
	value.Set("b", 1)
	value.Set("a", []any{"x"})

	type testCase struct {
		name   string
		value  any
		asJSON bool
		want   string
	}

	testCases := []testCase{
		{name: "leaf as yaml", value: "hello", want: "hello\n"},
		{name: "leaf as json", value: "hello", asJSON: true, want: "\"hello\"\n"},
		{name: "container as json", value: value, asJSON: true, want: "{\"b\":1,\"a\":[\"x\"]}\n"},
		{name: "container as yaml", value: value, want: "b: 1\na:\n- x\n"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			require.NoError(t, renderValue(&out, testCase.value, testCase.asJSON))
			assert.Equal(t, testCase.want, out.String())
		})
	}
}

func TestRenderKeys(t *testing.T) {
	t.Parallel()

	m := dotaccess.NewMap()
	m.Set("server", map[string]any{"port": 1})
	m.Set("tags", []any{"a"})
	m.Set("name", "api")

	var out bytes.Buffer

	require.NoError(t, renderKeys(&out, m, plainPalette()))
	assert.Equal(t, "server\tcontainer\ntags\tsequence\nname\tleaf\n", out.String())
}

func TestPaletteFor_NonTerminal(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	p := paletteFor(&out)
	assert.Equal(t, "true", p.yes("true"))
	assert.Equal(t, "container", p.kind(dotaccess.KindContainer)(dotaccess.KindContainer))
}

func TestColorPalette_Colours(t *testing.T) {
	t.Parallel()

	p := colorPalette()
	assert.NotEqual(t, "true", p.yes("true"))
	assert.Contains(t, p.yes("true"), "true")
}
