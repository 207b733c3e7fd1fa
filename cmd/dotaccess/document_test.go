package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/dotaccess"
	"github.com/0xalexb/dotaccess/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `server:
  host: localhost
  port: 8080
tags:
- a
- b
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	fpath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fpath, []byte(content), 0o600))

	return fpath
}

func TestParseValue(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		raw      string
		asString bool
		want     any
	}

	testCases := []testCase{
		{name: "string", raw: "hello", want: "hello"},
		{name: "bool", raw: "true", want: true},
		{name: "forced string", raw: "true", asString: true, want: "true"},
		{name: "empty", raw: "", want: ""},
		{name: "flow sequence", raw: "[a, b]", want: []any{"a", "b"}},
		{name: "null", raw: "null", want: nil},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseValue(testCase.raw, testCase.asString)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestParseValue_NumberAndMapping(t *testing.T) {
	t.Parallel()

	got, err := parseValue("42", false)
	require.NoError(t, err)
	assert.EqualValues(t, 42, got)

	got, err = parseValue("{x: 1}", false)
	require.NoError(t, err)

	m, ok := got.(*dotaccess.Map)
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, m.Keys())
}

func TestParseValue_Invalid(t *testing.T) {
	t.Parallel()

	_, err := parseValue("[unterminated", false)
	require.Error(t, err)
}

func TestParseImportMode(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string
		want dotaccess.ImportMode
	}

	testCases := []testCase{
		{name: "", want: dotaccess.ImportReplace},
		{name: "replace", want: dotaccess.ImportReplace},
		{name: "Preserve", want: dotaccess.ImportPreserve},
		{name: "merge", want: dotaccess.ImportMerge},
	}

	for _, testCase := range testCases {
		got, err := parseImportMode(testCase.name)
		require.NoError(t, err)
		assert.Equal(t, testCase.want, got, testCase.name)
	}

	_, err := parseImportMode("overwrite")
	require.ErrorIs(t, err, errUnknownImportMode)
}

func TestResolveCodec(t *testing.T) {
	t.Parallel()

	_, err := resolveCodec("doc.yaml", "")
	require.NoError(t, err)

	_, err = resolveCodec("doc.conf", "toml")
	require.NoError(t, err)

	_, err = resolveCodec("doc.conf", "")
	require.ErrorIs(t, err, source.ErrUnknownFormat)
}

func TestDocument_CommitToWriter(t *testing.T) {
	t.Parallel()

	fpath := writeFile(t, "doc.yaml", sampleYAML)

	doc, err := loadDocument(fpath, "")
	require.NoError(t, err)

	require.NoError(t, doc.data.Set("server.port", 9090))

	var out bytes.Buffer

	require.NoError(t, doc.commit(&out, false))
	assert.Contains(t, out.String(), "port: 9090")

	onDisk, err := os.ReadFile(fpath)
	require.NoError(t, err)
	assert.Equal(t, sampleYAML, string(onDisk))
}

func TestDocument_CommitWritesFile(t *testing.T) {
	t.Parallel()

	fpath := writeFile(t, "doc.yaml", sampleYAML)

	doc, err := loadDocument(fpath, "")
	require.NoError(t, err)

	require.NoError(t, doc.data.Remove("tags"))

	var out bytes.Buffer

	require.NoError(t, doc.commit(&out, true))
	assert.Empty(t, out.String())

	reloaded, err := loadDocument(fpath, "")
	require.NoError(t, err)

	has, err := reloaded.data.Has("tags")
	require.NoError(t, err)
	assert.False(t, has)

	host, err := reloaded.data.Get("server.host")
	require.NoError(t, err)
	assert.Equal(t, "localhost", host)
}

func TestLoadDocument_Errors(t *testing.T) {
	t.Parallel()

	_, err := loadDocument(filepath.Join(t.TempDir(), "missing.yaml"), "")
	require.Error(t, err)

	_, err = loadDocument(writeFile(t, "doc.txt", "a: 1\n"), "")
	require.ErrorIs(t, err, source.ErrUnknownFormat)

	_, err = loadDocument(writeFile(t, "list.yaml", "- a\n"), "")
	require.Error(t, err)
}
