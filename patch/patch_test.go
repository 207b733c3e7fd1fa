package patch_test

import (
	"testing"

	"github.com/0xalexb/dotaccess"
	"github.com/0xalexb/dotaccess/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() *dotaccess.Data {
	return dotaccess.New(map[string]any{
		"server": map[string]any{
			"host": "localhost",
			"port": 8080,
		},
		"tags": []any{"a", "b"},
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string
		ops  string
		path string
		want any
	}

	testCases := []testCase{
		{
			name: "replace leaf",
			ops:  `[{"op":"replace","path":"/server/host","value":"example.com"}]`,
			path: "server.host",
			want: "example.com",
		},
		{
			name: "add nested container",
			ops:  `[{"op":"add","path":"/server/tls","value":{"enabled":true}}]`,
			path: "server.tls.enabled",
			want: true,
		},
		{
			name: "append to sequence",
			ops:  `[{"op":"add","path":"/tags/-","value":"c"}]`,
			path: "tags",
			want: []any{"a", "b", "c"},
		},
		{
			name: "copy value",
			ops:  `[{"op":"copy","from":"/server/host","path":"/origin"}]`,
			path: "origin",
			want: "localhost",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			doc := sampleDoc()

			result, err := patch.Apply(doc, []byte(testCase.ops))
			require.NoError(t, err)

			got, err := result.Get(testCase.path)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestApply_Remove(t *testing.T) {
	t.Parallel()

	result, err := patch.Apply(sampleDoc(), []byte(`[{"op":"remove","path":"/server/port"}]`))
	require.NoError(t, err)

	has, err := result.Has("server.port")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestApply_LeavesInputUntouched(t *testing.T) {
	t.Parallel()

	doc := sampleDoc()

	_, err := patch.Apply(doc, []byte(`[{"op":"replace","path":"/server/host","value":"changed"}]`))
	require.NoError(t, err)

	got, err := doc.Get("server.host")
	require.NoError(t, err)
	assert.Equal(t, "localhost", got)
}

func TestApply_Errors(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		doc     *dotaccess.Data
		ops     string
		wantErr error
	}

	testCases := []testCase{
		{
			name:    "nil document",
			doc:     nil,
			ops:     `[]`,
			wantErr: patch.ErrNilDocument,
		},
		{
			name:    "malformed patch",
			doc:     sampleDoc(),
			ops:     `{"op":`,
			wantErr: patch.ErrDecodePatch,
		},
		{
			name:    "failed test op",
			doc:     sampleDoc(),
			ops:     `[{"op":"test","path":"/server/host","value":"other"}]`,
			wantErr: patch.ErrApplyPatch,
		},
		{
			name:    "replace missing member",
			doc:     sampleDoc(),
			ops:     `[{"op":"replace","path":"/missing/key","value":1}]`,
			wantErr: patch.ErrApplyPatch,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result, err := patch.Apply(testCase.doc, []byte(testCase.ops))
			require.ErrorIs(t, err, testCase.wantErr)
			assert.Nil(t, result)
		})
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	result, err := patch.Merge(sampleDoc(), []byte(`{"server":{"port":null,"host":"example.com"},"name":"api"}`))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"name":   "api",
		"server": map[string]any{"host": "example.com"},
		"tags":   []any{"a", "b"},
	}, result.Export())
}

func TestMerge_PassesDataOptions(t *testing.T) {
	t.Parallel()

	result, err := patch.Merge(sampleDoc(), []byte(`{}`), dotaccess.WithAppendPolicy(dotaccess.AppendPromote))
	require.NoError(t, err)

	require.NoError(t, result.Append("server", "extra"))

	got, err := result.Get("server")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMerge_Errors(t *testing.T) {
	t.Parallel()

	_, err := patch.Merge(nil, []byte(`{}`))
	require.ErrorIs(t, err, patch.ErrNilDocument)

	_, err = patch.Merge(sampleDoc(), []byte(`{"broken"`))
	require.ErrorIs(t, err, patch.ErrDecodePatch)

	_, err = patch.Merge(sampleDoc(), []byte(`["not", "an", "object"]`))
	require.ErrorIs(t, err, patch.ErrApplyPatch)
}
