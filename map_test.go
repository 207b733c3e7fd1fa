package dotaccess_test

import (
	"testing"

	"github.com/0xalexb/dotaccess"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_InsertionOrder(t *testing.T) {
	t.Parallel()

	m := dotaccess.NewMap()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)
	m.Set("b", 4)

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestMap_Delete(t *testing.T) {
	t.Parallel()

	m := dotaccess.NewMap()
	m.Set("a", 1)
	m.Set("b", 2)

	assert.True(t, m.Delete("a"))
	assert.False(t, m.Delete("a"))
	assert.Equal(t, []string{"b"}, m.Keys())
	assert.False(t, m.Has("a"))
}

func TestMap_ZeroValue(t *testing.T) {
	t.Parallel()

	var m dotaccess.Map

	assert.False(t, m.Has("a"))

	m.Set("a", "A")

	assert.Equal(t, []string{"a"}, m.Keys())
}

func TestMap_All_StopsEarly(t *testing.T) {
	t.Parallel()

	m := dotaccess.MapOf(map[string]any{"a": 1, "b": 2, "c": 3})

	var seen []string

	for key := range m.All() {
		seen = append(seen, key)

		if key == "b" {
			break
		}
	}

	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestMap_KeysIsACopy(t *testing.T) {
	t.Parallel()

	m := dotaccess.MapOf(map[string]any{"a": 1})

	keys := m.Keys()
	keys[0] = "changed"

	assert.Equal(t, []string{"a"}, m.Keys())
}

func TestMap_SetNormalizes(t *testing.T) {
	t.Parallel()

	m := dotaccess.NewMap()
	m.Set("nested", map[string]any{"x": []string{"y"}})

	v, ok := m.Get("nested")
	require.True(t, ok)

	nested, ok := v.(*dotaccess.Map)
	require.True(t, ok)

	inner, ok := nested.Get("x")
	require.True(t, ok)
	assert.Equal(t, []any{"y"}, inner)
}

func TestMap_MarshalYAML_KeepsOrder(t *testing.T) {
	t.Parallel()

	m := dotaccess.NewMap()
	m.Set("zeta", "z")
	m.Set("alpha", map[string]any{"two": 2, "one": 1})
	m.Set("list", []any{"a", map[string]any{"k": "v"}})

	out, err := yaml.Marshal(m)

	require.NoError(t, err)
	assert.Equal(t, "zeta: z\nalpha:\n  one: 1\n  two: 2\nlist:\n- a\n- k: v\n", string(out))
}

func TestMap_MarshalJSON_EscapesKeys(t *testing.T) {
	t.Parallel()

	m := dotaccess.NewMap()
	m.Set(`qu"ote`, "x")

	out, err := m.MarshalJSON()

	require.NoError(t, err)
	assert.JSONEq(t, `{"qu\"ote":"x"}`, string(out))
}

func TestMap_MarshalJSON_Empty(t *testing.T) {
	t.Parallel()

	out, err := dotaccess.NewMap().MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}
