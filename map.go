package dotaccess

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"github.com/goccy/go-yaml"
)

// Map is an insertion-ordered container of string keys.
// Lookup does not depend on order; iteration and marshalling follow it.
// The zero value is an empty map ready to use. Read methods accept a nil *Map.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{
		keys:   nil,
		values: make(map[string]any),
	}
}

// MapOf builds a Map from a Go map. Keys are inserted in sorted order.
func MapOf(in map[string]any) *Map {
	m, _ := Normalize(in).(*Map)
	if m == nil {
		return NewMap()
	}

	return m
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}

	return slices.Clone(m.keys)
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}

	v, ok := m.values[key]

	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	if m == nil {
		return false
	}

	_, ok := m.values[key]

	return ok
}

// Set stores the normalized value under key. An existing key keeps its position.
// A *Map value is stored without copying; storing m inside itself creates a cycle
// that Data.Set would reject and that marshalling cannot handle.
func (m *Map) Set(key string, v any) {
	m.put(key, Normalize(v))
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}

	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })

	return true
}

// All iterates over the entries in insertion order.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil {
			return
		}

		for _, key := range m.keys {
			if !yield(key, m.values[key]) {
				return
			}
		}
	}
}

// ToMap returns a deep copy made of map[string]any and []any.
func (m *Map) ToMap() map[string]any {
	if m == nil {
		return nil
	}

	out := make(map[string]any, len(m.keys))

	for _, key := range m.keys {
		out[key] = plain(m.values[key])
	}

	return out
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("encoding key %q: %w", key, err)
		}

		encodedValue, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, fmt.Errorf("encoding value at %q: %w", key, err)
		}

		buf.Write(encodedKey)
		buf.WriteByte(':')
		buf.Write(encodedValue)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML encodes the map as an ordered YAML mapping.
func (m *Map) MarshalYAML() (any, error) {
	return m.mapSlice(), nil
}

func (m *Map) mapSlice() yaml.MapSlice {
	out := make(yaml.MapSlice, 0, len(m.keys))

	for _, key := range m.keys {
		out = append(out, yaml.MapItem{Key: key, Value: yamlValue(m.values[key])})
	}

	return out
}

func yamlValue(v any) any {
	switch val := v.(type) {
	case *Map:
		return val.mapSlice()
	case []any:
		out := make([]any, len(val))

		for i, elem := range val {
			out[i] = yamlValue(elem)
		}

		return out
	default:
		return v
	}
}

// put stores an already-normalized value.
func (m *Map) put(key string, v any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = v
}
