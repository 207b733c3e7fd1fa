package dotaccess

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/goccy/go-yaml"
)

// Kind tags every value stored in a tree.
type Kind uint8

const (
	// KindLeaf is any value that is neither a container nor a sequence.
	KindLeaf Kind = iota
	// KindContainer is a *Map.
	KindContainer
	// KindSequence is a []any.
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindSequence:
		return "sequence"
	case KindLeaf:
		return "leaf"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// KindOf reports the kind of a normalized value. A nil *Map is a leaf.
func KindOf(v any) Kind {
	switch val := v.(type) {
	case *Map:
		if val == nil {
			return KindLeaf
		}

		return KindContainer
	case []any:
		return KindSequence
	default:
		return KindLeaf
	}
}

// Normalize converts a raw value into the form stored in a tree.
//
// Maps (map[string]any, any map with string-like keys, yaml.MapSlice) become *Map and
// slices other than []byte become []any, recursively. Go maps are ordered by key;
// yaml.MapSlice keeps its order. A *Map is returned as-is; a nil *Map or *Data becomes nil.
func Normalize(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case *Map:
		if val == nil {
			return nil
		}

		return val
	case *Data:
		if val == nil {
			return nil
		}

		return val.root
	case map[string]any:
		m := NewMap()

		for _, key := range sortedKeys(val) {
			m.put(key, Normalize(val[key]))
		}

		return m
	case yaml.MapSlice:
		m := NewMap()

		for _, item := range val {
			m.put(fmt.Sprint(item.Key), Normalize(item.Value))
		}

		return m
	case []any:
		seq := make([]any, len(val))

		for i, elem := range val {
			seq[i] = Normalize(elem)
		}

		return seq
	case []byte, string, bool, int, int64, uint64, float64:
		return val
	}

	return normalizeReflect(v)
}

func normalizeReflect(v any) any {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		byKey := make(map[string]reflect.Value, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			key := fmt.Sprint(iter.Key().Interface())
			keys = append(keys, key)
			byKey[key] = iter.Value()
		}

		slices.Sort(keys)

		m := NewMap()

		for _, key := range keys {
			m.put(key, Normalize(byKey[key].Interface()))
		}

		return m
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}

		seq := make([]any, rv.Len())

		for i := range seq {
			seq[i] = Normalize(rv.Index(i).Interface())
		}

		return seq
	default:
		return v
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))

	for key := range m {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

// plain deep-copies a normalized value into map[string]any / []any.
func plain(v any) any {
	switch val := v.(type) {
	case *Map:
		return val.ToMap()
	case []any:
		out := make([]any, len(val))

		for i, elem := range val {
			out[i] = plain(elem)
		}

		return out
	default:
		return v
	}
}

// reaches reports whether target is v itself or is nested anywhere inside it.
func reaches(v any, target *Map) bool {
	switch val := v.(type) {
	case *Map:
		if val == nil {
			return false
		}

		if val == target {
			return true
		}

		for _, elem := range val.values {
			if reaches(elem, target) {
				return true
			}
		}
	case []any:
		for _, elem := range val {
			if reaches(elem, target) {
				return true
			}
		}
	}

	return false
}
