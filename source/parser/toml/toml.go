package toml

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/0xalexb/dotaccess"

	"github.com/BurntSushi/toml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements source.Codec for TOML documents.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a TOML document into a tree whose keys follow document order.
func (p *Parser) Parse(data []byte) (*dotaccess.Map, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var raw map[string]any

	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	rank := make(map[string]int, len(md.Keys()))

	for i, key := range md.Keys() {
		joined := strings.Join(key, "\x00")
		if _, seen := rank[joined]; !seen {
			rank[joined] = i
		}
	}

	return ordered(raw, nil, rank), nil
}

// Encode renders the tree as TOML.
func (p *Parser) Encode(doc *dotaccess.Data) ([]byte, error) {
	var buf bytes.Buffer

	err := toml.NewEncoder(&buf).Encode(doc.Export())
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return buf.Bytes(), nil
}

func ordered(table map[string]any, prefix []string, rank map[string]int) *dotaccess.Map {
	keys := make([]string, 0, len(table))

	for key := range table {
		keys = append(keys, key)
	}

	position := func(key string) int {
		if r, ok := rank[strings.Join(append(slices.Clip(prefix), key), "\x00")]; ok {
			return r
		}

		return math.MaxInt
	}

	slices.SortFunc(keys, func(a, b string) int {
		if ra, rb := position(a), position(b); ra != rb {
			if ra < rb {
				return -1
			}

			return 1
		}

		return strings.Compare(a, b)
	})

	m := dotaccess.NewMap()

	for _, key := range keys {
		m.Set(key, orderedValue(table[key], append(slices.Clip(prefix), key), rank))
	}

	return m
}

func orderedValue(v any, path []string, rank map[string]int) any {
	switch val := v.(type) {
	case map[string]any:
		return ordered(val, path, rank)
	case []map[string]any:
		seq := make([]any, len(val))

		for i, table := range val {
			seq[i] = ordered(table, path, rank)
		}

		return seq
	case []any:
		seq := make([]any, len(val))

		for i, elem := range val {
			seq[i] = orderedValue(elem, path, rank)
		}

		return seq
	default:
		return v
	}
}
