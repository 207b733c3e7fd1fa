package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/0xalexb/dotaccess"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrNotMapping is returned when the document root is not an object.
var ErrNotMapping = errors.New("document root is not an object")

// ErrTrailingData is returned when more than one JSON value is present.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// Parser implements source.Codec for JSON documents.
type Parser struct {
	indent string
}

// NewParser creates a JSON parser that encodes with two-space indentation.
func NewParser() *Parser {
	return &Parser{indent: "  "}
}

// Parse decodes a JSON object into an ordered tree.
func (p *Parser) Parse(data []byte) (*dotaccess.Map, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	v, err := Decode(data)
	if err != nil {
		return nil, err
	}

	root, ok := v.(*dotaccess.Map)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotMapping, dotaccess.KindOf(v))
	}

	return root, nil
}

// Encode renders the tree as indented JSON in insertion order.
func (p *Parser) Encode(doc *dotaccess.Data) ([]byte, error) {
	out, err := json.MarshalIndent(doc, "", p.indent)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return append(out, '\n'), nil
}

// Decode parses a single JSON value of any kind into its normalized form.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	_, err = dec.Token()
	if !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case json.Number:
		return number(t)
	default:
		return t, nil
	}
}

func decodeObject(dec *json.Decoder) (*dotaccess.Map, error) {
	m := dotaccess.NewMap()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}

		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		m.Set(key, v)
	}

	_, err := dec.Token()

	return m, err
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	seq := make([]any, 0)

	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		seq = append(seq, v)
	}

	_, err := dec.Token()

	return seq, err
}

func number(n json.Number) (any, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}

	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", n.String(), err)
	}

	return f, nil
}
