package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/dotaccess"
	"github.com/0xalexb/dotaccess/keypath"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// ErrNotMapping is returned when the document root is not a mapping.
var ErrNotMapping = errors.New("document root is not a mapping")

// Parser implements source.Codec for YAML documents.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a YAML document into an ordered tree.
// A document holding only comments yields an empty tree.
func (p *Parser) Parse(data []byte) (*dotaccess.Map, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	v, err := Decode(data)
	if err != nil {
		return nil, err
	}

	switch root := v.(type) {
	case nil:
		return dotaccess.NewMap(), nil
	case *dotaccess.Map:
		return root, nil
	default:
		return nil, fmt.Errorf("%w: got %s", ErrNotMapping, dotaccess.KindOf(root))
	}
}

// Encode renders the tree as YAML in insertion order.
func (p *Parser) Encode(doc *dotaccess.Data) ([]byte, error) {
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return out, nil
}

// DecodePath unmarshals the section at path into target.
// Empty path unmarshals the entire document.
func (p *Parser) DecodePath(data []byte, target any, path string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	keyPath, err := keypath.Parse(path)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	pathObj, err := yaml.PathString(toYAMLPath(keyPath))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

// Decode parses any YAML value (scalar, flow or block) into its normalized form.
func Decode(data []byte) (any, error) {
	var v any

	err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return dotaccess.Normalize(v), nil
}

// toYAMLPath converts a parsed path to goccy/go-yaml PathString format.
// Examples:
//   - [key] -> "$.key"
//   - [api permissions] -> "$.api.permissions"
func toYAMLPath(path keypath.Path) string {
	return "$." + strings.Join(path, ".")
}
