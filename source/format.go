package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	jsonparser "github.com/0xalexb/dotaccess/source/parser/json"
	tomlparser "github.com/0xalexb/dotaccess/source/parser/toml"
	yamlparser "github.com/0xalexb/dotaccess/source/parser/yaml"
)

// ErrUnknownFormat is returned when no codec matches a format name or file extension.
var ErrUnknownFormat = errors.New("unknown document format")

// CodecFor returns the codec registered for a format name: yaml, yml, json or toml.
//
//nolint:ireturn // the concrete codec depends on the format
func CodecFor(format string) (Codec, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		return yamlparser.NewParser(), nil
	case "json":
		return jsonparser.NewParser(), nil
	case "toml":
		return tomlparser.NewParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// CodecForFile picks a codec from the file extension.
//
//nolint:ireturn // the concrete codec depends on the extension
func CodecForFile(fpath string) (Codec, error) {
	ext := filepath.Ext(fpath)
	if ext == "" {
		return nil, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, fpath)
	}

	return CodecFor(ext)
}
