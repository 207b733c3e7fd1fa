package main

import (
	"fmt"
	"io"

	"github.com/0xalexb/dotaccess"
	"github.com/0xalexb/dotaccess/source"
	"github.com/0xalexb/dotaccess/source/fetcher/file"
	yamlparser "github.com/0xalexb/dotaccess/source/parser/yaml"
)

// document is a file loaded through its codec.
type document struct {
	fetcher *file.Fetcher
	codec   source.Codec
	data    *dotaccess.Data
}

func resolveCodec(fpath, format string) (source.Codec, error) { //nolint:ireturn // codec depends on format
	if format != "" {
		return source.CodecFor(format)
	}

	return source.CodecForFile(fpath)
}

func loadDocument(fpath, format string, opts ...dotaccess.Option) (*document, error) {
	codec, err := resolveCodec(fpath, format)
	if err != nil {
		return nil, err
	}

	fetcher, err := file.NewFetcher(fpath)()
	if err != nil {
		return nil, err
	}

	data, err := source.Provider("", source.WithDataOptions(opts...))(codec, fetcher)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", fpath, err)
	}

	return &document{
		fetcher: fetcher,
		codec:   codec,
		data:    data,
	}, nil
}

// commit writes the document back to its file when write is set, or prints it to w.
func (d *document) commit(w io.Writer, write bool) error {
	out, err := d.codec.Encode(d.data)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", d.fetcher.Path(), err)
	}

	if write {
		return d.fetcher.Write(out)
	}

	_, err = w.Write(out)

	return err //nolint:wrapcheck // plain write to the command output
}

// parseValue turns a command-line argument into a tree value.
// Arguments are read as YAML so that numbers, booleans, flow sequences and
// flow mappings keep their type; asString keeps the raw text.
func parseValue(raw string, asString bool) (any, error) {
	if asString || raw == "" {
		return raw, nil
	}

	v, err := yamlparser.Decode([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing value %q: %w", raw, err)
	}

	return v, nil
}
