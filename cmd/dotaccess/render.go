package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/0xalexb/dotaccess"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
)

// palette colours terminal output by value kind.
type palette struct {
	yes       func(a ...any) string
	no        func(a ...any) string
	container func(a ...any) string
	sequence  func(a ...any) string
	leaf      func(a ...any) string
}

func plainPalette() palette {
	return palette{
		yes:       fmt.Sprint,
		no:        fmt.Sprint,
		container: fmt.Sprint,
		sequence:  fmt.Sprint,
		leaf:      fmt.Sprint,
	}
}

func colorPalette() palette {
	enabled := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		c.EnableColor()

		return c.SprintFunc()
	}

	return palette{
		yes:       enabled(color.FgGreen),
		no:        enabled(color.FgRed),
		container: enabled(color.FgBlue, color.Bold),
		sequence:  enabled(color.FgMagenta),
		leaf:      enabled(color.FgCyan),
	}
}

// paletteFor colours output only when w is a terminal.
func paletteFor(w io.Writer) palette {
	f, ok := w.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		return colorPalette()
	}

	return plainPalette()
}

func (p palette) kind(k dotaccess.Kind) func(a ...any) string {
	switch k {
	case dotaccess.KindContainer:
		return p.container
	case dotaccess.KindSequence:
		return p.sequence
	default:
		return p.leaf
	}
}

// renderValue prints v as YAML, or as a single line of JSON when asJSON is set.
func renderValue(w io.Writer, v any, asJSON bool) error {
	var (
		out []byte
		err error
	)

	if asJSON {
		out, err = json.Marshal(v)
		out = append(out, '\n')
	} else {
		out, err = yaml.Marshal(v)
	}

	if err != nil {
		return fmt.Errorf("rendering value: %w", err)
	}

	_, err = w.Write(out)

	return err //nolint:wrapcheck // plain write to the command output
}

// renderKeys prints one line per key of m: the key and the kind of its value.
func renderKeys(w io.Writer, m *dotaccess.Map, p palette) error {
	for key, v := range m.All() {
		kind := dotaccess.KindOf(v)

		_, err := fmt.Fprintf(w, "%s\t%s\n", key, p.kind(kind)(kind))
		if err != nil {
			return err //nolint:wrapcheck // plain write to the command output
		}
	}

	return nil
}
