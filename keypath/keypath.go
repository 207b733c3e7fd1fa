package keypath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPath is the base error for every malformed path.
var ErrInvalidPath = errors.New("invalid path")

// ErrEmptyPath is returned when the path string is empty.
var ErrEmptyPath = fmt.Errorf("%w: path cannot be an empty string", ErrInvalidPath)

// ErrEmptySegment is returned when a path contains an empty segment, e.g. "a..b" or "a/".
var ErrEmptySegment = fmt.Errorf("%w: path segments cannot be empty", ErrInvalidPath)

// TrailSeparator joins segments in diagnostic messages.
const TrailSeparator = " » "

// Path is a parsed, non-empty sequence of non-empty segments.
type Path []string

// Parse splits s on '.' and '/' into a Path.
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, ErrEmptyPath
	}

	segments := make(Path, 0, strings.Count(s, ".")+strings.Count(s, "/")+1)
	start := 0

	for i := 0; i <= len(s); i++ {
		if i < len(s) && !isSeparator(s[i]) {
			continue
		}

		if i == start {
			return nil, fmt.Errorf("%w: %q", ErrEmptySegment, s)
		}

		segments = append(segments, s[start:i])
		start = i + 1
	}

	return segments, nil
}

// MustParse is like Parse but panics on error. Intended for constant paths.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return p
}

func isSeparator(c byte) bool {
	return c == '.' || c == '/'
}

// String renders the path in dotted form.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Trail renders the path for diagnostics: "a » b » c".
func (p Path) Trail() string {
	return strings.Join(p, TrailSeparator)
}

// Last returns the final segment.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}

	return p[len(p)-1]
}

// Parent returns every segment but the last.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}

	return p[:len(p)-1]
}
