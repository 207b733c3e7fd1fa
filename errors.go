package dotaccess

import (
	"errors"
	"fmt"

	"github.com/0xalexb/dotaccess/keypath"
)

// ErrInvalidPath is returned for an empty path string or a path with empty segments.
var ErrInvalidPath = keypath.ErrInvalidPath

// ErrPathBlocked is returned when a path descends into a value that is not a container.
var ErrPathBlocked = errors.New("path is blocked by a non-container value")

// ErrNotFound is returned by Get when nothing exists at the path.
var ErrNotFound = errors.New("no data exists at the given path")

// ErrNotRepresentable is returned by GetData when the value is not a container.
var ErrNotRepresentable = errors.New("value could not be represented as a container")

// ErrContainerAppend is returned by Append on a container under AppendReject.
var ErrContainerAppend = errors.New("cannot append to a container")

// ErrNilDocument is returned by ImportData when the other document is nil.
var ErrNilDocument = errors.New("document must not be nil")

// ErrCycle is returned when a write would make a container contain itself.
var ErrCycle = errors.New("value contains its own destination")

// PathBlockedError reports the segment that holds a non-container value.
type PathBlockedError struct {
	Segment string
	Path    keypath.Path
}

func (e *PathBlockedError) Error() string {
	return fmt.Sprintf("key path %q within %q cannot be indexed into (is not a container)", e.Segment, e.Path.Trail())
}

// Unwrap returns ErrPathBlocked.
func (e *PathBlockedError) Unwrap() error {
	return ErrPathBlocked
}

// NotFoundError reports a path that resolves to nothing.
type NotFoundError struct {
	Path keypath.Path
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no data exists at the given path: %q", e.Path.String())
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NotRepresentableError reports a sub-view request on a non-container value.
type NotRepresentableError struct {
	Path keypath.Path
	Kind Kind
}

func (e *NotRepresentableError) Error() string {
	return fmt.Sprintf("value at %q could not be represented as a container (is %s)", e.Path.String(), e.Kind)
}

// Unwrap returns ErrNotRepresentable.
func (e *NotRepresentableError) Unwrap() error {
	return ErrNotRepresentable
}

// CycleError reports a write whose container value holds the destination container.
type CycleError struct {
	Path keypath.Path
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("value written at %q contains its own destination", e.Path.String())
}

func (e *CycleError) Unwrap() error {
	return ErrCycle
}
