package dotaccess

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/0xalexb/dotaccess/keypath"
)

// Data wraps a root container and addresses it by path.
//
// Data performs no locking. Callers sharing one Data between goroutines must
// serialize access themselves. Sub-views returned by GetData share storage with
// their parent.
type Data struct {
	root   *Map
	policy AppendPolicy
	logger *slog.Logger
}

// New creates a Data over a copy of the raw tree. A nil tree starts empty.
func New(tree map[string]any, opts ...Option) *Data {
	return newData(MapOf(tree), newOptions(opts))
}

// Wrap creates a Data over an existing container without copying it.
func Wrap(root *Map, opts ...Option) *Data {
	if root == nil {
		root = NewMap()
	}

	return newData(root, newOptions(opts))
}

func newData(root *Map, options Options) *Data {
	return &Data{
		root:   root,
		policy: options.AppendPolicy,
		logger: options.Logger,
	}
}

// Get returns the value at path.
// It fails with *NotFoundError when nothing is there and *PathBlockedError when
// the path runs through a non-container value.
func (d *Data) Get(path string) (any, error) {
	keyPath, err := keypath.Parse(path)
	if err != nil {
		return nil, err
	}

	parent, found, err := d.locate(keyPath, readOnly)
	if err != nil {
		return nil, err
	}

	if found {
		if v, ok := parent.Get(keyPath.Last()); ok {
			return v, nil
		}
	}

	return nil, &NotFoundError{Path: keyPath}
}

// GetOr returns the value at path, or def when the path does not resolve.
// def is returned even when it is nil or false; only an invalid path is an error.
func (d *Data) GetOr(path string, def any) (any, error) {
	v, err := d.Get(path)
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrPathBlocked) {
		return def, nil
	}

	return v, err
}

// Has reports whether a value exists at path.
func (d *Data) Has(path string) (bool, error) {
	keyPath, err := keypath.Parse(path)
	if err != nil {
		return false, err
	}

	parent, found, err := d.locate(keyPath, readOnly)
	if err != nil || !found {
		return false, nil //nolint:nilerr // a blocked path simply holds nothing
	}

	return parent.Has(keyPath.Last()), nil
}

// Set stores value at path, creating missing intermediate containers.
// It refuses to replace a non-container value on the way with a container.
// A *Map or *Data value is stored without copying; storing a container that
// holds the destination fails with *CycleError.
func (d *Data) Set(path string, value any) error {
	keyPath, err := keypath.Parse(path)
	if err != nil {
		return err
	}

	parent, _, err := d.locate(keyPath, createMissing)
	if err != nil {
		return err
	}

	value = Normalize(value)
	if reaches(value, parent) {
		return &CycleError{Path: keyPath}
	}

	parent.put(keyPath.Last(), value)

	return nil
}

// Append adds value to the sequence at path, creating it when absent.
// A nil value at path counts as absent. A leaf already at path becomes the
// first element of a new sequence.
// A container is handled according to the AppendPolicy.
func (d *Data) Append(path string, value any) error {
	keyPath, err := keypath.Parse(path)
	if err != nil {
		return err
	}

	parent, _, err := d.locate(keyPath, createMissing)
	if err != nil {
		return err
	}

	key := keyPath.Last()

	value = Normalize(value)
	if reaches(value, parent) {
		return &CycleError{Path: keyPath}
	}

	current, ok := parent.Get(key)
	if !ok || current == nil {
		parent.put(key, []any{value})

		return nil
	}

	switch KindOf(current) {
	case KindSequence:
		seq, _ := current.([]any)
		parent.put(key, append(seq, value))
	case KindContainer:
		if d.policy != AppendPromote {
			return fmt.Errorf("%w at %q", ErrContainerAppend, keyPath.String())
		}

		parent.put(key, []any{current, value})
	case KindLeaf:
		parent.put(key, []any{current, value})
	}

	return nil
}

// Remove deletes the value at path. Removing something that does not exist is a no-op.
func (d *Data) Remove(path string) error {
	keyPath, err := keypath.Parse(path)
	if err != nil {
		return err
	}

	parent, found, err := d.locate(keyPath, readOnly)
	if err != nil || !found {
		d.logger.Debug("nothing to remove", "path", keyPath.String())

		return nil //nolint:nilerr // a blocked path holds nothing to remove
	}

	if !parent.Delete(keyPath.Last()) {
		d.logger.Debug("nothing to remove", "path", keyPath.String())
	}

	return nil
}

// Import merges a raw tree into the root. Containers are merged recursively;
// conflicts are resolved by the ImportMode (ImportReplace by default).
func (d *Data) Import(tree map[string]any, opts ...ImportOption) error {
	return d.importMap(MapOf(tree), opts)
}

// ImportData merges the contents of another Data into the root.
func (d *Data) ImportData(other *Data, opts ...ImportOption) error {
	if other == nil {
		return ErrNilDocument
	}

	return d.importMap(other.root, opts)
}

func (d *Data) importMap(src *Map, opts []ImportOption) error {
	mode := ImportReplace

	for _, apply := range opts {
		apply(&mode)
	}

	mergeInto(d.root, src, mode)

	return nil
}

func mergeInto(dst, src *Map, mode ImportMode) {
	for key, incoming := range src.All() {
		existing, ok := dst.Get(key)
		if !ok {
			dst.put(key, clone(incoming))

			continue
		}

		switch {
		case KindOf(existing) == KindContainer && KindOf(incoming) == KindContainer:
			existingMap, _ := existing.(*Map)
			incomingMap, _ := incoming.(*Map)
			mergeInto(existingMap, incomingMap, mode)
		case mode == ImportPreserve:
			// existing value wins
		case mode == ImportMerge && KindOf(existing) == KindSequence && KindOf(incoming) == KindSequence:
			existingSeq, _ := existing.([]any)
			incomingSeq, _ := clone(incoming).([]any)
			dst.put(key, append(slices.Clip(existingSeq), incomingSeq...))
		default:
			dst.put(key, clone(incoming))
		}
	}
}

// clone deep-copies normalized values so that imported trees do not alias their source.
func clone(v any) any {
	switch val := v.(type) {
	case *Map:
		out := NewMap()

		for key, elem := range val.All() {
			out.put(key, clone(elem))
		}

		return out
	case []any:
		out := make([]any, len(val))

		for i, elem := range val {
			out[i] = clone(elem)
		}

		return out
	default:
		return v
	}
}

// GetData returns a Data over the container at path. The returned Data shares
// storage with d: writes through either are visible in both.
func (d *Data) GetData(path string) (*Data, error) {
	v, err := d.Get(path)
	if err != nil {
		return nil, err
	}

	m, ok := v.(*Map)
	if !ok {
		return nil, &NotRepresentableError{Path: keypath.MustParse(path), Kind: KindOf(v)}
	}

	return &Data{root: m, policy: d.policy, logger: d.logger}, nil
}

// Export returns a deep copy of the tree made of map[string]any and []any.
func (d *Data) Export() map[string]any {
	return d.root.ToMap()
}

// Root returns the live root container.
func (d *Data) Root() *Map {
	return d.root
}

// MarshalJSON encodes the tree in insertion order.
func (d *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.root)
}

// MarshalYAML encodes the tree in insertion order.
func (d *Data) MarshalYAML() (any, error) {
	return d.root.MarshalYAML()
}
