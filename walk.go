package dotaccess

import "github.com/0xalexb/dotaccess/keypath"

type walkMode uint8

const (
	readOnly walkMode = iota
	createMissing
)

// locate walks every segment but the last and returns the container holding the last one.
// found is false when a read-only walk meets a missing segment.
// A segment holding nil counts as missing: a create-missing walk replaces it.
func (d *Data) locate(path keypath.Path, mode walkMode) (*Map, bool, error) {
	current := d.root

	for _, segment := range path.Parent() {
		next, ok := current.Get(segment)
		if !ok || next == nil {
			if mode == readOnly {
				return nil, false, nil
			}

			created := NewMap()
			current.put(segment, created)
			d.logger.Debug("created intermediate container", "segment", segment, "path", path.String())

			current = created

			continue
		}

		if KindOf(next) != KindContainer {
			return nil, false, &PathBlockedError{Segment: segment, Path: path}
		}

		current, _ = next.(*Map)
	}

	return current, true, nil
}
