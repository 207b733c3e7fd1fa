package patch

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/0xalexb/dotaccess"
	jsonparser "github.com/0xalexb/dotaccess/source/parser/json"

	jsonpatch "github.com/evanphx/json-patch"
)

var (
	// ErrNilDocument is returned when no document is given.
	ErrNilDocument = errors.New("document cannot be nil")
	// ErrDecodePatch is returned when the patch document is malformed.
	ErrDecodePatch = errors.New("failed to decode patch")
	// ErrApplyPatch is returned when a patch cannot be applied to the document.
	ErrApplyPatch = errors.New("failed to apply patch")
)

// Apply applies an RFC 6902 operation list to doc and returns the result.
func Apply(doc *dotaccess.Data, ops []byte, opts ...dotaccess.Option) (*dotaccess.Data, error) {
	original, err := render(doc)
	if err != nil {
		return nil, err
	}

	decoded, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodePatch, err)
	}

	patched, err := decoded.Apply(original)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrApplyPatch, err)
	}

	return wrap(patched, opts)
}

// Merge applies an RFC 7396 merge patch to doc and returns the result.
// A null member in the patch removes the key.
func Merge(doc *dotaccess.Data, mergePatch []byte, opts ...dotaccess.Option) (*dotaccess.Data, error) {
	original, err := render(doc)
	if err != nil {
		return nil, err
	}

	if !json.Valid(mergePatch) {
		return nil, ErrDecodePatch
	}

	patched, err := jsonpatch.MergePatch(original, mergePatch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrApplyPatch, err)
	}

	return wrap(patched, opts)
}

func render(doc *dotaccess.Data) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	return out, nil
}

func wrap(patched []byte, opts []dotaccess.Option) (*dotaccess.Data, error) {
	root, err := jsonparser.NewParser().Parse(patched)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrApplyPatch, err)
	}

	return dotaccess.Wrap(root, opts...), nil
}
