package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements source.DataFetcher for a document stored in a file.
type Fetcher struct {
	filepath string
	mode     fs.FileMode
	data     []byte
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			mode:     stat.Mode().Perm(),
			data:     data,
		}, nil
	}
}

// Path returns the cleaned file path.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the cached document bytes.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

// Write replaces the file contents through a temporary file and rename,
// keeping the original permissions, then refreshes the cache.
func (f *Fetcher) Write(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.filepath), "."+filepath.Base(f.filepath)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file for %q: %w", f.filepath, err)
	}

	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Chmod(f.mode)
	}

	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}

	if err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("writing temp file for %q: %w", f.filepath, err)
	}

	err = os.Rename(tmpName, f.filepath)
	if err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("replacing %q: %w", f.filepath, err)
	}

	f.data = append(f.data[:0:0], data...)

	return nil
}
