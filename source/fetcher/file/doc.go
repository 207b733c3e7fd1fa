// Package file provides a file-based DataFetcher implementation for the source package.
//
// The file is read at construction time and cached, so subsequent calls to
// Fetch return the same bytes without touching the filesystem. Write replaces
// the file atomically and refreshes the cache, which lets the CLI edit
// documents in place.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/doc.yaml")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
