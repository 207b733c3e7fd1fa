// Package source loads documents into dotaccess trees.
//
// The package uses an interface-based design with two extension points:
//   - DataFetcher: retrieves raw bytes (file, embedded data, etc.)
//   - Parser: decodes raw bytes into an insertion-ordered *dotaccess.Map
//
// Encoder is the reverse of Parser and is implemented by every bundled format.
//
// # Path Navigation
//
// Provider accepts a path in dotaccess syntax ("services.api" or "services/api")
// and returns a sub-view of the loaded document at that path. The sub-view
// shares storage with the full document. An empty path returns the whole
// document.
//
// # Example
//
//	provider := source.Provider("services.api", source.WithDefaults(map[string]any{"port": 8080}))
//	api, err := provider(yamlparser.NewParser(), fetcher)
package source
