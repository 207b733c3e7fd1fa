// Package yaml provides the YAML codec for the source package.
//
// This package uses github.com/goccy/go-yaml with UseOrderedMap so mappings
// keep their document order in the resulting *dotaccess.Map. DecodePath uses
// goccy/go-yaml PathString to unmarshal a single section into a typed struct,
// converting dotaccess paths (e.g. "api.permissions" or "api/permissions") to
// YAML path format (e.g. "$.api.permissions") internally.
//
// Usage:
//
//	parser := yaml.NewParser()
//	root, err := parser.Parse(data)
//
//	var cfg Config
//	err = parser.DecodePath(data, &cfg, "api.permissions")
package yaml
