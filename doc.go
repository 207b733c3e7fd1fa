// Package dotaccess provides path-addressed access into nested trees of maps and sequences.
//
// Paths are strings such as "a.b.c" or "a/b/c" (see package keypath). A Data
// wraps a root container and offers get, set, append, remove, has, import,
// sub-view and export operations with defined behavior when intermediate
// nodes are missing or hold non-container values.
//
// # Values
//
// Every stored value has a Kind: a container (*Map, insertion ordered), a
// sequence ([]any) or a leaf (anything else). Raw Go values are normalized
// on the way in, so map[string]any becomes *Map and []string becomes []any.
//
// # Missing and blocked paths
//
//	op       missing intermediate      non-container intermediate
//	Get      *NotFoundError            *PathBlockedError
//	GetOr    default                   default
//	Has      false                     false
//	Set      created                   *PathBlockedError
//	Append   created                   *PathBlockedError
//	Remove   no-op                     no-op
//
// An intermediate holding nil counts as missing.
//
// # Concurrency
//
// Data does no locking. Serialize access externally when a Data is shared
// between goroutines. Sub-views from GetData alias the parent's storage.
//
// # Example
//
//	data := dotaccess.New(map[string]any{"b": map[string]any{"c": []any{1, 2, 3}}})
//	_ = data.Append("b.c", 4)
//	v, _ := data.Get("b/c") // []any{1, 2, 3, 4}
package dotaccess
