// Package keypath parses the string paths used to address values in a nested tree.
//
// A path is one or more non-empty segments separated by '.' or '/':
//
//	"a.b.c"  -> [a b c]
//	"a/b/c"  -> [a b c]
//	"a"      -> [a]
//	""       -> ErrEmptyPath
//
// Segments are opaque map keys. There are no wildcards and no array indices.
package keypath
