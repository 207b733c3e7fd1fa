// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch (RFC 7396)
// documents to a dotaccess.Data.
//
// Both functions work on a JSON rendering of the document and return a new
// accessor; the input is left untouched. Key order of the result follows the
// patch library's output, which is sorted.
package patch
