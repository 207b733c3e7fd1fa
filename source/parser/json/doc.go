// Package json provides the JSON codec for the source package.
//
// Objects are decoded token by token so members keep their document order.
// Integral numbers become int64, other numbers float64.
package json
