// Package toml provides the TOML codec for the source package, built on
// github.com/BurntSushi/toml.
//
// BurntSushi/toml decodes tables into Go maps, so the parser restores the
// document order of keys from the decoder's MetaData. Encoding goes through
// the BurntSushi encoder, which writes keys in its own canonical order.
package toml
