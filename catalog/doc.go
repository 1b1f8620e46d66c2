// Package catalog holds the compile-time table mapping stable symbol
// identifiers to typesetting metadata: which macro, package, and font
// encoding produces a given handwritten glyph, and whether it is usable
// in text mode, math mode, or both.
//
// Contract:
//   - Catalogue is a read-only mapping built by New from a slice of
//     entries; Default builds a fresh one from the fixed in-memory table
//     (data.go) on each call. No runtime mutation is ever needed or
//     exposed.
//   - The identifier a Catalogue is keyed by is a stable derivation from
//     (package, font_encoding, command): see Encode/Decode in
//     identifier.go. Every entry's derived identifier decodes back to
//     itself (see the round-trip test), so the mapping is injective by
//     construction.
//   - Lookup of an identifier the catalogue doesn't recognize returns
//     ErrUnknownIdentifier; this is expected and recoverable — the
//     surrounding service displays the raw identifier instead.
//
// Complexity: Lookup is O(1) (backed by a Go map); All is O(n log n) in
// the number of catalogue entries, since it sorts them by identifier.
package catalog
