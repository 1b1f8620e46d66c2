// Package corpus decodes and holds the labeled reference dataset the
// classifier scores queries against: a mapping from symbol identifier to
// the sequence of normalized StrokeSamples recorded for that label.
//
// Contract:
//   - Decode parses a YAML document of raw (un-normalized) point data and
//     runs every sample through stroke.NewSample, so a Corpus always
//     holds fully normalized reference samples — the same pipeline a
//     query goes through, by construction.
//   - A Corpus is read-only once decoded and may be shared freely across
//     goroutines; nothing here ever mutates a Corpus after Decode or
//     Default returns it.
//   - Default embeds a small demonstration snapshot (testdata/default_snapshot.yaml)
//     via go:embed. It exists so Classifier.Default() has something to
//     construct from without requiring an external snapshot stream; it
//     is not a substitute for a production-scale reference corpus.
//
// Deserialization failures are fatal at initialization (see
// ErrDecodeFailed and ErrInvalidSample): a Corpus that failed to decode
// cannot back a Classifier.
package corpus
