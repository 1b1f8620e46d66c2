package corpus

import (
	"bytes"
	_ "embed"
)

//go:embed testdata/default_snapshot.yaml
var defaultSnapshot []byte

// Default decodes the package's embedded demonstration snapshot. It
// backs Classifier.Default() so the classifier has a zero-argument
// constructor that needs no external snapshot stream; see the package
// doc for why this is a small demonstration corpus rather than a
// production-scale one.
func Default() (Corpus, error) {
	return Decode(bytes.NewReader(defaultSnapshot))
}
