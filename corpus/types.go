package corpus

import (
	"errors"

	"github.com/katalvlaran/glyphid/stroke"
)

// ErrDecodeFailed wraps a failure to parse the snapshot document itself
// (malformed YAML). Always fatal: the classifier cannot be constructed
// from a corpus that failed to decode.
var ErrDecodeFailed = errors.New("corpus: snapshot decode failed")

// ErrInvalidSample wraps a failure to normalize one of the snapshot's
// reference samples into a stroke.Sample (e.g. a sample with no
// non-empty strokes). A reference corpus is not allowed to carry invalid
// samples, so this is also fatal at decode time.
var ErrInvalidSample = errors.New("corpus: invalid reference sample")

// Corpus is the read-only mapping from symbol identifier to its
// reference StrokeSamples. Every label maps to at least one sample.
type Corpus map[string][]stroke.Sample
