package corpus

import (
	"fmt"
	"io"

	"github.com/katalvlaran/glyphid/geom"
	"github.com/katalvlaran/glyphid/stroke"
	"gopkg.in/yaml.v3"
)

// rawPoint, rawStroke, rawSample, and rawDoc mirror the snapshot
// document layout: identifier -> sequence of samples -> sequence of
// strokes -> sequence of (x,y) pairs.
type rawPoint [2]float64
type rawStroke []rawPoint
type rawSample []rawStroke
type rawDoc map[string][]rawSample

// Decode parses a corpus snapshot document from r. Every raw sample is
// run through stroke.NewSample, so the returned Corpus holds only
// normalized, valid StrokeSamples; a sample that fails normalization
// (e.g. every one of its strokes is empty) makes the whole decode fail
// with ErrInvalidSample, since a reference corpus cannot carry a label
// with a partially-broken sample set.
func Decode(r io.Reader) (Corpus, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	var doc rawDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	out := make(Corpus, len(doc))
	for id, samples := range doc {
		if len(samples) == 0 {
			return nil, fmt.Errorf("%w: identifier %q has no reference samples", ErrInvalidSample, id)
		}

		built := make([]stroke.Sample, 0, len(samples))
		for _, sampleStrokes := range samples {
			strokes := make([]stroke.Stroke, len(sampleStrokes))
			for i, rs := range sampleStrokes {
				s := make(stroke.Stroke, len(rs))
				for j, p := range rs {
					s[j] = geom.Point{X: p[0], Y: p[1]}
				}
				strokes[i] = s
			}

			sample, err := stroke.NewSample(strokes)
			if err != nil {
				return nil, fmt.Errorf("%w: identifier %q: %v", ErrInvalidSample, id, err)
			}
			built = append(built, sample)
		}
		out[id] = built
	}

	return out, nil
}
