// Package stroke implements the geometric preprocessing pipeline that turns
// raw pen traces into the normalized form the elastic distance metric
// compares: Stroke holds one continuous trace and its per-stroke
// transforms (bounding box, refit, aspect-preserving refit, dedup, smooth,
// redistribute, dominant-point filtering); Sample holds a whole drawing —
// an ordered, size-capped collection of normalized Strokes — and owns the
// constructor that runs every Stroke through the pipeline in the exact
// order the distance metric expects.
//
// Contract:
//   - A Stroke is a plain []geom.Point; every transform here returns a new
//     Stroke rather than mutating the receiver, so callers never need to
//     clone a Stroke before reusing it (this also makes Sample's reference
//     corpus safe to share read-only across goroutines — see package
//     classifier).
//   - NewSample is the only place pipeline ordering is decided. Changing
//     that order changes every score the classifier produces; see the
//     ordering rationale in sample.go.
//
// Complexity: every transform is O(len(stroke)) except Redistribute, which
// is O(len(stroke) + n) (each output point may require revisiting the
// segment it falls on, but each segment is only ever partially consumed,
// never re-walked from its start).
//
// Determinism: all transforms are pure functions of their inputs; given
// the same Stroke, NewSample always produces the same normalized Sample.
package stroke
