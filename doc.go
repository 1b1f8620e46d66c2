// Package glyphid is the root of a handwritten-symbol shape classifier:
// given a hand-drawn stroke sequence, rank the catalogue symbols it most
// plausibly represents.
//
// 🚀 What is glyphid?
//
//	A small, dependency-light pipeline that turns raw (x,y) ink into a
//	ranked list of symbol identifiers:
//
//	  • Geometric preprocessing: dedup, smooth, refit, resample, and
//	    filter a stroke down to its dominant points
//	  • Elastic distance: a greedy, linear-time dynamic-time-warping
//	    metric between two point sequences
//	  • Corpus scoring: k-nearest-mean distance against a labeled corpus
//	    of reference samples, scanned concurrently per label
//	  • Symbol catalogue: a stable, round-trippable identifier codec over
//	    (package, font encoding, command) triples
//
// Under the hood, everything is organized under six subpackages:
//
//	geom/       — Point and Rect, the vector primitives every other package builds on
//	stroke/     — Stroke transforms and the StrokeSample normalization pipeline
//	dtw/        — the greedy elastic distance metric
//	catalog/    — the symbol identifier codec and catalogue lookup
//	corpus/     — snapshot decoding into labeled reference samples
//	classifier/ — ties corpus and dtw together into ranked Classify results
//
// Quick shape of the pipeline:
//
//	raw strokes ─▶ stroke.NewSample ─▶ dtw.Distance (per corpus label) ─▶ classifier.Score
//
// See each subpackage's doc comment for its own contract and
// invariants, and DESIGN.md in the repository root for the decisions
// behind the pipeline's structure.
package glyphid
