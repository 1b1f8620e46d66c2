// Package classifier scores a query StrokeSample against a labeled
// corpus of reference samples and returns a ranked list of (identifier,
// score) pairs — lower score means closer match.
//
// For each identifier in the corpus, Classify computes the greedy DTW
// distance (package dtw, under Manhattan distance) between the query and
// every reference sample for that label, takes the mean of the two
// smallest distances (fewer if the label has under two samples), and
// reports that as the label's Score. The single nearest sample is
// brittle against one noisy reference; averaging every sample for a
// label washes out legitimate variants (e.g. a one-stroke vs a
// two-stroke rendition of the same symbol). The mean of the best two
// balances the two failure modes.
//
// Per-identifier scoring is independent and pure, so Classify fans the
// corpus scan out across a bounded worker pool (GOMAXPROCS by default,
// tunable via WithWorkers); the corpus itself is
// read-only after construction and safe to share across concurrent
// Classify calls. Classification never suspends for I/O and is
// deterministic: the same query against the same corpus always produces
// the same ranked list (Go map iteration order is randomized, so
// Classify sorts identifiers before dispatch to keep ties — any two
// labels scoring exactly equal — broken consistently, by identifier, run
// to run).
package classifier
