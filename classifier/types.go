package classifier

// Score is one label's result from Classify: the corpus identifier and
// its distance under the scoring metric. Lower Score means a closer
// match; a zero-value Score is never a real result since no valid
// identifier is the empty string.
type Score struct {
	ID    string
	Score float64
}

// Option configures a Classifier before first use.
type Option func(cl *Classifier)

// WithWorkers bounds the corpus-scan fan-out to n goroutines. Values
// below 1 restore the default (GOMAXPROCS). Scoring is pure, so the
// worker count never changes a result, only how wide the scan runs.
func WithWorkers(n int) Option {
	return func(cl *Classifier) {
		cl.workers = n
	}
}
