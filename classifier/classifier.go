package classifier

import (
	"io"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/katalvlaran/glyphid/corpus"
	"github.com/katalvlaran/glyphid/dtw"
	"github.com/katalvlaran/glyphid/geom"
	"github.com/katalvlaran/glyphid/stroke"
)

// Classifier scores query StrokeSamples against a fixed Corpus. The zero
// value is not usable; construct one with New, Default, or FromSnapshot.
type Classifier struct {
	corpus  corpus.Corpus
	workers int
}

// New wraps an already-decoded Corpus and applies any options
// deterministically (left-to-right). The Classifier takes no ownership
// beyond reading it: c must not be mutated concurrently with Classify.
func New(c corpus.Corpus, opts ...Option) *Classifier {
	cl := &Classifier{corpus: c}
	for _, opt := range opts {
		opt(cl)
	}
	return cl
}

// Default builds a Classifier from the corpus package's embedded
// demonstration snapshot, mirroring corpus.Default.
func Default(opts ...Option) (*Classifier, error) {
	c, err := corpus.Default()
	if err != nil {
		return nil, err
	}

	return New(c, opts...), nil
}

// FromSnapshot builds a Classifier from a snapshot document read from r,
// via corpus.Decode.
func FromSnapshot(r io.Reader, opts ...Option) (*Classifier, error) {
	c, err := corpus.Decode(r)
	if err != nil {
		return nil, err
	}

	return New(c, opts...), nil
}

// Classify scores query against every label in the corpus and returns
// the results sorted ascending by Score (closest match first). The
// result holds exactly one Score per corpus label; an empty corpus
// yields an empty (nil) result.
//
// Per-label work is independent, so labels are scanned concurrently
// across a worker pool bounded by GOMAXPROCS. Labels are sorted by
// identifier before dispatch so that Go's randomized map iteration order
// never leaks into the result: two labels that score exactly equal keep
// a fixed, identifier-ordered relative position run to run.
func (cl *Classifier) Classify(query stroke.Sample) []Score {
	ids := make([]string, 0, len(cl.corpus))
	for id := range cl.corpus {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil
	}
	sort.Strings(ids)

	queryPoints := query.Points()
	scores := make([]Score, len(ids))

	workers := cl.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(ids) {
		workers = len(ids)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				id := ids[idx]
				scores[idx] = Score{
					ID:    id,
					Score: meanOfTwoNearest(queryPoints, cl.corpus[id]),
				}
			}
		}()
	}
	for idx := range ids {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	sort.SliceStable(scores, func(i, j int) bool {
		return scoreLess(scores[i].Score, scores[j].Score)
	})

	return scores
}

// scoreLess orders two scores ascending, with NaN sorted last regardless
// of which side it's on. NaN cannot arise from the pipeline's finite
// inputs — one appearing is a bug — but the ordering must stay
// well-defined rather than panic or silently misplace it.
func scoreLess(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a < b
}

// meanOfTwoNearest returns the mean DTW distance from query to the two
// closest of refs' samples (or the single distance, if refs holds only
// one sample). refs is never empty: every corpus label maps to at least
// one sample by construction (see corpus.Decode).
func meanOfTwoNearest(query []geom.Point, refs []stroke.Sample) float64 {
	best, second := math.Inf(1), math.Inf(1)
	for _, ref := range refs {
		// query and ref.Points() are always non-empty (stroke.NewSample
		// never produces an empty Sample), so this error is unreachable.
		d, err := dtw.Distance(manhattan, query, ref.Points())
		if err != nil {
			continue
		}
		if d < best {
			best, second = d, best
		} else if d < second {
			second = d
		}
	}

	if math.IsInf(second, 1) {
		return best
	}

	return (best + second) / 2
}

func manhattan(a, b geom.Point) float64 {
	return a.ManhattanDistance(b)
}
