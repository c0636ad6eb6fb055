package compare

import (
	"github.com/ughe/ocreval/diagnose"
)

// DocumentComparison holds the scores of one document under one engine.
type DocumentComparison struct {
	ID           string
	CharAccuracy float64
	WordAccuracy float64
	Labels       diagnose.Set
}

// EngineSummary is the result row of one engine.
type EngineSummary struct {
	Engine       string
	Folder       string
	CharAccuracy float64
	WordAccuracy float64
	BLEU         float64
	Score        float64
	Labels       diagnose.Set
	Documents    []DocumentComparison
	Skipped      []string

	// Err is set on rows kept with MarkEmpty; the scores are then zero
	// and must not be read.
	Err error
}

// Comment is the diagnostic text of the row.
func (s *EngineSummary) Comment() string {
	if s.Err != nil {
		return "ERROR: " + s.Err.Error()
	}
	return s.Labels.String()
}

// accumulator keeps running sums while an engine's documents stream by.
type accumulator struct {
	charSum, wordSum float64
	refs, hyps       []string
	labels           diagnose.Set
	docs             []DocumentComparison
}

func newAccumulator() *accumulator {
	return &accumulator{labels: make(diagnose.Set)}
}

func (a *accumulator) add(ref, hyp string, d DocumentComparison) {
	a.charSum += d.CharAccuracy
	a.wordSum += d.WordAccuracy
	a.refs = append(a.refs, ref)
	a.hyps = append(a.hyps, hyp)
	a.labels.Merge(d.Labels)
	a.docs = append(a.docs, d)
}

func (a *accumulator) count() int {
	return len(a.docs)
}
