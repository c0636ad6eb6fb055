// Package compare evaluates OCR engines against a reference corpus: each
// engine's documents are scored, averaged and blended into one row.
package compare

import (
	"github.com/ughe/ocreval/corpus"
	"github.com/ughe/ocreval/diagnose"
	"github.com/ughe/ocreval/logging"
	"github.com/ughe/ocreval/metric"
	"github.com/ughe/ocreval/tokenize"
)

// Aggregator scores engines against one reference corpus. It keeps no
// state between engines.
type Aggregator struct {
	ref        *corpus.Reference
	tok        tokenize.Tokenizer
	classifier *diagnose.Classifier
	weights    metric.Weights
	log        *logging.Logger
}

// NewAggregator wires the loader, tokenizer and classifier together.
func NewAggregator(ref *corpus.Reference, tok tokenize.Tokenizer, c *diagnose.Classifier, w metric.Weights, log *logging.Logger) *Aggregator {
	if log == nil {
		log = logging.Discard()
	}
	return &Aggregator{ref: ref, tok: tok, classifier: c, weights: w, log: log}
}

// Evaluate scores one engine. Skipped documents do not enter the
// averages; if every document was skipped the error wraps
// ErrNoComparableDocuments. IOErrors are returned as is.
func (a *Aggregator) Evaluate(e corpus.Engine) (*EngineSummary, error) {
	a.log.Info("evaluating", "engine", e.ID(), "folder", e.Folder)
	acc := newAccumulator()

	it := a.ref.Pairs(e)
	for it.Next() {
		p := it.Pair()
		pair := diagnose.NewPair(p.Ref, p.Hyp, a.tok)
		d := DocumentComparison{
			ID:           p.ID,
			CharAccuracy: metric.CharAccuracy(p.Ref, p.Hyp),
			WordAccuracy: metric.PositionalMatch(pair.RefWords(), pair.HypWords()),
			Labels:       a.classifier.Classify(pair),
		}
		a.log.Debug("document", "engine", e.ID(), "id", d.ID,
			"char", fmtPct(d.CharAccuracy), "word", fmtPct(d.WordAccuracy), "labels", d.Labels.String())
		acc.add(p.Ref, p.Hyp, d)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	if acc.count() == 0 {
		return nil, &EngineError{Engine: e.ID(), Err: ErrNoComparableDocuments}
	}

	bleu, err := metric.CorpusBLEU(acc.refs, acc.hyps)
	if err != nil {
		return nil, &EngineError{Engine: e.ID(), Err: err}
	}
	n := float64(acc.count())
	s := &EngineSummary{
		Engine:       e.ID(),
		Folder:       e.Folder,
		CharAccuracy: acc.charSum / n,
		WordAccuracy: acc.wordSum / n,
		BLEU:         bleu,
		Labels:       acc.labels,
		Documents:    acc.docs,
		Skipped:      it.Skipped(),
	}
	s.Score = a.weights.Composite(s.CharAccuracy, s.WordAccuracy, s.BLEU)
	a.log.Info("evaluated", "engine", s.Engine, "documents", acc.count(),
		"skipped", len(s.Skipped), "score", fmtPct(s.Score))
	return s, nil
}
