// Package metric scores one OCR hypothesis against its reference text.
// All scores are percentages in [0,100].
package metric

import (
	"github.com/ughe/ocreval/bleu"
	"github.com/ughe/ocreval/editdist"
	"github.com/ughe/ocreval/tokenize"
)

// Engine holds the tokenizer used by the word level metrics.
type Engine struct {
	tok tokenize.Tokenizer
}

// New returns an Engine splitting words with tok.
func New(tok tokenize.Tokenizer) *Engine {
	return &Engine{tok: tok}
}

// Tokenize exposes the engine's tokenizer.
func (e *Engine) Tokenize(text string) []string {
	return e.tok.Tokenize(text)
}

// CharAccuracy is 100 * (1 - lev(ref, hyp) / len(ref)) over unicode code
// points, clamped at 0. An empty reference counts as length 1.
func CharAccuracy(ref, hyp string) float64 {
	r, h := []rune(ref), []rune(hyp)
	dist := editdist.Runes(r, h)
	acc := 1 - float64(dist)/float64(max(len(r), 1))
	return max(0, acc) * 100
}

// WordAccuracy compares tokens position by position: the share of
// reference positions holding the same token in the hypothesis. There is
// no alignment, so one inserted or dropped word shifts every following
// comparison and lowers the score. editdist.WER gives the aligned view.
func (e *Engine) WordAccuracy(ref, hyp string) float64 {
	return PositionalMatch(e.tok.Tokenize(ref), e.tok.Tokenize(hyp))
}

// PositionalMatch is WordAccuracy on already tokenized text. Two texts
// without any token are identical and score 100.
func PositionalMatch(refWords, hypWords []string) float64 {
	if len(refWords) == 0 && len(hypWords) == 0 {
		return 100
	}
	n := min(len(refWords), len(hypWords))
	correct := 0
	for i := 0; i < n; i++ {
		if refWords[i] == hypWords[i] {
			correct++
		}
	}
	return float64(correct) / float64(max(len(refWords), 1)) * 100
}

// CorpusBLEU scores all documents of one engine at once, each document
// being a single segment with a single reference.
func CorpusBLEU(refs, hyps []string) (float64, error) {
	s, err := bleu.Corpus(refs, hyps)
	if err != nil {
		return 0, err
	}
	return s.Score, nil
}
