package metric

import (
	"fmt"
)

// Weights blend the three metrics into the composite score.
type Weights struct {
	Char float64 `toml:"char" json:"char"`
	Word float64 `toml:"word" json:"word"`
	BLEU float64 `toml:"bleu" json:"bleu"`
}

// DefaultWeights are 0.4 char, 0.4 word, 0.2 BLEU.
var DefaultWeights = Weights{Char: 0.4, Word: 0.4, BLEU: 0.2}

func (w Weights) sum() float64 {
	return w.Char + w.Word + w.BLEU
}

// Validate rejects negative weights and an all zero blend.
func (w Weights) Validate() error {
	if w.Char < 0 || w.Word < 0 || w.BLEU < 0 {
		return fmt.Errorf("weights must not be negative: %+v", w)
	}
	if w.sum() <= 0 {
		return fmt.Errorf("weights must not all be zero")
	}
	return nil
}

// Normalized scales the weights to sum to 1.
func (w Weights) Normalized() Weights {
	s := w.sum()
	if s <= 0 || s == 1 {
		return w
	}
	return Weights{Char: w.Char / s, Word: w.Word / s, BLEU: w.BLEU / s}
}

// Composite blends the scores with normalized weights, so inputs in
// [0,100] give a result in [0,100].
func (w Weights) Composite(char, word, bleu float64) float64 {
	n := w.Normalized()
	return n.Char*char + n.Word*word + n.BLEU*bleu
}
