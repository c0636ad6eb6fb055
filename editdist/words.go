package editdist

import (
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// WordDistance is the Levenshtein distance between two token sequences.
// Each distinct token is interned to a private-use rune so the rune based
// library can align whole words. A substituted word costs 1.
func WordDistance(ref, hyp []string) int {
	ids := make(map[string]rune, len(ref))
	next := rune(0xF0000) // Supplementary Private Use Area-A
	encode := func(words []string) []rune {
		out := make([]rune, len(words))
		for i, w := range words {
			r, ok := ids[w]
			if !ok {
				r = next
				ids[w] = r
				next++
			}
			out[i] = r
		}
		return out
	}
	a, b := encode(ref), encode(hyp)
	return levenshtein.DistanceForStrings(a, b, levenshtein.DefaultOptionsWithSub)
}

// WER is the word error rate of hyp against ref, as a fraction.
func WER(ref, hyp []string) float64 {
	return CER(WordDistance(ref, hyp), len(ref))
}
