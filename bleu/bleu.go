// Package bleu computes corpus level BLEU with one reference per segment,
// matching sacrebleu's defaults: 13a tokenization, 1..4-grams, exponential
// smoothing and the standard brevity penalty. Scores are in [0,100].
package bleu

import (
	"fmt"
	"math"
	"strings"
)

// MaxOrder is the highest n-gram order counted.
const MaxOrder = 4

// Stats are the sufficient statistics of a corpus.
type Stats struct {
	Correct [MaxOrder]int
	Total   [MaxOrder]int
	SysLen  int
	RefLen  int
}

// Score is a BLEU result with its components.
type Score struct {
	Score      float64
	Precisions [MaxOrder]float64
	BP         float64
	SysLen     int
	RefLen     int
}

func (s Score) String() string {
	p := make([]string, MaxOrder)
	for i, v := range s.Precisions {
		p[i] = fmt.Sprintf("%.1f", v)
	}
	return fmt.Sprintf("BLEU = %.2f %s (BP = %.3f hyp_len = %d ref_len = %d)",
		s.Score, strings.Join(p, "/"), s.BP, s.SysLen, s.RefLen)
}

func ngrams(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], "\x00")]++
	}
	return counts
}

// Add accumulates one reference/hypothesis segment.
func (st *Stats) Add(ref, hyp string) {
	r, h := Tokenize13a(ref), Tokenize13a(hyp)
	st.SysLen += len(h)
	st.RefLen += len(r)
	for n := 1; n <= MaxOrder; n++ {
		refCounts := ngrams(r, n)
		for g, c := range ngrams(h, n) {
			st.Correct[n-1] += min(c, refCounts[g])
		}
		if len(h) >= n {
			st.Total[n-1] += len(h) - n + 1
		}
	}
}

// Score turns the statistics into a BLEU score.
func (st *Stats) Score() Score {
	s := Score{SysLen: st.SysLen, RefLen: st.RefLen, BP: 1.0}
	if st.SysLen == 0 {
		s.BP = 0.0
		return s
	}
	if st.SysLen < st.RefLen {
		s.BP = math.Exp(1 - float64(st.RefLen)/float64(st.SysLen))
	}

	smooth := 1.0
	for n := 0; n < MaxOrder; n++ {
		if st.Total[n] == 0 {
			break
		}
		if st.Correct[n] == 0 {
			smooth *= 2
			s.Precisions[n] = 100.0 / (smooth * float64(st.Total[n]))
		} else {
			s.Precisions[n] = 100.0 * float64(st.Correct[n]) / float64(st.Total[n])
		}
	}

	logSum := 0.0
	for _, p := range s.Precisions {
		if p == 0 {
			return s // Undefined order, score stays 0
		}
		logSum += math.Log(p)
	}
	s.Score = s.BP * math.Exp(logSum/MaxOrder)
	return s
}

// Corpus scores parallel reference and hypothesis segments. Both slices
// must have the same length.
func Corpus(refs, hyps []string) (Score, error) {
	if len(refs) != len(hyps) {
		return Score{}, fmt.Errorf("bleu: %d references but %d hypotheses", len(refs), len(hyps))
	}
	var st Stats
	for i := range refs {
		st.Add(refs[i], hyps[i])
	}
	return st.Score(), nil
}
