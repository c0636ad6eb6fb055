// Package diagnose tags reference/hypothesis pairs with coarse heuristics
// naming likely OCR error patterns. The tests are presence checks over
// the whole text, not evidence at a position.
package diagnose

import (
	"strings"

	"github.com/ughe/ocreval/tokenize"
)

// DefaultAccents are the accented letters checked by DiacriticErrors.
const DefaultAccents = "àèéòù"

// Pair is one reference text and one hypothesis text. Words are
// tokenized on first use and shared by every rule.
type Pair struct {
	Ref, Hyp string

	tok                tokenize.Tokenizer
	refWords, hypWords []string
	split              bool
}

// NewPair wraps ref and hyp.
func NewPair(ref, hyp string, tok tokenize.Tokenizer) *Pair {
	return &Pair{Ref: ref, Hyp: hyp, tok: tok}
}

func (p *Pair) words() {
	if !p.split {
		p.refWords = p.tok.Tokenize(p.Ref)
		p.hypWords = p.tok.Tokenize(p.Hyp)
		p.split = true
	}
}

// RefWords is the tokenized reference.
func (p *Pair) RefWords() []string {
	p.words()
	return p.refWords
}

// HypWords is the tokenized hypothesis.
func (p *Pair) HypWords() []string {
	p.words()
	return p.hypWords
}

// Predicate reports whether a pair shows a pattern.
type Predicate func(p *Pair) bool

type rule struct {
	label Label
	match Predicate
}

// Classifier runs registered predicates in registration order.
type Classifier struct {
	rules []rule
}

// New returns a classifier with the built in rules. An empty accents
// string means DefaultAccents.
func New(accents string) *Classifier {
	if accents == "" {
		accents = DefaultAccents
	}
	c := &Classifier{}
	c.Register(DigitLetterConfusion, digitLetter)
	c.Register(DiacriticErrors, diacritics(accents))
	c.Register(WordCountMismatch, wordCount)
	return c
}

// Register adds a rule. A label may have several predicates.
func (c *Classifier) Register(l Label, match Predicate) {
	c.rules = append(c.rules, rule{l, match})
}

// Labels lists the registered labels.
func (c *Classifier) Labels() []Label {
	seen := make(Set)
	var labels []Label
	for _, r := range c.rules {
		if !seen.Has(r.label) {
			seen.Add(r.label)
			labels = append(labels, r.label)
		}
	}
	return labels
}

// Classify returns every label whose predicate matches p.
func (c *Classifier) Classify(p *Pair) Set {
	s := make(Set)
	for _, r := range c.rules {
		if !s.Has(r.label) && r.match(p) {
			s.Add(r.label)
		}
	}
	return s
}

func digitLetter(p *Pair) bool {
	return strings.Contains(p.Ref, "0") && strings.Contains(p.Hyp, "O") ||
		strings.Contains(p.Ref, "O") && strings.Contains(p.Hyp, "0")
}

func diacritics(accents string) Predicate {
	set := []rune(accents)
	return func(p *Pair) bool {
		for _, c := range set {
			if strings.ContainsRune(p.Ref, c) && !strings.ContainsRune(p.Hyp, c) {
				return true
			}
		}
		return false
	}
}

func wordCount(p *Pair) bool {
	return len(p.RefWords()) != len(p.HypWords())
}
