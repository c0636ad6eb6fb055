package diagnose

import (
	"sort"
	"strings"
	"sync"
)

// Label names a suspected class of OCR error.
type Label string

const (
	DigitLetterConfusion Label = "DigitLetterConfusion"
	DiacriticErrors      Label = "DiacriticErrors"
	WordCountMismatch    Label = "WordCountMismatch"
	// GoodAccuracy is reported alone when no other label fired.
	GoodAccuracy Label = "GoodAccuracy"
)

var (
	descMu       sync.RWMutex
	descriptions = map[Label]string{
		DigitLetterConfusion: "O/0 confusion",
		DiacriticErrors:      "accent errors",
		WordCountMismatch:    "word omissions or duplications",
		GoodAccuracy:         "good accuracy",
	}
)

// Describe sets the human readable text of a label.
func Describe(l Label, text string) {
	descMu.Lock()
	defer descMu.Unlock()
	descriptions[l] = text
}

// String is the human readable text, or the label name if it has none.
func (l Label) String() string {
	descMu.RLock()
	defer descMu.RUnlock()
	if d, ok := descriptions[l]; ok {
		return d
	}
	return string(l)
}

// Set is a deduplicated collection of labels.
type Set map[Label]struct{}

// Add inserts labels into the set.
func (s Set) Add(labels ...Label) {
	for _, l := range labels {
		s[l] = struct{}{}
	}
}

// Merge adds every label of o.
func (s Set) Merge(o Set) {
	for l := range o {
		s[l] = struct{}{}
	}
}

// Has reports whether l is in the set.
func (s Set) Has(l Label) bool {
	_, ok := s[l]
	return ok
}

// Sorted lists the labels ordered by their text.
func (s Set) Sorted() []Label {
	labels := make([]Label, 0, len(s))
	for l := range s {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		a, b := labels[i].String(), labels[j].String()
		if a != b {
			return a < b
		}
		return labels[i] < labels[j]
	})
	return labels
}

// Summary is the set as the engine level verdict: GoodAccuracy when
// empty, the labels themselves otherwise.
func (s Set) Summary() []Label {
	if len(s) == 0 {
		return []Label{GoodAccuracy}
	}
	return s.Sorted()
}

// String joins the summary texts with ", ".
func (s Set) String() string {
	labels := s.Summary()
	texts := make([]string, len(labels))
	for i, l := range labels {
		texts[i] = l.String()
	}
	return strings.Join(texts, ", ")
}
