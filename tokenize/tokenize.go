package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// Locale is the tokenizer of one language.
type Locale struct {
	Tag           language.Tag
	abbreviations map[string]bool
	elision       bool
	contractions  bool
}

var _ Tokenizer = (*Locale)(nil)

var englishClitics = []string{"n't", "'s", "'re", "'ve", "'ll", "'d", "'m"}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

func isPunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// Tokenize splits text on white space and then separates punctuation,
// elisions and clitics from each field.
func (l *Locale) Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields)+len(fields)/4)
	for _, f := range fields {
		tokens = l.field(tokens, f)
	}
	return tokens
}

func (l *Locale) field(tokens []string, f string) []string {
	// Leading punctuation
	for f != "" {
		if strings.HasPrefix(f, "...") {
			tokens = append(tokens, "...")
			f = f[3:]
			continue
		}
		r, size := utf8.DecodeRuneInString(f)
		if !isPunct(r) {
			break
		}
		tokens = append(tokens, f[:size])
		f = f[size:]
	}
	if f == "" {
		return tokens
	}

	// Trailing punctuation, collected right to left
	var trail []string
	for f != "" {
		if strings.HasSuffix(f, "...") && len(f) > 3 {
			trail = append(trail, "...")
			f = f[:len(f)-3]
			continue
		}
		r, size := utf8.DecodeLastRuneInString(f)
		if !isPunct(r) || len(f) == size {
			break
		}
		if r == '.' && l.keepsPeriod(f) {
			break
		}
		if isApostrophe(r) && l.elision {
			break // po', perché'
		}
		trail = append(trail, f[len(f)-size:])
		f = f[:len(f)-size]
	}

	tokens = l.word(tokens, f)
	for i := len(trail) - 1; i >= 0; i-- {
		tokens = append(tokens, trail[i])
	}
	return tokens
}

// keepsPeriod reports whether w (ending in '.') is an abbreviation or an
// initial like "A." or "U.S.".
func (l *Locale) keepsPeriod(w string) bool {
	if l.abbreviations[strings.ToLower(w)] {
		return true
	}
	core := w[:len(w)-1]
	if utf8.RuneCountInString(core) == 1 {
		r, _ := utf8.DecodeRuneInString(core)
		return unicode.IsUpper(r)
	}
	return strings.Contains(core, ".")
}

func (l *Locale) word(tokens []string, w string) []string {
	if l.elision {
		// l'uomo, dell'anno, qu'il
		for {
			i := strings.IndexFunc(w, isApostrophe)
			if i <= 0 {
				break
			}
			_, size := utf8.DecodeRuneInString(w[i:])
			rest := w[i+size:]
			r, _ := utf8.DecodeRuneInString(rest)
			if rest == "" || !unicode.IsLetter(r) {
				break
			}
			tokens = append(tokens, w[:i+size])
			w = rest
		}
	}
	if l.contractions {
		for _, c := range englishClitics {
			for _, cand := range []string{c, strings.Replace(c, "'", "’", 1)} {
				if len(w) > len(cand) && strings.EqualFold(w[len(w)-len(cand):], cand) {
					cut := len(w) - len(cand)
					return append(tokens, w[:cut], w[cut:])
				}
			}
		}
	}
	return append(tokens, w)
}
