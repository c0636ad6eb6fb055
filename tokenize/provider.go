// Package tokenize splits text into word tokens following the conventions
// of a locale: trailing punctuation becomes its own token, known
// abbreviations keep their period, elided articles (it, fr) and English
// contractions are split off the word they attach to.
package tokenize

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

//go:embed data/*.txt
var resources embed.FS

// Tokenizer splits a text into word tokens. Implementations never fail.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Provider loads locale resources on first use and hands out tokenizers.
// Loading a locale twice returns the same tokenizer.
type Provider struct {
	mu     sync.Mutex
	loaded map[language.Base]*Locale
	open   func(name string) ([]byte, bool)
}

// NewProvider returns a provider reading the embedded locale resources.
func NewProvider() *Provider {
	return &Provider{
		loaded: make(map[language.Base]*Locale),
		open: func(name string) ([]byte, bool) {
			buf, err := resources.ReadFile(path.Join("data", name+".txt"))
			return buf, err == nil
		},
	}
}

var defaultProvider = NewProvider()

// Load is Provider.Load on the process wide provider.
func Load(locale string) (*Locale, error) {
	return defaultProvider.Load(locale)
}

// Load parses locale as a BCP 47 tag and returns its tokenizer, fetching
// the locale resources if they are not loaded yet. Tags without
// resources get the generic rules.
func (p *Provider) Load(locale string) (*Locale, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("tokenize: unknown locale %q: %w", locale, err)
	}
	base, _ := tag.Base()

	p.mu.Lock()
	defer p.mu.Unlock()
	if l, ok := p.loaded[base]; ok {
		return l, nil
	}
	l := &Locale{
		Tag:           tag,
		abbreviations: make(map[string]bool),
	}
	switch base.String() {
	case "it", "fr", "ca":
		l.elision = true
	case "en":
		l.contractions = true
	}
	if buf, ok := p.open(base.String()); ok {
		readAbbreviations(buf, l.abbreviations)
	}
	p.loaded[base] = l
	return l, nil
}

// Loaded reports whether the locale's resources are already in memory.
func (p *Provider) Loaded(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.loaded[base]
	return ok
}

func readAbbreviations(buf []byte, into map[string]bool) {
	s := bufio.NewScanner(bytes.NewReader(buf))
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		into[strings.ToLower(line)] = true
	}
}
