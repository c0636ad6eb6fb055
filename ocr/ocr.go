// Package ocr runs OCR engines over page images and stores their plain
// text transcriptions, producing the hypothesis folders that are compared
// against the reference corpus.
package ocr

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
)

type Result struct {
	Service  string `json:"service"`
	Version  string `json:"version"`
	FullText string `json:"text"`
	Duration int64  `json:"milliseconds"`
	Date     string `json:"date"`
	Raw      []byte `json:"raw"`
}

type Client interface {
	Run(image []byte) (*Result, error)
}

func fmtTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05 MST")
}

// Factory builds an engine from a credentials directory and a locale.
type Factory func(keys, locale string) (Client, error)

var (
	factoriesMu sync.RWMutex
	factories   = map[string]Factory{
		"aws": func(keys, _ string) (Client, error) {
			return AWSClient{CredentialsPath: keys}, nil
		},
		"gcp": func(keys, locale string) (Client, error) {
			return &GCPClient{CredentialsPath: keys, LanguageHints: hints(locale)}, nil
		},
		"azure": func(keys, locale string) (Client, error) {
			return AzureClient{CredentialsPath: keys, Language: baseLanguage(locale)}, nil
		},
	}
)

// Register makes an engine available to NewClient under name.
func Register(name string, f Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories[strings.ToLower(name)] = f
}

// Engines lists the registered engine names.
func Engines() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	names := make([]string, 0, len(factories))
	for n := range factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NewClient returns the named engine. keys is the credentials directory
// of the cloud engines; locale selects the recognition language where the
// engine supports one.
func NewClient(name, keys, locale string) (Client, error) {
	factoriesMu.RLock()
	f, ok := factories[strings.ToLower(name)]
	factoriesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown OCR engine %q (want one of %s)", name, strings.Join(Engines(), ", "))
	}
	return f(keys, locale)
}

// TesseractLanguage maps a BCP 47 locale to Tesseract's ISO 639-3 name,
// it -> ita, de-CH -> deu.
func TesseractLanguage(locale string) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("unknown locale %q: %w", locale, err)
	}
	base, _ := tag.Base()
	return base.ISO3(), nil
}

func baseLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return "unk"
	}
	base, _ := tag.Base()
	return base.String()
}

func hints(locale string) []string {
	if l := baseLanguage(locale); l != "unk" {
		return []string{l}
	}
	return nil
}
