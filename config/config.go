// Package config loads the evaluation settings from a TOML file, the
// environment (optionally seeded from a .env file) and finally flags.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/ughe/ocreval/compare"
	"github.com/ughe/ocreval/corpus"
	"github.com/ughe/ocreval/diagnose"
	"github.com/ughe/ocreval/metric"
	"github.com/ughe/ocreval/tokenize"
)

// Config holds one evaluation run.
type Config struct {
	// Reference is the ground truth folder.
	Reference string `toml:"reference"`
	// Engines are compared in this order.
	Engines []corpus.Engine `toml:"engines"`

	Locale  string         `toml:"locale"`
	Accents string         `toml:"accents"`
	Weights metric.Weights `toml:"weights"`

	// Output is the results file; its extension picks the format.
	Output string `toml:"output"`
	// OnEmpty is "skip" or "mark" for engines without comparable documents.
	OnEmpty   string `toml:"on_empty"`
	Normalize bool   `toml:"normalize"`
	Parallel  int    `toml:"parallel"`

	// Keys is the credentials directory of the cloud OCR engines.
	Keys string `toml:"keys"`
}

// Default returns the stock settings.
func Default() *Config {
	return &Config{
		Locale:  "it",
		Accents: diagnose.DefaultAccents,
		Weights: metric.DefaultWeights,
		Output:  "ocr_comparison_results.csv",
		OnEmpty: compare.SkipEmpty.String(),
	}
}

// Load reads path over the defaults and applies the environment. An empty
// path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		dec := toml.NewDecoder(bytes.NewReader(buf))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// LoadDotEnv sets variables from the given .env files that exist. Values
// already in the environment win.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func getEnvOrDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// ApplyEnv overrides fields from OCREVAL_* variables.
func (c *Config) ApplyEnv() {
	c.Reference = getEnvOrDefault("OCREVAL_REFERENCE", c.Reference)
	c.Locale = getEnvOrDefault("OCREVAL_LOCALE", c.Locale)
	c.Accents = getEnvOrDefault("OCREVAL_ACCENTS", c.Accents)
	c.Output = getEnvOrDefault("OCREVAL_OUTPUT", c.Output)
	c.OnEmpty = getEnvOrDefault("OCREVAL_ON_EMPTY", c.OnEmpty)
	c.Keys = getEnvOrDefault("OCREVAL_KEYS", c.Keys)
	if v := os.Getenv("OCREVAL_ENGINES"); v != "" {
		c.Engines = ParseEngines(strings.Split(v, ","))
	}
}

// ParseEngines reads "folder" or "name=folder" items.
func ParseEngines(items []string) []corpus.Engine {
	var engines []corpus.Engine
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if name, folder, ok := strings.Cut(item, "="); ok {
			engines = append(engines, corpus.Engine{Name: name, Folder: folder})
		} else {
			engines = append(engines, corpus.Engine{Folder: item})
		}
	}
	return engines
}

// Validate checks the settings needed by a comparison run.
func (c *Config) Validate() error {
	if c.Reference == "" {
		return fmt.Errorf("reference folder is required")
	}
	if len(c.Engines) == 0 {
		return fmt.Errorf("at least one engine folder is required")
	}
	seen := make(map[string]bool)
	for i, e := range c.Engines {
		if e.Folder == "" {
			return fmt.Errorf("engine %d has no folder", i+1)
		}
		if seen[e.ID()] {
			return fmt.Errorf("engine %q configured twice", e.ID())
		}
		seen[e.ID()] = true
	}
	if _, err := tokenize.Load(c.Locale); err != nil {
		return err
	}
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if _, err := compare.ParsePolicy(c.OnEmpty); err != nil {
		return err
	}
	if c.Parallel < 0 {
		return fmt.Errorf("parallel must not be negative, got %d", c.Parallel)
	}
	return nil
}

// Policy is OnEmpty parsed; call after Validate.
func (c *Config) Policy() compare.Policy {
	p, _ := compare.ParsePolicy(c.OnEmpty)
	return p
}
