package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ughe/ocreval/compare"
	"github.com/ughe/ocreval/config"
	"github.com/ughe/ocreval/corpus"
	"github.com/ughe/ocreval/diagnose"
	"github.com/ughe/ocreval/metric"
	"github.com/ughe/ocreval/report"
	"github.com/ughe/ocreval/tokenize"
)

type compareFlags struct {
	config    string
	reference string
	engines   []string
	locale    string
	accents   string
	weights   string
	output    string
	format    string
	pdf       string
	onEmpty   string
	parallel  int
	normalize bool
	details   bool
}

func newCompareCmd(g *globals) *cobra.Command {
	f := &compareFlags{}
	cmd := &cobra.Command{
		Use:   "compare [flags] [engine-folder ...]",
		Short: "Score OCR engine folders against the reference folder",
		Example: "  ocreval compare --reference books/txt_reference books/txt_tesseract_5_3_0 books/txt_easyocr_1_7_2\n" +
			"  ocreval compare -c ocreval.toml --format json --details",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.config)
			if err != nil {
				return err
			}
			if err := f.apply(cmd, cfg, args); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runCompare(cmd, g, f, cfg)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "TOML configuration file")
	fl.StringVarP(&f.reference, "reference", "r", "", "folder with the ground truth texts")
	fl.StringArrayVarP(&f.engines, "engine", "e", nil, "engine folder, as folder or name=folder (repeatable)")
	fl.StringVar(&f.locale, "locale", "", "tokenizer locale (default it)")
	fl.StringVar(&f.accents, "accents", "", "accented letters checked for diacritic errors (default àèéòù)")
	fl.StringVar(&f.weights, "weights", "", "char,word,bleu weights of the score (default 0.4,0.4,0.2)")
	fl.StringVarP(&f.output, "output", "o", "", "results file, .csv .json or .pdf; - for none")
	fl.StringVar(&f.format, "format", "text", "stdout format: text, csv, json or none")
	fl.StringVar(&f.pdf, "pdf", "", "also write the table as a PDF file")
	fl.StringVar(&f.onEmpty, "on-empty", "", "engines without comparable documents: skip or mark")
	fl.IntVarP(&f.parallel, "parallel", "p", 0, "engines evaluated at once")
	fl.BoolVar(&f.normalize, "normalize", false, "NFC-normalise texts before comparing")
	fl.BoolVar(&f.details, "details", false, "print per document scores")
	return cmd
}

// apply lets flags and positional folders override the configuration.
func (f *compareFlags) apply(cmd *cobra.Command, cfg *config.Config, args []string) error {
	changed := cmd.Flags().Changed
	if changed("reference") {
		cfg.Reference = f.reference
	}
	if engines := config.ParseEngines(append(append([]string(nil), f.engines...), args...)); len(engines) > 0 {
		cfg.Engines = engines
	}
	if changed("locale") {
		cfg.Locale = f.locale
	}
	if changed("accents") {
		cfg.Accents = f.accents
	}
	if changed("weights") {
		w, err := parseWeights(f.weights)
		if err != nil {
			return err
		}
		cfg.Weights = w
	}
	if changed("output") {
		cfg.Output = f.output
	}
	if changed("on-empty") {
		cfg.OnEmpty = f.onEmpty
	}
	if changed("parallel") {
		cfg.Parallel = f.parallel
	}
	if changed("normalize") {
		cfg.Normalize = f.normalize
	}
	switch f.format {
	case "text", "csv", "json", "none":
	default:
		return fmt.Errorf("unknown format %q", f.format)
	}
	return nil
}

func parseWeights(s string) (metric.Weights, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return metric.Weights{}, fmt.Errorf("weights: want char,word,bleu, got %q", s)
	}
	v := make([]float64, 3)
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return metric.Weights{}, fmt.Errorf("weights: %w", err)
		}
		v[i] = x
	}
	return metric.Weights{Char: v[0], Word: v[1], BLEU: v[2]}, nil
}

func runCompare(cmd *cobra.Command, g *globals, f *compareFlags, cfg *config.Config) error {
	log := g.logger(cmd)

	tok, err := tokenize.Load(cfg.Locale)
	if err != nil {
		return err
	}
	ref, err := corpus.Open(cfg.Reference,
		corpus.WithLogger(log.With("corpus")),
		corpus.WithNormalization(cfg.Normalize))
	if err != nil {
		return err
	}
	log.Info("reference loaded", "folder", ref.Dir(), "documents", len(ref.IDs()), "engines", len(cfg.Engines))

	agg := compare.NewAggregator(ref, tok, diagnose.New(cfg.Accents), cfg.Weights, log.With("compare"))
	table := report.New()
	opts := compare.Options{OnEmpty: cfg.Policy(), Parallel: cfg.Parallel}
	if err := compare.Run(agg, cfg.Engines, opts, table); err != nil {
		return err
	}
	if table.Len() == 0 {
		log.Warn("no engine produced a row", "engines", len(cfg.Engines))
	}

	if cfg.Output != "" && cfg.Output != "-" {
		if err := table.Save(cfg.Output); err != nil {
			return err
		}
		log.Info("results saved", "path", cfg.Output)
	}
	if f.pdf != "" {
		if err := table.SavePDF(f.pdf); err != nil {
			return err
		}
		log.Info("pdf saved", "path", f.pdf)
	}

	out := cmd.OutOrStdout()
	switch f.format {
	case "text":
		fmt.Fprintln(out, table.Render())
	case "csv":
		if err := table.WriteCSV(out); err != nil {
			return err
		}
	case "json":
		if err := table.WriteJSON(out, f.details); err != nil {
			return err
		}
	}
	if f.details && f.format != "json" {
		return table.Details(out)
	}
	return nil
}
