package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ughe/ocreval/config"
	"github.com/ughe/ocreval/ocr"
)

func defaultKeys() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aws")
}

func newTranscribeCmd(g *globals) *cobra.Command {
	var (
		engine string
		keys   string
		locale string
		force  bool
	)
	cmd := &cobra.Command{
		Use:   "transcribe --engine NAME image-folder text-folder",
		Short: "Run one OCR engine over a folder of images, writing one .txt per image",
		Long: "transcribe fills a hypothesis folder for compare. Engines: aws (Textract, keys dir holds\n" +
			"credentials and config), gcp (Vision, keys dir holds gcp.json), azure (keys dir holds\n" +
			"azure.json with subscription_key and endpoint) and, in builds with -tags tesseract, the\n" +
			"local tesseract library.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load("")
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("keys") && cfg.Keys != "" {
				keys = cfg.Keys
			}
			if !cmd.Flags().Changed("locale") {
				locale = cfg.Locale
			}
			client, err := ocr.NewClient(engine, keys, locale)
			if err != nil {
				return err
			}
			log := g.logger(cmd)
			t := &ocr.Transcriber{Client: client, Force: force, Log: log.With("ocr")}
			st, err := t.Folder(args[0], args[1])
			if err != nil {
				return err
			}
			log.Info("transcription done", "engine", engine, "written", st.Written, "kept", st.Kept, "failed", st.Failed)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&engine, "engine", "", "OCR engine: "+strings.Join(ocr.Engines(), ", "))
	fl.StringVar(&keys, "keys", defaultKeys(), "credentials directory of the cloud engines")
	fl.StringVar(&locale, "locale", "it", "recognition language")
	fl.BoolVar(&force, "force", false, "overwrite existing transcriptions")
	_ = cmd.MarkFlagRequired("engine")
	return cmd
}
