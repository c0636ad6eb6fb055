package main

import (
	"github.com/spf13/cobra"

	"github.com/ughe/ocreval/config"
	"github.com/ughe/ocreval/logging"
)

var version = "dev"

type globals struct {
	verbose bool
	dotenv  string
}

func (g *globals) logger(cmd *cobra.Command) *logging.Logger {
	log := logging.NewWithWriter("ocreval", cmd.ErrOrStderr())
	log.SetVerbose(g.verbose)
	return log
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:   "ocreval",
		Short: "Compare OCR engines against a ground truth corpus",
		Long: "ocreval scores the transcriptions of several OCR engines against reference texts\n" +
			"(character accuracy, positional word accuracy, corpus BLEU) and reports one\n" +
			"weighted score and a short diagnostic per engine.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return config.LoadDotEnv(g.dotenv)
		},
	}
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "print per document scores while evaluating")
	root.PersistentFlags().StringVar(&g.dotenv, "env-file", ".env", "environment file read before the configuration")

	root.AddCommand(
		newCompareCmd(g),
		newTranscribeCmd(g),
		newEditdistCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("ocreval version %s\n", version)
		},
	}
}
