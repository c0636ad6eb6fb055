package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ughe/ocreval/editdist"
	"github.com/ughe/ocreval/tokenize"
	"github.com/ughe/ocreval/util"
)

func newEditdistCmd() *cobra.Command {
	var (
		cer    bool
		wer    bool
		locale string
	)
	cmd := &cobra.Command{
		Use:   "editdist [-c | -w] test.txt truth.txt",
		Short: "Calculate the levenshtein distance of two text files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cer && wer {
				return fmt.Errorf("-c and -w are exclusive")
			}
			test, err := util.ReadText(args[0])
			if err != nil {
				return err
			}
			truth, err := util.ReadText(args[1])
			if err != nil {
				return err
			}
			if wer {
				tok, err := tokenize.Load(locale)
				if err != nil {
					return err
				}
				cmd.Printf("%.5f\n", editdist.WER(tok.Tokenize(truth), tok.Tokenize(test)))
				return nil
			}
			dist := editdist.Levenshtein(test, truth)
			if cer {
				cmd.Printf("%.5f\n", editdist.CER(dist, len([]rune(truth))))
			} else {
				cmd.Printf("%d\n", dist)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&cer, "cer", "c", false, "Output character error rate instead of levenshtein dist")
	cmd.Flags().BoolVarP(&wer, "wer", "w", false, "Output word error rate from a word level alignment")
	cmd.Flags().StringVar(&locale, "locale", "it", "tokenizer locale for -w")
	return cmd
}
