package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woordkaart/grieks"
)

func speakCommand(_ *app) *cobra.Command {
	var wordType string

	cmd := &cobra.Command{
		Use:   "speak [text|-]",
		Short: "Rewrite a vocabulary entry into text for speech synthesis",
		Example: `  grieks speak --type 'bijvoeglijk nw' 'καλός, -ή, -ό'
  grieks speak --type 'zelfstandig nw' 'όνομα, το'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), grieks.SpeechText(text, grieks.WordType(wordType)))
			return err
		},
	}
	cmd.Flags().StringVar(&wordType, "type", "", "word type of the entry, e.g. 'zelfstandig nw'")
	return cmd
}
