package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/woordkaart/grieks"
	"github.com/woordkaart/grieks/internal/view"
)

func conjugateCommand(a *app) *cobra.Command {
	var tense, output string

	cmd := &cobra.Command{
		Use:   "conjugate [text|-]",
		Short: "Print the conjugation tables of a verb",
		Long: `Print the conjugation tables of a verb text: the present headword on
line 1, then the future, aorist and imperfect headwords. Lines may be
separated by a literal \n.`,
		Example: `  grieks conjugate 'γράφω\nγράψω\nέγραψα\nέγραφα'
  grieks conjugate --tense aorist --output json - < verb.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validOutput(output); err != nil {
				return err
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			v := grieks.ParseVerb(text)

			var cs []grieks.Conjugation
			if tense != "" {
				t, ok := grieks.ParseTense(tense)
				if !ok {
					return fmt.Errorf("unknown tense %q", tense)
				}
				cs = []grieks.Conjugation{v.Conjugate(t)}
			} else {
				cs = v.Tables()
			}
			for _, c := range cs {
				if !c.OK() {
					a.logger.Debug("no table generated", "tense", c.Tense, "diagnostic", c.Diagnostic)
				}
			}

			return render(cmd.OutOrStdout(), output, view.FromVerb(v, cs, nil), func(w io.Writer) error {
				for _, c := range cs {
					if _, err := fmt.Fprintf(w, "%s: %s\n", c.Tense, c); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&tense, "tense", "t", "", "only this tense: present, future, aorist or imperfect")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	return cmd
}
