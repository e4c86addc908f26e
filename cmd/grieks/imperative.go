package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/woordkaart/grieks"
	"github.com/woordkaart/grieks/internal/view"
)

func imperativeCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "imperative [text|-]",
		Short: "Print the imperative of a verb",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validOutput(output); err != nil {
				return err
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			im := grieks.ParseVerb(text).Imperative()
			if !im.OK() {
				a.logger.Debug("no imperative generated", "diagnostic", im.Diagnostic)
			}
			return render(cmd.OutOrStdout(), output, view.FromImperative(im), func(w io.Writer) error {
				_, err := fmt.Fprintln(w, im)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	return cmd
}
