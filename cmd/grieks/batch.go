package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/woordkaart/grieks"
	"github.com/woordkaart/grieks/internal/logging"
	"github.com/woordkaart/grieks/internal/view"
)

// batchEntry is one verb of a batch report.
type batchEntry struct {
	Text string `yaml:"text"`
	view.Verb `yaml:",inline"`
}

func batchCommand(a *app) *cobra.Command {
	var withImperative bool

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Conjugate every verb of a file and print a YAML report",
		Long: `Conjugate every verb of a file. Verb texts are separated by blank
lines; the report lists them in file order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("error reading batch file: %w", err)
			}
			blocks := splitBlocks(string(b))
			logging.Module(a.logger, "batch").Info("conjugating batch", "file", args[0], "verbs", len(blocks))

			report := make([]batchEntry, len(blocks))
			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.SetLimit(runtime.GOMAXPROCS(0))
			for i, block := range blocks {
				i, block := i, block
				eg.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					report[i] = conjugateBlock(block, withImperative)
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().BoolVar(&withImperative, "imperative", true, "include the imperative of every verb")
	return cmd
}

func conjugateBlock(text string, withImperative bool) batchEntry {
	v := grieks.ParseVerb(text)
	var im *grieks.Imperative
	if withImperative {
		i := v.Imperative()
		im = &i
	}
	return batchEntry{Text: v.Text(), Verb: view.FromVerb(v, v.Tables(), im)}
}

// splitBlocks splits text on blank lines, dropping empty blocks.
func splitBlocks(text string) []string {
	var (
		blocks []string
		cur    []string
	)
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return blocks
}
