package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/woordkaart/grieks/internal/config"
	"github.com/woordkaart/grieks/internal/logging"
)

// app carries the state shared by all subcommands once the root command
// has loaded the configuration.
type app struct {
	v          *viper.Viper
	configPath string
	settings   *config.Settings
	logger     *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:           "grieks",
		Short:         "Modern Greek verb conjugation and speech text",
		SilenceUsage:  true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.initialize(cmd.ErrOrStderr())
	}

	rootCmd.AddCommand(
		conjugateCommand(a),
		imperativeCommand(a),
		speakCommand(a),
		batchCommand(a),
		serveCommand(a),
	)
	return rootCmd
}

// initialize loads the settings and sets up logging on w.
func (a *app) initialize(w io.Writer) error {
	settings, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(w, settings.Log.Level, settings.Log.Format)
	if err != nil {
		return fmt.Errorf("error setting up logging: %w", err)
	}
	a.settings = settings
	a.logger = logger
	slog.SetDefault(logger)
	return nil
}

// readText returns the verb text from args, or from stdin when args is
// empty or "-". A literal `\n` separates lines as a newline does.
func readText(cmd *cobra.Command, args []string) (string, error) {
	var text string
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		text = string(b)
	} else {
		text = strings.Join(args, " ")
	}
	text = strings.ReplaceAll(text, `\n`, "\n")
	if strings.TrimSpace(text) == "" {
		return "", errEmptyText
	}
	return text, nil
}
