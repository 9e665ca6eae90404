package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	aocerror "github.com/msto63/aoc2023/foundation/core/error"
	aoclog "github.com/msto63/aoc2023/foundation/core/log"
	"github.com/msto63/aoc2023/pkg/core/config"
	"github.com/msto63/aoc2023/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	// set by PersistentPreRunE
	appConfig *config.Config
	logger    *aoclog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2023 - Puzzle-Löser",
	Long: `aoc löst die Rätsel von Advent of Code 2023.

Jeder Tag besteht aus Lexer, Parser und Auswertung. Die Antworten
erscheinen auf stdout, Logs auf stderr.

Befehle:
  solve    - Löst einen oder mehrere Tage
  list     - Zeigt alle registrierten Rätsel
  version  - Zeigt die Version an`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and reports a failure on stderr
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (TOML oder YAML, default: eingebaute Werte)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output (Log-Level debug)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log-Format: json, text, console, logfmt")
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}

	level := cfg.General.LogLevel
	if verbose {
		level = "debug"
	}
	format := cfg.General.LogFormat
	if logFormat != "" {
		if _, err := aoclog.ParseFormat(logFormat); err != nil {
			return fmt.Errorf("ungültiges Log-Format %q", logFormat)
		}
		format = logFormat
	}

	appConfig = cfg
	logger = logging.NewLogger(logging.LoggerConfig{
		Name:   "aoc",
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		RunID:  logging.NewRunID(),
		Caller: verbose,
	})
	logger.Debug("configuration loaded", aoclog.Fields{
		"config":    cfgFile,
		"input_dir": cfg.Puzzles.InputDir,
	})
	return nil
}

// printError writes the one-line failure report. Input faults are prefixed
// with their category and, when known, the rune offset in the input.
func printError(w io.Writer, err error) {
	coded, ok := aocerror.As(err)
	if !ok || !coded.Code().IsFault() {
		fmt.Fprintf(w, "Fehler: %v\n", err)
		return
	}
	if pos, ok := coded.Detail("position"); ok {
		fmt.Fprintf(w, "Fehler (%s, Position %v): %v\n", coded.Code().Category(), pos, err)
		return
	}
	fmt.Fprintf(w, "Fehler (%s): %v\n", coded.Code().Category(), err)
}
