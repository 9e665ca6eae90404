package cmd

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	aoclog "github.com/msto63/aoc2023/foundation/core/log"
	_ "github.com/msto63/aoc2023/internal/days"
	"github.com/msto63/aoc2023/internal/puzzle"
)

var (
	solveInput string
	solveAll   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [tag...]",
	Short: "Löst die angegebenen Tage",
	Long: `Löst die angegebenen Tage in aufsteigender Reihenfolge.

Die Eingabe eines Tages wird aus <input_dir>/dayN.txt gelesen, sofern die
Konfiguration keinen eigenen Pfad festlegt. --input überschreibt den Pfad
und ist nur mit genau einem Tag erlaubt.

Beispiele:
  aoc solve 1
  aoc solve 5 --input samples/day5.txt
  aoc solve --all`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveInput, "input", "", "Eingabedatei (nur mit genau einem Tag)")
	solveCmd.Flags().BoolVar(&solveAll, "all", false, "Alle registrierten Tage lösen")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	days, err := selectDays(args, solveAll)
	if err != nil {
		return err
	}
	if !solveAll && len(days) < len(args) {
		logger.Warn("duplicate days ignored", aoclog.Fields{"requested": len(args), "solving": len(days)})
	}
	if solveInput != "" && len(days) != 1 {
		return fmt.Errorf("--input ist nur mit genau einem Tag erlaubt")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.General.Timeout.Duration)
	defer cancel()

	logger.Info("solving", aoclog.Fields{"days": days})

	out := cmd.OutOrStdout()
	for _, day := range days {
		p, err := puzzle.Lookup(day)
		if err != nil {
			return err
		}

		path := solveInput
		if path == "" {
			path = appConfig.InputPath(day)
		}

		answers, err := puzzle.Run(ctx, logger, p, path)
		if err != nil {
			logger.LogError(err)
			return err
		}
		for _, line := range answers.Lines(day) {
			fmt.Fprintln(out, line)
		}
	}

	logger.Debug("all days solved", aoclog.Fields{"days": len(days)})
	return nil
}

// selectDays validates the day arguments and returns them sorted without
// duplicates
func selectDays(args []string, all bool) ([]int, error) {
	if all {
		if len(args) > 0 {
			return nil, fmt.Errorf("--all kann nicht mit einzelnen Tagen kombiniert werden")
		}
		return puzzle.Days(), nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("mindestens ein Tag oder --all erforderlich")
	}

	days := make([]int, 0, len(args))
	for _, arg := range args {
		day, err := strconv.Atoi(arg)
		if err != nil || day < 1 || day > 25 {
			return nil, fmt.Errorf("ungültiger Tag %q (erwartet 1-25)", arg)
		}
		days = append(days, day)
	}
	slices.Sort(days)
	return slices.Compact(days), nil
}
