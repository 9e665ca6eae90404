package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/aoc2023/internal/puzzle"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Zeigt alle registrierten Rätsel",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, titleStyle.Render("Advent of Code 2023"))
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-4s %-34s %s", "TAG", "TITEL", "EINGABE")))

	for _, p := range puzzle.All() {
		fmt.Fprintf(out, "%s %s %s\n",
			dayStyle.Render(fmt.Sprintf("%-4s", strconv.Itoa(p.Day))),
			puzzleTitleStyle.Render(fmt.Sprintf("%-34s", p.Title)),
			pathStyle.Render(appConfig.InputPath(p.Day)))
	}
	return nil
}
