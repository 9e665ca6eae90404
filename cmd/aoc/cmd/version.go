package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/aoc2023/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Current()
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("aoc v%s", info.Version)))
		fmt.Fprintf(out, "  Platform:   %s\n", version.Platform)
		fmt.Fprintf(out, "  Parsetools: %s\n", version.ComponentVersion("parsetools"))
		fmt.Fprintf(out, "  Git Commit: %s\n", info.Commit)
		fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", info.OS, info.Arch)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
