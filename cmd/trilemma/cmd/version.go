package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the trilemma CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "trilemma version %s\n", version)
		fmt.Fprintln(out, "Impossible Trinity exchange rate simulator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
