package cmd

import (
	"fmt"

	"StockForecast/internal/server"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "stockdash version %s\n", server.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
