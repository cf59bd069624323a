package cmd

import (
	"fmt"

	"github.com/marcus/due/internal/output"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Show version",
	GroupID: "system",
	Run: func(cmd *cobra.Command, args []string) {
		versionStr := version
		if versionStr == "" {
			versionStr = "dev"
		}

		if short, _ := cmd.Flags().GetBool("short"); short {
			fmt.Fprint(cmd.OutOrStdout(), versionStr)
			return
		}
		output.Info(cmd.OutOrStdout(), "due version %s", versionStr)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().Bool("short", false, "Print only the version string")
}
