package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/marcus/due/internal/dateparse"
	"github.com/marcus/due/internal/refdate"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <phrase...>",
	Short: "Print the earliest date a phrase means as YYYY-MM-DD",
	Long: `Resolve a phrase to its earliest candidate date in ISO 8601 form, for use
in scripts. Exits non-zero when nothing matches.`,
	Example: `  due resolve next fri
  due resolve 7/12 --ref 2017-05-11`,
	GroupID: "core",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		refStr, _ := cmd.Flags().GetString("ref")
		ref, err := refdate.Parse(refStr, time.Now(), time.Local)
		if err != nil {
			return err
		}

		date, err := dateparse.Resolve(normalizePhrase(strings.Join(args, " ")), ref)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), date)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().String("ref", "", "Reference date (default: now)")
}
