package cmd

import (
	"fmt"

	"github.com/marcus/due/internal/config"
	"github.com/marcus/due/internal/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Manage due configuration",
	GroupID: "system",
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show one config value, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		keys := config.Keys()
		if len(args) == 1 {
			keys = []string{args[0]}
		}

		out := cmd.OutOrStdout()
		for _, key := range keys {
			val, err := config.Get(cfg, key)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				output.Info(out, "%s", val)
			} else {
				output.Info(out, "%s = %s", key, val)
			}
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]

		if err := config.Set(getBaseDir(), key, val); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}

		output.Success(cmd.OutOrStdout(), "Set %s = %s", key, val)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
