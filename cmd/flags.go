package cmd

import (
	"fmt"
	"strings"

	"github.com/marcus/due/internal/suggest"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// normalizeFlagName accepts --end_of_day for --end-of-day
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// flagError adds "did you mean" hints to unknown flag errors
func flagError(cmd *cobra.Command, err error) error {
	msg := err.Error()
	const prefix = "unknown flag: "
	idx := strings.Index(msg, prefix)
	if idx < 0 {
		return err
	}
	unknown := strings.TrimSpace(msg[idx+len(prefix):])

	if hint := suggest.GetFlagHint(unknown); hint != "" {
		return fmt.Errorf("%w (did you mean %s?)", err, hint)
	}

	var valid []string
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		valid = append(valid, "--"+f.Name)
	})
	if matches := suggest.Flag(unknown, valid); len(matches) > 0 {
		return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(matches, ", "))
	}
	return err
}
