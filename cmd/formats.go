package cmd

import (
	"fmt"

	"github.com/marcus/due/internal/output"
	"github.com/spf13/cobra"
)

const formatsReference = `# Phrase formats

Every form accepts a prefix of its words, so results update while typing.

| Form | Examples | Meaning |
|---|---|---|
| Relative span | ` + "`in 3 days`, `in 2 w`, `in 1`" + ` | ref plus N days, weeks, months or years |
| Today | ` + "`t`, `tod`, `today`" + ` | the reference day |
| Tomorrow | ` + "`tom`, `tomorrow`" + ` | the day after the reference |
| Weekday | ` + "`fri`, `this tue`, `next f`" + ` | next occurrence; ` + "`next`" + ` skips a week |
| Day of month | ` + "`15`, `15th`, `1s`" + ` | that day this month, or next month if past |
| US date | ` + "`7/12`, `7/12/18`, `7/12/2018`" + ` | month/day[/year]; past dates roll to next year |
| Month day year | ` + "`may 12`, `Dec 25th, 2018`" + ` | named month; past dates roll to next year |

## Notes

- Matching is case-insensitive and ignores surrounding spaces.
- Results are sorted earliest first; one phrase can yield several dates.
- Impossible dates (` + "`2/30`, `13/1`" + `) yield nothing.
- ` + "`--end-of-day`" + ` resolves every date to 23:59:59.999.
- ` + "`--natural`" + ` tries free-form phrases ("a week from friday") when nothing else matches.
`

var formatsCmd = &cobra.Command{
	Use:     "formats",
	Aliases: []string{"help-formats"},
	Short:   "Show the phrase formats due understands",
	GroupID: "core",
	RunE: func(cmd *cobra.Command, args []string) error {
		rendered, err := output.RenderMarkdown(formatsReference)
		if err != nil {
			return fmt.Errorf("render formats: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
