package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/marcus/due/internal/dateparse"
	"github.com/marcus/due/internal/input"
	"github.com/marcus/due/internal/models"
	"github.com/marcus/due/internal/natural"
	"github.com/marcus/due/internal/output"
	"github.com/marcus/due/internal/refdate"
	"github.com/marcus/due/internal/suggest"
	"github.com/spf13/cobra"
)

// parseOptions controls how one phrase is resolved
type parseOptions struct {
	ref      time.Time
	endOfDay bool
	natural  bool
	first    bool
}

// phraseResult holds every candidate found for one phrase
type phraseResult struct {
	Phrase      string             `json:"phrase"`
	Candidates  []models.Candidate `json:"candidates"`
	Suggestions []string           `json:"suggestions,omitempty"`
	Error       *output.ErrorInfo  `json:"error,omitempty"`
}

// normalizePhrase lowercases phrase and collapses its whitespace; the
// recognizers only accept lowercase, single-spaced input.
func normalizePhrase(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
}

// resolvePhrase runs the engine on phrase, falling back to natural language
// parsing when enabled and the engine found nothing.
func resolvePhrase(phrase string, opts parseOptions) phraseResult {
	res := phraseResult{Phrase: phrase, Candidates: []models.Candidate{}}
	normalized := normalizePhrase(phrase)
	engineOpts := dateparse.Options{Ref: opts.ref, EndOfDay: opts.endOfDay}

	var found []dateparse.Result
	if opts.first {
		if r, ok := dateparse.First(normalized, engineOpts); ok {
			found = append(found, r)
		}
	} else {
		found = dateparse.ParseWith(normalized, engineOpts)
	}
	for _, r := range found {
		res.Candidates = append(res.Candidates, models.Candidate{
			Date:   r.Date,
			Match:  r.Match,
			Input:  phrase,
			Source: models.SourceEngine,
		})
	}
	slog.Debug("engine", "phrase", phrase, "results", len(res.Candidates))

	if len(res.Candidates) == 0 && opts.natural {
		if t, ok := natural.Resolve(normalized, opts.ref); ok {
			slog.Debug("natural fallback", "phrase", phrase, "date", t)
			res.Candidates = append(res.Candidates, models.Candidate{
				Date:   dateparse.NormalizeDay(t, opts.endOfDay),
				Match:  t.Format("Jan 2, 2006"),
				Input:  phrase,
				Source: models.SourceNatural,
			})
		}
	}

	if len(res.Candidates) == 0 {
		res.Suggestions = suggest.Phrases(normalized, dateparse.Vocabulary())
		res.Error = &output.ErrorInfo{
			Code:    output.ErrCodeNoMatch,
			Message: fmt.Sprintf("no date matches %q", phrase),
		}
	}
	return res
}

// collectPhrases joins positional args into one phrase and appends the
// expanded --input values.
func collectPhrases(args, inputs []string, stdin io.Reader) []string {
	var phrases []string
	if len(args) > 0 {
		phrases = append(phrases, strings.Join(args, " "))
	}
	expanded, _ := input.ExpandFlagValues(inputs, stdin, false)
	return append(phrases, expanded...)
}

// writeResults prints results in human form
func writeResults(w io.Writer, results []phraseResult, ref time.Time) {
	withHeader := len(results) > 1
	for _, res := range results {
		if res.Error != nil {
			output.Warning(w, "%s", res.Error.Message)
			if len(res.Suggestions) > 0 {
				fmt.Fprint(w, output.SectionHeader("did you mean"))
				for _, line := range output.BulletList(res.Suggestions, 2) {
					fmt.Fprintln(w, line)
				}
			}
			continue
		}
		for _, line := range output.FormatCandidates(res.Phrase, res.Candidates, ref, withHeader) {
			fmt.Fprintln(w, line)
		}
	}
}

var parseCmd = &cobra.Command{
	Use:   "parse [phrase...]",
	Short: "List every date a phrase could mean",
	Long: `Resolve a due-date phrase into every candidate date, earliest first.

Partial words are accepted: "tom" means tomorrow, "next f" means next friday,
"in 2" expands to days, weeks, months and years.`,
	Example: `  due parse tomorrow
  due parse next fri
  due parse in 2 weeks --ref 2017-05-11
  due parse 15th --json
  due parse -i @phrases.txt -i -`,
	GroupID: "core",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		out := cmd.OutOrStdout()

		inputs, _ := cmd.Flags().GetStringArray("input")
		phrases := collectPhrases(args, inputs, cmd.InOrStdin())
		if len(phrases) == 0 {
			err := fmt.Errorf("no phrase given")
			if jsonOutput {
				output.JSONError(out, output.ErrCodeInvalidInput, err.Error())
			}
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			if jsonOutput {
				output.JSONError(out, output.ErrCodeConfigError, err.Error())
			}
			return err
		}

		refStr, _ := cmd.Flags().GetString("ref")
		ref, err := refdate.Parse(refStr, time.Now(), time.Local)
		if err != nil {
			if jsonOutput {
				output.JSONErrorWithDetails(out, output.ErrCodeInvalidInput, err.Error(), map[string]interface{}{
					"ref": refStr,
				})
			}
			return err
		}

		opts := parseOptions{
			ref:      ref,
			endOfDay: cfg.EndOfDay,
			natural:  cfg.NaturalFallback,
		}
		if cmd.Flags().Changed("end-of-day") {
			opts.endOfDay, _ = cmd.Flags().GetBool("end-of-day")
		}
		if cmd.Flags().Changed("natural") {
			opts.natural, _ = cmd.Flags().GetBool("natural")
		}
		opts.first, _ = cmd.Flags().GetBool("first")

		slog.Debug("parse", "phrases", len(phrases), "ref", ref, "end_of_day", opts.endOfDay)

		results := make([]phraseResult, 0, len(phrases))
		for _, p := range phrases {
			results = append(results, resolvePhrase(p, opts))
		}

		if jsonOutput {
			if len(results) == 1 {
				return output.WriteJSON(out, results[0].Candidates)
			}
			return output.WriteJSON(out, results)
		}

		writeResults(out, results, ref)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().String("ref", "", "Reference date (default: now)")
	parseCmd.Flags().Bool("end-of-day", false, "Resolve dates to 23:59:59.999 instead of midnight")
	parseCmd.Flags().StringArrayP("input", "i", nil, "Extra phrase; '-' reads stdin, '@file' reads a file (repeatable)")
	parseCmd.Flags().Bool("first", false, "Print only the earliest date")
	parseCmd.Flags().Bool("natural", false, "Fall back to natural language parsing when nothing matches")
	parseCmd.Flags().Bool("json", false, "JSON output")
}
