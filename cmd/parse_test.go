package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/marcus/due/internal/models"
	"github.com/marcus/due/internal/output"
	"github.com/spf13/pflag"
)

var testRef = time.Date(2017, 5, 11, 0, 0, 0, 0, time.UTC) // Thursday

// runRoot executes the root command with args against a fresh config dir
// and returns stdout.
func runRoot(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DUE_DIR", dir)
	resetFlags(parseCmd.Flags())
	resetFlags(versionCmd.Flags())
	resetFlags(resolveCmd.Flags())

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
}

func TestResolvePhraseEngine(t *testing.T) {
	res := resolvePhrase("tom", parseOptions{ref: testRef})
	if len(res.Candidates) != 1 {
		t.Fatalf("resolvePhrase(tom) = %+v, want one candidate", res.Candidates)
	}
	c := res.Candidates[0]
	if c.Source != models.SourceEngine {
		t.Errorf("source = %q, want %q", c.Source, models.SourceEngine)
	}
	if c.Match != "tomorrow" || c.Input != "tom" {
		t.Errorf("candidate = %+v", c)
	}
	if want := time.Date(2017, 5, 12, 0, 0, 0, 0, time.UTC); !c.Date.Equal(want) {
		t.Errorf("date = %v, want %v", c.Date, want)
	}
}

func TestResolvePhraseNormalizesCase(t *testing.T) {
	res := resolvePhrase("  Next   FRI ", parseOptions{ref: testRef})
	if len(res.Candidates) != 1 {
		t.Fatalf("resolvePhrase = %+v, want one candidate", res.Candidates)
	}
	if res.Candidates[0].Match != "next Friday" || res.Candidates[0].Input != "  Next   FRI " {
		t.Errorf("candidate = %+v, want the raw phrase as input", res.Candidates[0])
	}
	if res.Phrase != "  Next   FRI " {
		t.Errorf("phrase = %q, want the raw input", res.Phrase)
	}
}

func TestResolvePhraseFirst(t *testing.T) {
	res := resolvePhrase("t", parseOptions{ref: testRef, first: true})
	if len(res.Candidates) != 1 {
		t.Fatalf("resolvePhrase(t, first) = %+v, want one candidate", res.Candidates)
	}
	if res.Candidates[0].Match != "today" {
		t.Errorf("first match = %q, want today", res.Candidates[0].Match)
	}
}

func TestResolvePhraseSuggestion(t *testing.T) {
	res := resolvePhrase("tomorow", parseOptions{ref: testRef})
	if len(res.Candidates) != 0 {
		t.Fatalf("resolvePhrase(tomorow) = %+v, want none", res.Candidates)
	}
	if res.Candidates == nil {
		t.Error("candidates should be an empty slice, not nil")
	}
	if len(res.Suggestions) == 0 || res.Suggestions[0] != "tomorrow" {
		t.Errorf("suggestions = %v, want tomorrow first", res.Suggestions)
	}
	if res.Error == nil || res.Error.Code != output.ErrCodeNoMatch {
		t.Errorf("error = %+v, want code %q", res.Error, output.ErrCodeNoMatch)
	}

	if ok := resolvePhrase("tom", parseOptions{ref: testRef}); ok.Error != nil || len(ok.Suggestions) != 0 {
		t.Errorf("matched phrase carries error %+v / suggestions %v", ok.Error, ok.Suggestions)
	}
}

func TestResolvePhraseNaturalFallback(t *testing.T) {
	off := resolvePhrase("next month", parseOptions{ref: testRef})
	if len(off.Candidates) != 0 {
		t.Fatalf("without fallback got %+v, want none", off.Candidates)
	}

	on := resolvePhrase("next month", parseOptions{ref: testRef, natural: true, endOfDay: true})
	if len(on.Candidates) != 1 {
		t.Fatalf("with fallback got %+v, want one candidate", on.Candidates)
	}
	c := on.Candidates[0]
	if c.Source != models.SourceNatural {
		t.Errorf("source = %q, want %q", c.Source, models.SourceNatural)
	}
	if !c.Date.After(testRef) {
		t.Errorf("date %v not after ref", c.Date)
	}
	if c.Date.Hour() != 23 || c.Date.Minute() != 59 || c.Date.Nanosecond() != 999000000 {
		t.Errorf("date %v not normalized to end of day", c.Date)
	}
	if c.Input != "next month" {
		t.Errorf("input = %q, want raw phrase", c.Input)
	}
}

func TestCollectPhrases(t *testing.T) {
	got := collectPhrases([]string{"next", "fri"}, []string{"-", "15th"}, strings.NewReader("tom\n"))
	want := []string{"next fri", "tom", "15th"}
	if len(got) != len(want) {
		t.Fatalf("collectPhrases = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("phrase %d = %q, want %q", i, got[i], want[i])
		}
	}

	if got := collectPhrases(nil, nil, strings.NewReader("")); len(got) != 0 {
		t.Errorf("collectPhrases(empty) = %q, want none", got)
	}
}

func TestParseCommandJSON(t *testing.T) {
	out, err := runRoot(t, t.TempDir(), "parse", "next", "fri", "--ref", "2017-05-11", "--json")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	var cands []models.Candidate
	if err := json.Unmarshal([]byte(out), &cands); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1: %s", len(cands), out)
	}
	if got := cands[0].Date.Format("2006-01-02"); got != "2017-05-19" {
		t.Errorf("date = %s, want 2017-05-19", got)
	}
	if cands[0].Match != "next Friday" || cands[0].Input != "next fri" {
		t.Errorf("candidate = %+v", cands[0])
	}
}

func TestParseCommandNoMatchIsNotError(t *testing.T) {
	out, err := runRoot(t, t.TempDir(), "parse", "blah", "--ref", "2017-05-11", "--json")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("output = %q, want []", out)
	}
}

func TestParseCommandNoMatchWarning(t *testing.T) {
	out, err := runRoot(t, t.TempDir(), "parse", "tomorow", "--ref", "2017-05-11")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	for _, want := range []string{`no date matches "tomorow"`, "DID YOU MEAN:", "  - tomorrow"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParseCommandMultiplePhrasesNoMatch(t *testing.T) {
	out, err := runRoot(t, t.TempDir(), "parse", "tom", "-i", "blah", "--ref", "2017-05-11", "--json")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	var results []phraseResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %+v, want 2", results)
	}
	if results[0].Error != nil {
		t.Errorf("tom error = %+v, want none", results[0].Error)
	}
	if results[1].Error == nil || results[1].Error.Code != output.ErrCodeNoMatch {
		t.Errorf("blah error = %+v, want %q", results[1].Error, output.ErrCodeNoMatch)
	}
}

func TestParseCommandBadRefJSON(t *testing.T) {
	out, err := runRoot(t, t.TempDir(), "parse", "tom", "--ref", "not a date", "--json")
	if err == nil {
		t.Fatal("expected error for invalid --ref")
	}
	var decoded struct {
		Error output.ErrorInfo `json:"error"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if decoded.Error.Code != output.ErrCodeInvalidInput {
		t.Errorf("code = %q, want %q", decoded.Error.Code, output.ErrCodeInvalidInput)
	}
	if decoded.Error.Details["ref"] != "not a date" {
		t.Errorf("details = %v, want the bad ref", decoded.Error.Details)
	}
}

func TestParseCommandConfigErrorJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".due"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".due", "config.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runRoot(t, dir, "parse", "tom", "--json")
	if err == nil {
		t.Fatal("expected error for malformed config")
	}
	if !strings.Contains(out, output.ErrCodeConfigError) {
		t.Errorf("output = %q, want %q", out, output.ErrCodeConfigError)
	}
}

func TestResolveCommand(t *testing.T) {
	out, err := runRoot(t, t.TempDir(), "resolve", "Next", "FRI", "--ref", "2017-05-11")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if strings.TrimSpace(out) != "2017-05-19" {
		t.Errorf("resolve = %q, want 2017-05-19", out)
	}

	if _, err := runRoot(t, t.TempDir(), "resolve", "blah", "--ref", "2017-05-11"); err == nil {
		t.Error("expected error for unrecognized phrase")
	}
}

func TestParseCommandNoPhrase(t *testing.T) {
	if _, err := runRoot(t, t.TempDir(), "parse"); err == nil {
		t.Error("expected error when no phrase is given")
	}
}

func TestParseCommandBadRef(t *testing.T) {
	if _, err := runRoot(t, t.TempDir(), "parse", "tom", "--ref", "not a date"); err == nil {
		t.Error("expected error for invalid --ref")
	}
}

func TestParseCommandUsesConfigDefault(t *testing.T) {
	dir := t.TempDir()
	if _, err := runRoot(t, dir, "config", "set", "end_of_day", "true"); err != nil {
		t.Fatalf("config set failed: %v", err)
	}

	out, err := runRoot(t, dir, "parse", "tom", "--ref", "2017-05-11", "--json")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	var cands []models.Candidate
	if err := json.Unmarshal([]byte(out), &cands); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(cands) != 1 || cands[0].Date.Hour() != 23 {
		t.Fatalf("candidates = %+v, want end of day", cands)
	}

	// explicit flag wins over config
	out, err = runRoot(t, dir, "parse", "tom", "--ref", "2017-05-11", "--json", "--end-of-day=false")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	cands = nil
	if err := json.Unmarshal([]byte(out), &cands); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(cands) != 1 || cands[0].Date.Hour() != 0 {
		t.Errorf("candidates = %+v, want midnight", cands)
	}
}

func TestParseCommandMultiplePhrasesJSON(t *testing.T) {
	out, err := runRoot(t, t.TempDir(), "parse", "tom", "-i", "15th", "--ref", "2017-05-11", "--json")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	var results []phraseResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(results) != 2 || results[0].Phrase != "tom" || results[1].Phrase != "15th" {
		t.Fatalf("results = %+v", results)
	}
	if got := results[1].Candidates[0].Date.Format("2006-01-02"); got != "2017-05-15" {
		t.Errorf("15th = %s, want 2017-05-15", got)
	}
}

func TestFlagErrorHint(t *testing.T) {
	err := flagError(parseCmd, errors.New("unknown flag: --eod"))
	if !strings.Contains(err.Error(), "--end-of-day") {
		t.Errorf("flagError = %q, want hint for --end-of-day", err)
	}

	err = flagError(parseCmd, errors.New("unknown flag: --jsn"))
	if !strings.Contains(err.Error(), "--json") {
		t.Errorf("flagError = %q, want suggestion --json", err)
	}

	plain := errors.New("flag needs an argument: --ref")
	if got := flagError(parseCmd, plain); got != plain {
		t.Errorf("flagError changed unrelated error: %v", got)
	}
}

func TestNormalizeFlagName(t *testing.T) {
	if got := normalizeFlagName(nil, "end_of_day"); got != "end-of-day" {
		t.Errorf("normalizeFlagName = %q", got)
	}
}
