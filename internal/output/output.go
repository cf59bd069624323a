// Package output provides styled terminal output helpers (success, error,
// warning, candidate formatting) using lipgloss.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/due/internal/models"
)

var (
	// Styles
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	matchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	sourceStyles = map[models.Source]lipgloss.Style{
		models.SourceEngine:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		models.SourceNatural: lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
	}
)

// Success prints a success message
func Success(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("ERROR: "+fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, warningStyle.Render("Warning: "+fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}

// WriteJSON writes data as indented JSON followed by a newline
func WriteJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// Error codes for structured JSON output
const (
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeNoMatch      = "no_match"
	ErrCodeConfigError  = "config_error"
)

// ErrorInfo is the error object of structured JSON output
type ErrorInfo struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// JSONError outputs an error as JSON
func JSONError(w io.Writer, code, message string) {
	JSONErrorWithDetails(w, code, message, nil)
}

// JSONErrorWithDetails outputs an error as JSON with additional context
func JSONErrorWithDetails(w io.Writer, code, message string, details map[string]interface{}) {
	result := map[string]interface{}{
		"error": ErrorInfo{Code: code, Message: message, Details: details},
	}
	_ = WriteJSON(w, result)
}

// FormatSource formats a candidate source with color
func FormatSource(s models.Source) string {
	style, ok := sourceStyles[s]
	if !ok {
		return string(s)
	}
	return style.Render(fmt.Sprintf("[%s]", s))
}

// FormatDate formats a due date as "Fri 2017-05-19", adding the time when
// it is not midnight
func FormatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("Mon 2006-01-02")
	}
	return t.Format("Mon 2006-01-02 15:04:05")
}

// FormatDueIn formats the distance from ref to t in whole calendar days
func FormatDueIn(t, ref time.Time) string {
	ty, tm, td := t.Date()
	ry, rm, rd := ref.In(t.Location()).Date()
	a := time.Date(ty, tm, td, 12, 0, 0, 0, time.UTC)
	b := time.Date(ry, rm, rd, 12, 0, 0, 0, time.UTC)
	days := int(a.Sub(b).Hours() / 24)

	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days < 0:
		return fmt.Sprintf("%dd ago", -days)
	case days < 14:
		return fmt.Sprintf("in %dd", days)
	case days < 60:
		return fmt.Sprintf("in %dw", days/7)
	case days < 730:
		return fmt.Sprintf("in %dmo", days/30)
	default:
		return fmt.Sprintf("in %dy", days/365)
	}
}

// FormatCandidate formats a candidate on one line
func FormatCandidate(c models.Candidate, ref time.Time) string {
	var parts []string
	parts = append(parts, titleStyle.Render(FormatDate(c.Date)))
	parts = append(parts, matchStyle.Render(c.Match))
	parts = append(parts, subtleStyle.Render(FormatDueIn(c.Date, ref)))
	if c.Source != "" && c.Source != models.SourceEngine {
		parts = append(parts, FormatSource(c.Source))
	}
	return strings.Join(parts, "  ")
}

// FormatCandidates formats candidates, one per line. With a header the
// phrase is printed first and the candidates are indented beneath it.
func FormatCandidates(phrase string, candidates []models.Candidate, ref time.Time, withHeader bool) []string {
	var lines []string
	for _, c := range candidates {
		lines = append(lines, FormatCandidate(c, ref))
	}
	if !withHeader {
		return lines
	}
	header := titleStyle.Render(fmt.Sprintf("%q", phrase))
	return append([]string{header}, IndentLines(lines, 2)...)
}

// SectionHeader returns a formatted section header for CLI output
// e.g., "\nDID YOU MEAN:\n"
func SectionHeader(title string) string {
	return fmt.Sprintf("\n%s:\n", strings.ToUpper(title))
}

// IndentLines indents each line by the specified number of spaces
func IndentLines(lines []string, spaces int) []string {
	indent := strings.Repeat(" ", spaces)
	result := make([]string, len(lines))
	for i, line := range lines {
		result[i] = indent + line
	}
	return result
}

// BulletList formats items as a bulleted list with optional indentation
func BulletList(items []string, indent int) []string {
	prefix := strings.Repeat(" ", indent)
	result := make([]string, len(items))
	for i, item := range items {
		result[i] = prefix + "- " + item
	}
	return result
}
