package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/pyyyc/deckprops/internal/application/dto"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// TableFormatter formats check reports as a human-readable table.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

func (f *TableFormatter) rule() string {
	return f.colorize(strings.Repeat("─", 80), colorGray)
}

// Format writes the report as a table.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Format(report *dto.Report) error {
	fmt.Fprintln(f.writer, f.rule())
	fmt.Fprintf(f.writer, "Run: %s\n", f.colorize(report.ID.String(), colorBold))
	fmt.Fprintf(f.writer, "Checked: %s\n", report.StartTime.Format(time.RFC3339))
	fmt.Fprintf(f.writer, "Duration: %s\n", report.Duration.Round(time.Millisecond))
	fmt.Fprintln(f.writer)

	if len(report.Results) == 0 {
		fmt.Fprintln(f.writer, "No entities checked.")
		fmt.Fprintln(f.writer)
		f.formatSummary(report.Summary)
		return nil
	}

	fmt.Fprintln(f.writer, f.colorize("Entities:", colorBold))
	fmt.Fprintln(f.writer, f.rule())

	for _, result := range report.Results {
		f.formatResult(result)
	}

	fmt.Fprintln(f.writer, f.rule())
	fmt.Fprintln(f.writer)

	f.formatSummary(report.Summary)

	return nil
}

// formatResult formats a single entity result.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatResult(r dto.EntityResult) {
	symbol, color := f.statusInfo(r.Valid)
	location := fmt.Sprintf("%s[%d]", r.Source, r.Index)

	fmt.Fprintf(f.writer, "%s %s %s\n", f.colorize(symbol, color), f.colorize(location, color), f.colorize(r.Kind, colorCyan))

	if r.Valid {
		fmt.Fprintf(f.writer, "  Summary: %s\n", r.Summary)
	} else {
		label := "Error"
		if r.ErrorKind != "" {
			label = fmt.Sprintf("Error (%s)", r.ErrorKind)
		}
		fmt.Fprintf(f.writer, "  %s: %s\n", f.colorize(label, colorRed), r.Error)
	}

	if r.TimePerSlide != nil {
		fmt.Fprintf(f.writer, "  Time per slide: %.2f min\n", *r.TimePerSlide)
	}
	if r.StrainsEyes != nil {
		strains := "no"
		if *r.StrainsEyes {
			strains = f.colorize("yes", colorYellow)
		}
		fmt.Fprintf(f.writer, "  Strains eyes: %s\n", strains)
	}

	// The first cliff note repeats the summary.
	if len(r.CliffNotes) > 1 {
		fmt.Fprintln(f.writer, "  Cliff notes:")
		for _, note := range r.CliffNotes[1:] {
			fmt.Fprintf(f.writer, "    %s\n", note)
		}
	}

	for _, note := range r.Notes {
		fmt.Fprintf(f.writer, "  %s: %s\n", f.colorize("Note", colorYellow), note)
	}

	if len(r.LintIssues) > 0 {
		fmt.Fprintf(f.writer, "  %s:\n", f.colorize("Lint", colorYellow))
		for _, issue := range r.LintIssues {
			fmt.Fprintf(f.writer, "    - %s\n", issue)
		}
	}

	f.formatFields(r.Fields)

	fmt.Fprintln(f.writer)
}

// formatFields lists stored field values in name order.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatFields(fields map[string]any) {
	if len(fields) == 0 {
		return
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(f.writer, "  Fields:")
	for _, key := range keys {
		valStr := f.formatValue(fields[key])
		if strings.Contains(valStr, "\n") {
			fmt.Fprintf(f.writer, "    - %s:%s\n", f.colorize(key, colorBlue), valStr)
		} else {
			fmt.Fprintf(f.writer, "    - %s: %s\n", f.colorize(key, colorBlue), valStr)
		}
	}
}

// formatValue formats a value for display.
func (f *TableFormatter) formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any:
		return formatMap(v)
	case []any:
		// Lists of records get one line per element
		if len(v) > 0 {
			if _, ok := v[0].(map[string]any); ok {
				lines := make([]string, 0, len(v))
				for _, item := range v {
					if m, ok := item.(map[string]any); ok {
						lines = append(lines, formatMap(m))
					} else {
						lines = append(lines, fmt.Sprintf("%v", item))
					}
				}
				return "\n        " + strings.Join(lines, "\n        ")
			}
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// formatMap renders a map as sorted key=value pairs.
func formatMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, m[k]))
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}

// formatSummary formats the summary statistics.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatSummary(summary dto.ReportSummary) {
	fmt.Fprintln(f.writer, f.colorize("Summary:", colorBold))
	fmt.Fprintln(f.writer, f.rule())

	fmt.Fprintf(f.writer, "Documents:    %d total\n", summary.Documents)
	fmt.Fprintf(f.writer, "  %s Valid:    %d\n", f.colorize("✓", colorGreen), summary.Valid)
	fmt.Fprintf(f.writer, "  %s Invalid:  %d\n", f.colorize("✗", colorRed), summary.Invalid)
	fmt.Fprintf(f.writer, "  %s Filtered: %d\n", f.colorize("⊘", colorGray), summary.Filtered)
	fmt.Fprintf(f.writer, "  %s Strains eyes: %d\n", f.colorize("⚠", colorYellow), summary.StrainsEyes)

	fmt.Fprintln(f.writer, f.rule())
}

// statusInfo returns a symbol and color for a result.
func (f *TableFormatter) statusInfo(valid bool) (string, string) {
	if valid {
		return "✓", colorGreen
	}
	return "✗", colorRed
}
