package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/nao1215/macroscan/internal/model"
)

// EntrySeparator sits between the macro name and its count in a report line.
const EntrySeparator = " – "

// SimpleWriter outputs one line per unimplemented macro:
//
//	12. htmlsidebar – 4021
//
// Ranks may skip numbers where allowlisted macros were ranked but not shown.
type SimpleWriter struct {
	baseWriter

	// color enables ANSI colours for rank, name and count.
	color bool

	// verbose adds the example invocation and file count under each line.
	verbose bool

	// summary appends corpus totals after the entries.
	summary bool

	rank  *color.Color
	name  *color.Color
	count *color.Color
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithColor enables or disables ANSI colours.
func WithColor(enabled bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.color = enabled
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// WithSummary appends corpus totals after the entries.
func WithSummary(summary bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.summary = summary
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		rank:       color.New(color.FgCyan),
		name:       color.New(color.Bold),
		count:      color.New(color.FgYellow),
	}

	for _, opt := range opts {
		opt(w)
	}

	for _, c := range []*color.Color{w.rank, w.name, w.count} {
		if w.color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return w
}

// Write outputs the report lines.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	for _, e := range report.Entries {
		w.writeEntry(&sb, e)
	}

	if w.summary {
		w.writeSummary(&sb, report)
	}

	return io.WriteString(w.output, sb.String())
}

// FormatEntry returns the plain report line for e without a newline.
func FormatEntry(e model.Entry) string {
	return fmt.Sprintf("%d. %s%s%d", e.Rank, e.Name, EntrySeparator, e.Count)
}

// writeEntry writes one report line.
func (w *SimpleWriter) writeEntry(sb *strings.Builder, e model.Entry) {
	sb.WriteString(w.rank.Sprintf("%d.", e.Rank))
	sb.WriteString(" ")
	sb.WriteString(w.name.Sprint(e.Name))
	sb.WriteString(EntrySeparator)
	sb.WriteString(w.count.Sprintf("%d", e.Count))
	sb.WriteString("\n")

	if w.verbose {
		sb.WriteString(fmt.Sprintf("    e.g. %s (%d %s)\n", e.Example, e.Files, plural(e.Files, "file", "files")))
	}
}

// writeSummary writes the corpus totals.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 50))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Root:               %s\n", report.Root))
	sb.WriteString(fmt.Sprintf("Documents scanned:  %d\n", report.FilesScanned))
	sb.WriteString(fmt.Sprintf("Distinct macros:    %d\n", report.DistinctMacros))
	sb.WriteString(fmt.Sprintf("Total invocations:  %d\n", report.TotalOccurrences))
	sb.WriteString(fmt.Sprintf("Unimplemented:      %d macros, %d invocations\n",
		len(report.Entries), report.UnimplementedOccurrences()))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
