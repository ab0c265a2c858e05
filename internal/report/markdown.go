package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/macroscan/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// pieChartSlices is the number of top macros shown in the pie chart.
const pieChartSlices = 8

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for pasting into issues and pull requests.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeEntries(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title and scan information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Unimplemented Macros")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Root", "`" + report.Root + "`"},
			{"Documents Scanned", strconv.Itoa(report.FilesScanned)},
			{"Distinct Macros", strconv.Itoa(report.DistinctMacros)},
			{"Total Invocations", strconv.Itoa(report.TotalOccurrences)},
			{"Rank Limit", strconv.Itoa(report.Limit)},
		},
	})
	md.PlainText("")
}

// writeSummary writes the alert and the pie chart of the top macros.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.Report) {
	md.H2("Summary")
	md.PlainText("")

	if !report.HasEntries() {
		md.Tip("Every macro found in the corpus is implemented.")
		md.PlainText("")
		return
	}

	md.Note(strconv.Itoa(len(report.Entries)) + " unimplemented macro(s) account for " +
		strconv.Itoa(report.UnimplementedOccurrences()) + " invocation(s).")
	md.PlainText("")

	w.writePieChart(md, report)
}

// writePieChart writes a mermaid pie chart of the most used unimplemented macros.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.Report) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Most Used Unimplemented Macros"),
		piechart.WithShowData(true),
	)

	top := report.Top(pieChartSlices)
	shown := 0
	for _, e := range top {
		chart.LabelAndIntValue(e.Name, uint64(e.Count))
		shown += e.Count
	}
	if rest := report.UnimplementedOccurrences() - shown; rest > 0 {
		chart.LabelAndIntValue("others", uint64(rest))
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeEntries writes the table of unimplemented macros.
func (w *MarkdownWriter) writeEntries(md *markdown.Markdown, report *model.Report) {
	md.H2("Macros")
	md.PlainText("")

	if !report.HasEntries() {
		md.PlainText("No unimplemented macros found.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Entries))
	for i, e := range report.Entries {
		rows[i] = []string{
			strconv.Itoa(e.Rank),
			"`" + e.Name + "`",
			strconv.Itoa(e.Count),
			strconv.Itoa(e.Files),
			codeCell(truncateString(e.Example, 60)),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Macro", "Count", "Files", "Example"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [macroscan](https://github.com/nao1215/macroscan)*")
}

// codeCell formats s as inline code that is safe inside a table cell.
func codeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", "\\|")
	if strings.Contains(s, "`") {
		return "`` " + s + " ``"
	}
	return "`" + s + "`"
}

// truncateString truncates a string to maxLen runes with ellipsis.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
