// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - SimpleWriter: One "{rank}. {macro} – {count}" line per unimplemented macro
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown with tables and a pie chart
//
// Writers implement the Writer interface, so they can be used
// interchangeably.
//
// TraceWriter is separate: it prints the diagnostic trace of documents and
// raw matches while a scan is running.
package report
