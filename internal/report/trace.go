package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/macroscan/internal/model"
)

// TraceWriter prints the diagnostic trace of a scan: a blank line and the
// path of each document, then one line per raw match in the form
//
//	('cssxref', '("color")')
//
// Both fields are quoted like Python string literals: single quotes unless
// the text contains a single quote and no double quote, with backslashes,
// the delimiter and non-printable characters escaped.
type TraceWriter struct {
	baseWriter
}

// NewTraceWriter creates a TraceWriter that outputs to the given writer.
func NewTraceWriter(output io.Writer) *TraceWriter {
	return &TraceWriter{baseWriter: newBaseWriter(output)}
}

// TraceDocument prints the path of a document about to be read.
func (w *TraceWriter) TraceDocument(path string) error {
	_, err := fmt.Fprintf(w.output, "\n %s\n", path)
	return err
}

// TraceOccurrence prints one raw match.
func (w *TraceWriter) TraceOccurrence(occ model.Occurrence) error {
	args := ""
	if occ.HasArgs {
		args = "(" + occ.Args + ")"
	}
	_, err := fmt.Fprintf(w.output, "(%s, %s)\n", quoteLiteral(occ.Name), quoteLiteral(args))
	return err
}

// quoteLiteral quotes s the way Python's repr quotes a str.
func quoteLiteral(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var sb strings.Builder
	sb.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case strconv.IsPrint(r):
			sb.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&sb, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&sb, `\u%04x`, r)
		default:
			fmt.Fprintf(&sb, `\U%08x`, r)
		}
	}
	sb.WriteRune(quote)
	return sb.String()
}
