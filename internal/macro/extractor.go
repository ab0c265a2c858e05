package macro

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"unicode/utf8"

	"github.com/nao1215/macroscan/internal/model"
)

// ErrInvalidText is returned when a document is not valid UTF-8 text.
var ErrInvalidText = errors.New("document is not valid UTF-8 text")

// invocationPattern matches one macro invocation.
// Group 1 is the name, group 2 the parenthesised blob, group 3 its interior.
var invocationPattern = regexp.MustCompile(`\{\{ ?([\p{L}\p{N}_-]+)(\(([^{}()]*)\))? ?\}\}`)

// Extract returns every macro invocation in text, in order of appearance.
// It returns an empty slice when text contains no invocation.
func Extract(text string) []model.Occurrence {
	matches := invocationPattern.FindAllStringSubmatchIndex(text, -1)
	occs := make([]model.Occurrence, 0, len(matches))

	for _, m := range matches {
		occ := model.Occurrence{
			Name:  text[m[2]:m[3]],
			Match: text[m[0]:m[1]],
		}
		// m[4] is -1 when the optional argument group did not participate.
		if m[4] >= 0 {
			occ.HasArgs = true
			occ.Args = text[m[6]:m[7]]
		}
		occs = append(occs, occ)
	}

	return occs
}

// ExtractFile reads the document at path and extracts its invocations.
// The whole file is read at once and must be valid UTF-8.
func ExtractFile(path string) ([]model.Occurrence, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Paths come from walking the user-selected root
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidText)
	}

	return Extract(string(data)), nil
}
