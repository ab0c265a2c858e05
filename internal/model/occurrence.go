package model

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Occurrence is one macro invocation extracted from a document,
// e.g. {{cssxref("color")}}.
type Occurrence struct {
	// Name is the macro name exactly as written (case preserved).
	Name string

	// Args is the text between the parentheses, without the parentheses.
	// It is empty when the invocation has no argument list.
	Args string

	// HasArgs reports whether a parenthesised argument list was present.
	// This distinguishes {{name()}} from {{name}}.
	HasArgs bool

	// Match is the raw matched text including the braces.
	Match string
}

// Key returns the aggregation key for the occurrence.
func (o Occurrence) Key() string {
	return Key(o.Name)
}

// Key returns the aggregation key for a macro name: the name with the full
// Unicode lower-case mapping applied. {{Foo}}, {{FOO}} and {{foo}} share
// the key "foo".
func Key(name string) string {
	return cases.Lower(language.Und).String(name)
}
