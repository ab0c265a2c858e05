package macro

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestExtract tests invocation matching against the pattern rules.
func TestExtract(t *testing.T) {
	t.Parallel()

	type want struct {
		name    string
		args    string
		hasArgs bool
	}

	tests := []struct {
		name  string
		input string
		want  []want
	}{
		{
			name:  "bare macro",
			input: "see {{cssxref}} here",
			want:  []want{{name: "cssxref"}},
		},
		{
			name:  "macro with quoted argument",
			input: `{{cssxref("color")}}`,
			want:  []want{{name: "cssxref", args: `"color"`, hasArgs: true}},
		},
		{
			name:  "macro with empty argument list",
			input: "{{compat()}}",
			want:  []want{{name: "compat", args: "", hasArgs: true}},
		},
		{
			name:  "single inner spaces are allowed",
			input: `{{ Specifications }} and {{ jsxref("Array") }}`,
			want: []want{
				{name: "Specifications"},
				{name: "jsxref", args: `"Array"`, hasArgs: true},
			},
		},
		{
			name:  "double inner spaces do not match",
			input: "{{  cssxref  }}",
			want:  nil,
		},
		{
			name:  "hyphen underscore and digits in names",
			input: "{{Non-standard_Inline}} {{h2m}}",
			want:  []want{{name: "Non-standard_Inline"}, {name: "h2m"}},
		},
		{
			name:  "non-ASCII letters in names",
			input: "{{Глосарій}}",
			want:  []want{{name: "Глосарій"}},
		},
		{
			name:  "multiple arguments are kept raw",
			input: `{{EmbedLiveSample("Example", "100%", 250)}}`,
			want:  []want{{name: "EmbedLiveSample", args: `"Example", "100%", 250`, hasArgs: true}},
		},
		{
			name:  "nested invocation yields only the inner one",
			input: "{{foo({{bar}})}}",
			want:  []want{{name: "bar"}},
		},
		{
			name:  "nested parentheses do not match",
			input: "{{foo(a(b))}}",
			want:  nil,
		},
		{
			name:  "space between name and arguments does not match",
			input: `{{cssxref ("color")}}`,
			want:  nil,
		},
		{
			name:  "single braces do not match",
			input: "{cssxref}",
			want:  nil,
		},
		{
			name:  "arguments may span lines",
			input: "{{jsxref(\"Map\",\n\"Map()\")}}",
			want:  []want{{name: "jsxref", args: "\"Map\",\n\"Map()\"", hasArgs: true}},
		},
		{
			name:  "order of appearance across lines",
			input: "{{b}}\n{{a}}\n{{c}}{{a}}",
			want:  []want{{name: "b"}, {name: "a"}, {name: "c"}, {name: "a"}},
		},
		{
			name:  "no invocations",
			input: "plain text with {braces} and (parens)",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Extract(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d occurrences, got %d: %+v", len(tt.want), len(got), got)
			}
			for i, w := range tt.want {
				if got[i].Name != w.name {
					t.Errorf("occurrence %d: name %q, want %q", i, got[i].Name, w.name)
				}
				if got[i].Args != w.args {
					t.Errorf("occurrence %d: args %q, want %q", i, got[i].Args, w.args)
				}
				if got[i].HasArgs != w.hasArgs {
					t.Errorf("occurrence %d: hasArgs %v, want %v", i, got[i].HasArgs, w.hasArgs)
				}
			}
		})
	}
}

// TestExtractMatchText tests that the raw match is preserved.
func TestExtractMatchText(t *testing.T) {
	t.Parallel()

	got := Extract(`before {{ domxref("Node") }} after`)
	if len(got) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(got))
	}
	if got[0].Match != `{{ domxref("Node") }}` {
		t.Errorf("unexpected match text %q", got[0].Match)
	}
	if got[0].Key() != "domxref" {
		t.Errorf("unexpected key %q", got[0].Key())
	}
}

// TestExtractFile tests reading documents from disk.
func TestExtractFile(t *testing.T) {
	t.Parallel()

	t.Run("reads and extracts", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.md")
		if err := os.WriteFile(path, []byte("{{Glossary(\"HTML\")}} {{glossary}}"), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		got, err := ExtractFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 occurrences, got %d", len(got))
		}
	})

	t.Run("rejects invalid UTF-8", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "broken.md")
		if err := os.WriteFile(path, []byte{'{', '{', 0xff, 0xfe, '}', '}'}, 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		_, err := ExtractFile(path)
		if !errors.Is(err, ErrInvalidText) {
			t.Errorf("expected ErrInvalidText, got %v", err)
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		t.Parallel()

		_, err := ExtractFile(filepath.Join(t.TempDir(), "missing.md"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})
}
