package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

// TestPathHandler_RewritesPaths tests that document paths are shortened.
func TestPathHandler_RewritesPaths(t *testing.T) {
	t.Parallel()

	root := filepath.FromSlash("/srv/content")

	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{
			name:  "path under root is relative",
			key:   "path",
			value: filepath.FromSlash("/srv/content/web/css/index.md"),
			want:  "path=web/css/index.md",
		},
		{
			name:  "path outside root is untouched",
			key:   "path",
			value: filepath.FromSlash("/tmp/other.md"),
			want:  "path=" + filepath.FromSlash("/tmp/other.md"),
		},
		{
			name:  "other keys are untouched",
			key:   "root",
			value: filepath.FromSlash("/srv/content/web"),
			want:  "root=" + filepath.FromSlash("/srv/content/web"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := WithRoot(NewLogger(&buf, true), root)

			logger.Debug("document read", tt.key, tt.value)

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected output to contain %q, got %q", tt.want, buf.String())
			}
		})
	}
}

// TestPathHandler_Groups tests rewriting inside groups and WithAttrs.
func TestPathHandler_Groups(t *testing.T) {
	t.Parallel()

	root := filepath.FromSlash("/srv/content")
	doc := filepath.FromSlash("/srv/content/a/b.md")

	t.Run("group attribute", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := WithRoot(NewLogger(&buf, true), root)
		logger.Info("read", slog.Group("doc", slog.String("path", doc)))

		if !strings.Contains(buf.String(), "doc.path=a/b.md") {
			t.Errorf("expected grouped relative path, got %q", buf.String())
		}
	})

	t.Run("with attrs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := WithRoot(NewLogger(&buf, true), root).With("path", doc)
		logger.Info("read")

		if !strings.Contains(buf.String(), "path=a/b.md") {
			t.Errorf("expected relative path, got %q", buf.String())
		}
	})
}

// TestNewLogger_Levels tests verbosity handling.
func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	t.Run("non-verbose hides debug and info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)
		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warn message")

		output := buf.String()
		if strings.Contains(output, "debug message") || strings.Contains(output, "info message") {
			t.Errorf("expected debug and info to be hidden, got %q", output)
		}
		if !strings.Contains(output, "warn message") {
			t.Errorf("expected warn to be shown, got %q", output)
		}
	})

	t.Run("verbose shows debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		NewLogger(&buf, true).Debug("debug message")

		if !strings.Contains(buf.String(), "debug message") {
			t.Errorf("expected debug message, got %q", buf.String())
		}
	})
}

// TestNewJSONLogger tests JSON output.
func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, false)
	logger.Warn("scan failed", "root", "docs")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected valid JSON, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "scan failed" {
		t.Errorf("expected msg 'scan failed', got %v", entry["msg"])
	}
	if entry["root"] != "docs" {
		t.Errorf("expected root 'docs', got %v", entry["root"])
	}
}
